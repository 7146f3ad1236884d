package analyze

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/nodemole/internal/ui"
)

// ─── Color tokens ────────────────────────────────────────────────────────────

// Short aliases for readability in render functions.
var (
	clrDim    = ui.ColorMuted
	clrPath   = ui.ColorText
	clrSize   = ui.ColorCoral
	clrCursor = ui.ColorPrimary
)

// ─── Top-level view ──────────────────────────────────────────────────────────

func (m Model) renderView() string {
	w := m.width
	if w < 40 {
		w = 40
	}

	var s strings.Builder
	s.WriteString(m.renderHeader(w))
	s.WriteString("\n")

	if m.scanning {
		s.WriteString(lipgloss.NewStyle().
			Foreground(ui.ColorTextDim).
			Render(fmt.Sprintf("  %s Scanning %s for node_modules folders…", m.spinner.View(), m.root)))
	} else {
		s.WriteString(m.renderBody(w))
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter(w))
	return s.String()
}

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) renderHeader(w int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorCoral).
		Render("  " + ui.IconDiamond + " node_modules Browser")

	pathLine := lipgloss.NewStyle().
		Foreground(ui.ColorTextDim).
		Render(fmt.Sprintf("  %s    %d matches    %s",
			m.root, len(m.matches), ui.FormatSize(m.totalSize())))

	lines := []string{title, pathLine}

	if m.usage != nil {
		diskLine := lipgloss.NewStyle().
			Foreground(clrDim).
			Render(fmt.Sprintf("  disk: %s free of %s (%.0f%% used)",
				ui.FormatSize(int64(m.usage.Free)),
				ui.FormatSize(int64(m.usage.Total)),
				m.usage.UsedPercent))
		lines = append(lines, diskLine)
	}

	inner := lipgloss.JoinVertical(lipgloss.Left, lines...)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorCoral).
		Width(w - 2).
		Render(inner)
}

// ─── Body (match list) ───────────────────────────────────────────────────────

func (m Model) renderBody(w int) string {
	if len(m.matches) == 0 {
		return lipgloss.NewStyle().
			Foreground(clrDim).
			Italic(true).
			Render("  No node_modules folders found.")
	}

	vh := m.viewportHeight()
	largest := m.matches[0].Size
	for _, match := range m.matches {
		if match.Size > largest {
			largest = match.Size
		}
	}

	var lines []string
	for i := m.offset; i < len(m.matches) && i < m.offset+vh; i++ {
		lines = append(lines, m.renderMatch(m.matches[i], largest, i == m.cursor))
	}

	// Scroll hint when the list overflows the viewport.
	if len(m.matches) > vh {
		hint := lipgloss.NewStyle().
			Foreground(clrDim).
			Italic(true).
			Render(fmt.Sprintf("  ── %d/%d matches ──", min(m.offset+vh, len(m.matches)), len(m.matches)))
		lines = append(lines, hint)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderMatch(match Match, largest int64, selected bool) string {
	marker := "  "
	pathStyle := lipgloss.NewStyle().Foreground(clrPath)
	if selected {
		marker = lipgloss.NewStyle().Foreground(clrCursor).Render(ui.IconChevron + " ")
		pathStyle = pathStyle.Bold(true).Foreground(clrCursor)
	}

	var frac float64
	if largest > 0 {
		frac = float64(match.Size) / float64(largest)
	}
	bar := m.bar.ViewAs(frac)

	rel, err := filepath.Rel(m.root, match.Path)
	if err != nil {
		rel = match.Path
	}

	size := lipgloss.NewStyle().
		Foreground(clrSize).
		Width(12).
		Align(lipgloss.Right).
		Render(ui.FormatSize(match.Size))

	return fmt.Sprintf("  %s%s %s  %s", marker, size, bar, pathStyle.Render(rel))
}

// ─── Footer ──────────────────────────────────────────────────────────────────

func (m Model) renderFooter(w int) string {
	var statusLine string
	switch {
	case m.confirmDelete:
		statusLine = lipgloss.NewStyle().
			Foreground(ui.ColorWarning).
			Bold(true).
			Render("  press enter to delete the selected folder, any other key cancels")
	case m.status != "":
		statusLine = lipgloss.NewStyle().
			Foreground(ui.ColorTextDim).
			Render("  " + m.status)
	}

	summary := ""
	if m.deleted > 0 {
		summary = fmt.Sprintf("  deleted %d, freed %s", m.deleted, ui.FormatSize(m.freed))
	}

	help := lipgloss.NewStyle().
		Foreground(clrDim).
		Render("  ↑/↓ move · backspace+enter delete · q quit" + summary)

	if statusLine == "" {
		return help
	}
	return lipgloss.JoinVertical(lipgloss.Left, statusLine, help)
}
