package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

// Shared color tokens. Every view pulls from this palette so the tool keeps
// one visual identity across commands.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	ColorCoral   = lipgloss.AdaptiveColor{Light: "#e11d48", Dark: "#fb7185"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorText    = lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"}
	ColorTextDim = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconFolder  = "📁"
	IconTrash   = "🗑"
	IconSearch  = "🔍"
	IconCross   = "✗"
	IconDiamond = "◆"
	IconChevron = "›"
)

// ─── Terminal detection ──────────────────────────────────────────────────────

// styled is resolved once at startup; styling never changes mid-run.
var styled = IsTerminal()

// IsTerminal reports whether stdout is attached to an interactive terminal.
func IsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ─── Style helpers ───────────────────────────────────────────────────────────

// Styling is decoration only: when stdout is not a terminal the helpers
// return their input unchanged, so message shapes stay stable for pipes.

var (
	accentStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorTextDim)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	errStyle    = lipgloss.NewStyle().Foreground(ColorError)
	boldStyle   = lipgloss.NewStyle().Bold(true)
)

// Accent renders s in the primary color when stdout is a terminal.
func Accent(s string) string {
	if !styled {
		return s
	}
	return accentStyle.Render(s)
}

// Dim renders s in the dim text color when stdout is a terminal.
func Dim(s string) string {
	if !styled {
		return s
	}
	return dimStyle.Render(s)
}

// Warn renders s in the warning color when stdout is a terminal.
func Warn(s string) string {
	if !styled {
		return s
	}
	return warnStyle.Render(s)
}

// Error renders s in the error color when stdout is a terminal.
func Error(s string) string {
	if !styled {
		return s
	}
	return errStyle.Render(s)
}

// Bold renders s in bold when stdout is a terminal.
func Bold(s string) string {
	if !styled {
		return s
	}
	return boldStyle.Render(s)
}
