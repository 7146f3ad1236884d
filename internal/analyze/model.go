package analyze

import (
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/nodemole/internal/sysinfo"
	"github.com/lakshaymaurya-felt/nodemole/internal/ui"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type scanDoneMsg struct {
	matches []Match
	usage   *sysinfo.DiskUsage
}

type deleteResultMsg struct {
	path  string
	freed int64
	err   error
}

func scanCmd(root string) tea.Cmd {
	return func() tea.Msg {
		matches := Collect(root)
		var usage *sysinfo.DiskUsage
		if u, err := sysinfo.Usage(root); err == nil {
			usage = &u
		}
		return scanDoneMsg{matches: matches, usage: usage}
	}
}

func deleteCmd(match Match) tea.Cmd {
	return func() tea.Msg {
		err := os.RemoveAll(match.Path)
		return deleteResultMsg{path: match.Path, freed: match.Size, err: err}
	}
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea Model for the match browser.
type Model struct {
	root    string
	matches []Match
	usage   *sysinfo.DiskUsage

	spinner spinner.Model
	bar     progress.Model

	scanning      bool
	cursor        int
	offset        int // viewport scroll offset
	width         int
	height        int
	confirmDelete bool // two-key delete: backspace then enter
	freed         int64
	deleted       int
	status        string
	quitting      bool
}

// NewModel creates a Model that scans root on Init.
func NewModel(root string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 20

	return Model{
		root:     root,
		spinner:  sp,
		bar:      bar,
		scanning: true,
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, scanCmd(m.root))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case scanDoneMsg:
		m.scanning = false
		m.matches = msg.matches
		m.usage = msg.usage
		return m, nil

	case deleteResultMsg:
		if msg.err != nil {
			m.status = "delete failed: " + msg.err.Error()
			return m, nil
		}
		m.freed += msg.freed
		m.deleted++
		m.removeMatch(msg.path)
		m.status = "deleted " + msg.path
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While awaiting delete confirmation, only enter confirms.
	if m.confirmDelete {
		m.confirmDelete = false
		if msg.String() == "enter" && m.cursor >= 0 && m.cursor < len(m.matches) {
			return m, deleteCmd(m.matches[m.cursor])
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}

	case "down", "j":
		if m.cursor < len(m.matches)-1 {
			m.cursor++
			m.ensureVisible()
		}

	case "backspace":
		// First key of the two-key delete confirmation.
		if m.cursor >= 0 && m.cursor < len(m.matches) {
			m.confirmDelete = true
		}
	}

	return m, nil
}

// View delegates to view.go renderView.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderView()
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func (m *Model) ensureVisible() {
	vh := m.viewportHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

func (m Model) viewportHeight() int {
	h := m.height - 9 // header (5) + footer (3) + padding
	if h < 1 {
		h = 1
	}
	return h
}

// totalSize sums the sizes of the remaining matches.
func (m Model) totalSize() int64 {
	var total int64
	for _, match := range m.matches {
		total += match.Size
	}
	return total
}

// removeMatch drops a deleted entry from the list and clamps the cursor.
func (m *Model) removeMatch(path string) {
	for i, match := range m.matches {
		if match.Path == path {
			m.matches = append(m.matches[:i], m.matches[i+1:]...)
			break
		}
	}
	if m.cursor >= len(m.matches) && m.cursor > 0 {
		m.cursor--
	}
	m.ensureVisible()
}
