// Package analyze implements the interactive node_modules browser: a
// full-screen list of discovered matches with sizes, selective deletion,
// and a plain-text fallback for non-terminal output.
package analyze

import (
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lakshaymaurya-felt/nodemole/internal/scan"
	"github.com/lakshaymaurya-felt/nodemole/internal/sysinfo"
	"github.com/lakshaymaurya-felt/nodemole/internal/ui"
)

// Match is one discovered node_modules directory with its measurements.
type Match struct {
	Path    string
	Size    int64
	Subdirs int
}

// Collect discovers matches under root and measures each one. The result is
// sorted by size descending so the biggest wins are at the top.
func Collect(root string) []Match {
	paths := scan.NewScanner().Find(root)

	matches := make([]Match, 0, len(paths))
	for _, p := range paths {
		matches = append(matches, Match{
			Path:    p,
			Size:    scan.DirSize(p),
			Subdirs: scan.SubdirCount(p),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Size > matches[j].Size
	})
	return matches
}

// Run scans root and presents the matches interactively. When stdout is not
// a terminal the bubbletea TUI cannot render, so a static report is printed
// instead.
func Run(root string) error {
	if !ui.IsTerminal() {
		var usage *sysinfo.DiskUsage
		if u, err := sysinfo.Usage(root); err == nil {
			usage = &u
		}
		PrintStatic(os.Stdout, root, Collect(root), usage)
		return nil
	}

	_, err := tea.NewProgram(NewModel(root), tea.WithAltScreen()).Run()
	return err
}
