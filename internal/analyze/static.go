package analyze

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/lakshaymaurya-felt/nodemole/internal/sysinfo"
	"github.com/lakshaymaurya-felt/nodemole/internal/ui"
)

// PrintStatic prints a plain-text match report. Used as a fallback when
// stdout is not a terminal and the interactive browser cannot render.
func PrintStatic(w io.Writer, root string, matches []Match, usage *sysinfo.DiskUsage) {
	fmt.Fprintf(w, "  node_modules under: %s\n", root)
	if usage != nil {
		fmt.Fprintf(w, "  disk: %s free of %s (%.0f%% used)\n",
			ui.FormatSize(int64(usage.Free)),
			ui.FormatSize(int64(usage.Total)),
			usage.UsedPercent)
	}
	fmt.Fprintln(w, "  "+strings.Repeat("-", 58))

	if len(matches) == 0 {
		fmt.Fprintln(w, "  No node_modules folders found.")
		return
	}

	var total int64
	for _, match := range matches {
		total += match.Size
		rel, err := filepath.Rel(root, match.Path)
		if err != nil {
			rel = match.Path
		}
		fmt.Fprintf(w, "  %12s  %s  (%d %s)\n",
			ui.FormatSize(match.Size), rel,
			match.Subdirs, subfolderWord(match.Subdirs))
	}

	fmt.Fprintln(w, "  "+strings.Repeat("-", 58))
	fmt.Fprintf(w, "  Total: %s in %d %s\n",
		ui.FormatSize(total), len(matches), folderWord(len(matches)))
}

func folderWord(n int) string {
	if n == 1 {
		return "folder"
	}
	return "folders"
}

func subfolderWord(n int) string {
	if n == 1 {
		return "subfolder"
	}
	return "subfolders"
}
