// Package purge applies one of the batch actions (size, count, delete) to a
// precomputed list of discovered node_modules directories. Every action is a
// single linear pass with independent per-item failure handling: one bad path
// never stops the rest of the run.
package purge

import (
	"fmt"
	"io"
	"os"

	"github.com/lakshaymaurya-felt/nodemole/internal/scan"
	"github.com/lakshaymaurya-felt/nodemole/internal/ui"
)

// Runner writes action progress and summaries to its writers.
type Runner struct {
	Out io.Writer // per-match lines and the final summary
	Err io.Writer // per-item failure lines
}

// NewRunner creates a Runner bound to the given writers.
func NewRunner(out, errOut io.Writer) *Runner {
	return &Runner{Out: out, Err: errOut}
}

// plural picks the singular form only when n is exactly one.
func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

// SizeReport prints each match with its recursive size and returns the grand
// total, which is also printed. Read-only: the filesystem is not touched.
func (r *Runner) SizeReport(matches []string) int64 {
	var total int64
	for _, m := range matches {
		size := scan.DirSize(m)
		total += size
		fmt.Fprintf(r.Out, "%s %s  %s\n", ui.IconFolder, m, ui.Accent(ui.FormatSize(size)))
	}
	fmt.Fprintf(r.Out, "Total size: %s\n", ui.Bold(ui.FormatSize(total)))
	return total
}

// CountReport prints how many matches were found, then each match with its
// immediate subfolder count. A listing failure on a match counts as zero.
func (r *Runner) CountReport(matches []string) {
	n := len(matches)
	fmt.Fprintf(r.Out, "Found %d node_modules %s\n", n, plural(n, "folder", "folders"))
	for _, m := range matches {
		count := scan.SubdirCount(m)
		fmt.Fprintf(r.Out, "%s %s  %d %s\n",
			ui.IconFolder, m, count, plural(count, "subfolder", "subfolders"))
	}
}

// Delete recursively removes each match, best effort. A failed removal is
// reported on Err and the loop continues. The returned (and printed)
// processed count reflects matches attempted, not removals that succeeded;
// freed sums the sizes of the matches that were actually removed.
func (r *Runner) Delete(matches []string) (processed int, freed int64) {
	for _, m := range matches {
		size := scan.DirSize(m)
		if err := os.RemoveAll(m); err != nil {
			fmt.Fprintln(r.Err, ui.Error(fmt.Sprintf("%s Failed to delete %s: %v", ui.IconCross, m, err)))
		} else {
			freed += size
			fmt.Fprintf(r.Out, "%s Deleted %s\n", ui.IconTrash, m)
		}
		processed++
	}
	fmt.Fprintf(r.Out, "Processed %d node_modules %s, freed %s\n",
		processed, plural(processed, "folder", "folders"), ui.FormatSize(freed))
	return processed, freed
}
