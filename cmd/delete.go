package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/nodemole/internal/purge"
	"github.com/lakshaymaurya-felt/nodemole/internal/scan"
	"github.com/lakshaymaurya-felt/nodemole/internal/sysinfo"
	"github.com/lakshaymaurya-felt/nodemole/internal/ui"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [path]",
	Short: "Delete node_modules folders",
	Long: `Scan for node_modules folders and recursively remove them.

Removal is immediate and irreversible; there is no confirmation prompt
and no dry-run. A folder that cannot be removed is reported on stderr
and the run continues with the remaining matches.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runDelete(cmd, pathArg(args))
	},
}

func runDelete(cmd *cobra.Command, root string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconSearch, ui.Dim("Scanning "+root))

	scanner := scan.NewScanner()
	matches := scanner.Find(root)

	_, freed := purge.NewRunner(cmd.OutOrStdout(), cmd.ErrOrStderr()).Delete(matches)
	if freed > 0 {
		if u, err := sysinfo.Usage(root); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Disk now %.0f%% used, %s free\n",
				u.UsedPercent, ui.FormatSize(int64(u.Free)))
		}
	}
	reportWarnings(cmd, scanner)
}
