package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/nodemole/internal/purge"
	"github.com/lakshaymaurya-felt/nodemole/internal/scan"
	"github.com/lakshaymaurya-felt/nodemole/internal/ui"
)

var sizeCmd = &cobra.Command{
	Use:   "size [path]",
	Short: "Report disk usage of node_modules folders",
	Long:  "Scan for node_modules folders and report each one's recursive size plus a grand total. Read-only.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSize(cmd, pathArg(args))
	},
}

func runSize(cmd *cobra.Command, root string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconSearch, ui.Dim("Scanning "+root))

	scanner := scan.NewScanner()
	matches := scanner.Find(root)

	purge.NewRunner(cmd.OutOrStdout(), cmd.ErrOrStderr()).SizeReport(matches)
	reportWarnings(cmd, scanner)
}
