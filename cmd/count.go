package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/nodemole/internal/purge"
	"github.com/lakshaymaurya-felt/nodemole/internal/scan"
	"github.com/lakshaymaurya-felt/nodemole/internal/ui"
)

var countCmd = &cobra.Command{
	Use:   "count [path]",
	Short: "Count node_modules folders and their subfolders",
	Long:  "Scan for node_modules folders and report how many were found, with each one's immediate subfolder count.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCount(cmd, pathArg(args))
	},
}

func runCount(cmd *cobra.Command, root string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconSearch, ui.Dim("Scanning "+root))

	scanner := scan.NewScanner()
	matches := scanner.Find(root)

	purge.NewRunner(cmd.OutOrStdout(), cmd.ErrOrStderr()).CountReport(matches)
	reportWarnings(cmd, scanner)
}
