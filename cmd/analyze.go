package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/nodemole/internal/analyze"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Browse node_modules folders interactively",
	Long: `Interactive browser for discovered node_modules folders.

Lists matches sorted by size with relative-size bars and disk capacity
context. Folders can be deleted one at a time with a two-key confirm
(backspace, then enter). Falls back to a static report when stdout is
not a terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyze.Run(pathArg(args))
	},
}
