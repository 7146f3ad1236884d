package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/nodemole/internal/scan"
	"github.com/lakshaymaurya-felt/nodemole/internal/ui"
)

var (
	// Global flags
	debug bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "nodemole [action] [path]",
	Short: "Find and clean node_modules folders",
	Long: `NodeMole - find and clean node_modules folders.

Recursively scans a directory tree for folders named node_modules and
reports their disk usage (size), counts them and their subfolders
(count), or removes them (delete).

Invoked without an action, nodemole runs the destructive delete action
on the current directory. There is no confirmation prompt and no
dry-run; run 'nodemole size' first when in doubt.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Known actions are resolved as subcommands before this runs, so
		// any remaining token is an unrecognized action.
		if len(args) > 0 {
			return fmt.Errorf("unknown action %q (valid actions: size, count, delete)", args[0])
		}
		runDelete(cmd, ".")
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show scan warnings on stderr")

	// Register all subcommands
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

// pathArg returns the optional path argument, defaulting to the current
// working directory.
func pathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// reportWarnings prints accumulated scan warnings to stderr when --debug is set.
func reportWarnings(cmd *cobra.Command, s *scan.Scanner) {
	if !debug {
		return
	}
	for _, w := range s.Warnings() {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn("warning: "+w))
	}
}
