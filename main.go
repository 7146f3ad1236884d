package main

import (
	"fmt"
	"os"

	"github.com/lakshaymaurya-felt/nodemole/cmd"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// A run must never end with only a stack trace: anything unexpected is
	// reported as a single line and a failure exit status.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "fatal:", r)
			os.Exit(1)
		}
	}()

	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
