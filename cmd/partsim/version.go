package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printInfo("%s", versionText())
		},
	})
}

// versionText is shared by the version command and --version.
func versionText() string {
	return fmt.Sprintf("partsim %s\n  commit: %s\n  built: %s\n", version, commit, date)
}
