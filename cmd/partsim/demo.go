package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/partsim/internal/script"
)

// demoScript is the reference trace: three placements, a release, a reuse of
// the freed partition, and a request larger than any partition.
const demoScript = `allocate P1 90
allocate P2 140
allocate P3 180
release P2
allocate P4 100
allocate P5 350
report
total
`

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the reference allocation trace",
		Long: `The demo command runs the reference trace against the configured layout
(100,150,200,250,300 by default):

  allocate P1 90, allocate P2 140, allocate P3 180, release P2,
  allocate P4 100, allocate P5 350, report, total

Example:
  partsim demo
  partsim demo --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context())
		},
	}
	return cmd
}

func runDemo(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cmds, err := script.Parse(strings.NewReader(demoScript), script.Options{})
	if err != nil {
		return err
	}

	res, err := executeScript(ctx, cfg, "demo", cmds)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res.doc)
	}
	printInfo("%s", res.text)
	return nil
}
