package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/partsim/internal/config"
	"github.com/joshuapare/partsim/internal/render"
)

func init() {
	rootCmd.AddCommand(newLayoutCmd())
}

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show the resolved partition layout",
		Long: `The layout command validates and prints the partition layout that the
other commands would use, along with where it came from.

Example:
  partsim layout
  PARTSIM_PARTITIONS=64,128 partsim layout --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout()
		},
	}
	return cmd
}

type layoutInfo struct {
	Source     config.Source `json:"source"`
	Partitions []int         `json:"partitions"`
	Capacity   int           `json:"capacity"`
}

func runLayout() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newAllocator(cfg)
	if err != nil {
		return err
	}

	info := layoutInfo{
		Source:     cfg.Source,
		Partitions: cfg.Partitions,
		Capacity:   a.Stats().Capacity,
	}
	if jsonOut {
		return printJSON(info)
	}

	printInfo("Layout (%s): %s\n", info.Source, config.FormatSizes(info.Partitions))
	printInfo("Capacity: %d\n", info.Capacity)
	printVerbose("%s\n", render.Report(a.Snapshot()))
	return nil
}
