package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/partsim/internal/logger"
	"github.com/joshuapare/partsim/internal/render"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>...",
		Short: "Run command scripts against fresh allocators",
		Long: `The run command executes one or more command scripts. Each script gets
its own allocator built from the configured layout, so scripts never share
state. Scripts run concurrently and their output is printed in argument order.

Use "-" to read a script from stdin.

Script commands:
  allocate <process> <size>   (aliases: alloc, a)
  release <process>           (aliases: free, r)
  report                      (aliases: show, memory)
  total                       (aliases: frag, fragmentation)
  stats

Example:
  partsim run trace.txt
  partsim run a.txt b.txt --partitions 64,128,256
  partsim run trace.txt --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd.Context(), args)
		},
	}
	return cmd
}

func runRun(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	stdinUses := 0
	for _, a := range args {
		if a == "-" {
			stdinUses++
		}
	}
	if stdinUses > 1 {
		return fmt.Errorf("stdin (-) may be given only once")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	results := make([]scriptResult, len(args))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range args {
		g.Go(func() error {
			logger.Debug("running script", "path", path)
			cmds, err := readScript(path, cfg.Encoding)
			if err != nil {
				return err
			}
			res, err := executeScript(gctx, cfg, path, cmds)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if jsonOut {
		if len(results) == 1 {
			return printJSON(results[0].doc)
		}
		docs := make([]render.RunDoc, len(results))
		for i, r := range results {
			docs[i] = r.doc
		}
		return printJSON(docs)
	}

	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				printInfo("\n")
			}
			printInfo("==> %s <==\n", r.name)
		}
		printInfo("%s", r.text)
		printVerbose("%d commands: %d succeeded, %d failed\n",
			r.summary.Commands, r.summary.Succeeded, r.summary.Failed)
	}
	return nil
}
