package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/partsim/internal/logger"
	"github.com/joshuapare/partsim/internal/render"
	"github.com/joshuapare/partsim/internal/script"
	"github.com/joshuapare/partsim/internal/session"
	"github.com/joshuapare/partsim/internal/term"
)

const shellPrompt = "partsim> "

const shellHelp = `Commands:
  allocate <process> <size>   place a process (first fit)
  release <process>           free the partition held by a process
  report                      show every partition
  total                       show total internal fragmentation
  stats                       show aggregate counters
  help                        show this help
  quit                        leave the shell
`

func init() {
	rootCmd.AddCommand(newShellCmd())
}

func newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive command shell",
		Long: `The shell command reads commands from stdin one line at a time and runs
them against a single allocator. A prompt is shown when stdin is a terminal.

Example:
  partsim shell
  printf 'allocate P1 90\nreport\n' | partsim shell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(os.Stdin, term.IsTerminalFile(os.Stdin))
		},
	}
	return cmd
}

func runShell(in io.Reader, interactive bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newAllocator(cfg)
	if err != nil {
		return err
	}
	sess := session.New(a, session.WithLogger(logger.L))
	styled := interactive && !noColor

	if interactive {
		printInfo("partsim shell (%d partitions). Type 'help' for commands.\n", a.Len())
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			printInfo("%s", shellPrompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "quit", "exit":
			return nil
		case "help", "?":
			printInfo("%s", shellHelp)
			continue
		}

		cmd, err := script.ParseLine(line)
		if errors.Is(err, script.ErrEmpty) {
			continue
		}
		if err != nil {
			printError("%v\n", err)
			continue
		}

		o := sess.Exec(cmd)
		if jsonOut {
			if err := printJSON(render.OutcomeJSON(o)); err != nil {
				return err
			}
			continue
		}
		if o.Views != nil && styled {
			printInfo("%s\n", render.Table(o.Views, a.Stats(), render.Style{Color: true}))
			continue
		}
		printInfo("%s\n", render.Outcome(o))
	}
	return scanner.Err()
}
