package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joshuapare/partsim/internal/config"
	"github.com/joshuapare/partsim/internal/logger"
	"github.com/joshuapare/partsim/internal/render"
	"github.com/joshuapare/partsim/internal/script"
	"github.com/joshuapare/partsim/internal/session"
)

// scriptResult is one finished script run, ready to print.
type scriptResult struct {
	name    string
	text    string
	doc     render.RunDoc
	summary session.Summary
}

// executeScript runs cmds on a fresh allocator built from cfg.
func executeScript(ctx context.Context, cfg config.Config, name string, cmds []script.Command) (scriptResult, error) {
	a, err := newAllocator(cfg)
	if err != nil {
		return scriptResult{}, err
	}
	sess := session.New(a, session.WithLogger(logger.L.With("script", name)))

	outcomes, err := sess.Run(ctx, cmds)
	if err != nil {
		return scriptResult{}, fmt.Errorf("%s: %w", name, err)
	}

	var sb strings.Builder
	for _, o := range outcomes {
		sb.WriteString(render.Outcome(o))
		sb.WriteByte('\n')
	}

	sum := session.Summarize(outcomes)
	logger.Info("script finished", "script", name,
		"commands", sum.Commands, "succeeded", sum.Succeeded, "failed", sum.Failed)

	return scriptResult{
		name:    name,
		text:    sb.String(),
		doc:     render.RunJSON(name, outcomes, a),
		summary: sum,
	}, nil
}

// readScript parses a script file, or stdin when path is "-".
func readScript(path string, enc string) ([]script.Command, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		r = f
	}

	cmds, err := script.Parse(r, script.Options{Encoding: enc})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cmds, nil
}
