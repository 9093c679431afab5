// Package session executes parsed commands against one allocator.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joshuapare/partsim/internal/script"
	"github.com/joshuapare/partsim/partition"
)

// Outcome is the structured result of one command. Exactly one payload field
// is set on success; Err is set on failure.
type Outcome struct {
	Command script.Command

	Placement *partition.Placement
	Release   *partition.Release
	Views     []partition.View
	Total     *int
	Stats     *partition.Stats

	Err error
}

// OK reports whether the command succeeded.
func (o Outcome) OK() bool { return o.Err == nil }

// Session binds an allocator to a command stream.
type Session struct {
	a   partition.Interface
	log *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for per-command events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Session over a.
func New(a partition.Interface, opts ...Option) *Session {
	s := &Session{a: a, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Allocator returns the allocator the session drives.
func (s *Session) Allocator() partition.Interface { return s.a }

// Exec runs a single command. Allocator rejections are recorded in the
// outcome and never panic.
func (s *Session) Exec(cmd script.Command) Outcome {
	out := Outcome{Command: cmd}

	switch cmd.Kind {
	case script.KindAllocate:
		p, err := s.a.Allocate(cmd.ProcessID, cmd.Size)
		if err != nil {
			out.Err = err
		} else {
			out.Placement = &p
		}
	case script.KindRelease:
		r, err := s.a.Release(cmd.ProcessID)
		if err != nil {
			out.Err = err
		} else {
			out.Release = &r
		}
	case script.KindReport:
		out.Views = s.a.Snapshot()
	case script.KindTotal:
		total := s.a.TotalInternalFragmentation()
		out.Total = &total
	case script.KindStats:
		st := s.a.Stats()
		out.Stats = &st
	default:
		out.Err = fmt.Errorf("%w: %s", script.ErrUnknownCommand, cmd.Kind)
	}

	if out.Err != nil {
		s.log.Info("command rejected", "line", cmd.Line, "command", cmd.String(), "error", out.Err)
	} else {
		s.log.Debug("command executed", "line", cmd.Line, "command", cmd.String())
	}
	return out
}

// Run executes cmds in order. It stops early only when ctx is cancelled, in
// which case the returned error is ctx.Err() and outcomes holds the commands
// that ran.
func (s *Session) Run(ctx context.Context, cmds []script.Command) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(cmds))
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, s.Exec(cmd))
	}
	return outcomes, nil
}

// Summary counts outcomes by result.
type Summary struct {
	Commands  int `json:"commands"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Summarize tallies outcomes.
func Summarize(outcomes []Outcome) Summary {
	sum := Summary{Commands: len(outcomes)}
	for _, o := range outcomes {
		if o.OK() {
			sum.Succeeded++
		} else {
			sum.Failed++
		}
	}
	return sum
}
