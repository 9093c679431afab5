// Package script parses the partsim command language.
//
// A script is a sequence of lines, one command per line:
//
//	# reference trace
//	allocate P1 90
//	allocate P2 140
//	release P2
//	report
//	total
//
// Keywords are case-insensitive and have short aliases (alloc, a, free, r,
// show, frag). Blank lines, lines starting with '#' or ';', and trailing '#'
// comments are ignored.
package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a command.
type Kind uint8

const (
	KindAllocate Kind = iota + 1
	KindRelease
	KindReport
	KindTotal
	KindStats
)

var kindNames = map[Kind]string{
	KindAllocate: "allocate",
	KindRelease:  "release",
	KindReport:   "report",
	KindTotal:    "total",
	KindStats:    "stats",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// keywords maps every accepted spelling to its kind.
var keywords = map[string]Kind{
	"allocate":      KindAllocate,
	"alloc":         KindAllocate,
	"a":             KindAllocate,
	"release":       KindRelease,
	"free":          KindRelease,
	"r":             KindRelease,
	"report":        KindReport,
	"show":          KindReport,
	"memory":        KindReport,
	"total":         KindTotal,
	"frag":          KindTotal,
	"fragmentation": KindTotal,
	"stats":         KindStats,
}

// Command is one parsed operation.
type Command struct {
	Kind      Kind
	ProcessID string // allocate, release
	Size      int    // allocate
	Line      int    // 1-based source line, 0 when parsed standalone
}

// String renders the command in canonical form.
func (c Command) String() string {
	switch c.Kind {
	case KindAllocate:
		return fmt.Sprintf("allocate %s %d", c.ProcessID, c.Size)
	case KindRelease:
		return "release " + c.ProcessID
	default:
		return c.Kind.String()
	}
}

var (
	// ErrUnknownCommand indicates an unrecognized keyword.
	ErrUnknownCommand = errors.New("script: unknown command")

	// ErrArgCount indicates a wrong number of arguments.
	ErrArgCount = errors.New("script: wrong number of arguments")

	// ErrBadSize indicates a size argument that is not an integer.
	ErrBadSize = errors.New("script: size must be an integer")

	// ErrEmpty indicates a line with no command.
	ErrEmpty = errors.New("script: empty command")
)

// ParseError locates a syntax error in a script.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// stripComment removes comments and surrounding space.
func stripComment(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, AltCommentPrefix) {
		return ""
	}
	if i := strings.IndexByte(text, CommentPrefix); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

// ParseLine parses a single command. Comment-only and blank input yields ErrEmpty.
func ParseLine(text string) (Command, error) {
	fields := strings.Fields(stripComment(text))
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}

	kind, ok := keywords[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, fields[0])
	}
	args := fields[1:]

	switch kind {
	case KindAllocate:
		if len(args) != 2 {
			return Command{}, fmt.Errorf("%w: allocate takes <process> <size>", ErrArgCount)
		}
		size, err := strconv.Atoi(args[1])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q", ErrBadSize, args[1])
		}
		return Command{Kind: kind, ProcessID: args[0], Size: size}, nil

	case KindRelease:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%w: release takes <process>", ErrArgCount)
		}
		return Command{Kind: kind, ProcessID: args[0]}, nil

	default:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrArgCount, kind)
		}
		return Command{Kind: kind}, nil
	}
}
