// Package config resolves the partition layout and run settings.
package config

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joshuapare/partsim/internal/logger"
)

// EnvPartitions names the environment variable holding a comma-separated layout.
const EnvPartitions = "PARTSIM_PARTITIONS"

// DefaultPartitions is the layout used when nothing else is configured.
var DefaultPartitions = []int{100, 150, 200, 250, 300}

// Source records where the layout came from.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceFile    Source = "file"
	SourceEnv     Source = "env"
	SourceDefault Source = "default"
)

// Config holds everything a simulation run needs.
type Config struct {
	Partitions      []int
	Source          Source
	AllowDuplicates bool
	Encoding        string
	LogLevel        string
	LogFormat       string
}

// LoggerOptions derives the logger setup. Logging is enabled by verbose
// (at debug level) or by an explicit LogLevel, which wins over verbose.
func (c Config) LoggerOptions(verbose bool) (logger.Options, error) {
	opts := logger.Options{
		Enabled: verbose || c.LogLevel != "",
		Format:  c.LogFormat,
		Level:   slog.LevelInfo,
	}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if c.LogLevel != "" {
		lvl, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return logger.Options{}, err
		}
		opts.Level = lvl
	}
	return opts, nil
}

// Inputs are the raw settings gathered by the CLI.
type Inputs struct {
	Partitions string // --partitions value, "" if unset
	LayoutFile string // --layout path, "" if unset
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// ResolveLayout picks the layout: flag, then layout file, then environment,
// then DefaultPartitions.
func ResolveLayout(in Inputs) ([]int, Source, error) {
	getenv := in.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	if strings.TrimSpace(in.Partitions) != "" {
		sizes, err := ParseSizes(strings.NewReader(in.Partitions))
		if err != nil {
			return nil, "", fmt.Errorf("--partitions: %w", err)
		}
		return sizes, SourceFlag, nil
	}

	if in.LayoutFile != "" {
		sizes, err := LoadLayoutFile(in.LayoutFile)
		if err != nil {
			return nil, "", err
		}
		return sizes, SourceFile, nil
	}

	if v := getenv(EnvPartitions); strings.TrimSpace(v) != "" {
		sizes, err := ParseSizes(strings.NewReader(v))
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", EnvPartitions, err)
		}
		return sizes, SourceEnv, nil
	}

	return append([]int(nil), DefaultPartitions...), SourceDefault, nil
}

// LoadLayoutFile reads a layout file.
func LoadLayoutFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout: %w", err)
	}
	defer f.Close()

	sizes, err := ParseSizes(f)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return sizes, nil
}

// ParseSizes reads integers separated by commas, whitespace or newlines.
// Text after '#' on a line is ignored. Positivity is left to the allocator.
func ParseSizes(r io.Reader) ([]int, error) {
	var sizes []int
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid size %q", line, f)
			}
			sizes = append(sizes, n)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading sizes: %w", err)
	}
	return sizes, nil
}

// FormatSizes renders sizes in the form ParseSizes accepts.
func FormatSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}
