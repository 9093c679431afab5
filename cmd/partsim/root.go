package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/partsim/internal/config"
	"github.com/joshuapare/partsim/internal/logger"
	"github.com/joshuapare/partsim/partition"
)

var (
	// Global flags
	verbose         bool
	quiet           bool
	jsonOut         bool
	noColor         bool
	partitionsFlag  string
	layoutFile      string
	allowDuplicates bool
	logLevel        string
	logFormat       string
	encoding        string
)

var rootCmd = &cobra.Command{
	Use:   "partsim",
	Short: "Simulate fixed-partition memory allocation",
	Long: `partsim simulates a fixed set of memory partitions into which named
processes are placed with a first-fit policy. It reports the state of every
partition and the internal fragmentation left inside occupied partitions.

The partition layout comes from --partitions, a --layout file, the
PARTSIM_PARTITIONS environment variable, or the default 100,150,200,250,300.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return initLogging() },
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVarP(&partitionsFlag, "partitions", "p", "", "Comma-separated partition sizes")
	rootCmd.PersistentFlags().
		StringVar(&layoutFile, "layout", "", "File listing partition sizes")
	rootCmd.PersistentFlags().BoolVar(&allowDuplicates, "allow-duplicates", false,
		"Let one process occupy several partitions (release frees the first)")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (enables logging)")
	rootCmd.PersistentFlags().
		StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().
		StringVar(&encoding, "encoding", "utf-8", "Script encoding when no BOM is present: utf-8, latin1, windows-1252")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogging enables logging when --verbose or --log-level is set.
func initLogging() error {
	opts, err := flagConfig().LoggerOptions(verbose)
	if err != nil {
		return err
	}
	return logger.Init(opts)
}

// flagConfig collects the settings that come straight from global flags.
func flagConfig() config.Config {
	return config.Config{
		AllowDuplicates: allowDuplicates,
		Encoding:        encoding,
		LogLevel:        logLevel,
		LogFormat:       logFormat,
	}
}

// loadConfig gathers the run settings from global flags and the environment.
func loadConfig() (config.Config, error) {
	sizes, src, err := config.ResolveLayout(config.Inputs{
		Partitions: partitionsFlag,
		LayoutFile: layoutFile,
	})
	if err != nil {
		return config.Config{}, err
	}
	cfg := flagConfig()
	cfg.Partitions = sizes
	cfg.Source = src
	return cfg, nil
}

// newAllocator builds a fresh allocator from cfg.
func newAllocator(cfg config.Config) (*partition.Allocator, error) {
	opts := []partition.Option{partition.WithLogger(logger.L)}
	if cfg.AllowDuplicates {
		opts = append(opts, partition.AllowDuplicates())
	}
	a, err := partition.New(cfg.Partitions, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s layout: %w", cfg.Source, err)
	}
	logger.Debug("allocator ready", "source", cfg.Source, "partitions", config.FormatSizes(cfg.Partitions))
	return a, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
