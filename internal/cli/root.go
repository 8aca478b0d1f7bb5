// Package cli implements the aoc2018 CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/aoc2018/internal/config"
	"github.com/rcliao/aoc2018/internal/day01"
	"github.com/rcliao/aoc2018/internal/day03"
	"github.com/rcliao/aoc2018/internal/day04"
	"github.com/rcliao/aoc2018/internal/puzzle"
	"github.com/rcliao/aoc2018/internal/store"
)

var (
	configPath string
	inputDir   string
	dbPath     string
	formatFlag string
	verbose    bool

	cfg    *config.Config
	logger = zap.NewNop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "aoc2018",
	Short: "Advent of Code 2018 solvers",
	Long:  "Solves Advent of Code 2018 puzzles. Each day reads dayNN.txt from the input directory and prints both answers.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $AOC_CONFIG or ~/.aoc2018/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&inputDir, "input-dir", "i", "", "Directory holding dayNN.txt inputs")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Answer history database")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: text, json or value")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging to stderr")
}

// setup resolves configuration (file, then env, then flags) and builds the
// logger.
func setup(cmd *cobra.Command) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	c, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		c.InputDir = inputDir
	}
	if flags.Changed("db") {
		c.HistoryDB = dbPath
	}
	if flags.Changed("format") {
		c.Format = formatFlag
	}
	if verbose {
		c.LogLevel = "debug"
	}
	if err := c.Validate(); err != nil {
		return err
	}

	l, err := newLogger(c.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	cfg, logger = c, l
	logger.Debug("config loaded",
		zap.String("path", path),
		zap.String("input_dir", c.InputDir),
		zap.String("format", c.Format))
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zc.Level = lvl
	return zc.Build()
}

func newRegistry() (*puzzle.Registry, error) {
	return puzzle.NewRegistry(
		day01.Solver{},
		day03.Solver{},
		day04.Solver{},
	)
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.HistoryDB)
}

func exitErr(msg string, err error) {
	logger.Debug(msg, zap.Error(err))
	_ = logger.Sync()
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
