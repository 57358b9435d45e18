// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/farthest/traversal"
)

// selectFlags mirrors Config for the flag set; only changed flags override
// the configuration file.
type selectFlags struct {
	config    string
	k         int
	p         float64
	threshold int
	mode      string
	start     int
	seed      int64
	workers   int
	inFormat  string
	header    bool
	format    string
	emit      string
	logLevel  string
	logFormat string
}

// NewRootCommand returns the farthest command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "farthest",
		Short: "Diverse subset selection by farthest-first traversal",
		Long: `farthest picks k rows of a numeric table that are spread out under a
Minkowski distance, using greedy farthest-first traversal.`,
		SilenceUsage: true,
	}
	root.AddCommand(newSelectCommand())

	return root
}

// Execute runs the command tree with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func newSelectCommand() *cobra.Command {
	f := &selectFlags{}
	cmd := &cobra.Command{
		Use:   "select <input|->",
		Short: "Select k mutually distant rows",
		Long: `Select k mutually distant rows from a CSV or JSON point file.

Examples:
  farthest select --k 10 points.csv
  farthest select --k 5 --mode edge --seed 7 --emit rows points.json
  cat points.csv | farthest select --k 3 --p 1 --format json -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}

			return runSelect(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], cfg)
		},
	}

	def := DefaultConfig()
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "YAML configuration file")
	fl.IntVar(&f.k, "k", 0, "number of rows to select")
	fl.Float64Var(&f.p, "p", def.P, "Minkowski order (>= 1, +Inf for Chebyshev)")
	fl.IntVar(&f.threshold, "threshold", def.Threshold, "N*N*M bound for the vectorized distance strategy")
	fl.StringVarP(&f.mode, "mode", "m", def.Mode.String(), "scoring mode: index, edge or coverage")
	fl.IntVar(&f.start, "start", 0, "start index (default: random)")
	fl.Int64Var(&f.seed, "seed", 0, "seed for the random start")
	fl.IntVarP(&f.workers, "workers", "w", def.Workers, "distance workers (<= 0: GOMAXPROCS)")
	fl.StringVar(&f.inFormat, "input-format", "", "input format: csv or json (default: by extension)")
	fl.BoolVar(&f.header, "header", false, "skip the first CSV record")
	fl.StringVarP(&f.format, "format", "f", def.Output.Format, "output format: csv or json")
	fl.StringVar(&f.emit, "emit", def.Output.Emit, "output: indices or rows")
	fl.StringVar(&f.logLevel, "log-level", def.Log.Level, "log level: debug, info, warn or error")
	fl.StringVar(&f.logFormat, "log-format", def.Log.Format, "log format: text or json")

	return cmd
}

// resolve loads the configuration file, if any, and applies changed flags.
func (f *selectFlags) resolve(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = LoadConfig(f.config); err != nil {
			return Config{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("k") {
		cfg.K = f.k
	}
	if changed("p") {
		cfg.P = f.p
	}
	if changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if changed("mode") {
		m, err := traversal.ParseMode(f.mode)
		if err != nil {
			return Config{}, err
		}
		cfg.Mode = m
	}
	if changed("start") {
		start := f.start
		cfg.Start = &start
	}
	if changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("input-format") {
		cfg.Input.Format = f.inFormat
	}
	if changed("header") {
		cfg.Input.Header = f.header
	}
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("emit") {
		cfg.Output.Emit = f.emit
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = f.logFormat
	}

	return cfg, cfg.Validate()
}

// runSelect reads the points, runs the traversal and writes the result.
func runSelect(stdin io.Reader, stdout, stderr io.Writer, input string, cfg Config) error {
	logger, err := NewLogger(stderr, cfg.Log)
	if err != nil {
		return err
	}

	format := cfg.Input.Format
	if format == "" {
		format = DetectFormat(input)
	}

	var r io.Reader = stdin
	if input != "-" {
		file, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		r = file
	}

	rows, err := ReadPoints(r, format, cfg.Input.Header)
	if err != nil {
		return err
	}
	logger.Info("points loaded", "input", input, "rows", len(rows), "format", format)

	res, err := traversal.FarthestFirstRows(rows, cfg.K, append(cfg.Options(), traversal.WithLogger(logger))...)
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}
	logger.Info("selection done", "k", res.Len(), "start", res.Start, "mode", res.Mode)

	if cfg.Output.Emit == EmitRows {
		return WriteRows(stdout, rows, res, cfg.Output.Format)
	}

	return WriteIndices(stdout, res, cfg.Output.Format)
}
