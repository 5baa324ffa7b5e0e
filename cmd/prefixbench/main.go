// Package main provides the CLI entry point for prefixbench, which times an
// in-place prefix sum over a sequence of ones and prints the average cost
// per element.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/weiihann/prefixbench/bench"
	"github.com/weiihann/prefixbench/report"
)

func main() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	defaults, err := bench.LoadConfig()
	if err != nil {
		logger.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	root := newRootCmd(logger, level, defaults)
	if err := root.Execute(); err != nil {
		logger.Error("benchmark failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(
	logger *slog.Logger,
	level *slog.LevelVar,
	defaults bench.Config,
) *cobra.Command {
	var (
		size       int
		rounds     int
		strategy   string
		outputJSON bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "prefixbench",
		Short: "Time a prefix sum over a sequence of integers",
		Long: `Prefixbench fills a sequence with ones, computes its running sum in
place, and prints the time spent per element in nanoseconds. Only the
summation is timed.

Defaults can be set with PREFIXBENCH_SIZE, PREFIXBENCH_ROUNDS and
PREFIXBENCH_STRATEGY; flags take precedence.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				level.Set(slog.LevelDebug)
			}

			return runBenchmark(cmd.Context(), cmd, logger, runConfig{
				bench: bench.Config{
					Size:     size,
					Rounds:   rounds,
					Strategy: bench.Strategy(strategy),
				},
				outputJSON: outputJSON,
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&size, "size", defaults.Size,
		"Number of elements in the sequence")
	flags.IntVar(&rounds, "rounds", defaults.Rounds,
		"Number of timed rounds; more than one reports the mean")
	flags.StringVar(&strategy, "strategy", string(defaults.Strategy),
		fmt.Sprintf("Summation strategy: %s, %s", bench.InPlace, bench.Copy))
	flags.BoolVar(&outputJSON, "json", false,
		"Output the full result as JSON instead of a single line")
	flags.BoolVarP(&verbose, "verbose", "v", false,
		"Log progress to stderr")

	return cmd
}

type runConfig struct {
	bench      bench.Config
	outputJSON bool
}

func runBenchmark(
	ctx context.Context,
	cmd *cobra.Command,
	logger *slog.Logger,
	cfg runConfig,
) error {
	runner := bench.NewRunner(cfg.bench, bench.SystemClock{}, logger)

	result, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	out := cmd.OutOrStdout()

	if cfg.outputJSON {
		if err := report.GenerateJSON(out, result); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}

		return nil
	}

	if err := report.Generate(out, result); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}

	return nil
}
