package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/weiihann/prefixbench/sequence"
)

// sink keeps the output of Copy reachable.
var sink []int64

func (s Strategy) transform() (Transform, error) {
	switch s {
	case InPlace:
		return sequence.PrefixSum, nil
	case Copy:
		return func(seq []int64) { sink = sequence.CumSum(seq) }, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownStrategy, string(s))
	}
}

// Measure applies transform to seq between two clock readings and returns
// the elapsed time divided by the number of elements, in nanoseconds.
// Only the transform is timed. An empty sequence measures as 0, and a
// clock that runs backwards is clamped to 0. A nil clock uses SystemClock.
func Measure(clock Clock, seq []int64, transform Transform) float64 {
	if clock == nil {
		clock = SystemClock{}
	}

	perElement, _ := measure(clock, seq, transform)

	return perElement
}

func measure(clock Clock, seq []int64, transform Transform) (float64, time.Duration) {
	tik := clock.Now()
	transform(seq)
	tok := clock.Now()

	elapsed := max(tok.Sub(tik), 0)
	if len(seq) == 0 {
		return 0, elapsed
	}

	return float64(elapsed.Nanoseconds()) / float64(len(seq)), elapsed
}

// Runner executes the configured number of measurement rounds.
type Runner struct {
	Config Config
	Clock  Clock
	Logger *slog.Logger
}

// NewRunner creates a Runner. A nil clock uses SystemClock.
func NewRunner(cfg Config, clock Clock, logger *slog.Logger) *Runner {
	if clock == nil {
		clock = SystemClock{}
	}

	return &Runner{
		Config: cfg,
		Clock:  clock,
		Logger: logger.With(slog.String("strategy", string(cfg.Strategy))),
	}
}

// Run measures every round and returns the collected samples. Each round
// times a freshly built sequence; building it is not part of the
// measurement.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	transform, err := r.Config.Strategy.transform()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Strategy: r.Config.Strategy,
		Size:     r.Config.Size,
		Rounds:   r.Config.Rounds,
		Samples:  make([]float64, 0, r.Config.Rounds),
	}

	r.Logger.InfoContext(ctx, "starting benchmark",
		slog.Int("size", r.Config.Size),
		slog.Int("rounds", r.Config.Rounds),
	)

	var total time.Duration

	for round := 0; round < r.Config.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}

		seq := sequence.Build(r.Config.Size)

		perElement, elapsed := measure(r.Clock, seq, transform)
		total += elapsed
		result.Samples = append(result.Samples, perElement)

		r.Logger.DebugContext(ctx, "round finished",
			slog.Int("round", round),
			slog.Duration("elapsed", elapsed),
		)
	}

	result.ElapsedNs = total.Nanoseconds()
	result.summarize()

	r.Logger.InfoContext(ctx, "benchmark finished",
		slog.Duration("elapsed", total),
		slog.Float64("mean_ns_per_element", result.MeanNs),
	)

	return result, nil
}
