package bench

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"

	"github.com/weiihann/prefixbench/sequence"
)

// Strategy names the transform applied inside the timed region.
type Strategy string

const (
	// InPlace runs the prefix sum over the sequence itself.
	InPlace Strategy = "in-place"
	// Copy writes the running sum into a newly allocated sequence.
	Copy Strategy = "copy"
)

// ErrUnknownStrategy is returned for a strategy name that is not supported.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategies returns the supported strategy names.
func Strategies() []Strategy {
	return []Strategy{InPlace, Copy}
}

// Config controls a benchmark run.
type Config struct {
	Size     int      `env:"PREFIXBENCH_SIZE"`
	Rounds   int      `env:"PREFIXBENCH_ROUNDS"`
	Strategy Strategy `env:"PREFIXBENCH_STRATEGY"`
}

// DefaultConfig returns a single in-place round over the default size.
func DefaultConfig() Config {
	return Config{
		Size:     sequence.DefaultSize,
		Rounds:   1,
		Strategy: InPlace,
	}
}

// LoadConfig returns DefaultConfig with any PREFIXBENCH_* environment
// variables applied on top. A variable that does not parse is an error.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	err := envdecode.StrictDecode(&cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, fmt.Errorf("decode environment: %w", err)
	}

	return cfg, nil
}

// Validate reports whether the configuration can be run.
func (c Config) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("size must not be negative, got %d", c.Size)
	}

	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", c.Rounds)
	}

	if _, err := c.Strategy.transform(); err != nil {
		return err
	}

	return nil
}

// Transform mutates or consumes a sequence inside the timed region.
type Transform func(seq []int64)
