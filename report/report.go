// Package report formats benchmark results for the terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/weiihann/prefixbench/bench"
)

// Generate writes the per-element time as a single line. Runs of more than
// one round report the mean across rounds.
func Generate(w io.Writer, result *bench.Result) error {
	if result == nil || len(result.Samples) == 0 {
		return fmt.Errorf("no samples to report")
	}

	if len(result.Samples) == 1 {
		_, err := fmt.Fprintf(w, "Time spent per element: %v ns\n", result.Samples[0])

		return err
	}

	_, err := fmt.Fprintf(w, "Time spent per element (averaged): %v ns\n", result.MeanNs)

	return err
}

// GenerateJSON writes result as JSON to w.
func GenerateJSON(w io.Writer, result *bench.Result) error {
	if result == nil {
		return fmt.Errorf("no result to report")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(result)
}
