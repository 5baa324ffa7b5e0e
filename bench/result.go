// Package bench times running-sum transforms over integer sequences and
// reports the average cost per element.
package bench

// Result holds the outcome of a benchmark run.
type Result struct {
	Strategy  Strategy  `json:"strategy"`
	Size      int       `json:"size"`
	Rounds    int       `json:"rounds"`
	Samples   []float64 `json:"samples_ns_per_element"`
	MeanNs    float64   `json:"mean_ns_per_element"`
	MinNs     float64   `json:"min_ns_per_element"`
	MaxNs     float64   `json:"max_ns_per_element"`
	ElapsedNs int64     `json:"elapsed_ns"`
}

// summarize fills the aggregate fields from Samples.
func (r *Result) summarize() {
	if len(r.Samples) == 0 {
		return
	}

	r.MinNs = r.Samples[0]
	r.MaxNs = r.Samples[0]

	var total float64
	for _, s := range r.Samples {
		total += s
		r.MinNs = min(r.MinNs, s)
		r.MaxNs = max(r.MaxNs, s)
	}

	r.MeanNs = total / float64(len(r.Samples))
}
