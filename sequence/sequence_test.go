package sequence

import (
	"slices"
	"testing"
)

func TestBuildLength(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "empty", n: 0, want: 0},
		{name: "single", n: 1, want: 1},
		{name: "small", n: 5, want: 5},
		{name: "default", n: DefaultSize, want: DefaultSize},
		{name: "negative", n: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := Build(tt.n)
			if len(seq) != tt.want {
				t.Fatalf("len = %d, want %d", len(seq), tt.want)
			}

			for i, v := range seq {
				if v != 1 {
					t.Fatalf("seq[%d] = %d, want 1", i, v)
				}
			}
		})
	}
}

func TestPrefixSumOfOnes(t *testing.T) {
	for _, n := range []int{1, 2, 3, 17, 1000, DefaultSize} {
		seq := Build(n)
		PrefixSum(seq)

		for i, v := range seq {
			if v != int64(i+1) {
				t.Fatalf("n=%d: seq[%d] = %d, want %d", n, i, v, i+1)
			}
		}
	}
}

func TestPrefixSumScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []int64
		want  []int64
	}{
		{name: "five ones", input: []int64{1, 1, 1, 1, 1}, want: []int64{1, 2, 3, 4, 5}},
		{name: "single", input: []int64{1}, want: []int64{1}},
		{name: "empty", input: []int64{}, want: []int64{}},
		{name: "mixed", input: []int64{3, -1, 4, -1, 5}, want: []int64{3, 2, 6, 5, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			PrefixSum(tt.input)
			if !slices.Equal(tt.input, tt.want) {
				t.Errorf("got %v, want %v", tt.input, tt.want)
			}
		})
	}
}

func TestPrefixSumTwiceGivesTriangularNumbers(t *testing.T) {
	seq := Build(100)
	PrefixSum(seq)
	PrefixSum(seq)

	for i, v := range seq {
		k := int64(i + 1)
		want := k * (k + 1) / 2
		if v != want {
			t.Fatalf("seq[%d] = %d, want %d", i, v, want)
		}
	}
}

func TestCumSumLeavesInputUnchanged(t *testing.T) {
	input := Build(5)
	got := CumSum(input)

	if !slices.Equal(got, []int64{1, 2, 3, 4, 5}) {
		t.Errorf("CumSum = %v, want [1 2 3 4 5]", got)
	}
	if !slices.Equal(input, []int64{1, 1, 1, 1, 1}) {
		t.Errorf("input modified: %v", input)
	}
}

func TestCumSumMatchesPrefixSum(t *testing.T) {
	input := []int64{7, 0, -2, 9, 9, 1}
	want := slices.Clone(input)
	PrefixSum(want)

	if got := CumSum(input); !slices.Equal(got, want) {
		t.Errorf("CumSum = %v, PrefixSum = %v", got, want)
	}
}

func BenchmarkPrefixSum(b *testing.B) {
	seq := Build(DefaultSize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PrefixSum(seq)
	}
}
