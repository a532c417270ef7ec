package moea

import (
	"math/rand"
	"testing"

	"github.com/huangsam/pareval/schema"
	"github.com/stretchr/testify/assert"
)

func TestHypervolume(t *testing.T) {
	testCases := []struct {
		name   string
		points []schema.NormalizedPoint
		want   float64
	}{
		{
			name:   "empty set",
			points: nil,
			want:   0,
		},
		{
			name:   "unit point fills the cube",
			points: []schema.NormalizedPoint{{-1, -1, -1}},
			want:   1,
		},
		{
			name:   "single box",
			points: []schema.NormalizedPoint{{-0.5, -0.4, -0.2}},
			want:   0.04,
		},
		{
			name: "two overlapping boxes",
			points: []schema.NormalizedPoint{
				{-1, -1, -0.5},
				{-0.5, -0.5, -1},
			},
			want: 0.625,
		},
		{
			name: "duplicate does not double count",
			points: []schema.NormalizedPoint{
				{-0.5, -0.4, -0.2},
				{-0.5, -0.4, -0.2},
			},
			want: 0.04,
		},
		{
			name: "degenerate component contributes nothing",
			points: []schema.NormalizedPoint{
				{-0.5, 0, -0.5},
				{-0.2, -0.2, -0.2},
			},
			want: 0.008,
		},
		{
			name: "normalized knapsack fronts",
			points: []schema.NormalizedPoint{
				{-0.004, -0.002, -0.001},
				{-0.002, -0.004, -0.001},
				{-0.001, -0.001, -0.008},
			},
			want: 1.9e-8,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Hypervolume(tc.points), 1e-12)
		})
	}
}

// TestHypervolumeDominatedInvariant verifies that filtering to the first
// front never changes the volume: dominated points add nothing to the union.
func TestHypervolumeDominatedInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		points := make([]schema.NormalizedPoint, 0, 50)
		for i := 0; i < 50; i++ {
			points = append(points, schema.NormalizedPoint{
				-rng.Float64(), -rng.Float64(), -rng.Float64(),
			})
		}
		full := Hypervolume(points)
		front := Hypervolume(FirstFront(points))
		assert.InDelta(t, full, front, 1e-12)
	}
}

// TestHypervolumeMonotone verifies that adding a point never shrinks the
// volume.
func TestHypervolumeMonotone(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points := []schema.NormalizedPoint{}
	prev := 0.0
	for i := 0; i < 40; i++ {
		points = append(points, schema.NormalizedPoint{
			-rng.Float64(), -rng.Float64(), -rng.Float64(),
		})
		hv := Hypervolume(points)
		assert.GreaterOrEqual(t, hv+1e-12, prev)
		prev = hv
	}
}

// TestHypervolumePermutationInvariant verifies that input order is
// irrelevant.
func TestHypervolumePermutationInvariant(t *testing.T) {
	points := []schema.NormalizedPoint{
		{-0.9, -0.1, -0.3},
		{-0.3, -0.8, -0.2},
		{-0.1, -0.4, -0.9},
		{-0.5, -0.5, -0.5},
	}
	want := Hypervolume(points)

	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 10; trial++ {
		shuffled := make([]schema.NormalizedPoint, len(points))
		copy(shuffled, points)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assert.InDelta(t, want, Hypervolume(shuffled), 1e-12)
	}
}

// TestHypervolumeBounded verifies the normalized range contract.
func TestHypervolumeBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	for trial := 0; trial < 20; trial++ {
		points := make([]schema.NormalizedPoint, 0, 100)
		for i := 0; i < 100; i++ {
			points = append(points, schema.NormalizedPoint{
				-rng.Float64(), -rng.Float64(), -rng.Float64(),
			})
		}
		hv := Hypervolume(points)
		assert.GreaterOrEqual(t, hv, 0.0)
		assert.LessOrEqual(t, hv, 1.0)
	}
}
