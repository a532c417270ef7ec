// Package moea has the numerical primitives of the evaluation pipeline:
// objective normalization, first-front Pareto filtering and the 3-D
// hypervolume indicator.
package moea

import (
	"fmt"

	"github.com/huangsam/pareval/schema"
)

// Normalize rescales a raw objective vector into the unit minimization space.
// Each component is divided by the theoretical maximum for the problem size
// (size * MaxProfitPerItem) and then sign-inverted, so a valid point has all
// components in [-1, 0]. Validation is strict: out-of-contract input is
// rejected with schema.ErrInvalidRecord, never clamped.
func Normalize(objectives [schema.NumObjectives]float64, size int) (schema.NormalizedPoint, error) {
	var point schema.NormalizedPoint
	if size <= 0 {
		return point, fmt.Errorf("%w: non-positive size %d", schema.ErrInvalidRecord, size)
	}
	limit := float64(size) * schema.MaxProfitPerItem
	for i, obj := range objectives {
		if obj < 0 {
			return point, fmt.Errorf("%w: negative objective %d (%g)", schema.ErrInvalidRecord, i+1, obj)
		}
		if obj > limit {
			return point, fmt.Errorf("%w: objective %d (%g) above maximum %g for size %d",
				schema.ErrInvalidRecord, i+1, obj, limit, size)
		}
		point[i] = -obj / limit
	}
	return point, nil
}

// NormalizeRecords normalizes a whole run group. The first invalid record
// fails the group; the returned error names the offending run so the caller
// can report it without scoring.
func NormalizeRecords(records []schema.ObjectiveRecord) ([]schema.NormalizedPoint, error) {
	points := make([]schema.NormalizedPoint, 0, len(records))
	for _, rec := range records {
		point, err := Normalize(rec.Objectives, rec.Size)
		if err != nil {
			return nil, fmt.Errorf("run %d (size %d, %s): %w", rec.Run, rec.Size, rec.Selection, err)
		}
		points = append(points, point)
	}
	return points, nil
}
