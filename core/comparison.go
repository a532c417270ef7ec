package core

import (
	"fmt"

	"github.com/huangsam/pareval/schema"
)

// CompareWithReference pairs each computed condition with the published
// baseline row for its size. A size with no baseline row fails the whole
// comparison; the reference table is a fixed external input, so a missing
// row means the evaluation was configured wrong, not that the baseline is
// zero. Rows keep the canonical ordering of the input stats.
func CompareWithReference(stats []schema.GroupStats, table schema.ReferenceTable) ([]schema.ComparisonRow, error) {
	rows := make([]schema.ComparisonRow, 0, len(stats))
	for _, gs := range stats {
		ref, ok := table[gs.Key.Size]
		if !ok {
			return nil, fmt.Errorf("%w: size %d", schema.ErrMissingReference, gs.Key.Size)
		}
		rows = append(rows, schema.ComparisonRow{
			Key:       gs.Key,
			Computed:  gs,
			Reference: ref,
		})
	}
	return rows, nil
}
