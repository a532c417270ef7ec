package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGroupKeyLess verifies the stable reporting order: size first, then
// canonical selection order.
func TestGroupKeyLess(t *testing.T) {
	ordered := []GroupKey{
		{Size: 250, Selection: RouletteSelection},
		{Size: 250, Selection: TournamentSelection},
		{Size: 500, Selection: RouletteSelection},
		{Size: 500, Selection: TournamentSelection},
		{Size: 1000, Selection: RouletteSelection},
	}
	for i := 0; i < len(ordered)-1; i++ {
		assert.True(t, ordered[i].Less(ordered[i+1]), "%v should sort before %v", ordered[i], ordered[i+1])
		assert.False(t, ordered[i+1].Less(ordered[i]))
	}
}

// TestRunKeyLess verifies run ordering within and across groups.
func TestRunKeyLess(t *testing.T) {
	a := RunKey{Size: 250, Selection: RouletteSelection, Run: 2}
	b := RunKey{Size: 250, Selection: RouletteSelection, Run: 10}
	c := RunKey{Size: 250, Selection: TournamentSelection, Run: 1}

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(a))
}

// TestSelectionRank ensures unknown selections sort after known ones.
func TestSelectionRank(t *testing.T) {
	assert.Equal(t, 0, SelectionRank(RouletteSelection))
	assert.Equal(t, 1, SelectionRank(TournamentSelection))
	assert.Equal(t, 2, SelectionRank(Selection("elitist")))
}

// TestDefaultReferenceTable sanity-checks the curated baseline.
func TestDefaultReferenceTable(t *testing.T) {
	assert.Equal(t, []int{250, 500, 750, 1000}, DefaultReferenceTable.Sizes())

	for size, stats := range DefaultReferenceTable {
		assert.LessOrEqual(t, stats.Min, stats.Mean, "size %d", size)
		assert.LessOrEqual(t, stats.Mean, stats.Max, "size %d", size)
		assert.Greater(t, stats.Min, 0.0, "size %d", size)
	}
}

// TestReferenceTableClone verifies overrides do not leak into the default.
func TestReferenceTableClone(t *testing.T) {
	clone := DefaultReferenceTable.Clone()
	clone[250] = ReferenceStats{Min: 0.5, Max: 0.9, Mean: 0.7}
	clone[999] = ReferenceStats{Min: 0.1, Max: 0.2, Mean: 0.15}

	assert.Equal(t, 0.016, DefaultReferenceTable[250].Min)
	_, ok := DefaultReferenceTable[999]
	assert.False(t, ok)
}

// TestComparisonRowMeanDelta checks the sign convention of the delta.
func TestComparisonRowMeanDelta(t *testing.T) {
	row := ComparisonRow{
		Computed:  GroupStats{Mean: 0.08},
		Reference: ReferenceStats{Mean: 0.076},
	}
	assert.InDelta(t, 0.004, row.MeanDelta(), 1e-12)
}
