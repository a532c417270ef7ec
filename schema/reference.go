package schema

import "sort"

// DefaultReferenceTable is the published NSGA-III baseline (normalized
// hypervolume over 30 runs) that computed aggregates are compared against.
// Hand-curated from the source article's figure; never derived from the
// records under evaluation. Values can be overridden, per size, through the
// config file's reference section.
var DefaultReferenceTable = ReferenceTable{
	250:  {Min: 0.016, Max: 0.129, Mean: 0.076},
	500:  {Min: 0.010, Max: 0.048, Mean: 0.028},
	750:  {Min: 0.008, Max: 0.034, Mean: 0.020},
	1000: {Min: 0.002, Max: 0.021, Mean: 0.014},
}

// Sizes returns the table's problem sizes in ascending order.
func (t ReferenceTable) Sizes() []int {
	sizes := make([]int, 0, len(t))
	for s := range t {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	return sizes
}

// Clone returns a copy of the table so callers can apply overrides without
// mutating the shared default.
func (t ReferenceTable) Clone() ReferenceTable {
	clone := make(ReferenceTable, len(t))
	for size, stats := range t {
		clone[size] = stats
	}
	return clone
}
