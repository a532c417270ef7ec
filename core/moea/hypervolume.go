package moea

import (
	"sort"

	"github.com/huangsam/pareval/schema"
)

// Hypervolume computes the 3-D hypervolume of a point set against the origin
// reference point. Points are minimization-space vectors with components in
// [-1, 0); the result is the volume of the union of the axis-aligned boxes
// spanned between each point and the origin, which for normalized fronts lies
// in [0, 1].
//
// Points with any component at or above zero span a degenerate box and are
// skipped. Dominated points and duplicates are harmless: a union does not
// double count, so the caller may pass either a raw population or its first
// front and get the same value.
//
// The algorithm is a dimension sweep. Working with magnitudes (a, b, c),
// points are sorted by descending a. Each consecutive pair of a-values bounds
// a slab; the slab's cross-section is the union of the (b, c) rectangles of
// every point at or above the slab, measured with a 2-D staircase scan.
func Hypervolume(points []schema.NormalizedPoint) float64 {
	mags := make([][3]float64, 0, len(points))
	for _, p := range points {
		a, b, c := -p[0], -p[1], -p[2]
		if a <= 0 || b <= 0 || c <= 0 {
			continue
		}
		mags = append(mags, [3]float64{a, b, c})
	}
	if len(mags) == 0 {
		return 0
	}

	sort.Slice(mags, func(i, j int) bool { return mags[i][0] > mags[j][0] })

	volume := 0.0
	rects := make([][2]float64, 0, len(mags))
	for k, m := range mags {
		rects = append(rects, [2]float64{m[1], m[2]})
		lower := 0.0
		if k+1 < len(mags) {
			lower = mags[k+1][0]
		}
		if height := m[0] - lower; height > 0 {
			volume += height * staircaseArea(rects)
		}
	}
	return volume
}

// staircaseArea measures the union of origin-anchored rectangles [0,b]x[0,c].
// Rectangles are scanned by descending b; the running maximum c is the union's
// height over each strip between consecutive b-values.
func staircaseArea(rects [][2]float64) float64 {
	sorted := make([][2]float64, len(rects))
	copy(sorted, rects)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][0] > sorted[j][0] })

	area := 0.0
	maxC := 0.0
	for i, r := range sorted {
		next := 0.0
		if i+1 < len(sorted) {
			next = sorted[i+1][0]
		}
		if r[1] > maxC {
			maxC = r[1]
		}
		area += (r[0] - next) * maxC
	}
	return area
}
