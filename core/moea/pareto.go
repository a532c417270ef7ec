package moea

import "github.com/huangsam/pareval/schema"

// FirstFront returns the non-dominated subset of points under the
// minimization convention, preserving input order. Exact duplicates do not
// dominate each other, so every copy of a non-dominated point survives.
// The quadratic scan is deliberate: fronts here are final populations of a
// few hundred points at most, and the simple form is easy to audit.
func FirstFront(points []schema.NormalizedPoint) []schema.NormalizedPoint {
	front := make([]schema.NormalizedPoint, 0, len(points))
	for i, candidate := range points {
		dominated := false
		for j, other := range points {
			if i == j {
				continue
			}
			if dominates(other, candidate) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, candidate)
		}
	}
	return front
}

// dominates reports whether a dominates b: a is no worse in every component
// and strictly better in at least one. Equal points never dominate.
func dominates(a, b schema.NormalizedPoint) bool {
	strict := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strict = true
		}
	}
	return strict
}
