package schema

import "errors"

// Error taxonomy for the evaluation pipeline. Callers are expected to test
// with errors.Is; all pipeline errors wrap exactly one of these sentinels.
var (
	// ErrInvalidRecord marks a record that violates the input contract:
	// non-positive size, negative objective, or an objective above the
	// theoretical maximum. Such records are rejected, never clamped.
	ErrInvalidRecord = errors.New("invalid objective record")

	// ErrEmptyRunGroup marks a run key with no records. A run that produced
	// no output points is a data-integrity failure, not a zero-hypervolume
	// result.
	ErrEmptyRunGroup = errors.New("empty run group")

	// ErrMissingReference marks a computed aggregate whose size has no row
	// in the reference table. The baseline is a fixed external input and is
	// never guessed.
	ErrMissingReference = errors.New("missing reference data")

	// ErrMissingSelection marks a selection operator that was requested but
	// absent from the input data. Substituting another operator's data would
	// corrupt the comparison, so this is a hard error.
	ErrMissingSelection = errors.New("selection missing from input data")
)
