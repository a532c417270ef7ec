package schema

// Custom string types for type safety.
type (
	// Selection represents the selection operator used by an optimizer run.
	Selection string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for result tracking.
	DatabaseBackend string
)

// MaxProfitPerItem is the upper bound of a single item's profit in the
// benchmark instances. The theoretical per-objective maximum for a run is
// Size * MaxProfitPerItem, which is the normalization denominator.
const MaxProfitPerItem = 100.0

// NumObjectives is fixed: the evaluation pipeline is specialized to three
// profit objectives.
const NumObjectives = 3

// All selection operators supported.
const (
	RouletteSelection   Selection = "roulette"
	TournamentSelection Selection = "tournament"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All result store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllSelections lists the selection operators in canonical reporting order.
// Output rows are sorted by ascending size first, then by this order.
var AllSelections = []Selection{RouletteSelection, TournamentSelection}

// ValidSelections lists all valid selection operators.
var ValidSelections = map[Selection]struct{}{
	RouletteSelection:   {},
	TournamentSelection: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid result store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// selectionAliases maps legacy labels from the original Portuguese data sets
// to their canonical selection operators.
var selectionAliases = map[string]Selection{
	"roleta":  RouletteSelection,
	"torneio": TournamentSelection,
}

// CanonicalSelection resolves a label, canonical or aliased, to its selection
// operator. Matching is case-insensitive on the caller's side; labels passed
// here are expected to be lowercase already.
func CanonicalSelection(label string) (Selection, bool) {
	s := Selection(label)
	if _, ok := ValidSelections[s]; ok {
		return s, true
	}
	if alias, ok := selectionAliases[label]; ok {
		return alias, true
	}
	return "", false
}

// selectionRank maps each selection to its position in AllSelections.
var selectionRank = map[Selection]int{
	RouletteSelection:   0,
	TournamentSelection: 1,
}

// SelectionRank returns the canonical sort rank of a selection operator.
// Unknown selections sort after the known ones, alphabetically by label.
func SelectionRank(s Selection) int {
	if r, ok := selectionRank[s]; ok {
		return r
	}
	return len(selectionRank)
}

// Less orders group keys by ascending size, then canonical selection order.
// This is the stable ordering contract for all reporting output.
func (k GroupKey) Less(other GroupKey) bool {
	if k.Size != other.Size {
		return k.Size < other.Size
	}
	ra, rb := SelectionRank(k.Selection), SelectionRank(other.Selection)
	if ra != rb {
		return ra < rb
	}
	return k.Selection < other.Selection
}

// Less orders run keys by group order first, then by run index.
func (k RunKey) Less(other RunKey) bool {
	if k.Group() != other.Group() {
		return k.Group().Less(other.Group())
	}
	return k.Run < other.Run
}
