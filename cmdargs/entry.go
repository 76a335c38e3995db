package cmdargs

type EntryKind int

const (
	EntryKindFlag EntryKind = iota
	EntryKindUnnamed
	EntryKindScript
	EntryKindGroup
)

// Entry is a typed view of an argument (or of the script path) used for
// iterating and rewriting a Store
type Entry interface {
	// String renders the entry the way it should be written in a command line string
	String() string
	// TokenStrings returns the entry as argv tokens (no quoting)
	TokenStrings() []string
	Kind() EntryKind
}
