package cmdargs

import (
	"github.com/cardinalby/go-console-args/stdutil"
)

// StripUnknownFlags splits the store into named arguments with known names (and all
// unnamed arguments) and named arguments whose names are not in knownFlags.
// Names are compared without leading dashes
func (s *Store) StripUnknownFlags(
	knownFlags stdutil.FormalTagNames,
) (res, stripped *Store) {
	res = New()
	res.script = s.script
	stripped = New()
	stripped.script = s.script

	for entry := range s.Entries() {
		if f, isFlag := entry.(FlagEntry); isFlag && !knownFlags.Has(f.Name()) {
			stripped.appendEntry(entry)
		} else {
			res.appendEntry(entry)
		}
	}
	return res, stripped
}
