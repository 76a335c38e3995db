package cmdargs

import (
	"iter"
	"slices"
)

// All yields (position, value) pairs of all arguments in order
func (s *Store) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range s.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Named yields (name, value) pairs of named arguments in the order the names were bound
func (s *Store) Named() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		// names can be rebound by the caller while iterating
		for _, name := range slices.Clone(s.names) {
			position, ok := s.nameToPos[name]
			if !ok {
				continue
			}
			if !yield(name, s.values[position]) {
				return
			}
		}
	}
}

// CommandPath yields the leading unnamed arguments (see CommandNameCount) as
// Value.String() does, so a flag value is "true"
func (s *Store) CommandPath() iter.Seq[string] {
	return func(yield func(string) bool) {
		n := s.CommandNameCount()
		for _, v := range s.values[:n] {
			if !yield(v.String()) {
				return
			}
		}
	}
}

func (s *Store) CommandPathSlice() []string {
	return slices.Collect(s.CommandPath())
}

// Entries yields the script (if set) followed by a FlagEntry, UnnamedEntry or
// UnnamedFlagEntry for each argument in positional order
func (s *Store) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		if s.script != "" {
			if !yield(ScriptEntry(s.script)) {
				return
			}
		}
		for i, v := range s.values {
			var entry Entry
			if name, isNamed := s.posToName[i]; isNamed {
				entry = FlagEntry{name: name, value: v}
			} else if v.IsFlag() {
				entry = UnnamedFlagEntry{}
			} else {
				entry = UnnamedEntry(v.Text())
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// TokenStrings returns the store as argv (the script first if it is set)
func (s *Store) TokenStrings() []string {
	var res []string
	for e := range s.Entries() {
		res = append(res, e.TokenStrings()...)
	}
	return res
}
