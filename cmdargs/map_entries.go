package cmdargs

// MapEntries returns a new Store built from the entries returned by the mapper.
// Returning nil removes the entry, returning EntryGroup replaces it with several
// ones. Positions of the result are dense again. The receiver is not modified.
func (s *Store) MapEntries(
	mapper func(Entry) Entry,
) *Store {
	res := New()
	for entry := range s.Entries() {
		if mapped := mapper(entry); mapped != nil {
			res.appendEntry(mapped)
		}
	}
	return res
}

func (s *Store) appendEntry(entry Entry) {
	switch e := entry.(type) {
	case ScriptEntry:
		s.script = string(e)
	case UnnamedEntry:
		s.values = append(s.values, Text(string(e)))
	case UnnamedFlagEntry:
		s.values = append(s.values, Flag())
	case FlagEntry:
		s.values = append(s.values, e.value)
		// position always exists here
		_ = s.SetName(len(s.values)-1, e.name)
	case EntryGroup:
		for _, groupEntry := range e {
			if groupEntry != nil {
				s.appendEntry(groupEntry)
			}
		}
	}
}
