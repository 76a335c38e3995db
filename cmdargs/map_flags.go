package cmdargs

// MapFlags is MapEntries that passes only named arguments to the mapper
func (s *Store) MapFlags(
	mapper func(flag FlagEntry) (mapped Entry),
) *Store {
	return s.MapEntries(func(entry Entry) Entry {
		if flag, isFlag := entry.(FlagEntry); isFlag {
			return mapper(flag)
		}
		return entry
	})
}
