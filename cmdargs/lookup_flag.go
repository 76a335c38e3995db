package cmdargs

func (s *Store) LookupFlag(name string) (res FlagEntry, has bool) {
	position, ok := s.nameToPos[name]
	if !ok {
		return res, false
	}
	return FlagEntry{name: name, value: s.values[position]}, true
}

// DeleteFlag returns a copy of the store without the named argument
func (s *Store) DeleteFlag(name string) (res *Store, deleted bool) {
	res = s.MapFlags(func(f FlagEntry) Entry {
		if f.Name() == name {
			deleted = true
			return nil
		}
		return f
	})
	return res, deleted
}

// UpsertFlag returns a copy of the store where the named argument with insert.Name()
// is replaced by the result of update. If there is no such argument, insert is
// placed after the command path
func (s *Store) UpsertFlag(
	insert FlagEntry,
	update func(old FlagEntry) (updated FlagEntry),
) *Store {
	if !s.HasName(insert.name) {
		res := s.Clone()
		commandNameCount := s.CommandNameCount()
		res.values = res.values[:commandNameCount]
		res.posToName = make(map[int]string)
		res.nameToPos = make(map[string]int)
		res.names = nil
		res.appendEntry(insert)
		for i := commandNameCount; i < len(s.values); i++ {
			res.values = append(res.values, s.values[i])
			if name, isNamed := s.posToName[i]; isNamed {
				_ = res.SetName(len(res.values)-1, name)
			}
		}
		return res
	}
	return s.MapFlags(func(f FlagEntry) Entry {
		if f.Name() == insert.name {
			return update(f)
		}
		return f
	})
}
