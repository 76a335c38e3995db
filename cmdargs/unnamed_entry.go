package cmdargs

// UnnamedEntry is a positional argument without a name
type UnnamedEntry string

func (ue UnnamedEntry) String() string {
	return quoteIfNeeded(string(ue), true)
}

func (ue UnnamedEntry) TokenStrings() []string {
	return []string{string(ue)}
}

func (ue UnnamedEntry) Kind() EntryKind {
	return EntryKindUnnamed
}

func (ue UnnamedEntry) Value() Value {
	return Text(string(ue))
}

// UnnamedFlagEntry is a positional flag value that lost its name, e.g. the first
// "-k" of "-k -k" after the name moved to the later argument. It is written as
// "true", so the flag state survives rewriting a Store but not its rendering
type UnnamedFlagEntry struct{}

func (UnnamedFlagEntry) String() string {
	return Flag().String()
}

func (UnnamedFlagEntry) TokenStrings() []string {
	return []string{Flag().String()}
}

func (UnnamedFlagEntry) Kind() EntryKind {
	return EntryKindUnnamed
}

func (UnnamedFlagEntry) Value() Value {
	return Flag()
}

// EntryGroup lets a mapper replace one entry with several ones
type EntryGroup []Entry

func (eg EntryGroup) String() string {
	return joinEntries(eg)
}

func (eg EntryGroup) TokenStrings() []string {
	var res []string
	for _, e := range eg {
		res = append(res, e.TokenStrings()...)
	}
	return res
}

func (eg EntryGroup) Kind() EntryKind {
	return EntryKindGroup
}
