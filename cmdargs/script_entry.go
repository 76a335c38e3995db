package cmdargs

// ScriptEntry is the invoked program path (argv[0])
type ScriptEntry string

func (se ScriptEntry) String() string {
	return quoteIfNeeded(string(se), true)
}

func (se ScriptEntry) TokenStrings() []string {
	return []string{string(se)}
}

func (se ScriptEntry) Kind() EntryKind {
	return EntryKindScript
}
