package cmdargs

// FlagEntry is a named argument: either a flag without value (`-h`) or a named
// value (`--file=a.txt`)
type FlagEntry struct {
	name  string
	value Value
}

// NewBoolFlagEntry creates a named argument without value
func NewBoolFlagEntry(name string) FlagEntry {
	return FlagEntry{
		name:  name,
		value: Flag(),
	}
}

// NewFlagEntry creates a named argument with text value
func NewFlagEntry(name, value string) FlagEntry {
	return FlagEntry{
		name:  name,
		value: Text(value),
	}
}

func (f FlagEntry) TokenStrings() []string {
	if f.value.IsFlag() {
		return []string{f.name}
	}
	return []string{f.name + "=" + f.value.Text()}
}

func (f FlagEntry) Kind() EntryKind {
	return EntryKindFlag
}

func (f FlagEntry) String() string {
	if f.value.IsFlag() {
		return f.name
	}
	return f.name + "=" + quoteIfNeeded(f.value.Text(), false)
}

func (f FlagEntry) Name() string {
	return f.name
}

func (f FlagEntry) Value() Value {
	return f.value
}

func (f FlagEntry) IsBool() bool {
	return f.value.IsFlag()
}

func (f FlagEntry) Equals(other FlagEntry) bool {
	return f == other
}

func (f FlagEntry) WithName(name string) FlagEntry {
	f.name = name
	return f
}

// WithValue makes the entry a named text value
func (f FlagEntry) WithValue(value string) FlagEntry {
	f.value = Text(value)
	return f
}

// WithNoValue makes the entry a flag without value
func (f FlagEntry) WithNoValue() FlagEntry {
	f.value = Flag()
	return f
}
