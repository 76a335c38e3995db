package cmdargs

import (
	"errors"
	"fmt"
	"slices"
)

// ErrOutOfRange is returned when a position or a name doesn't refer to an existing argument
var ErrOutOfRange = errors.New("argument out of range")

// Store is an ordered list of parsed command line arguments. Positions are dense
// (0..Count()-1), each position has at most one name and each name refers to exactly
// one position.
type Store struct {
	script    string
	values    []Value
	posToName map[int]string
	nameToPos map[string]int
	// names in binding order
	names []string
}

func New() *Store {
	return &Store{
		posToName: make(map[int]string),
		nameToPos: make(map[string]int),
	}
}

// Script returns the invoked program path (argv[0]) if it was set
func (s *Store) Script() string {
	return s.script
}

func (s *Store) SetScript(script string) {
	s.script = script
}

// Count returns the number of arguments including unnamed ones and flags
func (s *Store) Count() int {
	return len(s.values)
}

// CountNames returns the number of positions bound to a name
func (s *Store) CountNames() int {
	return len(s.names)
}

// Set sets the value at the given position. Position equal to Count() appends
// a new argument.
func (s *Store) Set(position int, value Value) error {
	if position < 0 || position > len(s.values) {
		return fmt.Errorf("%w: can't set position %d, count is %d", ErrOutOfRange, position, len(s.values))
	}
	if position == len(s.values) {
		s.values = append(s.values, value)
	} else {
		s.values[position] = value
	}
	return nil
}

// SetName binds the name to the existing argument at the given position.
// Empty name removes the name of the position. If the name is already bound to
// another position, that position loses the name.
func (s *Store) SetName(position int, name string) error {
	if !s.HasPosition(position) {
		return fmt.Errorf("%w: can't name position %d, count is %d", ErrOutOfRange, position, len(s.values))
	}
	s.init()
	oldName, hasOldName := s.posToName[position]
	if hasOldName && oldName == name {
		return nil
	}
	if hasOldName {
		s.unbind(oldName)
	}
	if name == "" {
		return nil
	}
	if _, isBound := s.nameToPos[name]; isBound {
		s.unbind(name)
	}
	s.posToName[position] = name
	s.nameToPos[name] = position
	s.names = append(s.names, name)
	return nil
}

func (s *Store) HasPosition(position int) bool {
	return position >= 0 && position < len(s.values)
}

func (s *Store) HasName(name string) bool {
	_, has := s.nameToPos[name]
	return has
}

func (s *Store) LookupPosition(position int) (Value, bool) {
	if !s.HasPosition(position) {
		return Value{}, false
	}
	return s.values[position], true
}

func (s *Store) ByPosition(position int) (Value, error) {
	if v, ok := s.LookupPosition(position); ok {
		return v, nil
	}
	return Value{}, fmt.Errorf("%w: no argument at position %d", ErrOutOfRange, position)
}

func (s *Store) LookupName(name string) (Value, bool) {
	position, ok := s.nameToPos[name]
	if !ok {
		return Value{}, false
	}
	return s.LookupPosition(position)
}

func (s *Store) ByName(name string) (Value, error) {
	if v, ok := s.LookupName(name); ok {
		return v, nil
	}
	return Value{}, fmt.Errorf("%w: no argument named %q", ErrOutOfRange, name)
}

func (s *Store) LookupNameAt(position int) (string, bool) {
	name, ok := s.posToName[position]
	return name, ok
}

func (s *Store) NameAt(position int) (string, error) {
	if name, ok := s.LookupNameAt(position); ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: no named argument at position %d", ErrOutOfRange, position)
}

func (s *Store) LookupPositionOf(name string) (int, bool) {
	position, ok := s.nameToPos[name]
	return position, ok
}

func (s *Store) PositionOf(name string) (int, error) {
	if position, ok := s.LookupPositionOf(name); ok {
		return position, nil
	}
	return 0, fmt.Errorf("%w: no argument named %q", ErrOutOfRange, name)
}

// CommandNameCount returns the number of leading arguments before the first named one
func (s *Store) CommandNameCount() int {
	for i := range s.values {
		if _, isNamed := s.posToName[i]; isNamed {
			return i
		}
	}
	return len(s.values)
}

// Clone returns a deep copy of the store
func (s *Store) Clone() *Store {
	res := &Store{
		script:    s.script,
		values:    slices.Clone(s.values),
		posToName: make(map[int]string, len(s.posToName)),
		nameToPos: make(map[string]int, len(s.nameToPos)),
		names:     slices.Clone(s.names),
	}
	for pos, name := range s.posToName {
		res.posToName[pos] = name
	}
	for name, pos := range s.nameToPos {
		res.nameToPos[name] = pos
	}
	return res
}

// Equal reports whether both stores have the same script, values and names at
// the same positions. The name binding order is not compared.
func (s *Store) Equal(other *Store) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.script != other.script || !slices.Equal(s.values, other.values) || len(s.names) != len(other.names) {
		return false
	}
	for pos, name := range s.posToName {
		if otherName, ok := other.posToName[pos]; !ok || otherName != name {
			return false
		}
	}
	return true
}

func (s *Store) init() {
	if s.posToName == nil {
		s.posToName = make(map[int]string)
	}
	if s.nameToPos == nil {
		s.nameToPos = make(map[string]int)
	}
}

func (s *Store) unbind(name string) {
	position := s.nameToPos[name]
	delete(s.nameToPos, name)
	delete(s.posToName, position)
	if i := slices.Index(s.names, name); i >= 0 {
		s.names = slices.Delete(s.names, i, i+1)
	}
}
