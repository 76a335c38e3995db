package cmdargs

import (
	"encoding/json"
)

// Value is an argument value: either a flag that is present without a value
// or a text value (possibly empty). The zero Value is an empty text.
type Value struct {
	text   string
	isFlag bool
}

// Flag returns a Value for a named argument given without a value, e.g. `-h`
func Flag() Value {
	return Value{isFlag: true}
}

// Text returns a text Value
func Text(text string) Value {
	return Value{text: text}
}

func (v Value) IsFlag() bool {
	return v.isFlag
}

// Text returns the text of the value, empty for flags
func (v Value) Text() string {
	return v.text
}

// String returns "true" for flags and the text otherwise
func (v Value) String() string {
	if v.isFlag {
		return "true"
	}
	return v.text
}

// Interface returns bool true for flags and string for text values
func (v Value) Interface() any {
	if v.isFlag {
		return true
	}
	return v.text
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

func (v Value) Equal(other Value) bool {
	return v == other
}
