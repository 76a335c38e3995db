package cmdargs

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const quoteChars = "\"'`"

// String renders the store as a command line: the script followed by the
// arguments written as `value`, `name` or `name=value`. Values are quoted
// when it's required to read them back as the same arguments.
func (s *Store) String() string {
	var entries []Entry
	for e := range s.Entries() {
		entries = append(entries, e)
	}
	return joinEntries(entries)
}

func joinEntries(entries []Entry) string {
	sb := strings.Builder{}
	for i, e := range entries {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}

func quoteIfNeeded(text string, isUnnamed bool) string {
	if needsQuotes(text, isUnnamed) {
		return quote(text)
	}
	return text
}

func needsQuotes(text string, isUnnamed bool) bool {
	if text == "" {
		return isUnnamed
	}
	if strings.ContainsAny(text, quoteChars) || strings.IndexFunc(text, unicode.IsSpace) >= 0 {
		return true
	}
	if !isUnnamed {
		return false
	}
	// unquoted text would be read back as a name
	first, _ := utf8.DecodeRuneInString(text)
	return first == '-' || (unicode.IsLetter(first) && strings.Contains(text, "="))
}

// quote wraps the text with the first quote char it doesn't contain.
// Quoting can't be terminated inside a quoted span, so text containing all the
// quote chars can't be rendered losslessly
func quote(text string) string {
	q := quoteChars[:1]
	for _, c := range quoteChars {
		if !strings.ContainsRune(text, c) {
			q = string(c)
			break
		}
	}
	return q + text + q
}
