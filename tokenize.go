// Package conargs parses command lines into cmdargs.Store: either a raw command line
// string (Parse) or an argv slice already split by the shell (ParseArgs).
package conargs

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cardinalby/go-console-args/cmdargs"
)

// Parse tokenizes a command line string. Arguments are separated by whitespace and can
// be quoted with ", ' or `. There is no escaping: a quoted span ends at the next
// occurrence of its quote char. The result doesn't have a script.
//
//	-f=`FFF`  -a=11 --abc= -k "bb zz" 123
//
// gives "FFF" named "-f", "11" named "-a", "" named "--abc", flag "-k" and
// unnamed "bb zz" and "123".
//
// A quote left open at the end of the input is closed implicitly.
func Parse(s string, opts ...Option) (*cmdargs.Store, error) {
	o := newOptions(opts)
	t := stringTokenizer{
		store:    cmdargs.New(),
		charMode: o.charMode,
		logger:   o.logger,
	}
	for i := 0; i < len(s); {
		r, size := o.charMode.next(s[i:])
		if err := t.consume(r, s[i:i+size]); err != nil {
			return nil, err
		}
		i += size
	}
	if t.quote != 0 {
		t.logger.Debug("unterminated quote", zap.String("quote", string(t.quote)))
	}
	if err := t.flush(); err != nil {
		return nil, err
	}
	return t.store, nil
}

type stringTokenizer struct {
	store    *cmdargs.Store
	charMode CharMode
	logger   *zap.Logger

	name       strings.Builder
	value      strings.Builder
	quote      rune // 0 outside quotes
	quoted     bool // a quoted span was opened in the current argument
	equalsSeen bool
}

func isQuote(r rune) bool {
	return r == '"' || r == '\'' || r == '`'
}

// consume handles one character: r is its decoded value, chr is its raw bytes
func (t *stringTokenizer) consume(r rune, chr string) error {
	if t.quote != 0 {
		if r == t.quote {
			return t.flush()
		}
		t.value.WriteString(chr)
		return nil
	}

	switch {
	case t.charMode.isSpace(r):
		return t.flush()
	case isQuote(r):
		t.quote = r
		t.quoted = true
	case t.equalsSeen:
		t.value.WriteString(chr)
	case r == '=' && t.name.Len() > 0 && t.value.Len() == 0:
		t.equalsSeen = true
	case t.value.Len() == 0 && (t.name.Len() > 0 || r == '-' || t.charMode.isLetter(r)):
		t.name.WriteString(chr)
	default:
		t.value.WriteString(chr)
	}
	return nil
}

// flush stores the accumulated argument, if any, and resets the state
func (t *stringTokenizer) flush() error {
	defer t.reset()
	if t.name.Len() == 0 && t.value.Len() == 0 && !t.quoted {
		return nil
	}

	name := t.name.String()
	var value cmdargs.Value
	switch {
	case t.equalsSeen:
		value = cmdargs.Text(t.value.String())
	case strings.HasPrefix(name, "-"):
		name += t.value.String()
		value = cmdargs.Flag()
	default:
		value = cmdargs.Text(name + t.value.String())
		name = ""
	}

	position := t.store.Count()
	if err := t.store.Set(position, value); err != nil {
		return err
	}
	if name != "" {
		if err := t.store.SetName(position, name); err != nil {
			return err
		}
	}
	t.logger.Debug(
		"argument parsed",
		zap.Int("position", position),
		zap.String("name", name),
		zap.Stringer("value", value),
		zap.Bool("flag", value.IsFlag()),
	)
	return nil
}

func (t *stringTokenizer) reset() {
	t.name.Reset()
	t.value.Reset()
	t.quote = 0
	t.quoted = false
	t.equalsSeen = false
}
