package conargs

import (
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// CharMode defines how Parse extracts characters from the input string
type CharMode int

const (
	// UTF8Chars decodes the input as UTF-8: multibyte whitespace and letters are recognized
	UTF8Chars CharMode = iota
	// ByteChars treats each byte as a character (single-byte encodings). Only ASCII
	// whitespace and letters are recognized
	ByteChars
)

func (m CharMode) String() string {
	switch m {
	case UTF8Chars:
		return "utf8"
	case ByteChars:
		return "bytes"
	default:
		return "unknown"
	}
}

// next returns the first character of s and its width in bytes
func (m CharMode) next(s string) (r rune, size int) {
	if m == ByteChars {
		return rune(s[0]), 1
	}
	return utf8.DecodeRuneInString(s)
}

func (m CharMode) isSpace(r rune) bool {
	if m == ByteChars {
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return true
		}
		return false
	}
	return unicode.IsSpace(r)
}

func (m CharMode) isLetter(r rune) bool {
	if m == ByteChars {
		return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
	}
	return unicode.IsLetter(r)
}

type options struct {
	charMode CharMode
	logger   *zap.Logger
}

type Option func(o *options)

// WithCharMode sets the way Parse reads characters. Default is UTF8Chars
func WithCharMode(mode CharMode) Option {
	return func(o *options) {
		o.charMode = mode
	}
}

// WithLogger makes the tokenizers write debug traces to the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		charMode: UTF8Chars,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
