package conargs

import (
	"fmt"
	"io"
	"strings"
)

// PrintUsage prints registered arguments grouping alternative names:
//
//	  -v --verbose int
//	    	verbose level (default 1)
//	  --login string
//	    	* user login
//
// Required arguments are marked with "*"
func (b *Binder) PrintUsage(w io.Writer) {
	for _, reg := range b.registered {
		for _, ba := range reg.namedArgs {
			printArgUsage(w, ba)
		}
	}
}

func printArgUsage(w io.Writer, ba *boundArg) {
	sb := strings.Builder{}
	sb.WriteString(" ")
	for _, name := range ba.argNames {
		sb.WriteString(" ")
		sb.WriteString(formatArgName(name))
	}
	if ba.setter.typeName != "" {
		sb.WriteString(" ")
		sb.WriteString(ba.setter.typeName)
	}
	sb.WriteString("\n    \t")
	if ba.isRequired {
		sb.WriteString("* ")
	}
	sb.WriteString(strings.ReplaceAll(ba.usage, "\n", "\n    \t"))
	if ba.setter.defValue != "" {
		sb.WriteString(fmt.Sprintf(" (default %s)", ba.setter.defValue))
	}
	sb.WriteString("\n")
	_, _ = io.WriteString(w, sb.String())
}

// formatArgName prefixes one-letter names with "-" and longer ones with "--"
func formatArgName(name string) string {
	if len([]rune(name)) == 1 {
		return "-" + name
	}
	return "--" + name
}
