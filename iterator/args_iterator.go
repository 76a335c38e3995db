package iterator

import (
	"flag"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cardinalby/go-console-args/stdutil"
)

type ArgRole int

func (r ArgRole) Has(role ArgRole) bool {
	return r&role != 0
}

const (
	ArgRoleUnnamed ArgRole = 1 << iota
	ArgRoleFlag            // named, without value
	ArgRoleNamed           // named, with value after "="
	ArgRoleKnown           // modifies ArgRoleFlag or ArgRoleNamed
)

type ArgInfo struct {
	Arg   string
	Name  string
	Value string
	// Role is sum of ArgRole constants. Possible values:
	// ArgRoleUnnamed                 // Value is the whole Arg
	// ArgRoleFlag                    // Name is the whole Arg, no Value
	// ArgRoleNamed                   // Name before the first "=", Value after it
	// ArgRoleFlag | ArgRoleKnown     // Name (without dashes) is defined in the FlagSet
	// ArgRoleNamed | ArgRoleKnown
	Role ArgRole
}

// Classify determines the role of a single argv token (already split and unquoted by the shell):
//   - a token that doesn't start with a letter or "-" is unnamed: "123", "!ggg", "*.txt"
//   - a token with "=" is named, split at the first "=": "-f=1", "name=a=b"
//   - a token starting with "-" without "=" is a flag: "-h", "--help"
//   - otherwise it's unnamed: "deploy"
func Classify(arg string) ArgInfo {
	info := ArgInfo{Arg: arg}
	first, _ := utf8.DecodeRuneInString(arg)
	if arg == "" || (first != '-' && !unicode.IsLetter(first)) {
		info.Role = ArgRoleUnnamed
		info.Value = arg
		return info
	}
	if equalsSignIndex := strings.IndexByte(arg, '='); equalsSignIndex > 0 {
		info.Role = ArgRoleNamed
		info.Name = arg[:equalsSignIndex]
		info.Value = arg[equalsSignIndex+1:]
		return info
	}
	if first == '-' {
		info.Role = ArgRoleFlag
		info.Name = arg
		return info
	}
	info.Role = ArgRoleUnnamed
	info.Value = arg
	return info
}

// Iterate classifies each arg independently and calls yield for it until yield
// returns false. If flagSet is not nil, named args whose names (without dashes) are
// defined in it get ArgRoleKnown
func Iterate(
	args []string,
	flagSet *flag.FlagSet,
	yield func(info ArgInfo) bool,
) {
	var knownFlags stdutil.FormalTagNames
	if flagSet != nil {
		knownFlags = stdutil.GetFormalFlagNames(flagSet)
	}
	for _, arg := range args {
		info := Classify(arg)
		if !info.Role.Has(ArgRoleUnnamed) && knownFlags.Has(info.Name) {
			info.Role |= ArgRoleKnown
		}
		if !yield(info) {
			return
		}
	}
}
