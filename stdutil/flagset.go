package stdutil

import (
	"flag"
	"strings"

	"github.com/spf13/pflag"
)

type boolFlag interface {
	IsBoolFlag() bool
}

// FormalTagNames is a map where key is a flag name (without dashes) and value
// indicates it's a bool flag
type FormalTagNames map[string]bool

// Has reports whether the argument name (with or without leading dashes) is known
func (flags FormalTagNames) Has(argName string) bool {
	_, has := flags[FlagName(argName)]
	return has
}

// IsBool reports whether the argument name refers to a known bool flag
func (flags FormalTagNames) IsBool(argName string) bool {
	return flags[FlagName(argName)]
}

// GetFormalFlagNames returns a map where key is a flag name and value indicates it's a bool flag
func GetFormalFlagNames(flagSet *flag.FlagSet) FormalTagNames {
	flags := make(FormalTagNames)
	flagSet.VisitAll(func(f *flag.Flag) {
		isBoolFlag := false
		if boolFlag, ok := f.Value.(boolFlag); ok {
			isBoolFlag = boolFlag.IsBoolFlag()
		}
		flags[f.Name] = isBoolFlag
	})
	return flags
}

// GetPFlagNames is GetFormalFlagNames for pflag (cobra) flag sets. Shorthands are
// included as separate names
func GetPFlagNames(flagSet *pflag.FlagSet) FormalTagNames {
	flags := make(FormalTagNames)
	flagSet.VisitAll(func(f *pflag.Flag) {
		isBoolFlag := f.NoOptDefVal != ""
		flags[f.Name] = isBoolFlag
		if f.Shorthand != "" {
			flags[f.Shorthand] = isBoolFlag
		}
	})
	return flags
}

// FlagName trims up to two leading dashes of an argument name: "--file" -> "file"
func FlagName(argName string) string {
	if strings.HasPrefix(argName, "--") {
		return argName[2:]
	}
	return strings.TrimPrefix(argName, "-")
}
