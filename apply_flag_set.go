package conargs

import (
	"errors"
	"flag"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/cardinalby/go-console-args/cmdargs"
	"github.com/cardinalby/go-console-args/stdutil"
)

// ApplyFlagSet sets the flags defined in the FlagSet from the named arguments (names
// are matched without leading dashes). It returns a Store with named arguments that
// are not defined in the FlagSet. Named flags without value are allowed only for bool flags
func ApplyFlagSet(flagSet *flag.FlagSet, args *cmdargs.Store) (unknown *cmdargs.Store, err error) {
	formalFlagNames := stdutil.GetFormalFlagNames(flagSet)
	return applyKnown(args, formalFlagNames, func(name string, value cmdargs.Value) error {
		return flagSet.Set(name, value.String())
	})
}

// ApplyPFlagSet is ApplyFlagSet for pflag (cobra) flag sets. One-letter names are
// matched against shorthands as well. Named flags without value get NoOptDefVal
func ApplyPFlagSet(flagSet *pflag.FlagSet, args *cmdargs.Store) (unknown *cmdargs.Store, err error) {
	formalFlagNames := stdutil.GetPFlagNames(flagSet)
	return applyKnown(args, formalFlagNames, func(name string, value cmdargs.Value) error {
		f := flagSet.Lookup(name)
		// ShorthandLookup panics on longer names
		if f == nil && len(name) == 1 {
			f = flagSet.ShorthandLookup(name)
		}
		if f == nil {
			return fmt.Errorf("no such flag -%v", name)
		}
		text := value.Text()
		if value.IsFlag() {
			text = f.NoOptDefVal
		}
		return flagSet.Set(f.Name, text)
	})
}

func applyKnown(
	args *cmdargs.Store,
	formalFlagNames stdutil.FormalTagNames,
	set func(name string, value cmdargs.Value) error,
) (*cmdargs.Store, error) {
	known, unknown := args.StripUnknownFlags(formalFlagNames)
	var errs []error
	for entry := range known.Entries() {
		f, isFlag := entry.(cmdargs.FlagEntry)
		if !isFlag {
			continue
		}
		if f.IsBool() && !formalFlagNames.IsBool(f.Name()) {
			errs = append(errs, fmt.Errorf(`argument "%s": %w`, f.Name(), ErrMissingValue))
			continue
		}
		if err := set(stdutil.FlagName(f.Name()), f.Value()); err != nil {
			errs = append(errs, fmt.Errorf(`argument "%s": %w`, f.Name(), err))
		}
	}
	return unknown, errors.Join(errs...)
}
