package conargs

import (
	"flag"

	"github.com/cardinalby/go-console-args/iterator"
)

// StripUnknownFlags splits argv tokens (without the script) into unnamed tokens and named
// tokens defined in the flagSet (res) and named tokens that are not defined (stripped).
// Each token is classified independently, see iterator.Classify
func StripUnknownFlags(flagSet *flag.FlagSet, args []string) (res, stripped []string) {
	iterator.Iterate(args, flagSet, func(info iterator.ArgInfo) bool {
		if info.Role.Has(iterator.ArgRoleUnnamed) || info.Role.Has(iterator.ArgRoleKnown) {
			res = append(res, info.Arg)
		} else {
			stripped = append(stripped, info.Arg)
		}
		return true
	})
	return res, stripped
}
