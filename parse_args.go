package conargs

import (
	"go.uber.org/zap"

	"github.com/cardinalby/go-console-args/cmdargs"
	"github.com/cardinalby/go-console-args/iterator"
)

// ParseArgs builds a Store from argv split by the shell (like os.Args): argv[0] becomes
// the script, each following token is classified by iterator.Classify independently.
// CharMode option doesn't affect ParseArgs: tokens are already split.
func ParseArgs(argv []string, opts ...Option) (*cmdargs.Store, error) {
	o := newOptions(opts)
	store := cmdargs.New()
	if len(argv) == 0 {
		return store, nil
	}
	store.SetScript(argv[0])

	var err error
	iterator.Iterate(argv[1:], nil, func(info iterator.ArgInfo) bool {
		position := store.Count()
		switch {
		case info.Role.Has(iterator.ArgRoleFlag):
			err = store.Set(position, cmdargs.Flag())
		default:
			err = store.Set(position, cmdargs.Text(info.Value))
		}
		if err == nil && !info.Role.Has(iterator.ArgRoleUnnamed) {
			err = store.SetName(position, info.Name)
		}
		o.logger.Debug(
			"argument classified",
			zap.Int("position", position),
			zap.String("arg", info.Arg),
			zap.String("name", info.Name),
		)
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}
