package conargs

import (
	"os"
	"sync"

	"github.com/cardinalby/go-console-args/cmdargs"
)

var commandLine = sync.OnceValues(func() (*cmdargs.Store, error) {
	return ParseArgs(os.Args)
})

// CommandLine returns the arguments of the current process parsed from os.Args.
// The store is parsed once and shared: use Clone() before modifying it
func CommandLine() (*cmdargs.Store, error) {
	return commandLine()
}

// BindCommandLine binds the arguments of the current process to the fields of the
// given struct. See Bind
func BindCommandLine(p any, ignoredFields ...any) error {
	args, err := CommandLine()
	if err != nil {
		return err
	}
	return Bind(args, p, ignoredFields...)
}
