package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	conargs "github.com/cardinalby/go-console-args"
	"github.com/cardinalby/go-console-args/internal/config"
)

// app is the state shared by the commands of one root command
type app struct {
	defaultConfigPath string

	// flags
	configPath string
	verbose    bool
	format     string
	byteChars  bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd(defaultConfigPath string) *cobra.Command {
	a := &app{
		defaultConfigPath: defaultConfigPath,
		logger:            zap.NewNop(),
	}
	rootCmd := &cobra.Command{
		Use:   "conargs",
		Short: "Parse, inspect and rewrite console command lines",
		Long: `conargs splits command lines into positional and named arguments.

A command line is either a single string (tokenized with ", ' and ` + "`" + ` quotes)
or an argv list already split by the shell. Named arguments are written as
-flag, --name=value or name=value.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $HOME/"+config.FileName+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")
	flags.StringVarP(&a.format, "format", "o", "", "output format: text, json, yaml or toml")
	flags.BoolVar(&a.byteChars, "bytes", false, "read command line strings byte by byte instead of UTF-8")

	rootCmd.AddCommand(
		a.newParseCmd(),
		a.newArgvCmd(),
		a.newRenderCmd(),
		a.newPathCmd(),
		a.newBindCmd(),
	)
	return rootCmd
}

// setup loads the config, applies the flags over it and builds the logger
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath, false)
	} else {
		a.cfg, err = config.Load(a.defaultConfigPath, true)
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		a.cfg.Format = a.format
	}
	if flags.Changed("bytes") {
		a.cfg.CharMode = conargs.UTF8Chars.String()
		if a.byteChars {
			a.cfg.CharMode = conargs.ByteChars.String()
		}
	}
	if flags.Changed("verbose") {
		a.cfg.Verbose = a.verbose
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	if !a.cfg.Verbose {
		return nil
	}
	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	a.logger, err = logConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (a *app) options() []conargs.Option {
	charMode := conargs.UTF8Chars
	if a.cfg.CharMode == conargs.ByteChars.String() {
		charMode = conargs.ByteChars
	}
	return []conargs.Option{
		conargs.WithCharMode(charMode),
		conargs.WithLogger(a.logger),
	}
}

func main() {
	if err := newRootCmd(config.DefaultPath()).Execute(); err != nil {
		os.Exit(1)
	}
}
