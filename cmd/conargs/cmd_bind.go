package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	conargs "github.com/cardinalby/go-console-args"
)

type bindResult struct {
	Flags   []boundFlag `json:"flags" yaml:"flags" toml:"flags"`
	Unknown []string    `json:"unknown" yaml:"unknown" toml:"unknown"`
}

type boundFlag struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Type    string `json:"type" yaml:"type" toml:"type"`
	Value   string `json:"value" yaml:"value" toml:"value"`
	Changed bool   `json:"changed" yaml:"changed" toml:"changed"`
}

func (a *app) newBindCmd() *cobra.Command {
	var defines []string
	cmd := &cobra.Command{
		Use:   "bind --define name=type... command line...",
		Short: "Apply a command line to a set of declared flags",
		Long: `Bind declares flags with --define and sets them from the named arguments of
the command line. Types: string, int, bool, float, duration. A one-letter
shorthand can follow the name: --define verbose,v=bool.
Named arguments that don't match a declared flag are listed as unknown.`,
		Example: `  conargs bind --define port=int --define verbose,v=bool -- "-v --port=8080 --x=1"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flagSet, err := newDefinedFlagSet(defines)
			if err != nil {
				return err
			}
			store, err := conargs.Parse(strings.Join(args, " "), a.options()...)
			if err != nil {
				return err
			}
			unknown, err := conargs.ApplyPFlagSet(flagSet, store)
			if err != nil {
				return err
			}

			res := bindResult{Unknown: []string{}}
			flagSet.VisitAll(func(f *pflag.Flag) {
				res.Flags = append(res.Flags, boundFlag{
					Name:    f.Name,
					Type:    f.Value.Type(),
					Value:   f.Value.String(),
					Changed: f.Changed,
				})
			})
			for entry := range unknown.Entries() {
				res.Unknown = append(res.Unknown, entry.String())
			}
			return writeBindResult(cmd.OutOrStdout(), a.cfg.Format, res)
		},
	}
	cmd.Flags().StringArrayVarP(&defines, "define", "d", nil, "flag declaration: name[,shorthand]=type")
	return cmd
}

func newDefinedFlagSet(defines []string) (*pflag.FlagSet, error) {
	flagSet := pflag.NewFlagSet("bind", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	for _, define := range defines {
		names, typ, ok := strings.Cut(define, "=")
		if !ok {
			return nil, fmt.Errorf(`invalid define "%s": expected name=type`, define)
		}
		name, shorthand, _ := strings.Cut(names, ",")
		if name == "" || len(shorthand) > 1 {
			return nil, fmt.Errorf(`invalid define "%s": expected name[,shorthand]=type`, define)
		}
		if flagSet.Lookup(name) != nil || (shorthand != "" && flagSet.ShorthandLookup(shorthand) != nil) {
			return nil, fmt.Errorf(`invalid define "%s": %w`, define, conargs.ErrArgRedefined)
		}
		switch typ {
		case "string":
			flagSet.StringP(name, shorthand, "", "")
		case "int":
			flagSet.IntP(name, shorthand, 0, "")
		case "bool":
			flagSet.BoolP(name, shorthand, false, "")
		case "float":
			flagSet.Float64P(name, shorthand, 0, "")
		case "duration":
			flagSet.DurationP(name, shorthand, 0, "")
		default:
			return nil, fmt.Errorf(`invalid define "%s": unsupported type "%s"`, define, typ)
		}
	}
	return flagSet, nil
}

func writeBindResult(w io.Writer, format string, res bindResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(res)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "FLAG\tTYPE\tVALUE\tCHANGED")
	for _, f := range res.Flags {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", f.Name, f.Type, f.Value, f.Changed)
	}
	if len(res.Unknown) > 0 {
		_, _ = fmt.Fprintf(tw, "unknown: %s\n", strings.Join(res.Unknown, " "))
	}
	return tw.Flush()
}
