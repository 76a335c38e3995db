package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	conargs "github.com/cardinalby/go-console-args"
	"github.com/cardinalby/go-console-args/cmdargs"
)

func (a *app) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [command line...]",
		Short: "Split command line strings into arguments",
		Long: `Parse tokenizes each argument as a separate command line string.
Without arguments, each non-blank line of stdin is a command line.`,
		Example: `  conargs parse 'deploy prod -f=123 --dry-run "a b"'
  cat commands.txt | conargs parse -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			lines, err := a.parseAll(cmd.Context(), inputs)
			if err != nil {
				return err
			}
			return writeParsed(cmd.OutOrStdout(), a.cfg.Format, lines)
		},
	}
}

// maxLineSize limits a single command line read from stdin
const maxLineSize = 4 << 20

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

// parseAll tokenizes inputs concurrently keeping their order
func (a *app) parseAll(ctx context.Context, inputs []string) ([]parsedLine, error) {
	res := make([]parsedLine, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			store, err := conargs.Parse(input, a.options()...)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			res[i] = parsedLine{input: input, store: store}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	a.logger.Debug("command lines parsed", zap.Int("count", len(res)), zap.Int("workers", a.cfg.Workers))
	return res, nil
}

func (a *app) newArgvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "argv -- script [args...]",
		Short: "Classify arguments already split by the shell",
		Long: `Argv treats its arguments as the argv of a program: the first one is the
script, each following one is classified on its own without splitting or
unquoting.`,
		Example: `  conargs argv -- script.php alfa beta -f=123`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := conargs.ParseArgs(args, a.options()...)
			if err != nil {
				return err
			}
			return writeParsed(cmd.OutOrStdout(), a.cfg.Format, []parsedLine{{
				input: strings.Join(args, " "),
				store: store,
			}})
		},
	}
}

// printEach parses each argument as a command line and prints one line per result
func (a *app) printEach(cmd *cobra.Command, args []string, format func(*cmdargs.Store) string) error {
	lines, err := a.parseAll(cmd.Context(), args)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), format(l.store)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "render command line...",
		Short:   "Print command lines in the canonical form",
		Example: `  conargs render "  -a=1    'x y'  -b=\"\""`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printEach(cmd, args, (*cmdargs.Store).String)
		},
	}
}

func (a *app) newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "path command line...",
		Short:   "Print the leading unnamed arguments of command lines",
		Example: `  conargs path "remote add -f origin"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printEach(cmd, args, func(s *cmdargs.Store) string {
				return strings.Join(s.CommandPathSlice(), " ")
			})
		},
	}
}
