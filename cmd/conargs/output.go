package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/cardinalby/go-console-args/cmdargs"
)

// parsedLine is a command line and the result of parsing it
type parsedLine struct {
	input string
	store *cmdargs.Store
}

// tomlDocument mirrors cmdargs.Document: TOML has no null and needs a root table
type tomlDocument struct {
	Input     string    `toml:"input,omitempty"`
	Script    string    `toml:"script,omitempty"`
	Arguments []tomlArg `toml:"arguments"`
}

type tomlArg struct {
	Position int    `toml:"position"`
	Name     string `toml:"name,omitempty"`
	Value    any    `toml:"value"`
}

func writeParsed(w io.Writer, format string, lines []parsedLine) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(lines) == 1 {
			return enc.Encode(lines[0].store)
		}
		stores := make([]*cmdargs.Store, len(lines))
		for i, l := range lines {
			stores[i] = l.store
		}
		return enc.Encode(stores)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, l := range lines {
			if err := enc.Encode(l.store); err != nil {
				return err
			}
		}
		return enc.Close()
	case "toml":
		docs := make([]tomlDocument, 0, len(lines))
		for _, l := range lines {
			docs = append(docs, newTomlDocument(l))
		}
		return toml.NewEncoder(w).Encode(map[string]any{"command": docs})
	default:
		return writeParsedText(w, lines)
	}
}

func newTomlDocument(l parsedLine) tomlDocument {
	doc := l.store.Document()
	res := tomlDocument{
		Input:     l.input,
		Script:    doc.Script,
		Arguments: make([]tomlArg, 0, len(doc.Arguments)),
	}
	for _, arg := range doc.Arguments {
		res.Arguments = append(res.Arguments, tomlArg{
			Position: arg.Position,
			Name:     arg.Name,
			Value:    arg.Value.Interface(),
		})
	}
	return res
}

// writeParsedText prints an aligned table per line:
//
//	POSITION  NAME  VALUE
//	0               "run"
//	1         -k    (flag)
func writeParsedText(w io.Writer, lines []parsedLine) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, l := range lines {
		if i > 0 {
			_, _ = fmt.Fprintln(tw)
		}
		if len(lines) > 1 {
			_, _ = fmt.Fprintf(tw, "# %s\n", l.input)
		}
		if script := l.store.Script(); script != "" {
			_, _ = fmt.Fprintf(tw, "script: %s\n", script)
		}
		_, _ = fmt.Fprintln(tw, "POSITION\tNAME\tVALUE")
		for pos, v := range l.store.All() {
			name, _ := l.store.LookupNameAt(pos)
			_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", pos, name, formatValue(v))
		}
	}
	return tw.Flush()
}

func formatValue(v cmdargs.Value) string {
	if v.IsFlag() {
		return "(flag)"
	}
	return strconv.Quote(v.Text())
}
