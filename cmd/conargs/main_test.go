package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"

	"github.com/cardinalby/go-console-args/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd("")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCmd_Text(t *testing.T) {
	t.Parallel()
	out, err := execute(t, "", "parse", "deploy -f=`F F` -k")
	require.NoError(t, err)
	require.Equal(t,
		"POSITION  NAME  VALUE\n"+
			"0               \"deploy\"\n"+
			"1         -f    \"F F\"\n"+
			"2         -k    (flag)\n",
		out,
	)
}

func TestParseCmd_JSON(t *testing.T) {
	t.Parallel()
	out, err := execute(t, "", "parse", "-o", "json", "-a=1 b")
	require.NoError(t, err)
	require.JSONEq(t, `{"arguments": [
		{"position": 0, "name": "-a", "value": "1"},
		{"position": 1, "value": "b"}
	]}`, out)
}

func TestParseCmd_Stdin(t *testing.T) {
	t.Parallel()
	var input strings.Builder
	for i := 0; i < 50; i++ {
		input.WriteString("cmd")
		input.WriteString(strings.Repeat(" x", i%3))
		input.WriteString(" -n=")
		input.WriteString(string(rune('a' + i%26)))
		input.WriteString("\n\n")
	}

	out, err := execute(t, input.String(), "parse", "--format=json")
	require.NoError(t, err)

	var docs []struct {
		Arguments []struct {
			Name  string `json:"name"`
			Value any    `json:"value"`
		} `json:"arguments"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 50)
	for i, doc := range docs {
		require.Len(t, doc.Arguments, 2+i%3)
		last := doc.Arguments[len(doc.Arguments)-1]
		require.Equal(t, "-n", last.Name)
		require.Equal(t, string(rune('a'+i%26)), last.Value)
	}
}

func TestParseCmd_StdinLongLine(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", 100<<10)
	out, err := execute(t, "cmd -v="+long+"\n", "parse", "-o", "json")
	require.NoError(t, err)

	var doc struct {
		Arguments []struct {
			Name  string `json:"name"`
			Value any    `json:"value"`
		} `json:"arguments"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Arguments, 2)
	require.Equal(t, "-v", doc.Arguments[1].Name)
	require.Equal(t, long, doc.Arguments[1].Value)
}

func TestParseCmd_YAML(t *testing.T) {
	t.Parallel()
	out, err := execute(t, "", "parse", "-o", "yaml", "--", "-k", "x=1")
	require.NoError(t, err)

	dec := yaml.NewDecoder(strings.NewReader(out))
	var docs []map[string]any
	for {
		var doc map[string]any
		if err := dec.Decode(&doc); err != nil {
			break
		}
		docs = append(docs, doc)
	}
	require.Len(t, docs, 2)
	require.Equal(t, []any{map[string]any{"position": 0, "name": "-k", "value": true}}, docs[0]["arguments"])
	require.Equal(t, []any{map[string]any{"position": 0, "name": "x", "value": "1"}}, docs[1]["arguments"])
}

func TestParseCmd_TOML(t *testing.T) {
	t.Parallel()
	out, err := execute(t, "", "parse", "-o", "toml", "run -k", `"a b"`)
	require.NoError(t, err)

	var decoded struct {
		Command []tomlDocument `toml:"command"`
	}
	_, err = toml.Decode(out, &decoded)
	require.NoError(t, err)
	require.Len(t, decoded.Command, 2)
	require.Equal(t, "run -k", decoded.Command[0].Input)
	require.Equal(t, []tomlArg{
		{Position: 0, Value: "run"},
		{Position: 1, Name: "-k", Value: true},
	}, decoded.Command[0].Arguments)
	require.Equal(t, []tomlArg{{Position: 0, Value: "a b"}}, decoded.Command[1].Arguments)
}

func TestParseCmd_Bytes(t *testing.T) {
	t.Parallel()
	out, err := execute(t, "", "parse", "--bytes", "-o", "json", "a\u00a0b")
	require.NoError(t, err)
	require.JSONEq(t, `{"arguments": [{"position": 0, "value": "a\u00a0b"}]}`, out)

	out, err = execute(t, "", "parse", "-o", "json", "a\u00a0b")
	require.NoError(t, err)
	require.JSONEq(t, `{"arguments": [{"position": 0, "value": "a"}, {"position": 1, "value": "b"}]}`, out)
}

func TestArgvCmd(t *testing.T) {
	t.Parallel()
	out, err := execute(t, "", "argv", "-o", "json", "--", "script.php", "alfa", "beta", "-f=123")
	require.NoError(t, err)
	require.JSONEq(t, `{"script": "script.php", "arguments": [
		{"position": 0, "value": "alfa"},
		{"position": 1, "value": "beta"},
		{"position": 2, "name": "-f", "value": "123"}
	]}`, out)

	_, err = execute(t, "", "argv")
	require.Error(t, err)
}

func TestRenderCmd(t *testing.T) {
	t.Parallel()
	out, err := execute(t, "", "render", `  -a=1    'x y'  -b=""  `, "\"-x\"   `q`")
	require.NoError(t, err)
	require.Equal(t, "-a=1 \"x y\" -b=\n\"-x\" q\n", out)
}

func TestPathCmd(t *testing.T) {
	t.Parallel()
	out, err := execute(t, "", "path", "--", "remote add -f origin", "-x", "a b")
	require.NoError(t, err)
	require.Equal(t, "remote add\n\na b\n", out)
}

func TestBindCmd(t *testing.T) {
	t.Parallel()

	t.Run("text", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "",
			"bind", "--define", "port=int", "-d", "verbose,v=bool", "-d", "name=string",
			"--", "-v --port=8080 --x=1 run",
		)
		require.NoError(t, err)
		require.Equal(t,
			"FLAG     TYPE    VALUE  CHANGED\n"+
				"name     string         false\n"+
				"port     int     8080   true\n"+
				"verbose  bool    true   true\n"+
				"unknown: --x=1\n",
			out,
		)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "", "-o", "json", "bind", "-d", "t=duration", "--", "--t=1m")
		require.NoError(t, err)
		require.JSONEq(t, `{
			"flags": [{"name": "t", "type": "duration", "value": "1m0s", "changed": true}],
			"unknown": []
		}`, out)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, "", "bind", "-d", "port=int", "--", "--port=x")
		require.Error(t, err)
	})

	t.Run("invalid define", func(t *testing.T) {
		t.Parallel()
		for _, define := range []string{"port", "port=map", "port,xy=int", "=int"} {
			_, err := execute(t, "", "bind", "-d", define, "--", "a")
			require.Error(t, err, define)
		}
		_, err := execute(t, "", "bind", "-d", "a=int", "-d", "a=bool", "--", "a")
		require.Error(t, err)
	})
}

func TestConfigFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("format = \"json\"\nworkers = 2\n"), 0o600))

	out, err := execute(t, "", "--config", path, "parse", "a")
	require.NoError(t, err)
	require.JSONEq(t, `{"arguments": [{"position": 0, "value": "a"}]}`, out)

	// flags override the file
	out, err = execute(t, "", "--config", path, "-o", "text", "parse", "a")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "POSITION"))

	_, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "none.toml"), "parse", "a")
	require.Error(t, err)

	_, err = execute(t, "", "-o", "xml", "parse", "a")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestConfigFile_CharMode(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("format = \"json\"\nchar_mode = \"bytes\"\n"), 0o600))

	out, err := execute(t, "", "--config", path, "parse", "a\u00a0b")
	require.NoError(t, err)
	require.JSONEq(t, `{"arguments": [{"position": 0, "value": "a\u00a0b"}]}`, out)

	out, err = execute(t, "", "--config", path, "--bytes=false", "parse", "a\u00a0b")
	require.NoError(t, err)
	require.JSONEq(t, `{"arguments": [{"position": 0, "value": "a"}, {"position": 1, "value": "b"}]}`, out)
}
