package cmdargs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStore_MarshalJSON(t *testing.T) {
	t.Parallel()
	s := newTestStore("app", UnnamedEntry("run"), NewFlagEntry("-f", "1"), NewBoolFlagEntry("-k"))

	data, err := json.Marshal(s)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"script": "app",
		"arguments": [
			{"position": 0, "value": "run"},
			{"position": 1, "name": "-f", "value": "1"},
			{"position": 2, "name": "-k", "value": true}
		]
	}`, string(data))

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(New())
		require.NoError(t, err)
		require.JSONEq(t, `{"arguments": []}`, string(data))
	})
}

func TestStore_MarshalYAML(t *testing.T) {
	t.Parallel()
	s := newTestStore("", NewFlagEntry("-f", ""), NewBoolFlagEntry("-k"))

	data, err := yaml.Marshal(s)
	require.NoError(t, err)
	require.YAMLEq(t, `
arguments:
  - position: 0
    name: "-f"
    value: ""
  - position: 1
    name: "-k"
    value: true
`, string(data))
}

func TestValue(t *testing.T) {
	t.Parallel()
	require.Equal(t, "true", Flag().String())
	require.Equal(t, "", Flag().Text())
	require.Equal(t, true, Flag().Interface())
	require.Equal(t, "x", Text("x").Interface())
	require.False(t, Text("").IsFlag())
	require.Equal(t, Value{}, Text(""))
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()
	require.True(t, Text("a").Equal(Text("a")))
	require.False(t, Text("true").Equal(Flag()))
	require.False(t, Text("").Equal(Flag()))
}
