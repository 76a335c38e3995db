package conargs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/shlex"
	"github.com/stretchr/testify/require"

	"github.com/cardinalby/go-console-args/cmdargs"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		argv      []string
		expScript string
		expected  []expArg
		expPath   []string
	}{
		{
			name:     "nil",
			argv:     nil,
			expected: nil,
		},
		{
			name:      "script only",
			argv:      []string{"/usr/bin/app"},
			expScript: "/usr/bin/app",
			expected:  nil,
		},
		{
			name:      "command path",
			argv:      []string{"script.php", "alfa", "beta", "-f=123"},
			expScript: "script.php",
			expected: []expArg{
				unnamed("alfa"),
				unnamed("beta"),
				named("-f", "123"),
			},
			expPath: []string{"alfa", "beta"},
		},
		{
			name:      "tokens are not split by spaces",
			argv:      []string{"app", "-m=a b", "c d", "-k", "!ggg", ""},
			expScript: "app",
			expected: []expArg{
				named("-m", "a b"),
				unnamed("c d"),
				flagArg("-k"),
				unnamed("!ggg"),
				unnamed(""),
			},
		},
		{
			name:      "names",
			argv:      []string{"app", "abc=def", "-x=", "=y", "5=6", "--"},
			expScript: "app",
			expected: []expArg{
				named("abc", "def"),
				named("-x", ""),
				unnamed("=y"),
				unnamed("5=6"),
				flagArg("--"),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			store, err := ParseArgs(tc.argv)
			require.NoError(t, err)
			require.Equal(t, tc.expScript, store.Script())
			requireArgs(t, tc.expected, store)
			require.Equal(t, len(tc.expPath), store.CommandNameCount())
			if tc.expPath != nil {
				require.Equal(t, tc.expPath, store.CommandPathSlice())
			}
		})
	}
}

func newStore(t *testing.T, script string, args ...expArg) *cmdargs.Store {
	t.Helper()
	s := cmdargs.New()
	s.SetScript(script)
	for i, a := range args {
		require.NoError(t, s.Set(i, a.value))
		require.NoError(t, s.SetName(i, a.name))
	}
	return s
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		store *cmdargs.Store
	}{
		{
			name:  "plain",
			store: newStore(t, "", unnamed("alfa"), unnamed("beta"), named("-f", "123"), flagArg("-k")),
		},
		{
			name: "values with spaces and quotes",
			store: newStore(t, "",
				unnamed("a b"),
				named("--msg", `say "hi"`),
				named("-q", `it's "x"`),
				unnamed("tab\there"),
			),
		},
		{
			name:  "empty values",
			store: newStore(t, "", unnamed(""), named("--abc", ""), named("n", "")),
		},
		{
			name: "unnamed looking like names",
			store: newStore(t, "",
				unnamed("-x"),
				unnamed("a=b"),
				unnamed("1=2"),
				named("-f", "-x"),
				named("g", "h=i"),
			),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rendered := tc.store.String()
			parsed, err := Parse(rendered)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.store.Document(), parsed.Document()); diff != "" {
				t.Fatalf("%q parsed differently (-want +got):\n%s", rendered, diff)
			}
		})
	}
}

// Rendered command lines without backticks are valid for POSIX shells
func TestParseArgs_ShellRoundTrip(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		store *cmdargs.Store
	}{
		{
			name:  "plain",
			store: newStore(t, "script.php", unnamed("alfa"), unnamed("beta"), named("-f", "123"), flagArg("-k")),
		},
		{
			name: "spaces",
			store: newStore(t, "/bin/app",
				unnamed("run"),
				named("--msg", "hello world"),
				named("-q", `say "hi"`),
				unnamed("a b"),
			),
		},
		{
			name:  "empty named value",
			store: newStore(t, "app", named("--abc", ""), named("x", "")),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			argv, err := shlex.Split(tc.store.String())
			require.NoError(t, err)
			require.Equal(t, tc.store.TokenStrings(), argv)

			parsed, err := ParseArgs(argv)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.store.Document(), parsed.Document()); diff != "" {
				t.Fatalf("argv %q parsed differently (-want +got):\n%s", argv, diff)
			}
		})
	}
}
