package cscopedb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/calltree/internal/types"
)

func TestParseFunctionExtentAndReference(t *testing.T) {
	lines := []string{
		"\t@a.c",
		"",
		"1",
		"\t$main",
		"\t int main() {",
		"",
		"2",
		"\t`helper",
		"\thelper();",
		"",
		"3",
		"\t}",
	}
	m := parseLines("test", lines)

	require.Len(t, m.FunctionExtents, 1)
	fe := m.FunctionExtents[0]
	require.Equal(t, types.FileID("a.c"), fe.File)
	require.Equal(t, 1, fe.Start)
	require.Equal(t, 3, fe.End)
	require.Equal(t, types.Symbol("main"), fe.Symbol)

	require.Equal(t, []types.Site{{File: "a.c", Line: 2}}, m.References["helper"])
}

// A #define's line number freezes at its opening line: cscope.out never
// emits a fresh line-number header while inside a definition block, so
// every reference and the closing marker are recorded against that same
// frozen line (the define state never re-enters the blank-line state
// that would let a new header take effect). Multi-line macro bodies
// collapse to a single-line extent here; GLOBAL's backend is the one
// that walks the source file to find a macro's true continuation span.
func TestParseMacroExtent(t *testing.T) {
	lines := []string{
		"\t@a.c",
		"",
		"10",
		"\t#LOG",
		"\t`sink",
		"\t)",
	}
	m := parseLines("test", lines)

	require.Len(t, m.MacroExtents, 1)
	macro := m.MacroExtents[0]
	require.Equal(t, 10, macro.Start)
	require.Equal(t, 10, macro.End)
	require.Equal(t, types.Symbol("LOG"), macro.Symbol)
	require.Equal(t, []types.Site{{File: "a.c", Line: 10}}, m.References["sink"])
}

func TestParseTypeMark(t *testing.T) {
	lines := []string{
		"\t@a.c",
		"",
		"5",
		"\tcWidget",
	}
	m := parseLines("test", lines)

	require.Len(t, m.TypeExtents, 1)
	require.Equal(t, types.Symbol("Widget"), m.TypeExtents[0].Symbol)
	require.Equal(t, types.KindType, m.TypeExtents[0].Kind)
}

func TestParseUnknownPrefixByteIsSkippedNotFatal(t *testing.T) {
	lines := []string{
		"\t@a.c",
		"",
		"1",
		"\tZbogus",
		"",
		"2",
		"\t`ref",
	}
	require.NotPanics(t, func() {
		m := parseLines("test", lines)
		require.Equal(t, []types.Site{{File: "a.c", Line: 2}}, m.References["ref"])
	})
}

func TestParseMalformedLineHeaderIsSkipped(t *testing.T) {
	lines := []string{
		"\t@a.c",
		"",
		"123x",
		"\t`ref",
	}
	require.NotPanics(t, func() {
		m := parseLines("test", lines)
		// the malformed header is dropped silently and parsing carries on
		// with whatever line number was last established.
		require.Equal(t, []types.Site{{File: "a.c", Line: 1}}, m.References["ref"])
	})
}

func TestParseDirectIdentifierLineIsAReference(t *testing.T) {
	// cscope.out also emits a bare non-tagged identifier line for some
	// reference forms.
	lines := []string{
		"\t@a.c",
		"",
		"7",
		"plain_ident",
	}
	m := parseLines("test", lines)
	require.Equal(t, []types.Site{{File: "a.c", Line: 7}}, m.References["plain_ident"])
}
