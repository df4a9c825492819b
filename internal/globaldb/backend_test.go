package globaldb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/calltree/internal/types"
)

func newTestBackend(defs []definition) *Backend {
	return &Backend{
		allDefs:  buildLineIndex(defs, false, true),
		funcDefs: buildLineIndex(defs, false, false),
	}
}

// A macro LOG defined across lines 10-13 wraps a reference to "sink" on
// line 12; LOG itself is invoked on line 22 inside main, which spans
// lines 20-25.
func TestResolveCallerMacroContinuation(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.c")
	contents := "" +
		"line1\n" + // 1
		"line2\n" + // 2
		"line3\n" + // 3
		"line4\n" + // 4
		"line5\n" + // 5
		"line6\n" + // 6
		"line7\n" + // 7
		"line8\n" + // 8
		"line9\n" + // 9
		"#define LOG(x) \\\n" + // 10
		"  do { \\\n" + // 11
		"    sink(x); \\\n" + // 12
		"  } while (0)\n" + // 13
		"line14\n" + // 14
		"line15\n" + // 15
		"line16\n" + // 16
		"line17\n" + // 17
		"line18\n" + // 18
		"line19\n" + // 19
		"void main() {\n" + // 20
		"line21\n" + // 21
		"  LOG(1);\n" + // 22
		"line23\n" + // 23
		"line24\n" + // 24
		"}\n" // 25
	require.NoError(t, os.WriteFile(src, []byte(contents), 0o644))

	defs := []definition{
		{Symbol: "LOG", Path: types.FileID(src), Line: 10, IsMacro: true, OriginalLine: "#define LOG(x)"},
		{Symbol: "main", Path: types.FileID(src), Line: 20, IsMacro: false, OriginalLine: "void main() {"},
	}
	b := newTestBackend(defs)

	// "sink" is recorded at its literal source line inside the macro body.
	sinkSite := types.Site{File: types.FileID(src), Line: 12}
	require.Equal(t, []types.Symbol{"LOG"}, b.ResolveCaller(sinkSite))

	// "LOG" is recorded where it's invoked, inside main's body.
	logSite := types.Site{File: types.FileID(src), Line: 22}
	require.Equal(t, []types.Symbol{"main"}, b.ResolveCaller(logSite))
}

func TestResolveCallerFallsBackToFunction(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "b.c")
	require.NoError(t, os.WriteFile(src, []byte("void main() {\nhelper();\n}\n"), 0o644))

	defs := []definition{
		{Symbol: "main", Path: types.FileID(src), Line: 1, IsMacro: false, OriginalLine: "void main() {"},
	}
	b := newTestBackend(defs)

	site := types.Site{File: types.FileID(src), Line: 2}
	callers := b.ResolveCaller(site)
	require.Equal(t, []types.Symbol{"main"}, callers)
}

func TestResolveCallerNoEnclosingDefinition(t *testing.T) {
	b := newTestBackend(nil)
	callers := b.ResolveCaller(types.Site{File: "nowhere.c", Line: 5})
	require.Nil(t, callers)
}

func TestFloorFailsWhenAllLinesGreater(t *testing.T) {
	defs := []definition{
		{Symbol: "f", Path: "x.c", Line: 100, IsMacro: false},
	}
	idx := buildLineIndex(defs, false, false)
	require.Equal(t, -1, idx.floor("x.c", 5))
}
