package globaldb

import (
	"sort"

	"github.com/standardbeagle/calltree/internal/types"
)

// lineIndex is the per-path "definition line -> symbols defined there"
// structure the resolver binary searches. Built once over all
// definitions and once more restricted to non-macro ones, since the
// resolver retries with a function-only view when the first pass only
// turns up a macro that the reference site isn't actually inside.
type lineIndex struct {
	byFile map[types.FileID]*fileLines
}

type fileLines struct {
	lines   []int
	symbols [][]types.Symbol
	isMacro [][]bool
}

func buildLineIndex(defs []definition, macrosOnly bool, includeMacros bool) *lineIndex {
	grouped := make(map[types.FileID]map[int][]definition)
	for _, d := range defs {
		if macrosOnly && !d.IsMacro {
			continue
		}
		if !includeMacros && d.IsMacro {
			continue
		}
		byLine, ok := grouped[d.Path]
		if !ok {
			byLine = make(map[int][]definition)
			grouped[d.Path] = byLine
		}
		byLine[d.Line] = append(byLine[d.Line], d)
	}

	idx := &lineIndex{byFile: make(map[types.FileID]*fileLines, len(grouped))}
	for file, byLine := range grouped {
		lines := make([]int, 0, len(byLine))
		for l := range byLine {
			lines = append(lines, l)
		}
		sort.Ints(lines)

		fl := &fileLines{
			lines:   lines,
			symbols: make([][]types.Symbol, len(lines)),
			isMacro: make([][]bool, len(lines)),
		}
		for i, l := range lines {
			for _, d := range byLine[l] {
				fl.symbols[i] = append(fl.symbols[i], d.Symbol)
				fl.isMacro[i] = append(fl.isMacro[i], d.IsMacro)
			}
		}
		idx.byFile[file] = fl
	}
	return idx
}

// floor returns the index of the greatest definition line <= target within
// file, or -1 when every definition line in that file is greater than
// target (no enclosing definition exists, so the lookup fails rather than
// falling back to the nearest definition after the target).
func (idx *lineIndex) floor(file types.FileID, target int) int {
	fl, ok := idx.byFile[file]
	if !ok {
		return -1
	}
	i := sort.Search(len(fl.lines), func(i int) bool { return fl.lines[i] > target }) - 1
	if i < 0 {
		return -1
	}
	return i
}

func (fl *fileLines) at(i int) (line int, symbols []types.Symbol, anyMacro bool) {
	line = fl.lines[i]
	symbols = fl.symbols[i]
	for _, m := range fl.isMacro[i] {
		if m {
			anyMacro = true
			break
		}
	}
	return
}

func (idx *lineIndex) entryFor(file types.FileID, i int) (*fileLines, bool) {
	fl, ok := idx.byFile[file]
	if !ok || i < 0 || i >= len(fl.lines) {
		return nil, false
	}
	return fl, true
}
