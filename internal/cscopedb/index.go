package cscopedb

import (
	"sort"

	"github.com/standardbeagle/calltree/internal/types"
)

// endIndex is the per-file "mapping end_line -> extents ending there"
// structure, built once for function extents and once for macro extents.
// endLines is kept sorted ascending so the resolver can binary search it.
type endIndex struct {
	byFile map[types.FileID]*fileEnds
}

type fileEnds struct {
	endLines []int
	extents  [][]types.Extent // extents[i] all end at endLines[i]
}

func buildEndIndex(extents []types.Extent) *endIndex {
	grouped := make(map[types.FileID]map[int][]types.Extent)
	for _, e := range extents {
		byLine, ok := grouped[e.File]
		if !ok {
			byLine = make(map[int][]types.Extent)
			grouped[e.File] = byLine
		}
		byLine[e.End] = append(byLine[e.End], e)
	}

	idx := &endIndex{byFile: make(map[types.FileID]*fileEnds, len(grouped))}
	for file, byLine := range grouped {
		lines := make([]int, 0, len(byLine))
		for l := range byLine {
			lines = append(lines, l)
		}
		sort.Ints(lines)

		fe := &fileEnds{endLines: lines, extents: make([][]types.Extent, len(lines))}
		for i, l := range lines {
			fe.extents[i] = byLine[l]
		}
		idx.byFile[file] = fe
	}
	return idx
}

// lookup finds the smallest end_line >= line, then keeps only the
// extents among those whose start_line <= line (the reference actually
// falls inside the extent). Returns nil when nothing covers the site.
func (idx *endIndex) lookup(file types.FileID, line int) []types.Symbol {
	fe, ok := idx.byFile[file]
	if !ok {
		return nil
	}

	i := sort.Search(len(fe.endLines), func(i int) bool { return fe.endLines[i] >= line })
	if i == len(fe.endLines) {
		return nil
	}

	var symbols []types.Symbol
	for _, e := range fe.extents[i] {
		if e.Start <= line {
			symbols = append(symbols, e.Symbol)
		}
	}
	return symbols
}
