package cscopedb

import "github.com/standardbeagle/calltree/internal/types"

// Model is the intermediate representation produced by the cscope
// parser: every reference site (duplicates preserved, insertion order
// kept) plus every definition extent, split by kind the way the resolver
// needs them: macros and functions are indexed separately so the macro
// index can be checked first and take precedence.
type Model struct {
	References      map[types.Symbol][]types.Site
	FunctionExtents []types.Extent
	MacroExtents    []types.Extent
	TypeExtents     []types.Extent
}

func newModel() *Model {
	return &Model{
		References: make(map[types.Symbol][]types.Site),
	}
}

func (m *Model) addRef(file types.FileID, line int, symbol types.Symbol) {
	m.References[symbol] = append(m.References[symbol], types.Site{File: file, Line: line})
}
