// Package globaldb reads a GNU GLOBAL-family SQLite tag database
// (GTAGS/GRTAGS/GPATH) and answers the same reference/caller-resolution
// queries cscopedb does.
package globaldb

import "github.com/standardbeagle/calltree/internal/types"

// definition is one GTAGS row, resolved to a filesystem path via GPATH.
type definition struct {
	Symbol       types.Symbol
	Path         types.FileID
	Line         int
	IsMacro      bool
	OriginalLine string
}

// Model is the intermediate representation built from the three GLOBAL
// tables.
type Model struct {
	Definitions []definition
	References  map[types.Symbol][]types.Site
	PathMap     map[string]string // file_symbol -> filesystem path
}

func newModel() *Model {
	return &Model{
		References: make(map[types.Symbol][]types.Site),
		PathMap:    make(map[string]string),
	}
}
