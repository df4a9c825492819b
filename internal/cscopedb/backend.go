// Package cscopedb decodes the classic cscope.out cross-reference database
// and answers reference/caller-resolution queries over it.
package cscopedb

import (
	"github.com/standardbeagle/calltree/internal/digram"
	"github.com/standardbeagle/calltree/internal/types"
)

// Backend implements walk.Backend over a parsed cscope.out database.
// Symbols are kept in their digram-compressed wire form throughout the
// walk and decoded only in Decode, which output code calls for display.
type Backend struct {
	model       *Model
	macroEnds   *endIndex
	funcEnds    *endIndex
}

// Open loads a cscope.out file and builds its extent indexes.
func Open(path string) (*Backend, error) {
	model, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Backend{
		model:     model,
		macroEnds: buildEndIndex(model.MacroExtents),
		funcEnds:  buildEndIndex(model.FunctionExtents),
	}, nil
}

// EncodeRoot digram-encodes a root symbol name as typed at the CLI, so it
// matches the compressed form symbols are stored under in the database.
func EncodeRoot(name string) types.Symbol {
	return types.Symbol(digram.Encode(name))
}

// EncodeRoot lets the driver encode root names through the backend it holds.
func (b *Backend) EncodeRoot(name string) types.Symbol {
	return EncodeRoot(name)
}

// References returns every reference site recorded for symbol, duplicates
// and insertion order preserved.
func (b *Backend) References(symbol types.Symbol) []types.Site {
	return b.model.References[symbol]
}

// ResolveCaller checks the macro-end index before the function-end index,
// so a reference inside a macro body resolves to the macro rather than
// the function it happens to be textually nested in; neither matching
// means the site is dropped.
func (b *Backend) ResolveCaller(site types.Site) []types.Symbol {
	if callers := b.macroEnds.lookup(site.File, site.Line); callers != nil {
		return callers
	}
	return b.funcEnds.lookup(site.File, site.Line)
}

// Decode expands a digram-compressed symbol back to its display form.
func (b *Backend) Decode(symbol types.Symbol) string {
	return digram.Decode(string(symbol))
}

// Symbols returns every decoded definition name in the database, for
// root-lookup suggestions.
func (b *Backend) Symbols() []string {
	names := make([]string, 0, len(b.model.FunctionExtents)+len(b.model.MacroExtents)+len(b.model.TypeExtents))
	for _, e := range b.model.FunctionExtents {
		names = append(names, digram.Decode(string(e.Symbol)))
	}
	for _, e := range b.model.MacroExtents {
		names = append(names, digram.Decode(string(e.Symbol)))
	}
	for _, e := range b.model.TypeExtents {
		names = append(names, digram.Decode(string(e.Symbol)))
	}
	return names
}
