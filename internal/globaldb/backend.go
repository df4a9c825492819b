package globaldb

import "github.com/standardbeagle/calltree/internal/types"

// Backend implements walk.Backend over a loaded GNU GLOBAL database.
// Unlike cscopedb, GLOBAL symbols are never compressed, so Decode is the
// identity function.
type Backend struct {
	model    *Model
	allDefs  *lineIndex
	funcDefs *lineIndex
}

// Open reads GTAGS/GRTAGS/GPATH from dir and builds the definition
// indexes the resolver searches.
func Open(dir string) (*Backend, error) {
	model, err := Load(dir)
	if err != nil {
		return nil, err
	}
	return &Backend{
		model:    model,
		allDefs:  buildLineIndex(model.Definitions, false, true),
		funcDefs: buildLineIndex(model.Definitions, false, false),
	}, nil
}

// References returns every reference site recorded for symbol.
func (b *Backend) References(symbol types.Symbol) []types.Site {
	return b.model.References[symbol]
}

// ResolveCaller finds the enclosing definition for a reference site.
func (b *Backend) ResolveCaller(site types.Site) []types.Symbol {
	return b.resolveCaller(site)
}

// Decode returns symbol unchanged: GLOBAL never compresses symbol names.
func (b *Backend) Decode(symbol types.Symbol) string {
	return string(symbol)
}

// Symbols returns every definition name in the database, for root-lookup
// suggestions.
func (b *Backend) Symbols() []string {
	names := make([]string, 0, len(b.model.Definitions))
	for _, d := range b.model.Definitions {
		names = append(names, string(d.Symbol))
	}
	return names
}
