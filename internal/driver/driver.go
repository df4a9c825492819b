// Package driver assembles configuration, a tag-database backend, and the
// tree walker into the top-level operation: turn a list of root symbols
// into a Forest.
package driver

import (
	"fmt"

	"github.com/standardbeagle/calltree/internal/callerr"
	"github.com/standardbeagle/calltree/internal/config"
	"github.com/standardbeagle/calltree/internal/cscopedb"
	"github.com/standardbeagle/calltree/internal/diagnostics"
	"github.com/standardbeagle/calltree/internal/globaldb"
	"github.com/standardbeagle/calltree/internal/rootlookup"
	"github.com/standardbeagle/calltree/internal/types"
	"github.com/standardbeagle/calltree/internal/walk"
)

// rootCodec lets the cscope backend round-trip a root symbol through its
// digram encoding while the global backend passes it through unchanged.
type rootCodec interface {
	EncodeRoot(name string) types.Symbol
}

// Run loads the configured backend, walks every root, and returns the
// assembled Forest. For roots that resolved to nothing, near-match
// suggestions from the backend's symbol table are logged as diagnostics.
func Run(cfg config.Config) (types.Forest, error) {
	if err := cfg.Validate(); err != nil {
		return types.Forest{}, err
	}

	diagnostics.SetEnabled(cfg.Verbose)

	backend, knownSymbols, err := open(cfg)
	if err != nil {
		return types.Forest{}, err
	}

	blacklist, err := walk.CompileBlacklist(cfg.Blacklist)
	if err != nil {
		return types.Forest{}, callerr.NewConfigError("blacklist", "", err)
	}

	w := walk.New(backend, walk.Options{
		MaxDepth:     cfg.MaxDepth,
		Blacklist:    blacklist,
		ShowPosition: cfg.ShowPosition,
	})

	forest := types.Forest{Roots: make([]types.RootTree, 0, len(cfg.Roots))}
	for _, root := range cfg.Roots {
		symbol := encodeRoot(backend, root)
		tree := w.Expand(symbol, 0)

		if tree.IsLeaf() && tree.Leaf == types.SentinelNoReference {
			if suggestions := rootlookup.Suggest(root, knownSymbols, 3); len(suggestions) > 0 {
				diagnostics.Logf("root %q has no references; did you mean: %v?", root, suggestions)
			}
		}

		forest.Roots = append(forest.Roots, types.RootTree{Root: root, Tree: tree})
	}

	return forest, nil
}

func open(cfg config.Config) (walk.Backend, []string, error) {
	switch cfg.Backend {
	case config.BackendCscope:
		b, err := cscopedb.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return b, b.Symbols(), nil
	case config.BackendGlobal:
		b, err := globaldb.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return b, b.Symbols(), nil
	default:
		return nil, nil, fmt.Errorf("driver: unknown backend %q", cfg.Backend)
	}
}

func encodeRoot(backend walk.Backend, name string) types.Symbol {
	if codec, ok := backend.(rootCodec); ok {
		return codec.EncodeRoot(name)
	}
	return types.Symbol(name)
}
