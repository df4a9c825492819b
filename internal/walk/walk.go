// Package walk implements the depth-bounded, cycle-safe reverse call-tree
// traversal. It is backend-agnostic: cscopedb and globaldb both satisfy
// Backend, and the algorithm here never looks at which one it's talking
// to.
package walk

import (
	"regexp"

	"github.com/standardbeagle/calltree/internal/types"
)

// Backend is the capability set the walker needs from a loaded tag
// database: enumerate reference sites for a symbol, and resolve the
// enclosing function/macro for a given site.
type Backend interface {
	References(symbol types.Symbol) []types.Site
	ResolveCaller(site types.Site) []types.Symbol
	Decode(symbol types.Symbol) string
}

// Options configures one walk. MaxDepth of -1 disables the depth cap
// entirely; Blacklist patterns are matched against the decoded symbol
// anchored at position 0.
type Options struct {
	MaxDepth     int
	Blacklist    []*regexp.Regexp
	ShowPosition bool
}

// CompileBlacklist compiles an ordered list of patterns for use in
// Options.Blacklist. A symbol is blacklisted if ANY pattern matches its
// decoded form starting at byte 0 (not required to match to the end).
func CompileBlacklist(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// Walker runs one traversal over a Backend's indexes. It is NOT safe for
// concurrent Expand calls against the same Walker: the traversal cache is
// mutated mid-walk, so concurrent callers must each build their own
// Walker over the (immutable, shareable) Backend.
type Walker struct {
	backend Backend
	opts    Options

	// cache maps a symbol to the caller set computed for it. A symbol is
	// added once its callers are resolved, before they are recursed into;
	// presence as a key serves both memoization and cycle detection.
	cache map[types.Symbol][]types.Symbol

	// blacklistMemo avoids recompiling a decision already made for this
	// symbol.
	blacklistMemo map[types.Symbol]bool
}

// New builds a Walker over backend with the given options.
func New(backend Backend, opts Options) *Walker {
	return &Walker{
		backend:       backend,
		opts:          opts,
		cache:         make(map[types.Symbol][]types.Symbol),
		blacklistMemo: make(map[types.Symbol]bool),
	}
}

// Expand builds the call tree rooted at symbol: resolve its reference
// sites to callers, recurse into each caller, and cap recursion by depth,
// blacklist, and cycle detection.
func (w *Walker) Expand(symbol types.Symbol, depth int) types.Tree {
	if w.opts.MaxDepth != -1 && depth >= w.opts.MaxDepth {
		return types.Leaf(types.SentinelReachMaxDepth)
	}

	if w.isBlacklisted(symbol) {
		return types.Leaf(types.SentinelBlacklisted)
	}

	if _, seen := w.cache[symbol]; seen {
		return types.Leaf(types.SentinelTraversed)
	}

	sites := w.backend.References(symbol)
	if len(sites) == 0 {
		return types.Leaf(types.SentinelNoReference)
	}

	callers, lastSite := w.resolveCallers(sites)

	// Insert BEFORE recursing so self-reference and mutual recursion
	// terminate.
	w.cache[symbol] = callers

	edges := make([]types.Edge, 0, len(callers))
	for _, caller := range callers {
		child := w.Expand(caller, depth+1)
		edge := types.Edge{
			Caller: w.backend.Decode(caller),
			Child:  child,
		}
		if w.opts.ShowPosition {
			edge.HasSite = true
			edge.Site = lastSite[caller]
		}
		edges = append(edges, edge)
	}

	if len(edges) == 0 {
		return types.Leaf(types.SentinelNoReference)
	}

	return types.Branch(edges)
}

// resolveCallers walks every reference site, resolving each to its
// enclosing caller(s) and deduplicating into first-seen order, so output
// order depends only on the reference sites' own order and is otherwise
// deterministic. The representative site recorded per caller is
// last-write-wins across reference sites — callers must not depend on
// which concrete site survives when a symbol has several references
// inside the same caller.
func (w *Walker) resolveCallers(sites []types.Site) ([]types.Symbol, map[types.Symbol]types.Site) {
	seen := make(map[types.Symbol]bool)
	var ordered []types.Symbol
	lastSite := make(map[types.Symbol]types.Site)

	for _, site := range sites {
		for _, caller := range w.backend.ResolveCaller(site) {
			if !seen[caller] {
				seen[caller] = true
				ordered = append(ordered, caller)
			}
			lastSite[caller] = site
		}
	}

	return ordered, lastSite
}

func (w *Walker) isBlacklisted(symbol types.Symbol) bool {
	if decision, ok := w.blacklistMemo[symbol]; ok {
		return decision
	}

	decoded := w.backend.Decode(symbol)
	decision := false
	for _, pattern := range w.opts.Blacklist {
		loc := pattern.FindStringIndex(decoded)
		if loc != nil && loc[0] == 0 {
			decision = true
			break
		}
	}

	w.blacklistMemo[symbol] = decision
	return decision
}
