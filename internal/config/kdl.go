package config

import (
	"fmt"
	"os"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// LoadKDL loads a .calltree.kdl file. A missing file is not an error: it
// returns Default() unchanged.
//
//	backend "cscope"
//	db_path "."
//	max_depth 999
//	show_position #true
//	roots {
//	    - "foo"
//	    - "bar"
//	}
//	blacklist {
//	    - "DEBUG_\\w+"
//	}
func LoadKDL(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := kdl.Parse(strings.NewReader(string(content)))
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "backend":
			if s, ok := firstStringArg(n); ok {
				cfg.Backend = s
			}
		case "db_path":
			if s, ok := firstStringArg(n); ok {
				cfg.DBPath = s
			}
		case "max_depth":
			if v, ok := firstIntArg(n); ok {
				cfg.MaxDepth = v
			}
		case "show_position":
			if b, ok := firstBoolArg(n); ok {
				cfg.ShowPosition = b
			}
		case "verbose":
			if b, ok := firstBoolArg(n); ok {
				cfg.Verbose = b
			}
		case "roots":
			cfg.Roots = append(cfg.Roots, stringListChildren(n)...)
		case "blacklist":
			cfg.Blacklist = append(cfg.Blacklist, stringListChildren(n)...)
		}
	}

	return cfg, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

// stringListChildren reads `- "value"` style children nodes.
func stringListChildren(n *document.Node) []string {
	var out []string
	for _, cn := range n.Children {
		if nodeName(cn) != "-" {
			continue
		}
		if s, ok := firstStringArg(cn); ok {
			out = append(out, s)
		}
	}
	return out
}
