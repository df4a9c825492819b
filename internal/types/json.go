package types

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON renders a Tree as: a leaf sentinel is a bare JSON string, a
// branch is an ordered object mapping caller name to either a child tree
// (position reporting off) or {"callee": "...", "caller": <child>}
// (position reporting on).
//
// encoding/json does not preserve map key order, so branches are built
// with an explicit byte buffer to keep the emission order the walker
// produced (insertion order, not sorted) — this is load-bearing for
// reproducible output snapshots across identical runs.
func (t Tree) MarshalJSON() ([]byte, error) {
	if t.IsLeaf() {
		return json.Marshal(t.Leaf)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, edge := range t.Branches {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(edge.Caller)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		if edge.HasSite {
			childJSON, err := edge.Child.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.WriteByte('{')
			buf.WriteString(`"callee":`)
			calleeJSON, err := json.Marshal(edge.Site.String())
			if err != nil {
				return nil, err
			}
			buf.Write(calleeJSON)
			buf.WriteString(`,"caller":`)
			buf.Write(childJSON)
			buf.WriteByte('}')
		} else {
			childJSON, err := edge.Child.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(childJSON)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Forest is the top-level `root -> tree` mapping, in root-argument order.
type Forest struct {
	Roots []RootTree
}

// RootTree pairs a root symbol (as typed on the command line) with the
// tree built for it.
type RootTree struct {
	Root string
	Tree Tree
}

// MarshalJSON renders the forest the same ordered-object way Tree does,
// keyed by root name in the order the roots were requested.
func (f Forest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rt := range f.Roots {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(rt.Root)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		childJSON, err := rt.Tree.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(childJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
