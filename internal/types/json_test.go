package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeafMarshalsAsBareString(t *testing.T) {
	b, err := json.Marshal(Leaf(SentinelNoReference))
	require.NoError(t, err)
	require.JSONEq(t, `"@NoReference"`, string(b))
}

func TestBranchPreservesEmissionOrder(t *testing.T) {
	tree := Branch([]Edge{
		{Caller: "z_caller", Child: Leaf(SentinelNoReference)},
		{Caller: "a_caller", Child: Leaf(SentinelTraversed)},
	})
	b, err := json.Marshal(tree)
	require.NoError(t, err)
	require.Equal(t, `{"z_caller":"@NoReference","a_caller":"@Traversed"}`, string(b))
}

func TestBranchWithSiteEmitsCalleeAndCaller(t *testing.T) {
	tree := Branch([]Edge{
		{Caller: "foo", HasSite: true, Site: Site{File: "a.c", Line: 7}, Child: Leaf(SentinelNoReference)},
	})
	b, err := json.Marshal(tree)
	require.NoError(t, err)
	require.JSONEq(t, `{"foo":{"callee":"File: a.c, Line 7","caller":"@NoReference"}}`, string(b))
}

func TestForestPreservesRootOrder(t *testing.T) {
	forest := Forest{Roots: []RootTree{
		{Root: "sink", Tree: Leaf(SentinelNoReference)},
		{Root: "main", Tree: Leaf(SentinelTraversed)},
	}}
	b, err := json.Marshal(forest)
	require.NoError(t, err)
	require.Equal(t, `{"sink":"@NoReference","main":"@Traversed"}`, string(b))
}

func TestIsLeaf(t *testing.T) {
	require.True(t, Leaf(SentinelBlacklisted).IsLeaf())
	require.False(t, Branch(nil).IsLeaf())
}
