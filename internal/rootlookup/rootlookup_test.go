package rootlookup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggestFindsCloseMatches(t *testing.T) {
	candidates := []string{"do_foo", "do_fob", "unrelated_symbol", "helper"}
	got := Suggest("do_foo_", candidates, 3)

	require.NotEmpty(t, got)
	require.Equal(t, "do_foo", got[0].Symbol)
}

func TestSuggestExcludesExactMatch(t *testing.T) {
	got := Suggest("do_foo", []string{"do_foo"}, 5)
	require.Empty(t, got)
}

func TestSuggestDedupesCandidates(t *testing.T) {
	got := Suggest("do_foo_", []string{"do_foo", "do_foo", "do_foo"}, 5)
	require.Len(t, got, 1)
}

func TestSuggestRespectsLimit(t *testing.T) {
	got := Suggest("ab", []string{"ab1", "ab2", "ab3", "ab4"}, 2)
	require.LessOrEqual(t, len(got), 2)
}

func TestSuggestEmptyInputs(t *testing.T) {
	require.Nil(t, Suggest("", []string{"a"}, 5))
	require.Nil(t, Suggest("a", nil, 5))
	require.Nil(t, Suggest("a", []string{"b"}, 0))
}
