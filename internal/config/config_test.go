package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValidOnceRootsAreSet(t *testing.T) {
	cfg := Default()
	cfg.Roots = []string{"main"}
	require.NoError(t, cfg.Validate())
	require.Equal(t, BackendCscope, cfg.Backend)
}

func TestValidateRejectsEmptyRoots(t *testing.T) {
	cfg := Default()
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	cfg := Default()
	cfg.Roots = []string{"main"}
	cfg.Backend = "bogus"
	require.Error(t, cfg.Validate())
}

func TestClampMaxDepth(t *testing.T) {
	require.Equal(t, -1, ClampMaxDepth(-1))
	require.Equal(t, 1, ClampMaxDepth(0))
	require.Equal(t, 1, ClampMaxDepth(-5))
	require.Equal(t, 50, ClampMaxDepth(50))
	require.Equal(t, MaxDepthCeiling, ClampMaxDepth(10000))
}

func TestValidateClampsMaxDepth(t *testing.T) {
	cfg := Default()
	cfg.Roots = []string{"main"}
	cfg.MaxDepth = 99999
	require.NoError(t, cfg.Validate())
	require.Equal(t, MaxDepthCeiling, cfg.MaxDepth)
}
