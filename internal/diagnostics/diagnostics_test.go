package diagnostics

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogfIsNoopWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetEnabled(false)

	Logf("should not appear")
	require.Empty(t, buf.String())
}

func TestLogfWritesWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer func() {
		SetEnabled(false)
		SetOutput(os.Stderr)
	}()
	SetEnabled(true)

	Logf("root %q missing", "main")
	require.Contains(t, buf.String(), `root "main" missing`)
}
