package walk

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain guards against leaks in the traversal cache's lifecycle: a
// Walker is meant to be built fresh per walk and discarded, never kept
// running in the background.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
