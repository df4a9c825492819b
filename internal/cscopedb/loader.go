package cscopedb

import (
	"os"
	"strings"

	"github.com/standardbeagle/calltree/internal/callerr"
)

// Load reads a cscope.out file and parses it into a Model. The file is
// treated as 8-bit bytes decoded as ISO-8859-1: every byte
// maps 1:1 onto a rune in [0, 255], so no multi-byte decoding can fail and
// no byte is lost.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, callerr.NewLoadError("cscope", path, err)
	}
	return parseLines(path, splitLines(string(raw))), nil
}

// Go strings are plain byte sequences, not enforced UTF-8, so treating
// the file's raw bytes as a string already gives ISO-8859-1 semantics:
// every byte is its own code point and nothing can fail to decode. No
// conversion step is needed or correct here — converting through []rune
// would re-encode bytes >= 0x80 as multi-byte UTF-8 and corrupt the
// digram codes the cscope format relies on.

// splitLines splits on '\n' only, matching cscope.out's logical line
// structure.
// Lines may exceed 4 KiB and must not be truncated; strings.Split has no
// such limit.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}
