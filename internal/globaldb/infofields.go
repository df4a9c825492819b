package globaldb

import (
	"regexp"
	"strconv"
	"strings"
)

// defineMacroPattern matches the GLOBAL convention for marking a definition
// line as a preprocessor macro: in the original source line it records, a
// '#' is followed by optional whitespace, the literal marker "@d",
// whitespace, and the literal marker "@n" (e.g. "#@d @n(x) ...").
var defineMacroPattern = regexp.MustCompile(`#\s*@d\s+@n`)

// parseGtagsInfo splits a GTAGS info_string into its line number (third
// space-separated field) and its original source line (everything from the
// fourth field onward, spaces preserved). Both readings come from the same
// SplitN(4) call: an unlimited split indexed at position 2 and a
// maxsplit=3 split's tail agree on the first three tokens either way.
func parseGtagsInfo(info string) (lineNumber int, originalLine string, ok bool) {
	fields := strings.SplitN(info, " ", 4)
	if len(fields) < 3 {
		return 0, "", false
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, "", false
	}
	if len(fields) == 4 {
		originalLine = fields[3]
	}
	return n, originalLine, true
}

// parseGrtagsInfo splits a GRTAGS ref_info into its delta-encoded line
// list (the third space-separated field).
func parseGrtagsInfo(info string) (deltaLines string, ok bool) {
	fields := strings.Fields(info)
	if len(fields) < 3 {
		return "", false
	}
	return fields[2], true
}

func isDefineMacro(originalLine string) bool {
	return defineMacroPattern.MatchString(originalLine)
}
