package globaldb

import (
	"bufio"
	"os"

	"github.com/standardbeagle/calltree/internal/diagnostics"
	"github.com/standardbeagle/calltree/internal/types"
)

// resolveCaller finds the enclosing definition for site, preferring a
// macro whose continuation lines actually reach site's line, falling
// back to the nearest function definition at or before it.
func (b *Backend) resolveCaller(site types.Site) []types.Symbol {
	if i := b.allDefs.floor(site.File, site.Line); i != -1 {
		fl, _ := b.allDefs.entryFor(site.File, i)
		line, symbols, anyMacro := fl.at(i)
		if anyMacro && b.macroReaches(site.File, line, site.Line) {
			return symbols
		}
	}

	if i := b.funcDefs.floor(site.File, site.Line); i != -1 {
		fl, _ := b.funcDefs.entryFor(site.File, i)
		_, symbols, _ := fl.at(i)
		return symbols
	}

	return nil
}

// readLines loads an entire source file into memory, 0-indexed, the way
// the continuation check needs to look both forward and compare against
// an absolute target line.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// macroReaches walks forward from a macro's definition line through its
// backslash-continuation lines, checking whether targetLine is one of
// them. Missing or unreadable files fail silently; verbose mode logs why.
func (b *Backend) macroReaches(file types.FileID, defLine, targetLine int) bool {
	if targetLine < 2 {
		return false
	}

	lines, err := readLines(string(file))
	if err != nil {
		diagnostics.Logf("globaldb: cannot open %s for macro continuation check: %v", file, err)
		return false
	}

	current := defLine - 1 // 0-based index of the macro's own definition line
	for {
		if current == targetLine-1 {
			return true
		}
		if current < 0 || current >= len(lines) {
			return false
		}
		line := lines[current]
		if len(line) == 0 || line[len(line)-1] != '\\' {
			return false
		}
		current++
	}
}
