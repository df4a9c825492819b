package cscopedb

import (
	"strconv"
	"strings"

	"github.com/standardbeagle/calltree/internal/callerr"
	"github.com/standardbeagle/calltree/internal/diagnostics"
	"github.com/standardbeagle/calltree/internal/types"
)

type parseState int

const (
	stateNormal parseState = iota
	stateEmpty
	stateDefine
)

const (
	prefixReference     = '`'
	prefixDefineStart   = '#'
	prefixDefineEnd     = ')'
	prefixFunctionStart = '$'
	prefixFunctionEnd   = '}'
	prefixFilename      = '@'
)

// typeHeads are the prefix bytes for non-function definitions: class,
// struct, typedef, enum, mark.
var typeHeads = map[byte]bool{
	'c': true, 's': true, 't': true, 'e': true, 'm': true,
}

const (
	defaultFileName = "main.c"
	defaultFunction = "main"
	defaultMacro    = "macro"
)

// isIdentByte classifies a byte as part of a cscope identifier: ASCII
// word characters, or the literal bytes 0x80 / 0xFF.
func isIdentByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '_':
		return true
	case b == 0x80 || b == 0xFF:
		return true
	default:
		return false
	}
}

// parser holds the state-machine's running context while walking the
// cscope.out line stream.
type parser struct {
	model *Model

	state       parseState
	curFile     types.FileID
	curLine     int
	curFunction types.Symbol
	funcStart   int
	curMacro    types.Symbol
	macroStart  int

	source string // for diagnostics only
}

func newParser(source string) *parser {
	return &parser{
		model:       newModel(),
		state:       stateNormal,
		curFile:     types.FileID(defaultFileName),
		curFunction: types.Symbol(defaultFunction),
		curMacro:    types.Symbol(defaultMacro),
		source:      source,
	}
}

// parseLines runs the state machine over the already-split cscope.out
// content and returns the populated Model. Malformed or truncated input
// never aborts the walk; empty/short lines are skipped, and unrecognized
// prefixes and malformed line-number headers are skipped with a
// diagnostics message (shown only in verbose mode).
func parseLines(source string, lines []string) *Model {
	p := newParser(source)
	for lineNo, line := range lines {
		p.step(lineNo+1, line)
	}
	return p.model
}

func (p *parser) step(lineNo int, line string) {
	if p.state != stateDefine && line == "" {
		p.state = stateEmpty
		return
	}

	if line == "" || line[0] == ' ' {
		return
	}

	if p.state == stateEmpty && line[0] >= '0' && line[0] <= '9' {
		fields := strings.SplitN(line, " ", 2)
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			diagnostics.Logf("%v", callerr.NewParseWarning(p.source, lineNo, "malformed line-number header"))
			return
		}
		p.curLine = n
		p.state = stateNormal
		return
	}

	if line[0] == '\t' {
		if len(line) < 2 {
			return
		}
		head := line[1]
		rest := line[2:]

		switch {
		case head == prefixReference:
			p.model.addRef(p.curFile, p.curLine, types.Symbol(rest))
			return

		case p.state != stateDefine && head == prefixDefineStart:
			p.state = stateDefine
			p.curMacro = types.Symbol(rest)
			p.macroStart = p.curLine
			return

		case p.state == stateDefine && head == prefixDefineEnd:
			p.state = stateNormal
			p.model.MacroExtents = append(p.model.MacroExtents, types.Extent{
				File:   p.curFile,
				Start:  p.macroStart,
				End:    p.curLine,
				Symbol: p.curMacro,
				Kind:   types.KindMacro,
			})
			p.curMacro = types.Symbol(defaultMacro)
			return

		case head == prefixFunctionStart:
			p.curFunction = types.Symbol(rest)
			p.funcStart = p.curLine
			return

		case head == prefixFunctionEnd:
			p.model.FunctionExtents = append(p.model.FunctionExtents, types.Extent{
				File:   p.curFile,
				Start:  p.funcStart,
				End:    p.curLine,
				Symbol: p.curFunction,
				Kind:   types.KindFunction,
			})
			p.curFunction = types.Symbol(defaultFunction)
			return

		case typeHeads[head]:
			p.model.TypeExtents = append(p.model.TypeExtents, types.Extent{
				File:   p.curFile,
				Start:  p.curLine,
				End:    p.curLine,
				Symbol: types.Symbol(rest),
				Kind:   types.KindType,
			})
			return

		case head == prefixFilename:
			p.curFile = types.FileID(rest)
			p.curLine = 1
			return

		default:
			diagnostics.Logf("%v", callerr.NewParseWarning(p.source, lineNo, "unknown prefix byte, ignored"))
			return
		}
	}

	if isIdentByte(line[0]) {
		p.model.addRef(p.curFile, p.curLine, types.Symbol(line))
	}
}
