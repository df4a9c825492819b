// Package digram implements the cscope symbol coder: a fixed two-byte
// digram compression scheme used by the classic cross-reference tool to
// shrink identifiers in cscope.out. It has no dependency on the rest of
// this module — keep it isolated so the legacy wire format never leaks
// into the walker's symbol identity.
package digram

// alphabet1 holds the 16 most frequent first characters of a digram,
// alphabet2 the 8 most frequent second characters. Both orderings are
// load-bearing: rank within the alphabet is the encoding itself.
const (
	alphabet1 = " teisaprnl(of)=c"
	alphabet2 = " tnerpla"
)

// codeBase is the first byte value a digram code can take: 0x80 - 2.
const codeBase = 0x80 - 2

var (
	// encodeTable maps a two-byte digram to its single compressed byte.
	encodeTable = make(map[[2]byte]byte, len(alphabet1)*len(alphabet2))
	// decodeTable maps a compressed byte back to its two-byte expansion.
	decodeTable [256][2]byte
	// isCoded marks which bytes in [0,256) are valid digram codes.
	isCoded [256]bool
)

func init() {
	for i := 0; i < len(alphabet1); i++ {
		for j := 0; j < len(alphabet2); j++ {
			c1, c2 := alphabet1[i], alphabet2[j]
			code := byte(codeBase + i*8 + 1 + j + 1)
			encodeTable[[2]byte{c1, c2}] = code
			decodeTable[code] = [2]byte{c1, c2}
			isCoded[code] = true
		}
	}
}

// Encode greedily compresses s left to right: whenever the next two bytes
// form a known digram they collapse to one compressed byte, otherwise the
// current byte passes through unchanged. Strings shorter than 2 bytes are
// returned as-is.
func Encode(s string) string {
	if len(s) < 2 {
		return s
	}

	out := make([]byte, 0, len(s))
	i := 0
	for i+1 < len(s) {
		pair := [2]byte{s[i], s[i+1]}
		if code, ok := encodeTable[pair]; ok {
			out = append(out, code)
			i += 2
			continue
		}
		out = append(out, s[i])
		i++
	}
	if i < len(s) {
		out = append(out, s[len(s)-1])
	}
	return string(out)
}

// Decode expands every compressed byte in s back to its two-character
// digram; ordinary bytes pass through unchanged. Decode is total over any
// byte string, coded or not.
func Decode(s string) string {
	out := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); i++ {
		b := s[i]
		if isCoded[b] {
			pair := decodeTable[b]
			out = append(out, pair[0], pair[1])
			continue
		}
		out = append(out, b)
	}
	return string(out)
}
