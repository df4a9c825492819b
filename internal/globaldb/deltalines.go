package globaldb

import (
	"fmt"
	"strconv"
	"strings"
)

// decodeLineDeltas expands GRTAGS's delta-encoded line list. Each
// comma-separated token is either a bare increment ("n") or a run ("n-k")
// meaning "advance by n, then emit k+1 consecutive lines from there".
// "5,3-2,4" decodes to [5, 8, 9, 10, 14].
func decodeLineDeltas(encoded string) ([]int, error) {
	if encoded == "" {
		return nil, nil
	}

	var result []int
	current := 0
	for _, tok := range strings.Split(encoded, ",") {
		if dash := strings.IndexByte(tok, '-'); dash >= 0 {
			n, err := strconv.Atoi(tok[:dash])
			if err != nil {
				return nil, fmt.Errorf("globaldb: bad delta token %q: %w", tok, err)
			}
			k, err := strconv.Atoi(tok[dash+1:])
			if err != nil {
				return nil, fmt.Errorf("globaldb: bad delta token %q: %w", tok, err)
			}
			current += n
			for i := 0; i <= k; i++ {
				result = append(result, current+i)
			}
			current += k
			continue
		}

		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("globaldb: bad delta token %q: %w", tok, err)
		}
		current += n
		result = append(result, current)
	}
	return result, nil
}
