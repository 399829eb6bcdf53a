package tileset

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseList parses the canonical tile-list string format (comma-separated
// tile numbers, as produced by ListString) into a TileSet. Leading zeros
// and surrounding whitespace around each field are tolerated.
func ParseList(s string) (TileSet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Empty, nil
	}

	var ts TileSet
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		n, err := strconv.Atoi(field)
		if err != nil {
			return Empty, fmt.Errorf("tileset: invalid tile %q in list %q: %w", field, s, err)
		}
		if n < 0 || n >= Size {
			return Empty, fmt.Errorf("tileset: tile %d in list %q out of range [0, %d)", n, s, Size)
		}
		ts = ts.Add(n)
	}
	return ts, nil
}
