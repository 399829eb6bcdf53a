package tileset

import "strings"

// ListString renders ts as the canonical tile-list string used to name PDB
// files: comma-separated ascending tile numbers, zero-padded to two digits,
// e.g. "01,02,05,06".
func (ts TileSet) ListString() string {
	tiles := ts.Slice()
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = twoDigits(t)
	}
	return strings.Join(parts, ",")
}

func twoDigits(n int) string {
	const digits = "0123456789"
	if n < 0 || n > 99 {
		// Tile numbers never leave [0, 24]; this branch only guards
		// against misuse of ListString on a non-tile bitmask.
		return strings.Repeat("?", 2)
	}
	return string([]byte{digits[n/10], digits[n%10]})
}
