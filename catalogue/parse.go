package catalogue

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rclausecker/npuzzle/tileset"
)

// Spec is a parsed catalogue file: one entry per heuristic line, each a
// list of the tile sets additively composing that heuristic.
type Spec [][]tileset.TileSet

// ParseSpec reads the catalogue file format from r: one line per
// heuristic, blank lines and lines starting with '#' ignored, tile-list
// strings within a line separated by '+'.
func ParseSpec(r io.Reader) (Spec, error) {
	var spec Spec
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "+")
		sets := make([]tileset.TileSet, len(parts))
		for i, p := range parts {
			ts, err := tileset.ParseList(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("catalogue: line %d: %w", lineNo, err)
			}
			sets[i] = ts
		}
		spec = append(spec, sets)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("catalogue: read: %w", err)
	}
	return spec, nil
}
