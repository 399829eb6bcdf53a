package index

import (
	"github.com/rclausecker/npuzzle/puzzle"
	"github.com/rclausecker/npuzzle/tileset"
)

// indexPermutation computes the factorial-base inversion-count index of the
// occupied positions of the tiles in ts (processed in ascending tile
// order) within posMap. posMap must contain exactly the grid positions
// occupied by ts under p.
func indexPermutation(ts tileset.TileSet, posMap tileset.TileSet, p *puzzle.Puzzle) uint64 {
	if ts.IsEmpty() {
		return 0
	}

	nTiles := uint64(ts.Count())

	leastTile := ts.Least()
	leastPos := int(p.Tiles[leastTile])
	pidx := uint64(tileset.LeastN(leastPos).Intersect(posMap).Count())
	posMap = posMap.Remove(leastPos)
	ts = ts.RemoveLeast()

	factor := uint64(1)
	for !ts.IsEmpty() {
		leastTile = ts.Least()
		factor *= nTiles
		nTiles--
		leastPos = int(p.Tiles[leastTile])
		pidx += factor * uint64(tileset.LeastN(leastPos).Intersect(posMap).Count())
		posMap = posMap.Remove(leastPos)
		ts = ts.RemoveLeast()
	}

	return pidx
}

// unindexPermutation inverts indexPermutation: given ts, the occupied
// position set posMap and the permutation index pidx, it reconstructs the
// tile placement into p.Tiles/p.Grid for every tile in [0, puzzle.Size).
// Tiles outside ts (including the zero tile) are placed arbitrarily, in
// ascending position order, into whatever positions remain; callers that
// care where the zero tile ends up must reposition it afterwards (see
// Puzzle.SetZeroPos).
func unindexPermutation(p *puzzle.Puzzle, ts tileset.TileSet, posMap tileset.TileSet, pidx uint64) {
	nTiles := uint64(ts.Count())
	cmap := posMap.Complement()

	for t := 0; t < puzzle.Size; t++ {
		if ts.Has(t) {
			cmp := int(pidx % nTiles)
			pidx /= nTiles
			nTiles--

			pos := selectNth(posMap, cmp)
			posMap = posMap.Remove(pos)
			p.Tiles[t] = uint8(pos)
			p.Grid[pos] = uint8(t)
		} else {
			pos := cmap.Least()
			cmap = cmap.RemoveLeast()
			p.Tiles[t] = uint8(pos)
			p.Grid[pos] = uint8(t)
		}
	}
}

// selectNth returns the n-th smallest element of set (0-indexed).
func selectNth(set tileset.TileSet, n int) int {
	for i := 0; i < n; i++ {
		set = set.RemoveLeast()
	}
	return set.Least()
}
