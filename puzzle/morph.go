package puzzle

import "github.com/rclausecker/npuzzle/tileset"

// Morph returns the puzzle obtained by applying board symmetry m to p.
// Both the grid position and the tile number are relabelled by m: since
// the goal configuration places tile i at position i, a symmetry of the
// board is simultaneously a symmetry of tile identities, and consistently
// relabelling both is what makes compute_index(ts.Morph(m), p.Morph(m))
// agree with compute_index(ts, p) up to relabelling — the property
// package heuristic's morphism folding depends on.
func (p *Puzzle) Morph(m tileset.Morphism) *Puzzle {
	q := &Puzzle{}
	for pos := 0; pos < Size; pos++ {
		tile := int(p.Grid[pos])
		npos := tileset.MorphPosition(pos, m)
		ntile := tileset.MorphPosition(tile, m)
		q.Grid[npos] = uint8(ntile)
		q.Tiles[ntile] = uint8(npos)
	}
	q.SyncZero()
	return q
}
