package bitpdb

import (
	"github.com/rclausecker/npuzzle/index"
	"github.com/rclausecker/npuzzle/puzzle"
	"github.com/rclausecker/npuzzle/tileset"
)

// DiffLookup reconstructs the true distance for p given oldH, a distance
// this table returned for some configuration reachable from p by a small
// number of moves. It unwraps the stored mod-16 nibble to the candidate
// nearest oldH.
//
// This is exact whenever the true distance is within 7 of oldH: mod-16
// reconstruction can only disambiguate a window of 8 on either side
// without extra side information (a parity bit tracking moves since
// oldH was computed would extend that to 15, per spec, but pdb_diffcode's
// exact bit layout is explicitly left opaque — see DESIGN.md). Apart from
// HVal, which anchors at zero, every call site in this module calls
// DiffLookup after a single puzzle move, where an admissible PDB's value
// changes by at most 1, so the narrower guarantee is never exercised at
// its edge there.
func (t *Table) DiffLookup(p *puzzle.Puzzle, oldH byte) byte {
	idx := index.Compute(t.Aux, p)
	return unwrap(oldH, t.nibble(idx))
}

// DiffHVal is DiffLookup under the name package catalogue's Provider
// interface expects.
func (t *Table) DiffHVal(p *puzzle.Puzzle, oldH byte) byte {
	return t.DiffLookup(p, oldH)
}

// HVal computes a fresh h-value with no known nearby value to anchor on,
// by anchoring at zero: since no candidate below zero is considered, it
// returns the stored nibble itself, which is exact while the true
// distance is below 16. This is only accurate for configurations close to
// the goal in the abstracted space;
// callers with a better anchor should prefer DiffLookup.
func (t *Table) HVal(p *puzzle.Puzzle) byte {
	return t.DiffLookup(p, 0)
}

// Tiles returns the tile set this table indexes.
func (t *Table) Tiles() tileset.TileSet {
	return t.Aux.TS
}

// unwrap finds the byte value v such that v%16 == nib and v is the
// closest such value to oldH. On a tie the candidate in oldH's own block
// of 16 (oldH rounded down to a multiple of 16, plus nib) is kept.
func unwrap(oldH, nib byte) byte {
	base := int(oldH) - int(oldH)%16
	best := base + int(nib)
	bestDist := abs(best - int(oldH))

	for _, cand := range []int{base - 16 + int(nib), base + 16 + int(nib)} {
		if cand < 0 {
			continue
		}
		if d := abs(cand - int(oldH)); d < bestDist {
			best, bestDist = cand, d
		}
	}
	if best < 0 {
		best = int(nib)
	}
	return byte(best)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
