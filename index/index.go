package index

import (
	"github.com/rclausecker/npuzzle/puzzle"
	"github.com/rclausecker/npuzzle/ranktab"
	"github.com/rclausecker/npuzzle/tileset"
)

// occupiedMap returns the set of grid positions occupied by the non-zero
// tiles of aux.TSNZ under p.
func occupiedMap(aux *Aux, p *puzzle.Puzzle) tileset.TileSet {
	var m tileset.TileSet
	aux.TSNZ.Iter(func(t int) bool {
		m = m.Add(int(p.Tiles[t]))
		return true
	})
	return m
}

// Compute maps a puzzle configuration to its structured index under aux.
// It depends only on where the tiles of aux.TS sit in p; tiles outside
// aux.TS are ignored, so every p in the same equivalence class maps to the
// same Index.
func Compute(aux *Aux, p *puzzle.Puzzle) Index {
	posMap := occupiedMap(aux, p)

	idx := Index{
		MapRank: ranktab.Rank(uint32(posMap), aux.NTile),
		PermIdx: indexPermutation(aux.TSNZ, posMap, p),
		EqIdx:   -1,
	}

	if aux.HasZero {
		idx.EqIdx = int(aux.eqt.tables[idx.MapRank].eqClass[p.ZeroPos()])
	}

	return idx
}

// Invert reconstructs a canonical representative configuration for an
// Index under aux. Tiles outside aux.TS are filled in arbitrarily, and if
// aux.TS accounts for the zero tile, it is placed at the least grid
// position of its equivalence class (the canonical representative of that
// class), regardless of where the original configuration's zero tile sat.
func Invert(aux *Aux, idx Index) *puzzle.Puzzle {
	posMap := tileset.TileSet(ranktab.Unrank(aux.NTile, idx.MapRank))

	p := &puzzle.Puzzle{}
	unindexPermutation(p, aux.TSNZ, posMap, idx.PermIdx)
	p.SyncZero()

	if aux.HasZero {
		p.SetZeroPos(canonicalZeroPos(aux, idx))
	}

	return p
}

// canonicalZeroPos returns the smallest grid position in idx's zero-tile
// equivalence class.
func canonicalZeroPos(aux *Aux, idx Index) int {
	table := &aux.eqt.tables[idx.MapRank]
	for pos := 0; pos < tileset.Size; pos++ {
		if int(table.eqClass[pos]) == idx.EqIdx {
			return pos
		}
	}
	return -1
}
