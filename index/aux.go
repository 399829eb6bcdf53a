// Package index implements the bijection between partial puzzle
// configurations for a chosen tile set and the dense (maprank, permidx,
// eqidx) triples used to address pattern database cells.
package index

import (
	"sync"

	"github.com/rclausecker/npuzzle/puzzle"
	"github.com/rclausecker/npuzzle/ranktab"
	"github.com/rclausecker/npuzzle/tileset"
)

// Index is a structured index: a bijection between an equivalence class of
// partial puzzle configurations for some tile set and this triple.
type Index struct {
	MapRank uint64 // rank of the occupied-position subset, in [0, NMapRank)
	PermIdx uint64 // factorial-base permutation index, in [0, NPerm)
	EqIdx   int    // zero-tile equivalence class, or -1 if the tile set excludes the zero tile
}

// Aux is the immutable auxiliary table derived from a tile set, shared by
// every puzzle configuration indexed against that tile set.
type Aux struct {
	TS      tileset.TileSet // the tile set this table indexes, including the zero tile if present
	TSNZ    tileset.TileSet // TS with the zero tile removed
	NTile   int             // number of non-zero tiles, |TS \ {zero}|
	NMapRank uint64         // number of maps: C(25, NTile)
	NPerm   uint64          // number of permutations: NTile!
	HasZero bool            // whether TS accounts for the zero tile

	// SolvedParity caches the parity of the occupied-position set in the
	// solved configuration (i.e. TSNZ itself, since tile i sits at
	// position i when solved). Not consumed by any core operation; kept
	// for structural parity with the data model.
	SolvedParity bool

	eqt *eqTableSet // per-maprank equivalence class tables; nil unless HasZero
}

// NewAux builds the auxiliary table for tile set ts. Building the
// equivalence class tables is O(C(25, k)) where k = |ts \ {zero}|; callers
// should build one Aux per distinct tile set and reuse it.
func NewAux(ts tileset.TileSet) *Aux {
	tsnz := ts.Remove(tileset.ZeroTile)
	nTile := tsnz.Count()

	aux := &Aux{
		TS:           ts,
		TSNZ:         tsnz,
		NTile:        nTile,
		NMapRank:     ranktab.CombinationCount(nTile),
		NPerm:        ranktab.Factorial(nTile),
		HasZero:      ts.Has(tileset.ZeroTile),
		SolvedParity: tsnz.Count()%2 == 1,
	}

	if aux.HasZero {
		aux.eqt = getEqTableSet(nTile)
	}

	return aux
}

// NEqClass returns the number of zero-tile equivalence classes for the
// given maprank. It panics if TS does not account for the zero tile.
func (aux *Aux) NEqClass(maprank uint64) int {
	return aux.eqt.tables[maprank].nEqClass
}

// EqClassPositions returns the grid positions belonging to equivalence
// class eqidx at the given maprank, in ascending order. It panics if TS
// does not account for the zero tile.
func (aux *Aux) EqClassPositions(maprank uint64, eqidx int) []int {
	table := &aux.eqt.tables[maprank]
	var out []int
	for pos, c := range table.eqClass {
		if int(c) == eqidx {
			out = append(out, pos)
		}
	}
	return out
}

// Map returns the set of grid positions occupied by the tile set's
// non-zero tiles for the given maprank, i.e. the inverse of ranktab.Rank
// applied to that maprank.
func (aux *Aux) Map(maprank uint64) tileset.TileSet {
	return tileset.TileSet(ranktab.Unrank(aux.NTile, maprank))
}

// eqTableSet holds the per-maprank equivalence class tables for every
// k-subset of the 25-position grid, for a fixed k.
type eqTableSet struct {
	tables []eqTable
}

type eqTable struct {
	nEqClass int
	eqClass  [tileset.Size]int8 // eqClass[pos] = equivalence class of pos, or -1 if pos is occupied
}

var (
	eqTableCacheMu sync.Mutex
	eqTableCache   = map[int]*eqTableSet{}
)

// getEqTableSet returns the shared equivalence class tables for k
// non-zero tiles, building them on first use. Tile sets of equal size
// share the same tables, mirroring the reference solver's index_tables
// cache keyed by tile count.
func getEqTableSet(k int) *eqTableSet {
	eqTableCacheMu.Lock()
	defer eqTableCacheMu.Unlock()

	if ts, ok := eqTableCache[k]; ok {
		return ts
	}

	n := ranktab.CombinationCount(k)
	tables := make([]eqTable, n)
	posMap := tileset.LeastN(k)
	for i := uint64(0); i < n; i++ {
		tables[i] = buildEqTable(posMap)
		posMap = tileset.NextCombination(posMap)
	}

	ts := &eqTableSet{tables: tables}
	eqTableCache[k] = ts
	return ts
}

// buildEqTable partitions the complement of posMap (the grid positions not
// occupied by the tile set's non-zero tiles) into equivalence classes by
// flood-filling puzzle adjacency: two empty positions are equivalent iff
// the zero tile can move between them without ever crossing a position in
// posMap.
func buildEqTable(posMap tileset.TileSet) eqTable {
	var t eqTable
	for i := range t.eqClass {
		t.eqClass[i] = -1
	}

	complement := posMap.Complement()
	var queue []int
	complement.Iter(func(start int) bool {
		if t.eqClass[start] != -1 {
			return true
		}

		class := t.nEqClass
		t.nEqClass++
		t.eqClass[start] = int8(class)
		queue = append(queue[:0], start)

		for len(queue) > 0 {
			cur := queue[len(queue)-1]
			queue = queue[:len(queue)-1]

			for d := puzzle.Direction(0); d < puzzle.NumDirections; d++ {
				next, ok := puzzle.Neighbor(cur, d)
				if !ok || !complement.Has(next) || t.eqClass[next] != -1 {
					continue
				}
				t.eqClass[next] = int8(class)
				queue = append(queue, next)
			}
		}
		return true
	})

	return t
}
