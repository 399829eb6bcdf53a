// Package pdb implements pattern database storage: byte-per-cell exact
// distance tables, addressed by package index's (maprank, permidx,
// eqidx) triples, built by parallel BFS and backed by either an owned
// allocation or a memory-mapped file.
package pdb

import (
	"os"

	"github.com/rclausecker/npuzzle/index"
	"github.com/rclausecker/npuzzle/internal/platform"
	"github.com/rclausecker/npuzzle/puzzle"
	"github.com/rclausecker/npuzzle/tileset"
)

// Backing distinguishes how a PDB's tables are allocated: Owned tables
// live in process memory and are freed by the garbage collector; Mapped
// tables point into an open file's mmap and must be released with
// Close. Keeping the two as an explicit tag (rather than conflating them
// behind a single pointer-typed field) mirrors this package's general
// preference for tagged variants over implicit duck-typing.
type Backing int

const (
	Owned Backing = iota
	Mapped
)

// PDB is a pattern database for one tile set: index.Aux's per-maprank
// equivalence classes, paired with one distance table per maprank.
type PDB struct {
	Aux     *index.Aux
	Tables  []*cells
	Backing Backing

	file   *os.File     // non-nil only for Mapped backing
	closer func() error // non-nil only for Mapped backing
}

// AdviseSequential hints to the kernel that this PDB's file will be read
// sequentially table by table, as pdbstats and verifypdb do when scanning
// every cell. It is a no-op for an Owned PDB, which has no backing file.
func (pdb *PDB) AdviseSequential() {
	if pdb.file == nil {
		return
	}
	platform.FadviseSequential(int(pdb.file.Fd()), 0, int64(Size(pdb.Aux)))
}

// Allocate builds an owned PDB for aux, with every cell initialised to
// UNREACHED.
func Allocate(aux *index.Aux) *PDB {
	tables := make([]*cells, aux.NMapRank)
	for m := uint64(0); m < aux.NMapRank; m++ {
		tables[m] = newOwnedCells(int(tableSize(aux, m)))
	}
	return &PDB{Aux: aux, Tables: tables, Backing: Owned}
}

// tableSize returns the number of logical bytes in the table for the
// given maprank: n_perm, multiplied by the number of zero-tile
// equivalence classes if aux accounts for the zero tile. This is the
// count cells.n and every addr/decode computation work against; it is
// not generally a multiple of 4 (n_perm is k! for the table's tile
// count, and 4 | k! only once k >= 4).
func tableSize(aux *index.Aux, maprank uint64) uint64 {
	if aux.HasZero {
		return aux.NPerm * uint64(aux.NEqClass(maprank))
	}
	return aux.NPerm
}

// paddedTableSize rounds tableSize up to a multiple of 4 bytes. Store
// writes this many bytes per table (the logical bytes, then zero
// padding) and Open carves the mmap region into chunks of this size, so
// that every table starts at a 4-byte-aligned offset and cells.wrapMappedCells
// never reinterprets two tables' boundary bytes as the same atomic.Uint32 word.
func paddedTableSize(aux *index.Aux, maprank uint64) uint64 {
	return (tableSize(aux, maprank) + 3) &^ 3
}

// Size returns the total file size in bytes: the sum of every maprank
// table's padded size. This is the figure spec'd for pdb_store's output
// file.
func Size(aux *index.Aux) uint64 {
	var total uint64
	for m := uint64(0); m < aux.NMapRank; m++ {
		total += paddedTableSize(aux, m)
	}
	return total
}

// addr returns the offset of idx's cell within its maprank's table:
// eqidx*n_perm + pidx when the zero tile is accounted for, else just
// pidx. This ordering (eqidx-major) matches the reference solver's cell
// addressing.
func addr(aux *index.Aux, idx index.Index) int {
	if aux.HasZero {
		return idx.EqIdx*int(aux.NPerm) + int(idx.PermIdx)
	}
	return int(idx.PermIdx)
}

// decode inverts addr for a given maprank: it recovers (permidx, eqidx)
// from a raw table offset. eqidx is -1 when aux does not account for the
// zero tile.
func decode(aux *index.Aux, maprank uint64, off int) (permidx uint64, eqidx int) {
	if !aux.HasZero {
		return uint64(off), -1
	}
	nPerm := int(aux.NPerm)
	return uint64(off % nPerm), off / nPerm
}

// Lookup returns the stored distance for idx, or UNREACHED if that cell
// was never reached during generation.
func (pdb *PDB) Lookup(idx index.Index) byte {
	return pdb.Tables[idx.MapRank].Load(addr(pdb.Aux, idx))
}

// LookupPuzzle computes p's index under pdb.Aux and looks it up.
func (pdb *PDB) LookupPuzzle(p *puzzle.Puzzle) byte {
	return pdb.Lookup(index.Compute(pdb.Aux, p))
}

// HVal satisfies package catalogue's Provider interface: a full PDB's
// lookup is already exact and O(1), so a "fresh" query is just
// LookupPuzzle.
func (pdb *PDB) HVal(p *puzzle.Puzzle) byte {
	return pdb.LookupPuzzle(p)
}

// DiffHVal satisfies package catalogue's Provider interface. A full PDB
// never needs the previous value to disambiguate a stored value, unlike
// package bitpdb's compressed form, so oldH is ignored.
func (pdb *PDB) DiffHVal(p *puzzle.Puzzle, oldH byte) byte {
	return pdb.LookupPuzzle(p)
}

// Tiles satisfies package catalogue's Provider interface.
func (pdb *PDB) Tiles() tileset.TileSet {
	return pdb.Aux.TS
}

// candidateZeroPositions returns every grid position BFS expansion must
// consider for the cell (maprank, eqidx): the whole equivalence class
// when the zero tile is part of the tile set, or every position outside
// the map otherwise (since without a zero tile in the index, no
// equivalence classes were computed to narrow the search).
func candidateZeroPositions(aux *index.Aux, maprank uint64, eqidx int) []int {
	if aux.HasZero {
		return aux.EqClassPositions(maprank, eqidx)
	}
	return aux.Map(maprank).Complement().Slice()
}

// Close releases a Mapped PDB's backing mmap. It is a no-op for Owned
// PDBs.
func (pdb *PDB) Close() error {
	if pdb.closer == nil {
		return nil
	}
	closer := pdb.closer
	pdb.closer = nil
	return closer()
}
