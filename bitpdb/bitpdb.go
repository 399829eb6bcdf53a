// Package bitpdb implements the 4-bit-per-entry compressed form of a
// pattern database: each cell stores only its distance modulo 16,
// halving storage again relative to a byte-per-cell PDB at the cost of
// needing a nearby known h-value to reconstruct the true distance.
package bitpdb

import (
	"github.com/rclausecker/npuzzle/index"
	"github.com/rclausecker/npuzzle/pdb"
)

// Table is the bit-packed form of a PDB: two cells per byte, low nibble
// first, in the same eqidx-major, ascending-maprank layout pdb.PDB uses.
type Table struct {
	Aux    *index.Aux
	Tables [][]byte
}

// FromPDB builds a Table from a fully generated PDB by taking every
// cell's distance modulo 16.
func FromPDB(p *pdb.PDB) *Table {
	t := &Table{Aux: p.Aux, Tables: make([][]byte, len(p.Tables))}
	for m, table := range p.Tables {
		n := table.Len()
		packed := make([]byte, (n+1)/2)
		for i := 0; i < n; i++ {
			v := table.Load(i) % 16
			shift := uint((i % 2) * 4)
			packed[i/2] |= v << shift
		}
		t.Tables[m] = packed
	}
	return t
}

// addr mirrors package pdb's cell addressing: eqidx*n_perm+pidx when the
// zero tile is accounted for, else just pidx.
func addr(aux *index.Aux, idx index.Index) int {
	if aux.HasZero {
		return idx.EqIdx*int(aux.NPerm) + int(idx.PermIdx)
	}
	return int(idx.PermIdx)
}

// nibble returns the raw stored value (true distance mod 16) for idx.
func (t *Table) nibble(idx index.Index) byte {
	off := addr(t.Aux, idx)
	b := t.Tables[idx.MapRank][off/2]
	shift := uint((off % 2) * 4)
	return (b >> shift) & 0xf
}
