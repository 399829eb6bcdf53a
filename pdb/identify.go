package pdb

import (
	"github.com/rclausecker/npuzzle/index"
	"github.com/rclausecker/npuzzle/pdberr"
	"github.com/rclausecker/npuzzle/puzzle"
)

// Identity is the identified form of a PDB: one extra byte per cell,
// parallel to the distance table, recording the real tile number that
// slides into this cell's zero position on a move to a cell one step
// closer to the solved configuration. This is an internal,
// regenerate-on-mismatch format (see spec's identified-PDB open
// question); Identity is built in memory only and has no on-disk form.
type Identity struct {
	Aux    *index.Aux
	Tables []*cells
}

// Identify builds the identity table for pdb by re-walking every
// reached, non-root cell and recording which tile moved on a transition
// from a distance-(d-1) predecessor. It fails with pdberr.ErrUsage for a
// PDB whose tile set does not account for the zero tile, since such
// PDBs have no zero-tile equivalence classes to anchor an identity on.
func (pdb *PDB) Identify() (*Identity, error) {
	aux := pdb.Aux
	if !aux.HasZero {
		return nil, pdberr.ErrUsage
	}

	id := &Identity{Aux: aux, Tables: make([]*cells, len(pdb.Tables))}
	for m := range pdb.Tables {
		id.Tables[m] = newOwnedCells(pdb.Tables[m].Len())
	}

	for m := uint64(0); m < aux.NMapRank; m++ {
		identifyTable(pdb, id, aux, m)
	}
	return id, nil
}

func identifyTable(pdb *PDB, id *Identity, aux *index.Aux, m uint64) {
	table := pdb.Tables[m]
	idTable := id.Tables[m]
	posMap := aux.Map(m)
	n := table.Len()

	for off := 0; off < n; off++ {
		d := table.Load(off)
		if d == 0 || d == UNREACHED {
			continue
		}

		pidx, eqidx := decode(aux, m, off)
		cur := index.Index{MapRank: m, PermIdx: pidx, EqIdx: eqidx}
		rep := index.Invert(aux, cur)

	search:
		for _, z := range aux.EqClassPositions(m, eqidx) {
			for dir := puzzle.Direction(0); dir < puzzle.NumDirections; dir++ {
				n2, ok := puzzle.Neighbor(z, dir)
				if !ok || !posMap.Has(n2) {
					continue
				}

				p := rep.Copy()
				p.SetZeroPos(z)
				movedTile := p.Grid[n2]
				p.Move(dir)

				pred := index.Compute(aux, p)
				if pdb.Tables[pred.MapRank].Load(addr(aux, pred)) == d-1 {
					idTable.Store(off, movedTile)
					break search
				}
			}
		}
	}
}

// Lookup returns the recorded tile identity for idx, or UNREACHED if
// Identify never assigned one (the root cell, or an unreached cell).
func (id *Identity) Lookup(idx index.Index) byte {
	return id.Tables[idx.MapRank].Load(addr(id.Aux, idx))
}
