package pdb

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rclausecker/npuzzle/index"
	"github.com/rclausecker/npuzzle/parallel"
	"github.com/rclausecker/npuzzle/puzzle"
)

// Violation describes a cell pdb_verify found to be inconsistent: a cell
// at distance d greater than zero with no neighbouring cell at d-1.
type Violation struct {
	MapRank uint64
	PermIdx uint64
	EqIdx   int
	Dist    byte
}

func (v Violation) Error() string {
	return fmt.Sprintf("pdb: cell (maprank=%d, pidx=%d, eqidx=%d) has distance %d with no predecessor at %d",
		v.MapRank, v.PermIdx, v.EqIdx, v.Dist, v.Dist-1)
}

// Verify confirms, for every reached cell at distance d > 0, that at
// least one cell reachable by a single move has distance d-1. Adjacency
// is undirected (a move and its opposite connect the same pair of
// cells), so this reuses the same neighbour enumeration Generate does,
// just checking for an existing d-1 neighbour instead of writing d+1.
// It returns the first Violation found, or nil if none exists.
func Verify(ctx context.Context, pdb *PDB, workers int) error {
	aux := pdb.Aux
	var violation atomic.Pointer[Violation]

	err := parallel.Run(ctx, aux.NMapRank, workers, func(ctx context.Context, rng parallel.Range) error {
		for m := rng.Lo; m < rng.Hi; m++ {
			if violation.Load() != nil {
				return nil
			}
			if v := verifyTable(pdb, aux, m); v != nil {
				violation.Store(v)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if v := violation.Load(); v != nil {
		return *v
	}
	return nil
}

func verifyTable(pdb *PDB, aux *index.Aux, m uint64) *Violation {
	table := pdb.Tables[m]
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

		found := false
		for _, z := range candidateZeroPositions(aux, m, eqidx) {
			for dir := puzzle.Direction(0); dir < puzzle.NumDirections && !found; dir++ {
				n2, ok := puzzle.Neighbor(z, dir)
				if !ok || !posMap.Has(n2) {
					continue
				}
				p := rep.Copy()
				p.SetZeroPos(z)
				p.Move(dir)
				pred := index.Compute(aux, p)
				if pdb.Tables[pred.MapRank].Load(addr(aux, pred)) == d-1 {
					found = true
				}
			}
			if found {
				break
			}
		}

		if !found {
			return &Violation{MapRank: m, PermIdx: pidx, EqIdx: eqidx, Dist: d}
		}
	}
	return nil
}
