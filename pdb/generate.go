package pdb

import (
	"context"
	"sync/atomic"

	"github.com/rclausecker/npuzzle/index"
	"github.com/rclausecker/npuzzle/parallel"
	"github.com/rclausecker/npuzzle/puzzle"
)

// Progress is called once per completed BFS round with the round number
// and the number of cells newly reached during it. A nil Progress is
// legal.
type Progress func(round int, reached uint64)

// Generate runs parallel BFS from the solved configuration in the
// abstracted space defined by aux, returning a fully populated owned
// PDB. workers is clamped via parallel.Jobs. Round r scans every cell
// equal to r and conditionally advances its undiscovered neighbours to
// r+1; generation stops once a round discovers nothing new.
func Generate(ctx context.Context, aux *index.Aux, workers int, progress Progress) (*PDB, error) {
	pdb := Allocate(aux)
	seedSolved(pdb, aux)

	for r := 0; r < int(UNREACHED)-1; r++ {
		var reached atomic.Uint64
		round := byte(r)
		err := parallel.Run(ctx, aux.NMapRank, workers, func(ctx context.Context, rng parallel.Range) error {
			return expandRange(pdb, aux, rng, round, &reached)
		})
		if err != nil {
			return nil, err
		}
		if progress != nil {
			progress(r, reached.Load())
		}
		if reached.Load() == 0 {
			break
		}
	}
	return pdb, nil
}

// seedSolved sets the solved configuration's cell to distance 0. This
// happens before any worker starts, so a plain Store (not a CAS) is
// correct.
func seedSolved(pdb *PDB, aux *index.Aux) {
	idx := index.Compute(aux, puzzle.Solved())
	pdb.Tables[idx.MapRank].Store(addr(aux, idx), 0)
}

// expandRange scans every maprank table in rng for cells at distance
// round and conditionally advances their undiscovered neighbours to
// round+1, counting how many cells it newly reached.
func expandRange(pdb *PDB, aux *index.Aux, rng parallel.Range, round byte, reached *atomic.Uint64) error {
	for m := rng.Lo; m < rng.Hi; m++ {
		table := pdb.Tables[m]
		posMap := aux.Map(m)
		n := table.Len()

		for off := 0; off < n; off++ {
			if table.Load(off) != round {
				continue
			}

			pidx, eqidx := decode(aux, m, off)
			cur := index.Index{MapRank: m, PermIdx: pidx, EqIdx: eqidx}
			rep := index.Invert(aux, cur)

			for _, z := range candidateZeroPositions(aux, m, eqidx) {
				for d := puzzle.Direction(0); d < puzzle.NumDirections; d++ {
					n2, ok := puzzle.Neighbor(z, d)
					if !ok || !posMap.Has(n2) {
						// A move that stays within the complement of the
						// map never changes (maprank, pidx); it can only
						// relabel which position in the same equivalence
						// class the zero tile sits at, which this cell
						// already accounts for.
						continue
					}

					p := rep.Copy()
					p.SetZeroPos(z)
					p.Move(d)

					succ := index.Compute(aux, p)
					if pdb.Tables[succ.MapRank].CASIfUnreached(addr(aux, succ), round+1) {
						reached.Add(1)
					}
				}
			}
		}
	}
	return nil
}
