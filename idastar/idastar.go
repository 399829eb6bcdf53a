// Package idastar implements the IDA* search that finds a shortest
// solution to a puzzle configuration, guided by a catalogue of pattern
// database heuristics and pruned by a move-sequence FSM.
package idastar

import (
	"math"

	"github.com/rclausecker/npuzzle/catalogue"
	"github.com/rclausecker/npuzzle/fsm"
	"github.com/rclausecker/npuzzle/pdberr"
	"github.com/rclausecker/npuzzle/puzzle"
)

// found is dfs's sentinel return value for "solution found in this
// branch"; every real bound candidate is a non-negative f-value, so a
// negative sentinel can't collide with one.
const found = -1

// infinite stands for "no branch below this bound reached the goal",
// the IDA* termination condition for an unsolvable instance.
const infinite = math.MaxInt

// Solve searches for a shortest path from start to the solved
// configuration, admissible under cat and pruned by pruner (pass
// fsm.Dummy() for no pruning). It returns the sequence of zero-tile
// moves to apply, in order. Per the search's failure semantics, Solve
// never returns a partial result: only a full path, pdberr.ErrUnsolvable,
// or it runs to resource exhaustion — there is no cancellation.
func Solve(cat *catalogue.Catalogue, start *puzzle.Puzzle, pruner *fsm.FSM) ([]puzzle.Direction, error) {
	if pruner == nil {
		pruner = fsm.Dummy()
	}

	var ph catalogue.PartialHVals
	h := cat.PartialHVal(&ph, start)

	s := &search{cat: cat, pruner: pruner}
	p := start.Copy()

	for bound := h; ; {
		s.path = s.path[:0]
		r := s.dfs(p, 0, bound, &ph, h, fsm.Begin)
		switch {
		case r == found:
			path := make([]puzzle.Direction, len(s.path))
			copy(path, s.path)
			return path, nil
		case r == infinite:
			return nil, pdberr.ErrUnsolvable
		default:
			bound = r
		}
	}
}

// search holds the state threaded through one Solve call's recursion:
// the catalogue and pruner are read-only, path accumulates the move
// sequence of the branch currently being explored.
type search struct {
	cat    *catalogue.Catalogue
	pruner *fsm.FSM
	path   []puzzle.Direction
}

// dfs explores p at depth g under bound, given p's current partial
// h-values ph and catalogue h-value h, with the pruner in state fsmState.
// It returns found if p's subtree contains the goal, or else the
// smallest f-value that exceeded bound among pruned branches (infinite
// if every branch is a dead end under the pruner).
func (s *search) dfs(p *puzzle.Puzzle, g, bound int, ph *catalogue.PartialHVals, h int, fsmState uint16) int {
	f := g + h
	if f > bound {
		return f
	}
	if h == 0 && p.IsSolved() {
		return found
	}

	next := infinite
	for d := puzzle.Direction(0); d < puzzle.NumDirections; d++ {
		neighbor, ok := puzzle.Neighbor(p.ZeroPos(), d)
		if !ok {
			continue
		}
		nstate := s.pruner.Step(p.ZeroPos(), fsmState, d)
		if nstate == fsm.Match {
			continue
		}

		movedTile := int(p.Grid[neighbor])
		p.Move(d)
		nh := s.cat.DiffHVal(ph, p, movedTile)

		s.path = append(s.path, d)
		r := s.dfs(p, g+1, bound, ph, nh, nstate)
		if r != found {
			s.path = s.path[:len(s.path)-1]
		}

		p.Move(d.Opposite())
		s.cat.DiffHVal(ph, p, movedTile) // restore ph to its pre-move values

		if r == found {
			return found
		}
		if r < next {
			next = r
		}
	}
	return next
}
