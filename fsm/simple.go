package fsm

import "github.com/rclausecker/npuzzle/puzzle"

// Simple returns the FSM that rejects only immediate move reversals: its
// states are "no history" (Begin) and, for each direction, "the last
// move was this direction"; taking the opposite direction from such a
// state is rejected.
//
// Positions with the same set of legal directions (e.g. the three
// non-corner cells along one edge, or the nine interior cells) get the
// same table, built once and shared — the same row-shape aliasing the
// reference solver's fsm.c expresses with #define, just computed here
// instead of hand-enumerated.
func Simple() *FSM {
	f := &FSM{}
	cache := map[uint8][]Row{}

	for pos := 0; pos < puzzle.Size; pos++ {
		mask := legalDirMask(pos)
		rows, ok := cache[mask]
		if !ok {
			rows = simpleRows(mask)
			cache[mask] = rows
		}
		f.Tables[pos] = rows
	}
	return f
}

// legalDirMask returns the bitmask of directions legal from pos.
func legalDirMask(pos int) uint8 {
	var mask uint8
	for d := puzzle.Direction(0); d < puzzle.NumDirections; d++ {
		if _, ok := puzzle.Neighbor(pos, d); ok {
			mask |= 1 << uint(d)
		}
	}
	return mask
}

// simpleRows builds the state table for a position with the given legal
// direction mask: state 0 is Begin, state 1+d is "last move was
// direction d".
func simpleRows(mask uint8) []Row {
	rows := make([]Row, 1+int(puzzle.NumDirections))

	for state := range rows {
		for d := puzzle.Direction(0); d < puzzle.NumDirections; d++ {
			if mask&(1<<uint(d)) == 0 {
				// Illegal here; the search never takes this direction
				// from this position, but reject defensively.
				rows[state][d] = Match
				continue
			}
			if state != 0 && puzzle.Direction(state-1) == d.Opposite() {
				rows[state][d] = Match
				continue
			}
			rows[state][d] = uint16(1 + int(d))
		}
	}
	return rows
}
