// Package fsm implements the move-pruner finite state machines IDA*
// consults before expanding a move: a deterministic automaton, indexed
// by the zero tile's grid position, whose transitions either accept a
// move (return a new state) or reject it as redundant.
package fsm

import "github.com/rclausecker/npuzzle/puzzle"

// Match is the reject sentinel: a transition landing here means the move
// is redundant and must not be taken. Begin is the initial state of
// every per-position automaton.
const (
	Begin uint16 = 0
	Match uint16 = 0xffff
)

// Row is one state's transition row: the next state for each move
// direction, indexed by puzzle.Direction.
type Row [puzzle.NumDirections]uint16

// FSM holds one transition table per zero-tile grid position.
type FSM struct {
	Tables [puzzle.Size][]Row
}

// Step looks up the next state after taking dir from state at zero
// position pos.
func (f *FSM) Step(pos int, state uint16, dir puzzle.Direction) uint16 {
	return f.Tables[pos][state][dir]
}

// Dummy returns the FSM that accepts every move: a single state at every
// position that always transitions back to Begin.
func Dummy() *FSM {
	f := &FSM{}
	row := Row{}
	for d := range row {
		row[d] = Begin
	}
	for pos := range f.Tables {
		f.Tables[pos] = []Row{row}
	}
	return f
}
