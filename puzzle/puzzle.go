// Package puzzle implements the board representation and move generation
// for the 24-puzzle family on a 5x5 grid.
package puzzle

import (
	"fmt"

	"github.com/rclausecker/npuzzle/tileset"
)

// Size is the number of tiles (and grid squares): 24 numbered tiles plus
// the zero tile.
const Size = tileset.Size

// side is the width/height of the board in grid positions.
const side = 5

// Puzzle is a board configuration. Tiles and Grid are mutual inverses: for
// every tile t, Grid[Tiles[t]] == t. Exactly one entry equals ZeroTile.
type Puzzle struct {
	Tiles [Size]uint8 // Tiles[t] is the grid position of tile t.
	Grid  [Size]uint8 // Grid[g] is the tile occupying grid position g.
	zero  uint8       // cached grid position of the zero tile
}

// ZeroTile is the blank tile; see tileset.ZeroTile.
const ZeroTile = tileset.ZeroTile

// Solved is the solved configuration: tile t sits at grid position t.
func Solved() *Puzzle {
	p := &Puzzle{}
	for i := 0; i < Size; i++ {
		p.Tiles[i] = uint8(i)
		p.Grid[i] = uint8(i)
	}
	p.zero = ZeroTile
	return p
}

// New builds a Puzzle from a grid array (grid[g] = tile at position g). It
// validates that grid is a permutation of 0..Size-1.
func New(grid [Size]uint8) (*Puzzle, error) {
	var seen [Size]bool
	p := &Puzzle{}
	for g, t := range grid {
		if int(t) >= Size || seen[t] {
			return nil, fmt.Errorf("puzzle: invalid configuration: tile %d out of range or duplicated", t)
		}
		seen[t] = true
		p.Grid[g] = t
		p.Tiles[t] = uint8(g)
		if t == ZeroTile {
			p.zero = uint8(g)
		}
	}
	return p, nil
}

// ZeroPos returns the grid position of the zero tile.
func (p *Puzzle) ZeroPos() int {
	return int(p.zero)
}

// IsSolved reports whether every tile sits at its goal position.
func (p *Puzzle) IsSolved() bool {
	for t := 0; t < Size; t++ {
		if p.Tiles[t] != uint8(t) {
			return false
		}
	}
	return true
}

// Copy returns an independent copy of p.
func (p *Puzzle) Copy() *Puzzle {
	q := *p
	return &q
}

// String renders the board as 5 rows of 5 two-digit tile numbers.
func (p *Puzzle) String() string {
	s := make([]byte, 0, Size*3+side)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			t := p.Grid[row*side+col]
			s = append(s, byte('0'+t/10), byte('0'+t%10), ' ')
		}
		s = append(s, '\n')
	}
	return string(s)
}
