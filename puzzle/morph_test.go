package puzzle

import (
	"testing"

	"github.com/rclausecker/npuzzle/tileset"
)

func TestMorphIdentityIsNoOp(t *testing.T) {
	p := Solved()
	p.Move(Down)
	p.Move(Right)

	q := p.Morph(tileset.Identity)
	if *q != *p {
		t.Error("Morph(Identity) changed the puzzle")
	}
}

func TestMorphPreservesSolvedness(t *testing.T) {
	p := Solved()
	for m := tileset.Morphism(0); m < 8; m++ {
		q := p.Morph(m)
		if !q.IsSolved() {
			t.Errorf("morphism %d of the solved puzzle is not solved", m)
		}
	}
}

func TestMorphIsInvolutivePair(t *testing.T) {
	p := Solved()
	p.Move(Down)
	p.Move(Down)
	p.Move(Right)

	for m := tileset.Morphism(0); m < 8; m++ {
		q := p.Morph(m).Morph(m.Inverse())
		if *q != *p {
			t.Errorf("morphism %d is not undone by its inverse: got zero at %d, want %d", m, q.ZeroPos(), p.ZeroPos())
		}
	}
}

func TestMorphRelabelsPositionAndTileTogether(t *testing.T) {
	// Tile t always sits at the morphed position of wherever it started,
	// and the tile number at that position is itself relabelled by m —
	// this is the property that makes compute_index agree up to
	// relabelling between a tile set and its morphed image.
	p := Solved()
	p.Move(Down)

	m := tileset.Rotate90
	q := p.Morph(m)
	for pos := 0; pos < Size; pos++ {
		tile := int(p.Grid[pos])
		npos := tileset.MorphPosition(pos, m)
		ntile := tileset.MorphPosition(tile, m)
		if int(q.Grid[npos]) != ntile {
			t.Errorf("Morph: position %d held tile %d, expected morphed position %d to hold morphed tile %d, got %d",
				pos, tile, npos, ntile, q.Grid[npos])
		}
	}
}
