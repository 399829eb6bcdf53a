package puzzle

import "testing"

func TestSolvedIsSolved(t *testing.T) {
	p := Solved()
	if !p.IsSolved() {
		t.Error("Solved() is not IsSolved()")
	}
	for t2 := 0; t2 < Size; t2++ {
		if int(p.Tiles[t2]) != t2 {
			t.Fatalf("Solved(): tile %d at position %d, want %d", t2, p.Tiles[t2], t2)
		}
	}
}

func TestNewValidatesPermutation(t *testing.T) {
	var grid [Size]uint8
	for i := range grid {
		grid[i] = uint8(i)
	}
	if _, err := New(grid); err != nil {
		t.Fatalf("New(solved grid): %v", err)
	}

	grid[0] = grid[1] // duplicate tile 1 in two cells
	if _, err := New(grid); err == nil {
		t.Error("New accepted a grid with a duplicated tile")
	}
}

func TestMoveIsOwnUndo(t *testing.T) {
	p := Solved()
	before := *p

	if !p.Move(Down) {
		t.Fatal("Move(Down) from solved board should be legal")
	}
	if *p == before {
		t.Fatal("Move(Down) did not change the board")
	}
	if !p.Move(Up) {
		t.Fatal("Move(Up) should undo Move(Down)")
	}
	if *p != before {
		t.Error("Move(d) then Move(d.Opposite()) did not restore the board")
	}
}

func TestMoveRejectsOffBoard(t *testing.T) {
	p := Solved() // zero tile at position 0, top-left corner
	if p.Move(Up) {
		t.Error("Move(Up) from the top row should be illegal")
	}
	if p.Move(Left) {
		t.Error("Move(Left) from the left column should be illegal")
	}
}

func TestLegalMovesMatchCanMove(t *testing.T) {
	p := Solved()
	moves := p.LegalMoves()
	for d := Direction(0); d < NumDirections; d++ {
		want := p.CanMove(d)
		got := false
		for _, m := range moves {
			if m == d {
				got = true
			}
		}
		if got != want {
			t.Errorf("direction %v: LegalMoves disagrees with CanMove (got %v, want %v)", d, got, want)
		}
	}
}

func TestCopyIsIndependent(t *testing.T) {
	p := Solved()
	q := p.Copy()
	q.Move(Down)
	if p.IsSolved() == q.IsSolved() && p.ZeroPos() == q.ZeroPos() {
		t.Error("Copy() aliases the original puzzle")
	}
}

func TestSetZeroPosThenSyncZero(t *testing.T) {
	p := Solved()
	p.SetZeroPos(12)
	if p.ZeroPos() != 12 {
		t.Fatalf("SetZeroPos(12): ZeroPos() = %d, want 12", p.ZeroPos())
	}
	if p.Tiles[ZeroTile] != 12 {
		t.Fatalf("SetZeroPos(12): Tiles[ZeroTile] = %d, want 12", p.Tiles[ZeroTile])
	}

	p.zero = 255 // corrupt the cache to prove SyncZero recomputes it
	p.SyncZero()
	if p.ZeroPos() != 12 {
		t.Errorf("SyncZero did not recompute ZeroPos: got %d, want 12", p.ZeroPos())
	}
}

func TestGridTilesAreMutualInverses(t *testing.T) {
	p := Solved()
	for _, d := range []Direction{Down, Right, Down, Left} {
		p.Move(d)
	}
	for g := 0; g < Size; g++ {
		tile := p.Grid[g]
		if int(p.Tiles[tile]) != g {
			t.Errorf("Grid[%d] = %d but Tiles[%d] = %d, want %d", g, tile, tile, p.Tiles[tile], g)
		}
	}
}
