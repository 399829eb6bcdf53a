package catalogue

import (
	"strings"
	"testing"

	"github.com/rclausecker/npuzzle/puzzle"
	"github.com/rclausecker/npuzzle/tileset"
)

// constProvider is a test-only Provider returning a fixed h-value for
// every configuration, set up over a fixed tile set.
type constProvider struct {
	ts tileset.TileSet
	h  byte
}

func (c constProvider) HVal(p *puzzle.Puzzle) byte               { return c.h }
func (c constProvider) DiffHVal(p *puzzle.Puzzle, old byte) byte { return c.h }
func (c constProvider) Tiles() tileset.TileSet                   { return c.ts }

func TestHValIsMaxGroupSum(t *testing.T) {
	cat := &Catalogue{
		PDBs: []Provider{
			constProvider{ts: tileset.Of(1, 2), h: 3},
			constProvider{ts: tileset.Of(3, 4), h: 5},
			constProvider{ts: tileset.Of(5, 6), h: 10},
		},
		Heuristics: []uint64{
			1<<0 | 1<<1, // 3 + 5 = 8
			1 << 2,      // 10
		},
	}
	if got := cat.HVal(puzzle.Solved()); got != 10 {
		t.Errorf("HVal = %d, want 10 (max of group sums 8 and 10)", got)
	}
}

func TestHValSumExceeding255DoesNotWrap(t *testing.T) {
	cat := &Catalogue{
		PDBs: []Provider{
			constProvider{ts: tileset.Of(1, 2), h: 200},
			constProvider{ts: tileset.Of(3, 4), h: 100},
		},
		Heuristics: []uint64{1<<0 | 1<<1}, // 200 + 100 = 300, overflows a byte
	}
	if got := cat.HVal(puzzle.Solved()); got != 300 {
		t.Errorf("HVal = %d, want 300 (group sum must not wrap mod 256)", got)
	}
}

func TestMaxHeuristicsIdentifiesWinningGroups(t *testing.T) {
	cat := &Catalogue{
		PDBs: []Provider{
			constProvider{ts: tileset.Of(1), h: 4},
			constProvider{ts: tileset.Of(2), h: 4},
		},
		Heuristics: []uint64{1 << 0, 1 << 1},
	}
	var ph PartialHVals
	cat.PartialHVal(&ph, puzzle.Solved())

	mask := cat.MaxHeuristics(&ph)
	if mask != 0b11 {
		t.Errorf("MaxHeuristics = %#b, want both groups tied at 0b11", mask)
	}
}

func TestDiffHValSkipsUnaffectedProviders(t *testing.T) {
	touched := constProvider{ts: tileset.Of(5), h: 7}
	untouched := &countingProvider{ts: tileset.Of(9), h: 2}
	cat := &Catalogue{
		PDBs:       []Provider{touched, untouched},
		Heuristics: []uint64{1<<0 | 1<<1},
	}

	var ph PartialHVals
	cat.PartialHVal(&ph, puzzle.Solved())
	if untouched.diffCalls != 0 {
		t.Fatalf("PartialHVal should not call DiffHVal, got %d calls", untouched.diffCalls)
	}

	cat.DiffHVal(&ph, puzzle.Solved(), 5) // moved tile 5, only "touched" contains it
	if untouched.diffCalls != 0 {
		t.Errorf("DiffHVal called the provider for a tile set that doesn't contain the moved tile: %d calls", untouched.diffCalls)
	}

	cat.DiffHVal(&ph, puzzle.Solved(), 9)
	if untouched.diffCalls != 1 {
		t.Errorf("DiffHVal did not call the provider owning the moved tile: %d calls", untouched.diffCalls)
	}
}

type countingProvider struct {
	ts        tileset.TileSet
	h         byte
	diffCalls int
}

func (c *countingProvider) HVal(p *puzzle.Puzzle) byte { return c.h }
func (c *countingProvider) DiffHVal(p *puzzle.Puzzle, old byte) byte {
	c.diffCalls++
	return c.h
}
func (c *countingProvider) Tiles() tileset.TileSet { return c.ts }

func TestParseSpecSkipsBlankAndCommentLines(t *testing.T) {
	src := "# a comment\n\n1,2,3\n4,5 + 6,7\n"
	spec, err := ParseSpec(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseSpec: %v", err)
	}
	if len(spec) != 2 {
		t.Fatalf("ParseSpec returned %d heuristics, want 2", len(spec))
	}
	if len(spec[0]) != 1 || spec[0][0] != tileset.Of(1, 2, 3) {
		t.Errorf("line 1 = %v, want a single tile set {1,2,3}", spec[0])
	}
	if len(spec[1]) != 2 {
		t.Errorf("line 2 should split into 2 tile sets on '+', got %d", len(spec[1]))
	}
}

func TestParseSpecRejectsBadTile(t *testing.T) {
	_, err := ParseSpec(strings.NewReader("1,2,99\n"))
	if err == nil {
		t.Error("ParseSpec accepted an out-of-range tile, want error")
	}
}
