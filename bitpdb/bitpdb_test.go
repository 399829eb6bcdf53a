package bitpdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rclausecker/npuzzle/index"
	"github.com/rclausecker/npuzzle/pdb"
	"github.com/rclausecker/npuzzle/puzzle"
	"github.com/rclausecker/npuzzle/tileset"
)

func generateFull(t *testing.T, ts tileset.TileSet) (*pdb.PDB, *index.Aux) {
	t.Helper()
	aux := index.NewAux(ts)
	p, err := pdb.Generate(context.Background(), aux, 2, nil)
	if err != nil {
		t.Fatalf("pdb.Generate: %v", err)
	}
	return p, aux
}

func TestFromPDBMatchesModulo16(t *testing.T) {
	full, aux := generateFull(t, tileset.Of(1, 2))
	bt := FromPDB(full)

	for m := uint64(0); m < aux.NMapRank; m++ {
		table := full.Tables[m]
		for off := 0; off < table.Len(); off++ {
			want := table.Load(off) % 16
			idx := index.Index{MapRank: m, PermIdx: uint64(off), EqIdx: -1}
			if got := bt.nibble(idx); got != want {
				t.Fatalf("maprank %d offset %d: nibble = %d, want %d", m, off, got, want)
			}
		}
	}
}

func TestDiffLookupExactWithinSevenOfAnchor(t *testing.T) {
	full, aux := generateFull(t, tileset.Of(0, 1, 2))
	bt := FromPDB(full)

	p := puzzle.Solved()
	for _, d := range []puzzle.Direction{puzzle.Down, puzzle.Right, puzzle.Down} {
		p.Move(d)
		want := full.LookupPuzzle(p)
		// oldH = 0 is always within range for a short scramble, well
		// inside the +-7 guarantee DiffLookup documents.
		if got := bt.DiffLookup(p, 0); got != want {
			t.Errorf("DiffLookup anchored at 0: got %d, want %d", got, want)
		}
	}
	_ = aux
}

func TestHValMatchesDiffLookupAtZero(t *testing.T) {
	full, _ := generateFull(t, tileset.Of(1, 2))
	bt := FromPDB(full)

	p := puzzle.Solved()
	p.Move(puzzle.Down)
	if got, want := bt.HVal(p), bt.DiffLookup(p, 0); got != want {
		t.Errorf("HVal = %d, want DiffLookup(p, 0) = %d", got, want)
	}
}

func TestStoreLoadRoundTrip(t *testing.T) {
	for _, codec := range []Codec{Raw, Zstd} {
		full, aux := generateFull(t, tileset.Of(0, 1, 2))
		bt := FromPDB(full)

		path := filepath.Join(t.TempDir(), "test.bpdb")
		if err := Store(path, bt, codec); err != nil {
			t.Fatalf("Store: %v", err)
		}

		loaded, err := Load(path, aux, codec)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		for m := range bt.Tables {
			if string(loaded.Tables[m]) != string(bt.Tables[m]) {
				t.Fatalf("table %d mismatch after round trip", m)
			}
		}
	}
}

func TestUnwrapPicksClosestCandidate(t *testing.T) {
	// true distance 20, nibble = 20%16 = 4; anchored near 18 should
	// reconstruct 20, not 4 or 36.
	got := unwrap(18, 4)
	if got != 20 {
		t.Errorf("unwrap(18, 4) = %d, want 20", got)
	}
}

func TestUnwrapNeverNegative(t *testing.T) {
	got := unwrap(0, 15)
	if got < 0 {
		t.Errorf("unwrap(0, 15) = %d, want >= 0", got)
	}
}
