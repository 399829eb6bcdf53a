package tileset

import "testing"

func TestAddHasRemove(t *testing.T) {
	ts := Empty
	ts = ts.Add(3).Add(7).Add(24)

	for _, tile := range []int{3, 7, 24} {
		if !ts.Has(tile) {
			t.Errorf("Has(%d) = false, want true", tile)
		}
	}
	if ts.Has(4) {
		t.Errorf("Has(4) = true, want false")
	}

	ts = ts.Remove(7)
	if ts.Has(7) {
		t.Error("Remove(7) did not remove tile 7")
	}
	if ts.Count() != 2 {
		t.Errorf("Count() = %d, want 2", ts.Count())
	}
}

func TestLeastGreatest(t *testing.T) {
	if got := Empty.Least(); got != -1 {
		t.Errorf("Empty.Least() = %d, want -1", got)
	}
	if got := Empty.Greatest(); got != -1 {
		t.Errorf("Empty.Greatest() = %d, want -1", got)
	}

	ts := Of(5, 1, 9, 24)
	if got := ts.Least(); got != 1 {
		t.Errorf("Least() = %d, want 1", got)
	}
	if got := ts.Greatest(); got != 24 {
		t.Errorf("Greatest() = %d, want 24", got)
	}
}

func TestComplementIntersectUnionDifference(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(2, 3, 4)

	if got := a.Intersect(b); got != Of(2, 3) {
		t.Errorf("Intersect = %v, want {2,3}", got.Slice())
	}
	if got := a.Union(b); got != Of(1, 2, 3, 4) {
		t.Errorf("Union = %v, want {1,2,3,4}", got.Slice())
	}
	if got := a.Difference(b); got != Of(1) {
		t.Errorf("Difference = %v, want {1}", got.Slice())
	}
	if got := a.Complement().Intersect(a); got != Empty {
		t.Error("a.Complement() shares tiles with a")
	}
}

func TestNextCombinationColexOrder(t *testing.T) {
	// The first few 3-subsets of {0,...} in colex order.
	want := []TileSet{
		Of(0, 1, 2),
		Of(0, 1, 3),
		Of(0, 2, 3),
		Of(1, 2, 3),
		Of(0, 1, 4),
	}
	ts := LeastN(3)
	for i, w := range want {
		if ts != w {
			t.Fatalf("combination %d = %v, want %v", i, ts.Slice(), w.Slice())
		}
		ts = NextCombination(ts)
	}
}

func TestIterSlice(t *testing.T) {
	ts := Of(3, 1, 24, 10)
	got := ts.Slice()
	want := []int{1, 3, 10, 24}
	if len(got) != len(want) {
		t.Fatalf("Slice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slice() = %v, want %v", got, want)
		}
	}

	var seen []int
	ts.Iter(func(tile int) bool {
		seen = append(seen, tile)
		return len(seen) < 2
	})
	if len(seen) != 2 {
		t.Errorf("Iter early-stop: got %d tiles, want 2", len(seen))
	}
}

func TestParseListRoundTrip(t *testing.T) {
	ts := Of(0, 1, 6, 12, 24)
	s := ts.ListString()
	got, err := ParseList(s)
	if err != nil {
		t.Fatalf("ParseList(%q): %v", s, err)
	}
	if got != ts {
		t.Errorf("ParseList(ListString(ts)) = %v, want %v", got.Slice(), ts.Slice())
	}
}

func TestParseListRejectsOutOfRange(t *testing.T) {
	if _, err := ParseList("1,2,25"); err == nil {
		t.Error("ParseList accepted tile 25, want error")
	}
	if _, err := ParseList("1,x,3"); err == nil {
		t.Error("ParseList accepted non-numeric field, want error")
	}
}

func TestParseListEmpty(t *testing.T) {
	ts, err := ParseList("")
	if err != nil {
		t.Fatalf("ParseList(\"\"): %v", err)
	}
	if ts != Empty {
		t.Errorf("ParseList(\"\") = %v, want Empty", ts.Slice())
	}
}
