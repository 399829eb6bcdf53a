package ranktab

import "testing"

func TestCMatchesBinomialIdentity(t *testing.T) {
	// Pascal's rule, spot-checked against the generated table.
	for n := 1; n <= Universe; n++ {
		for k := 1; k < n && k <= MaxTiles; k++ {
			want := C(n-1, k-1) + C(n-1, k)
			if got := C(n, k); got != want {
				t.Errorf("C(%d,%d) = %d, want %d", n, k, got, want)
			}
		}
	}
}

func TestCBoundaryValues(t *testing.T) {
	for n := 0; n <= Universe; n++ {
		if got := C(n, 0); got != 1 {
			t.Errorf("C(%d,0) = %d, want 1", n, got)
		}
	}
	if got := C(5, 6); got != 0 {
		t.Errorf("C(5,6) = %d, want 0 (k>n)", got)
	}
	if got := C(3, -1); got != 0 {
		t.Errorf("C(3,-1) = %d, want 0", got)
	}
}

func TestFactorial(t *testing.T) {
	want := uint64(1)
	for i := 0; i <= MaxTiles; i++ {
		if i > 0 {
			want *= uint64(i)
		}
		if got := Factorial(i); got != want {
			t.Errorf("Factorial(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestRankUnrankRoundTrip(t *testing.T) {
	for k := 1; k <= 6; k++ {
		n := CombinationCount(k)
		// Exhaustive for small k, sampled for larger k.
		step := uint64(1)
		if n > 2000 {
			step = n / 2000
		}
		for r := uint64(0); r < n; r += step {
			set := Unrank(k, r)
			got := Rank(set, k)
			if got != r {
				t.Fatalf("k=%d: Rank(Unrank(%d)) = %d, want %d", k, r, got, r)
			}
		}
	}
}

func TestUnrankProducesKElementSets(t *testing.T) {
	for k := 1; k <= 5; k++ {
		n := CombinationCount(k)
		for _, r := range []uint64{0, n / 3, n - 1} {
			set := Unrank(k, r)
			count := 0
			for s := set; s != 0; s &= s - 1 {
				count++
			}
			if count != k {
				t.Errorf("Unrank(%d, %d) has %d bits set, want %d", k, r, count, k)
			}
		}
	}
}

func TestRankIsOrderPreserving(t *testing.T) {
	// Colex successors must have strictly increasing rank.
	k := 3
	set := uint32(1<<0 | 1<<1 | 1<<2) // smallest 3-subset
	prevRank := Rank(set, k)
	for i := 0; i < 20; i++ {
		set = nextCombination(set)
		r := Rank(set, k)
		if r <= prevRank {
			t.Fatalf("rank did not increase: set %#x has rank %d, previous was %d", set, r, prevRank)
		}
		prevRank = r
	}
}

func nextCombination(x uint32) uint32 {
	smallest := x & -x
	ripple := x + smallest
	ones := (x ^ ripple) / smallest >> 2
	return ripple | ones
}
