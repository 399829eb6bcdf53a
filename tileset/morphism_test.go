package tileset

import "testing"

func TestMorphTableIsPermutation(t *testing.T) {
	for m := Morphism(0); m < numMorphisms; m++ {
		var seen [Size]bool
		for pos := 0; pos < Size; pos++ {
			np := morphTable[m][pos]
			if np < 0 || np >= Size {
				t.Fatalf("morphism %d maps %d out of range: %d", m, pos, np)
			}
			if seen[np] {
				t.Fatalf("morphism %d is not a bijection: %d hit twice", m, np)
			}
			seen[np] = true
		}
	}
}

func TestInverseUndoesMorphism(t *testing.T) {
	for m := Morphism(0); m < numMorphisms; m++ {
		inv := m.Inverse()
		for pos := 0; pos < Size; pos++ {
			if got := MorphPosition(MorphPosition(pos, m), inv); got != pos {
				t.Fatalf("morphism %d inverse %d: round-trip of %d gave %d", m, inv, pos, got)
			}
		}
	}
}

func TestIdentityMorphismIsNoOp(t *testing.T) {
	ts := Of(1, 5, 9, 24)
	if got := ts.Morph(Identity); got != ts {
		t.Errorf("Identity.Morph = %v, want %v", got.Slice(), ts.Slice())
	}
}

func TestMorphPreservesCardinality(t *testing.T) {
	ts := Of(0, 3, 7, 12, 19)
	for m := Morphism(0); m < numMorphisms; m++ {
		if got := ts.Morph(m).Count(); got != ts.Count() {
			t.Errorf("morphism %d changed cardinality: %d -> %d", m, ts.Count(), got)
		}
	}
}

func TestCanonicalAutomorphismIsMinimal(t *testing.T) {
	ts := Of(4, 9, 14, 19, 24) // the rightmost column
	m := CanonicalAutomorphism(ts)
	canon := ts.Morph(m)
	for alt := Morphism(0); alt < numMorphisms; alt++ {
		if image := ts.Morph(alt); image < canon {
			t.Errorf("CanonicalAutomorphism picked %v (image %v), but morphism %d gives smaller image %v",
				m, canon.Slice(), alt, image.Slice())
		}
	}
}

func TestCanonicalAutomorphismStableUnderSymmetry(t *testing.T) {
	// Two tile sets related by a board symmetry must fold to the same
	// canonical image, which is the whole point of folding symmetric
	// heuristic requests onto one file.
	ts := Of(1, 2, 6, 7)
	for m := Morphism(0); m < numMorphisms; m++ {
		rotated := ts.Morph(m)
		canonTS := ts.Morph(CanonicalAutomorphism(ts))
		canonRotated := rotated.Morph(CanonicalAutomorphism(rotated))
		if canonTS != canonRotated {
			t.Errorf("tile set %v and its image under morphism %d canonicalize differently: %v vs %v",
				ts.Slice(), m, canonTS.Slice(), canonRotated.Slice())
		}
	}
}
