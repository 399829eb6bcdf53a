package heuristic

import (
	"fmt"
	"os"

	"github.com/rclausecker/npuzzle/pdberr"
	"github.com/rclausecker/npuzzle/tileset"
)

// Open loads (or, with flags.Create, builds) a heuristic of the given
// type for tile set ts from heudir, following original_source/
// heuristic.c's heu_open driver-priority search: an exact-type pass
// first, then (if flags.AcceptSimilar) a pass over drivers flagged as
// similar representations of the same type, then (if flags.Create) a
// creation pass using the first exact-type driver.
//
// Unless flags.NoMorph, the request is folded onto its canonical board
// symmetry before any file is named, so that symmetric tile sets share
// one file on disk; the returned Handle records the symmetry so queries
// can be pre-transformed. heudir may be empty to force in-memory
// creation with no file ever read or written.
func Open(heudir string, ts tileset.TileSet, typeStr string, flags Flags) (*Handle, error) {
	requestTS := ts
	ts = ts.Remove(tileset.ZeroTile)

	// morphTS and zmorphTS are both zero-free: heu_open itself never
	// adds the zero tile, it only picks which canonical morphism a
	// zero-aware driver will use once it adds the tile itself.
	var morphism, zmorphism tileset.Morphism
	morphTS, zmorphTS := ts, ts
	if !flags.NoMorph {
		morphism = tileset.CanonicalAutomorphism(ts)
		zmorphism = tileset.CanonicalAutomorphism(ts.Add(tileset.ZeroTile))
		morphTS = ts.Morph(morphism)
		zmorphTS = ts.Morph(zmorphism)
	}

	typeMatch := false

	tryPass := func(wantSimilar, create bool) (*Handle, error) {
		for _, d := range drivers {
			if d.similar != wantSimilar || d.typeStr != typeStr {
				continue
			}
			typeMatch = true

			folded, m := morphTS, morphism
			if d.zeroTile {
				folded, m = zmorphTS, zmorphism
			}

			h, err := d.open(heudir, folded, flags, create)
			if err != nil {
				if create {
					if flags.Verbose {
						fmt.Fprintf(os.Stderr, "Could not create heuristic for tileset %s of type %s: %v\n",
							folded.ListString(), typeStr, err)
					}
					return nil, err
				}
				continue
			}
			h.Morph = m
			h.requestTS = requestTS
			return h, nil
		}
		return nil, pdberr.ErrNotFound
	}

	if h, err := tryPass(false, false); err == nil {
		return h, nil
	}

	if flags.AcceptSimilar {
		if h, err := tryPass(true, false); err == nil {
			return h, nil
		}
	}

	if flags.Create {
		return tryPass(false, true)
	}

	if typeMatch {
		if flags.Verbose {
			suffix := ""
			if flags.AcceptSimilar {
				suffix = " or similar"
			}
			fmt.Fprintf(os.Stderr, "No heuristic for tileset %s of type %s%s found!\n",
				ts.ListString(), typeStr, suffix)
		}
		return nil, pdberr.ErrNotFound
	}

	if flags.Verbose {
		fmt.Fprintf(os.Stderr, "Unrecognized heuristic type %s for tile set %s\n", typeStr, ts.ListString())
	}
	return nil, fmt.Errorf("%w: unrecognized heuristic type %q", pdberr.ErrUsage, typeStr)
}
