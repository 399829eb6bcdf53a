// Package catalogue composes pattern databases into additive heuristic
// groups and combines the groups with a max, the admissible heuristic
// IDA* searches with.
package catalogue

import (
	"math/bits"

	"github.com/rclausecker/npuzzle/puzzle"
	"github.com/rclausecker/npuzzle/tileset"
)

// MaxPDBs and MaxHeuristics bound a catalogue's size: heuristic bitmaps
// are single uint64/uint32 words, so these are hard limits, matching the
// reference solver's pdb_catalogue (64 PDBs, 32 heuristics).
const (
	MaxPDBs       = 64
	MaxHeuristics = 32
)

// Provider is anything that can produce an exact or approximate distance
// for a puzzle configuration against the tile set it indexes. Both
// package pdb's *PDB and package bitpdb's compressed form satisfy this
// (via small adapters in package heuristic), so a catalogue never needs
// to know which kind of table backs a given part.
type Provider interface {
	// HVal returns a fresh h-value contribution of this provider for p,
	// computed without reference to any previously known value.
	HVal(p *puzzle.Puzzle) byte
	// DiffHVal returns this provider's h-value contribution for p, given
	// the contribution oldH it returned for some earlier configuration
	// one or more moves away. Full pattern databases ignore oldH (they
	// support O(1) exact lookup regardless); bit-packed ones require it
	// to disambiguate a modular-reduced stored value (see package
	// bitpdb's DiffLookup contract).
	DiffHVal(p *puzzle.Puzzle, oldH byte) byte
	// Tiles returns the provider's tile set, including the zero tile if
	// the provider accounts for it.
	Tiles() tileset.TileSet
}

// Catalogue composes up to MaxPDBs providers into up to MaxHeuristics
// additive groups; the catalogue's h-value is the maximum group sum.
type Catalogue struct {
	PDBs       []Provider // index i is "PDB i"
	Heuristics []uint64   // Heuristics[h] is a bitmask over PDBs indices
}

// PartialHVals caches each PDB's most recently computed h-value so that
// DiffHVal can skip PDBs a move didn't affect.
type PartialHVals struct {
	HVals [MaxPDBs]byte
}

// groupSum returns the sum of HVals over the PDBs named by parts. With up
// to MaxPDBs providers per group, this can legitimately exceed 255, so it
// is accumulated as an int rather than byte.
func groupSum(ph *PartialHVals, parts uint64) int {
	var sum int
	for parts != 0 {
		i := bits.TrailingZeros64(parts)
		sum += int(ph.HVals[i])
		parts &= parts - 1
	}
	return sum
}

// hval returns the catalogue h-value implied by ph: the maximum, over
// every heuristic, of the additive sum of its PDBs' cached values.
func (cat *Catalogue) hval(ph *PartialHVals) int {
	var best int
	for _, parts := range cat.Heuristics {
		if s := groupSum(ph, parts); s > best {
			best = s
		}
	}
	return best
}

// MaxHeuristics returns the bitmask of heuristics (indices into
// cat.Heuristics) whose additive sum equals ph's catalogue h-value. Used
// for diagnostics; the search itself only needs the h-value.
func (cat *Catalogue) MaxHeuristics(ph *PartialHVals) uint32 {
	best := cat.hval(ph)
	var mask uint32
	for i, parts := range cat.Heuristics {
		if groupSum(ph, parts) == best {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// PartialHVal computes and caches every PDB's h-value for p, and returns
// the resulting catalogue h.
func (cat *Catalogue) PartialHVal(ph *PartialHVals, p *puzzle.Puzzle) int {
	for i, pdb := range cat.PDBs {
		ph.HVals[i] = pdb.HVal(p)
	}
	return cat.hval(ph)
}

// DiffHVal recomputes only the PDBs whose tile set contains movedTile,
// reusing ph's cached values for the rest, and returns the updated
// catalogue h. This is IDA*'s hot path: most moves touch a small
// minority of PDBs.
func (cat *Catalogue) DiffHVal(ph *PartialHVals, p *puzzle.Puzzle, movedTile int) int {
	for i, pdb := range cat.PDBs {
		if pdb.Tiles().Has(movedTile) {
			ph.HVals[i] = pdb.DiffHVal(p, ph.HVals[i])
		}
	}
	return cat.hval(ph)
}

// HVal computes the catalogue h-value for p from scratch, discarding the
// partial-hvals buffer it used internally. Callers on a hot path (IDA*)
// should keep their own PartialHVals and call PartialHVal/DiffHVal
// instead.
func (cat *Catalogue) HVal(p *puzzle.Puzzle) int {
	var ph PartialHVals
	return cat.PartialHVal(&ph, p)
}
