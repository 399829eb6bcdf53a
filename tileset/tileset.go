// Package tileset implements the bitmask representation of a subset of the
// 25 tiles (and, by extension, the 25 grid positions) of a 5x5 sliding-tile
// puzzle.
//
// Tile 0 is the distinguished zero tile (the blank). Because the goal
// configuration places tile i at grid position i, a tile identity and a
// grid position share the same numbering, and a TileSet doubles as a
// bitmask over grid positions whenever that reading is more convenient
// (see Morph).
package tileset

import "math/bits"

// Size is the number of tiles (and grid positions) on a 5x5 board: 24
// numbered tiles plus the zero tile.
const Size = 25

// ZeroTile is the distinguished blank tile.
const ZeroTile = 0

// TileSet is a 25-bit bitmask; bit i is set iff tile i belongs to the set.
type TileSet uint32

// Full is the tile set containing every tile, including the zero tile.
const Full TileSet = (1 << Size) - 1

// Empty is the tile set containing no tiles.
const Empty TileSet = 0

// Of builds a TileSet from the given tile numbers.
func Of(tiles ...int) TileSet {
	var ts TileSet
	for _, t := range tiles {
		ts = ts.Add(t)
	}
	return ts
}

// IsEmpty reports whether ts contains no tiles.
func (ts TileSet) IsEmpty() bool {
	return ts == Empty
}

// Count returns the number of tiles in ts.
func (ts TileSet) Count() int {
	return bits.OnesCount32(uint32(ts))
}

// Has reports whether tile t belongs to ts.
func (ts TileSet) Has(t int) bool {
	return ts&(1<<uint(t)) != 0
}

// Add returns ts with tile t added.
func (ts TileSet) Add(t int) TileSet {
	return ts | 1<<uint(t)
}

// Remove returns ts with tile t removed.
func (ts TileSet) Remove(t int) TileSet {
	return ts &^ (1 << uint(t))
}

// Least returns the smallest tile number in ts, or -1 if ts is empty.
func (ts TileSet) Least() int {
	if ts == Empty {
		return -1
	}
	return bits.TrailingZeros32(uint32(ts))
}

// Greatest returns the largest tile number in ts, or -1 if ts is empty.
func (ts TileSet) Greatest() int {
	if ts == Empty {
		return -1
	}
	return 31 - bits.LeadingZeros32(uint32(ts))
}

// RemoveLeast returns ts with its smallest tile removed.
func (ts TileSet) RemoveLeast() TileSet {
	return ts & (ts - 1)
}

// Complement returns the complement of ts within the full 25-tile universe.
func (ts TileSet) Complement() TileSet {
	return Full &^ ts
}

// Intersect returns the tiles present in both ts and other.
func (ts TileSet) Intersect(other TileSet) TileSet {
	return ts & other
}

// Union returns the tiles present in either ts or other.
func (ts TileSet) Union(other TileSet) TileSet {
	return ts | other
}

// Difference returns the tiles of ts that are not in other.
func (ts TileSet) Difference(other TileSet) TileSet {
	return ts &^ other
}

// LeastN returns the tile set consisting of the n smallest tile numbers
// {0, ..., n-1}. It is the starting point for enumerating all n-subsets in
// colex order (see NextCombination).
func LeastN(n int) TileSet {
	if n <= 0 {
		return Empty
	}
	return TileSet(1<<uint(n) - 1)
}

// NextCombination returns the colex-successor of ts among all subsets of
// equal size. Used to enumerate every k-subset of the 25-tile universe in
// ascending colex order, starting from LeastN(k).
func NextCombination(ts TileSet) TileSet {
	// Classic "snoob" (same number of bits) bit trick.
	x := uint32(ts)
	smallest := x & -x
	ripple := x + smallest
	ones := (x ^ ripple) / smallest >> 2
	return TileSet(ripple | ones)
}

// Iter calls f for every tile in ts, in ascending order. It stops early if
// f returns false.
func (ts TileSet) Iter(f func(t int) bool) {
	for s := ts; s != Empty; s = s.RemoveLeast() {
		if !f(s.Least()) {
			return
		}
	}
}

// Slice returns the tiles of ts as an ascending slice.
func (ts TileSet) Slice() []int {
	out := make([]int, 0, ts.Count())
	ts.Iter(func(t int) bool {
		out = append(out, t)
		return true
	})
	return out
}
