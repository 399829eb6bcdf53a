// Package heuristic loads and wraps pattern database heuristics: the
// driver-priority search that chooses a concrete on-disk representation
// for a requested tile set, and the uniform handle that lets package
// idastar treat a full, bit-packed, or zstd-compressed pattern database
// identically through package catalogue's Provider interface.
package heuristic

import (
	"github.com/rclausecker/npuzzle/bitpdb"
	"github.com/rclausecker/npuzzle/pdb"
	"github.com/rclausecker/npuzzle/puzzle"
	"github.com/rclausecker/npuzzle/tileset"
)

// Flags configures Open, mirroring the reference loader's HEU_* bits.
type Flags struct {
	// Create builds and stores a heuristic from scratch if no matching
	// file is found.
	Create bool
	// Verbose logs loader decisions (file found/missing, driver tried)
	// to standard error; see Open.
	Verbose bool
	// NoMorph disables folding the request onto its canonical symmetry
	// image: Open looks only for a file matching ts exactly.
	NoMorph bool
	// AcceptSimilar allows the loader to satisfy a request with a
	// differently-encoded heuristic for the same type string (e.g.
	// answer a "pdb" request with a "bpdb" file) when no exact match
	// exists.
	AcceptSimilar bool
}

// Kind tags which concrete representation a Handle wraps.
type Kind int

const (
	FullPDB Kind = iota
	BitPDB
	CompressedBitPDB
)

// Handle is the uniform heuristic handle Open returns: a concrete
// pattern database, tagged by Kind, plus the board symmetry (if any) the
// loader folded the request through to reach the file it opened.
//
// Handle satisfies package catalogue's Provider interface directly, so a
// Catalogue can hold Handles without importing this package.
type Handle struct {
	Kind  Kind
	Morph tileset.Morphism // Identity if the request was answered without folding

	Full *pdb.PDB      // valid iff Kind == FullPDB
	Bit  *bitpdb.Table // valid iff Kind == BitPDB or CompressedBitPDB

	requestTS tileset.TileSet // the tile set as originally requested, before morphing
}

// provider returns the concrete catalogue.Provider this handle wraps.
func (h *Handle) provider() interface {
	HVal(*puzzle.Puzzle) byte
	DiffHVal(*puzzle.Puzzle, byte) byte
} {
	if h.Kind == FullPDB {
		return h.Full
	}
	return h.Bit
}

// morphed returns p transformed by h.Morph, or p itself if no folding
// took place, so the query reaches the underlying table in the same
// coordinates it was built in.
func (h *Handle) morphed(p *puzzle.Puzzle) *puzzle.Puzzle {
	if h.Morph == tileset.Identity {
		return p
	}
	return p.Morph(h.Morph)
}

// HVal satisfies package catalogue's Provider interface.
func (h *Handle) HVal(p *puzzle.Puzzle) byte {
	return h.provider().HVal(h.morphed(p))
}

// DiffHVal satisfies package catalogue's Provider interface.
func (h *Handle) DiffHVal(p *puzzle.Puzzle, oldH byte) byte {
	return h.provider().DiffHVal(h.morphed(p), oldH)
}

// Tiles satisfies package catalogue's Provider interface. It reports the
// tile set in terms of the caller's original (unmorphed) tile numbering,
// since that is the numbering package catalogue's DiffHVal checks a moved
// tile against.
func (h *Handle) Tiles() tileset.TileSet {
	return h.requestTS
}

// Close releases any mmap backing this handle's table. It is a no-op for
// an owned (freshly created, unmapped) table.
func (h *Handle) Close() error {
	if h.Kind == FullPDB {
		return h.Full.Close()
	}
	return nil
}
