package heuristic

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rclausecker/npuzzle/bitpdb"
	"github.com/rclausecker/npuzzle/index"
	"github.com/rclausecker/npuzzle/pdb"
	"github.com/rclausecker/npuzzle/pdberr"
	"github.com/rclausecker/npuzzle/tileset"
)

// driver describes one entry of the loader's driver table, in exactly the
// priority order original_source/heuristic.c's drivers[] array lists:
// exact, non-similar drivers first, then the similar-flagged ones.
// zeroTile marks drivers whose on-disk format accounts for the zero
// tile, which decides whether the exact- or zero-canonical morphism
// applies to a given entry.
type driver struct {
	typeStr  string
	suffix   string
	zeroTile bool
	similar  bool
	bit      bool // bitpdb-backed rather than a full byte-per-cell PDB
	zstd     bool // bitpdb.Zstd codec rather than bitpdb.Raw
}

// drivers is the driver table, ported entry for entry from
// original_source/heuristic.c's drivers[] (ipdb is omitted: no driver
// here loads or builds an identified PDB; package pdb's Identify builds
// one in memory from a full PDB, and nothing in this package calls it).
// The "z" type strings (zpdb, zbpdb, zbpdb.zst) name heuristics that
// account for the zero tile; the file suffix is the same as their
// zero-free counterpart ("pdb", "bpdb", "bpdb.zst") because what
// distinguishes the file is the zero tile's presence in the tile-list
// portion of the name, not the extension (see original_source/
// heuristic.c's z*_driver functions, which tileset_add the zero tile to
// ts before building tsstr but pass the same suffix string onward).
var drivers = []driver{
	{typeStr: "pdb", suffix: "pdb"},
	{typeStr: "zpdb", suffix: "pdb", zeroTile: true},
	{typeStr: "bpdb", suffix: "bpdb", bit: true},
	{typeStr: "zbpdb", suffix: "bpdb", zeroTile: true, bit: true},
	{typeStr: "bpdb.zst", suffix: "bpdb.zst", bit: true, zstd: true},
	{typeStr: "zbpdb.zst", suffix: "bpdb.zst", zeroTile: true, bit: true, zstd: true},

	{typeStr: "pdb", suffix: "bpdb", bit: true, similar: true},
	{typeStr: "zpdb", suffix: "bpdb", zeroTile: true, bit: true, similar: true},
	{typeStr: "bpdb.zst", suffix: "bpdb", bit: true, similar: true},
	{typeStr: "zbpdb.zst", suffix: "bpdb", zeroTile: true, bit: true, similar: true},

	{typeStr: "bpdb", suffix: "pdb", similar: true},
	{typeStr: "zbpdb", suffix: "pdb", zeroTile: true, similar: true},
	{typeStr: "bpdb.zst", suffix: "pdb", similar: true},
	{typeStr: "zbpdb.zst", suffix: "pdb", zeroTile: true, similar: true},

	{typeStr: "pdb", suffix: "bpdb.zst", bit: true, zstd: true, similar: true},
	{typeStr: "zpdb", suffix: "bpdb.zst", zeroTile: true, bit: true, zstd: true, similar: true},
	{typeStr: "bpdb", suffix: "bpdb.zst", bit: true, zstd: true, similar: true},
	{typeStr: "zbpdb", suffix: "bpdb.zst", zeroTile: true, bit: true, zstd: true, similar: true},
}

// codec returns the bitpdb codec this driver's suffix implies.
func (d driver) codec() bitpdb.Codec {
	if d.zstd {
		return bitpdb.Zstd
	}
	return bitpdb.Raw
}

// open tries to satisfy this driver for tile set ts (already morphed to
// this driver's canonical form, zero tile excluded, by the caller)
// against heudir, creating the heuristic if create is set and no file is
// found. Drivers flagged zeroTile add the zero tile to ts themselves,
// exactly as their original_source counterparts do.
func (d driver) open(heudir string, ts tileset.TileSet, flags Flags, create bool) (*Handle, error) {
	if d.zeroTile {
		ts = ts.Add(tileset.ZeroTile)
	}
	aux := index.NewAux(ts)

	var path string
	if heudir != "" {
		path = filepath.Join(heudir, ts.ListString()+"."+d.suffix)
	}

	if d.bit {
		return d.openBit(path, aux, flags, create)
	}
	return d.openFull(path, aux, flags, create)
}

func (d driver) openFull(path string, aux *index.Aux, flags Flags, create bool) (*Handle, error) {
	if path != "" {
		p, err := pdb.Open(path, aux, pdb.ReadOnly)
		if err == nil {
			if flags.Verbose {
				fmt.Fprintf(os.Stderr, "Loading PDB file %s\n", path)
			}
			return &Handle{Kind: FullPDB, Full: p}, nil
		}
		if err != pdberr.ErrNotFound {
			if flags.Verbose {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			}
			return nil, err
		}
	}

	if !create {
		return nil, pdberr.ErrNotFound
	}

	if flags.Verbose {
		fmt.Fprintf(os.Stderr, "Creating PDB for tile set %s\n", aux.TS.ListString())
	}
	p, err := pdb.Generate(context.Background(), aux, 0, nil)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := pdb.Store(path, p); err != nil && flags.Verbose {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		}
	}
	return &Handle{Kind: FullPDB, Full: p}, nil
}

func (d driver) openBit(path string, aux *index.Aux, flags Flags, create bool) (*Handle, error) {
	kind := BitPDB
	if d.zstd {
		kind = CompressedBitPDB
	}

	if path != "" {
		t, err := bitpdb.Load(path, aux, d.codec())
		if err == nil {
			if flags.Verbose {
				fmt.Fprintf(os.Stderr, "Loading bit-packed PDB file %s\n", path)
			}
			return &Handle{Kind: kind, Bit: t}, nil
		}
		if err != pdberr.ErrNotFound {
			if flags.Verbose {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			}
			return nil, err
		}
	}

	if !create {
		return nil, pdberr.ErrNotFound
	}

	if flags.Verbose {
		fmt.Fprintf(os.Stderr, "Creating bit-packed PDB for tile set %s\n", aux.TS.ListString())
	}
	full, err := pdb.Generate(context.Background(), aux, 0, nil)
	if err != nil {
		return nil, err
	}
	t := bitpdb.FromPDB(full)
	if path != "" {
		if err := bitpdb.Store(path, t, d.codec()); err != nil && flags.Verbose {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		}
	}
	return &Handle{Kind: kind, Bit: t}, nil
}
