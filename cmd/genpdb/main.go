// Genpdb builds a pattern database for a given tile set and writes it to
// disk, in full byte-per-cell form or bit-packed (optionally
// zstd-compressed) form.
//
// Usage:
//
//	genpdb -ts 1,2,3,6,7,8 -o 01,02,03,06,07,08.pdb
//	genpdb -ts 1,2,3,6,7,8 -zero -bit -zst -o 00,01,02,03,06,07,08.bpdb.zst
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rclausecker/npuzzle/bitpdb"
	"github.com/rclausecker/npuzzle/index"
	"github.com/rclausecker/npuzzle/pdb"
	"github.com/rclausecker/npuzzle/tileset"
)

func main() {
	tsFlag := flag.String("ts", "", "comma-separated tile numbers (required)")
	zeroFlag := flag.Bool("zero", false, "account for the zero tile")
	outFlag := flag.String("o", "", "output file path (required)")
	jobsFlag := flag.Int("j", 0, "number of worker goroutines (0 = auto)")
	bitFlag := flag.Bool("bit", false, "store in bit-packed (4-bit) form")
	zstFlag := flag.Bool("zst", false, "zstd-compress the bit-packed form (implies -bit)")
	verboseFlag := flag.Bool("v", false, "print progress to stderr")
	flag.Parse()

	if *tsFlag == "" || *outFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: genpdb -ts <tiles> -o <path> [-zero] [-bit] [-zst] [-j n] [-v]")
		os.Exit(2)
	}

	ts, err := tileset.ParseList(*tsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "genpdb: %v\n", err)
		os.Exit(1)
	}
	if *zeroFlag {
		ts = ts.Add(tileset.ZeroTile)
	}
	if *zstFlag {
		*bitFlag = true
	}

	aux := index.NewAux(ts)

	var progress pdb.Progress
	if *verboseFlag {
		start := time.Now()
		progress = func(round int, reached uint64) {
			fmt.Fprintf(os.Stderr, "round %3d: %10d cells reached (%v elapsed)\n", round, reached, time.Since(start))
		}
	}

	p, err := pdb.Generate(context.Background(), aux, *jobsFlag, progress)
	if err != nil {
		fmt.Fprintf(os.Stderr, "genpdb: generate: %v\n", err)
		os.Exit(1)
	}

	if !*bitFlag {
		if err := pdb.Store(*outFlag, p); err != nil {
			fmt.Fprintf(os.Stderr, "genpdb: store: %v\n", err)
			os.Exit(1)
		}
		return
	}

	bt := bitpdb.FromPDB(p)
	codec := bitpdb.Raw
	if *zstFlag {
		codec = bitpdb.Zstd
	}
	if err := bitpdb.Store(*outFlag, bt, codec); err != nil {
		fmt.Fprintf(os.Stderr, "genpdb: store: %v\n", err)
		os.Exit(1)
	}
}
