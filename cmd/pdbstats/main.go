// Pdbstats reports summary statistics for a pattern database file: its
// size, cell value histogram, a content checksum, and (with -bench) a
// random-lookup throughput measurement.
//
// Usage:
//
//	pdbstats -ts 1,2,3,6,7,8 -f 01,02,03,06,07,08.pdb
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"

	"github.com/rclausecker/npuzzle/index"
	"github.com/rclausecker/npuzzle/pdb"
	"github.com/rclausecker/npuzzle/tileset"
)

func main() {
	tsFlag := flag.String("ts", "", "comma-separated tile numbers, including 00 for the zero tile if present (required)")
	fileFlag := flag.String("f", "", "PDB file path (required)")
	benchFlag := flag.Bool("bench", false, "measure random lookup throughput")
	flag.Parse()

	if *tsFlag == "" || *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: pdbstats -ts <tiles> -f <path> [-bench]")
		os.Exit(2)
	}

	ts, err := tileset.ParseList(*tsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdbstats: %v\n", err)
		os.Exit(1)
	}

	aux := index.NewAux(ts)
	p, err := pdb.Open(*fileFlag, aux, pdb.ReadOnly)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdbstats: open: %v\n", err)
		os.Exit(1)
	}
	defer p.Close()
	p.AdviseSequential()

	var hist [256]uint64
	var unreached uint64
	hasher := xxhash.New()
	for _, t := range p.Tables {
		hasher.Write(t.Bytes())
		n := t.Len()
		for i := 0; i < n; i++ {
			v := t.Load(i)
			if v == pdb.UNREACHED {
				unreached++
				continue
			}
			hist[v]++
		}
	}

	max := 0
	for v := 255; v >= 0; v-- {
		if hist[v] > 0 {
			max = v
			break
		}
	}

	fmt.Printf("tile set:    %s\n", aux.TS.ListString())
	fmt.Printf("size:        %d bytes\n", pdb.Size(aux))
	fmt.Printf("checksum:    %016x\n", hasher.Sum64())
	fmt.Printf("unreached:   %d cells\n", unreached)
	fmt.Printf("max value:   %d\n", max)
	for v := 0; v <= max; v++ {
		if hist[v] > 0 {
			fmt.Printf("  d=%-3d %12d\n", v, hist[v])
		}
	}

	if *benchFlag {
		benchmarkLookups(p, aux)
	}
}

// benchmarkLookups measures raw Lookup throughput over random indices,
// hashing the probe sequence with murmur3 (rather than drawing it
// straight from math/rand) so the access pattern is reproducible across
// runs for the same seed, matching the reference benchmark's use of an
// independent hash to decorrelate workload generation from the code
// under test.
func benchmarkLookups(p *pdb.PDB, aux *index.Aux) {
	const n = 1_000_000
	seed := uint32(0x9e3779b9)
	rng := rand.New(rand.NewSource(42))

	start := time.Now()
	var sink byte
	var buf [8]byte
	for i := 0; i < n; i++ {
		m := rng.Uint64() % aux.NMapRank
		for j := range buf {
			buf[j] = byte(m >> (8 * j))
		}
		h1, _ := murmur3.Sum128WithSeed(buf[:], seed)
		idx := index.Index{
			MapRank: m,
			PermIdx: h1 % aux.NPerm,
		}
		if aux.HasZero {
			idx.EqIdx = int(h1 % uint64(aux.NEqClass(m)))
		}
		sink ^= p.Lookup(idx)
	}
	elapsed := time.Since(start)

	fmt.Printf("bench:       %d lookups in %v (%.1f ns/op, sink=%d)\n",
		n, elapsed, float64(elapsed.Nanoseconds())/float64(n), sink)
}
