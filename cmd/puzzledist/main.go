// Puzzledist samples random scrambled puzzles and reports the
// distribution of their IDA*-optimal solution lengths, load-testing a
// heuristic catalogue the way the reference solver's puzzledist tool
// characterises a PDB's effectiveness.
//
// Usage:
//
//	puzzledist -cat heuristics.cat -d pdbdir -n 2000 -moves 40
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/zeebo/xxh3"

	"github.com/rclausecker/npuzzle/catalogue"
	"github.com/rclausecker/npuzzle/fsm"
	"github.com/rclausecker/npuzzle/heuristic"
	"github.com/rclausecker/npuzzle/idastar"
	"github.com/rclausecker/npuzzle/puzzle"
)

func main() {
	catFlag := flag.String("cat", "", "catalogue file (required; see package catalogue's file format)")
	dirFlag := flag.String("d", "", "heuristic directory (empty: build every heuristic in memory, nothing persisted)")
	nFlag := flag.Int("n", 1000, "number of distinct random puzzles to sample")
	movesFlag := flag.Int("moves", 30, "random walk length used to scramble each sample")
	seedFlag := flag.Int64("seed", 1, "random seed")
	createFlag := flag.Bool("create", true, "create missing heuristics rather than failing")
	flag.Parse()

	if *catFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: puzzledist -cat <file> [-d dir] [-n count] [-moves k] [-seed s]")
		os.Exit(2)
	}

	f, err := os.Open(*catFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "puzzledist: %v\n", err)
		os.Exit(1)
	}
	spec, err := catalogue.ParseSpec(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "puzzledist: %v\n", err)
		os.Exit(1)
	}

	cat, closers, err := buildCatalogue(*dirFlag, spec, heuristic.Flags{Create: *createFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "puzzledist: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	pruner := fsm.Simple()
	rng := rand.New(rand.NewSource(*seedFlag))
	seen := map[uint64]bool{}
	hist := map[int]int{}
	maxLen := 0

	for sampled := 0; sampled < *nFlag; {
		p := puzzle.Solved()
		for j := 0; j < *movesFlag; j++ {
			moves := p.LegalMoves()
			p.Move(moves[rng.Intn(len(moves))])
		}

		fingerprint := xxh3.Hash(p.Grid[:])
		if seen[fingerprint] {
			continue
		}
		seen[fingerprint] = true
		sampled++

		path, err := idastar.Solve(cat, p, pruner)
		if err != nil {
			fmt.Fprintf(os.Stderr, "puzzledist: sample %d: %v\n", sampled, err)
			continue
		}
		hist[len(path)]++
		if len(path) > maxLen {
			maxLen = len(path)
		}
	}

	for l := 0; l <= maxLen; l++ {
		if hist[l] > 0 {
			fmt.Printf("%3d %6d\n", l, hist[l])
		}
	}
}

// buildCatalogue opens (or creates) one heuristic per tile set named in
// spec and assembles them into a catalogue, deduplicating tile sets that
// appear in more than one heuristic group.
func buildCatalogue(dir string, spec catalogue.Spec, flags heuristic.Flags) (*catalogue.Catalogue, []io.Closer, error) {
	cat := &catalogue.Catalogue{}
	indices := map[string]int{}
	var closers []io.Closer

	for _, group := range spec {
		var parts uint64
		for _, ts := range group {
			key := ts.ListString()
			i, ok := indices[key]
			if !ok {
				h, err := heuristic.Open(dir, ts, "pdb", flags)
				if err != nil {
					for _, c := range closers {
						c.Close()
					}
					return nil, nil, fmt.Errorf("tile set %s: %w", key, err)
				}
				i = len(cat.PDBs)
				cat.PDBs = append(cat.PDBs, h)
				closers = append(closers, h)
				indices[key] = i
			}
			parts |= 1 << uint(i)
		}
		cat.Heuristics = append(cat.Heuristics, parts)
	}

	return cat, closers, nil
}
