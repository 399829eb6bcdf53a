// Verifypdb checks a pattern database file against testable property 6
// (PDB verification law): every cell with value d > 0 must have a
// one-move neighbour with value d - 1.
//
// Usage:
//
//	verifypdb -ts 1,2,3,6,7,8 -f 01,02,03,06,07,08.pdb
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rclausecker/npuzzle/index"
	"github.com/rclausecker/npuzzle/pdb"
	"github.com/rclausecker/npuzzle/tileset"
)

func main() {
	tsFlag := flag.String("ts", "", "comma-separated tile numbers, including 00 for the zero tile if present (required)")
	fileFlag := flag.String("f", "", "PDB file path (required)")
	jobsFlag := flag.Int("j", 0, "number of worker goroutines (0 = auto)")
	flag.Parse()

	if *tsFlag == "" || *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: verifypdb -ts <tiles> -f <path> [-j n]")
		os.Exit(2)
	}

	ts, err := tileset.ParseList(*tsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verifypdb: %v\n", err)
		os.Exit(1)
	}

	aux := index.NewAux(ts)
	p, err := pdb.Open(*fileFlag, aux, pdb.ReadOnly)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verifypdb: open: %v\n", err)
		os.Exit(1)
	}
	defer p.Close()
	p.AdviseSequential()

	if err := pdb.Verify(context.Background(), p, *jobsFlag); err != nil {
		fmt.Fprintf(os.Stderr, "verifypdb: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("OK")
}
