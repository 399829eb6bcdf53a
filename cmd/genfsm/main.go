// Genfsm writes one of the built-in move-pruner FSMs to a file (or
// stdout) in the format package fsm's Load reads back.
//
// The reference genfsm.c derives pruning rules by exhaustively finding
// move-sequence loops in the BFS search tree; this module does not port
// that discovery algorithm (see DESIGN.md), and instead exposes the two
// FSMs package fsm constructs directly: the no-op fsm_dummy and the
// immediate-reversal-rejecting fsm_simple.
//
// Usage:
//
//	genfsm -kind simple simple.fsm
//	genfsm -kind dummy > dummy.fsm
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rclausecker/npuzzle/fsm"
)

func main() {
	kindFlag := flag.String("kind", "simple", "which FSM to write: dummy or simple")
	flag.Parse()

	var f *fsm.FSM
	switch *kindFlag {
	case "dummy":
		f = fsm.Dummy()
	case "simple":
		f = fsm.Simple()
	default:
		fmt.Fprintf(os.Stderr, "genfsm: unknown kind %q (want dummy or simple)\n", *kindFlag)
		os.Exit(2)
	}

	out := os.Stdout
	if flag.NArg() == 1 {
		file, err := os.Create(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "genfsm: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	} else if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "usage: genfsm [-kind dummy|simple] [file]")
		os.Exit(2)
	}

	if err := f.Store(out); err != nil {
		fmt.Fprintf(os.Stderr, "genfsm: %v\n", err)
		os.Exit(1)
	}
}
