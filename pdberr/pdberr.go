// Package pdberr defines the exported error sentinels shared across this
// module's packages.
//
// This is the single source of truth for error values. Every package that
// needs to signal one of the five kinds from the error handling design
// imports from here, so that errors.Is checks work across package
// boundaries regardless of how deeply an error has been wrapped.
package pdberr

import "errors"

// Not found: a file expected by the heuristic loader or a CLI is absent.
// Callers treat this as recoverable — heu.Open tries alternative
// representations or falls back to creating the heuristic.
var ErrNotFound = errors.New("pdb: file not found")

// Malformed: a file was present but its declared tile set does not match
// its actual size, or its header/magic bytes failed to parse.
var ErrMalformed = errors.New("pdb: malformed file")

// Resource: an allocation failed. Per the error handling policy this is
// fatal — the process cannot continue without the heuristic it was trying
// to build — but the sentinel lets tests assert on the failure kind before
// the process would abort.
var ErrResource = errors.New("pdb: resource allocation failed")

// I/O: a transient read or write failure. Surfaced to the caller; does not
// invalidate an already-built in-memory PDB.
var ErrIO = errors.New("pdb: i/o error")

// Usage: an invalid argument — an unknown heuristic type string, a thread
// count above PDB_MAX_JOBS, a catalogue file that names an unrecognized
// tile set.
var ErrUsage = errors.New("pdb: usage error")

// ErrUnreachable indicates a pattern database cell that was never reached
// by breadth-first expansion; returned by lookups that need to report this
// as an error rather than the sentinel UNREACHED byte value.
var ErrUnreachable = errors.New("pdb: index not reached during generation")

// ErrUnsolvable is returned by the search when no solution exists for the
// given puzzle and bound.
var ErrUnsolvable = errors.New("pdb: puzzle is not solvable")
