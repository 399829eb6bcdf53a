//go:build darwin

package platform

import (
	"os"

	"golang.org/x/sys/unix"
)

// Fallocate pre-allocates disk blocks for a PDB file. On macOS this uses
// fcntl F_PREALLOCATE.
func Fallocate(file *os.File, size int64) error {
	fst := unix.Fstore_t{
		Flags:   unix.F_ALLOCATEALL,
		Posmode: unix.F_PEOFPOSMODE,
		Offset:  0,
		Length:  size,
	}

	if err := unix.FcntlFstore(file.Fd(), unix.F_PREALLOCATE, &fst); err != nil {
		return unix.Ftruncate(int(file.Fd()), size)
	}

	return unix.Ftruncate(int(file.Fd()), size)
}
