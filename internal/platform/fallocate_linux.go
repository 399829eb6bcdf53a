//go:build linux

package platform

import (
	"os"

	"golang.org/x/sys/unix"
)

// Fallocate pre-allocates disk blocks for a PDB file before pdb.Store
// writes its tables. On Linux this uses the fallocate syscall.
func Fallocate(file *os.File, size int64) error {
	if err := unix.Fallocate(int(file.Fd()), 0, 0, size); err != nil {
		// Fallback to ftruncate if fallocate fails (e.g., NFS, some filesystems).
		return unix.Ftruncate(int(file.Fd()), size)
	}
	// Fallocate reserves blocks but does not set the file size.
	return unix.Ftruncate(int(file.Fd()), size)
}
