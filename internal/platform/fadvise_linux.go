//go:build linux

package platform

import "golang.org/x/sys/unix"

// FadviseSequential hints to the kernel that the PDB file will be read
// sequentially, used by pdbstats and verifypdb when scanning a whole table.
// Best-effort: errors are silently ignored.
func FadviseSequential(fd int, offset, length int64) {
	_ = unix.Fadvise(fd, offset, length, unix.FADV_SEQUENTIAL)
}
