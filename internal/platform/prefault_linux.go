//go:build linux

package platform

import "golang.org/x/sys/unix"

// madvPopulateWrite was added in Linux 5.14. On older kernels, madvise
// returns EINVAL, which is ignored.
const madvPopulateWrite = 23

// PrefaultRegion asks the kernel to prefault pages of a mapped PDB table
// for writing, reducing page-fault stalls on later stores; pdb.Open calls
// it for copy-on-write (ReadWritePrivate) mappings.
func PrefaultRegion(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, madvPopulateWrite)
}
