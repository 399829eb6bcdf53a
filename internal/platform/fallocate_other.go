//go:build !linux && !darwin

package platform

import "os"

// Fallocate pre-allocates disk blocks for a PDB file. On platforms without
// native fallocate support, Truncate is used as a fallback; it sets the
// file size but may not reserve actual disk blocks on all filesystems.
func Fallocate(file *os.File, size int64) error {
	return file.Truncate(size)
}
