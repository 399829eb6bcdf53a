//go:build !linux

package platform

// FadviseSequential is a no-op on non-Linux platforms; FADV_SEQUENTIAL is
// Linux-specific.
func FadviseSequential(fd int, offset, length int64) {
}
