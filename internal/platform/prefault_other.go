//go:build !linux

package platform

// PrefaultRegion is a no-op on non-Linux platforms; MADV_POPULATE_WRITE is
// Linux 5.14+ specific.
func PrefaultRegion(data []byte) {
}
