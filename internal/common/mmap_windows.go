//go:build windows

package common

import (
	"io"
	"os"
)

// MmapFile falls back to reading the whole file into memory on Windows, to
// avoid the unsafe pointer arithmetic a real mapping would need without an
// external library. The random-access ByteAt contract built on top of this
// slice behaves identically either way.
func MmapFile(f *os.File, size int64) ([]byte, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return io.ReadAll(f)
}

// MunmapFile is a no-op for the ReadAll-backed fallback.
func MunmapFile(data []byte) error {
	return nil
}
