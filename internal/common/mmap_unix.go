//go:build !windows

// Package common provides the platform-specific memory-mapping shim shared by
// the splitter's per-worker input Source.
package common

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MmapFile memory-maps the full contents of f read-only.
//
// Each caller gets its own independent mapping; there is no shared state
// between callers mapping the same file, which is what lets every worker
// open its own view of the input without coordinating with the others.
func MmapFile(f *os.File, size int64) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", f.Name(), err)
	}
	return data, nil
}

// MunmapFile unmaps memory obtained from MmapFile.
func MunmapFile(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Munmap(data)
}
