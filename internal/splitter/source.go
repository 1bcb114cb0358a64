package splitter

import (
	"fmt"
	"os"

	"github.com/jmcarter9t/filesplitter/internal/common"
)

// Record and field delimiters are fixed for the whole tool, matching the
// distilled data model: R is the record terminator, F separates fields
// within a record.
const (
	recordDelim = '\n'
	fieldDelim  = ','
)

// Source is a random-access, read-only view of the input file. Every worker
// opens its own Source over the same path; nothing in this interface is
// shared between callers, which is what lets the boundary search run without
// coordinating across goroutines.
type Source interface {
	// Size returns the number of bytes in the mapped view.
	Size() int64
	// ByteAt returns the byte at offset off. off must be in [0, Size()).
	ByteAt(off int64) (byte, error)
	Close() error
}

// mmapSource memory-maps the whole file once and serves ByteAt as a plain
// slice index, so probing during the bisection search costs no syscalls.
type mmapSource struct {
	f    *os.File
	data []byte
}

// openSource opens path and maps it read-only. Each call produces an
// independent mapping — safe to call once per worker goroutine.
func openSource(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source %s: %w", path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat source %s: %w", path, err)
	}
	data, err := common.MmapFile(f, fi.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	return &mmapSource{f: f, data: data}, nil
}

func (s *mmapSource) Size() int64 { return int64(len(s.data)) }

func (s *mmapSource) ByteAt(off int64) (byte, error) {
	if off < 0 || off >= int64(len(s.data)) {
		return 0, fmt.Errorf("offset %d out of range [0,%d)", off, len(s.data))
	}
	return s.data[off], nil
}

func (s *mmapSource) Close() error {
	if err := common.MunmapFile(s.data); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}
