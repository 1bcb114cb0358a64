package splitter

import "errors"

var errOutOfRange = errors.New("offset out of range")

// memSource is an in-memory Source used by the splitter unit tests so the
// boundary-search and record-parsing logic can be exercised without
// touching the filesystem.
type memSource struct {
	data []byte
}

func newMemSource(s string) *memSource {
	return &memSource{data: []byte(s)}
}

func (m *memSource) Size() int64 { return int64(len(m.data)) }

func (m *memSource) ByteAt(off int64) (byte, error) {
	if off < 0 || off >= int64(len(m.data)) {
		return 0, errOutOfRange
	}
	return m.data[off], nil
}

func (m *memSource) Close() error { return nil }
