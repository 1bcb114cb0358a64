package splitter

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/pierrec/lz4/v4"
)

// manifestFileName is the sidecar written into the output directory when
// manifest recording is enabled. It is additive and non-authoritative:
// the .csv outputs remain the sole source of truth, and nothing in the
// splitter ever reads a manifest back.
const manifestFileName = ".manifest.lz4"

// manifestEntry records one emitted group: its key, the byte range it
// occupied in the input, and the number of body bytes actually written to
// its output file.
type manifestEntry struct {
	Key   string
	Start int64
	End   int64
	Bytes int64
}

// writeManifest LZ4-compresses a length-prefixed binary encoding of entries
// to path, mirroring the spill-compression idiom used elsewhere in this
// ecosystem for high-volume intermediate data.
func writeManifest(path string, entries []manifestEntry) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("manifest: open %s: %w", path, err)
	}
	defer f.Close()

	zw := lz4.NewWriter(f)
	bw := bufio.NewWriter(zw)

	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(entries)))
	if _, err := bw.Write(hdr[:]); err != nil {
		return fmt.Errorf("manifest: write count: %w", err)
	}

	for _, e := range entries {
		if err := writeManifestEntry(bw, e); err != nil {
			return fmt.Errorf("manifest: write entry %q: %w", e.Key, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("manifest: flush: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("manifest: close lz4 writer: %w", err)
	}
	return nil
}

func writeManifestEntry(w *bufio.Writer, e manifestEntry) error {
	var buf [8]byte

	binary.BigEndian.PutUint32(buf[:4], uint32(len(e.Key)))
	if _, err := w.Write(buf[:4]); err != nil {
		return err
	}
	if _, err := w.WriteString(e.Key); err != nil {
		return err
	}

	binary.BigEndian.PutUint64(buf[:], uint64(e.Start))
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(buf[:], uint64(e.End))
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(buf[:], uint64(e.Bytes))
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	return nil
}
