package splitter

import (
	"path/filepath"

	"github.com/jmcarter9t/filesplitter/internal/common"
	"github.com/jmcarter9t/filesplitter/internal/diag"
)

// BlockHandler owns one contiguous raw byte range of the input and turns it
// into zero or more key files. Each handler opens its own Source, so no
// worker ever touches another worker's file handle or mapping.
type BlockHandler struct {
	id         int
	inputPath  string
	outputDir  string
	header     []byte
	keyIndices []int
	logger     *diag.Logger
	fileSize   int64
	headerLen  int64
	manifest   chan<- manifestEntry
}

// Run processes the raw range [rawBegin, rawEnd). The range is a scheduling
// convenience, not the true group boundary: before emitting anything, Run
// moves each end back to the start of the key-group that contains it (the
// tail block keeps the end of file as its end), so a key that straddles
// rawBegin or rawEnd is never split across two output files. A straddling
// group is emitted by the block whose raw range holds the group's last byte.
func (h *BlockHandler) Run(rawBegin, rawEnd int64) {
	h.logger.Tracef(h.id, "block raw bounds [%d,%d)", rawBegin, rawEnd)

	src, err := openSource(h.inputPath)
	if err != nil {
		h.logger.Errorf(h.id, "open source: %v", err)
		return
	}
	defer src.Close()

	begin, bkey, err := firstInGroup(src, rawBegin, rawEnd, h.headerLen, h.keyIndices)
	if err != nil {
		h.logger.Errorf(h.id, "resolve block start: %v", err)
		return
	}
	h.logger.Tracef(h.id, "block adjusted start: %d with key %q", begin, bkey)

	end := rawEnd
	if end >= h.fileSize {
		end = h.fileSize
	} else {
		end, _, err = firstInGroup(src, rawEnd, rawEnd, h.headerLen, h.keyIndices)
		if err != nil {
			h.logger.Errorf(h.id, "resolve block end: %v", err)
			return
		}
	}
	h.logger.Tracef(h.id, "block adjusted end: %d", end)

	if begin == end {
		h.logger.Tracef(h.id, "homogeneous key across block, nothing owned here")
		return
	}

	totalBytes := end - begin
	h.logger.Tracef(h.id, "total bytes to write: %d", totalBytes)

	for end > begin {
		epos, ekey, err := firstInGroup(src, end-1, end, h.headerLen, h.keyIndices)
		if err != nil {
			h.logger.Errorf(h.id, "resolve group boundary: %v", err)
			return
		}

		outPath := filepath.Join(h.outputDir, common.SanitizeKey(ekey)+".csv")
		n, err := transfer(h.inputPath, outPath, epos, end-epos, h.header)
		if err != nil {
			h.logger.Errorf(h.id, "transfer group %q: %v", ekey, err)
		} else {
			h.logger.Tracef(h.id, "wrote %d bytes for key %q to %s", n, ekey, outPath)
			if h.manifest != nil {
				h.manifest <- manifestEntry{
					Key:   string(ekey),
					Start: epos,
					End:   end,
					Bytes: n,
				}
			}
		}

		totalBytes -= n
		end = epos
	}

	if totalBytes != 0 {
		h.logger.Warningf(h.id, "byte accounting mismatch: %d bytes unaccounted for", totalBytes)
	}
}
