package splitter

import "bytes"

// firstInGroup finds the record-start offset of the first record, searching
// backward from soff, that shares its key with the record containing soff.
// The search never looks earlier than headerLen (the header, if any, sits
// outside the searchable body) nor later than hardEnd.
//
// This mirrors the original bisection: probe = ceil((begin+end)/2) where
// begin starts at headerLen and end starts at the record-start of soff.
// Each iteration either pulls end down to a confirmed matching record start
// or pushes begin up past a confirmed non-matching probe, so the interval
// strictly shrinks and the loop always terminates.
//
// The same call, made once with soff at a block's own starting offset and
// once with soff at its ending offset, is what lets two adjacent workers
// agree on where a straddling key-group belongs without any coordination:
// each independently arrives at the same boundary offset.
func firstInGroup(src Source, soff, hardEnd, headerLen int64, idx []int) (int64, []byte, error) {
	if soff > hardEnd {
		soff = hardEnd
	}
	if soff < headerLen {
		soff = headerLen
	}

	bStart, err := recordStart(src, soff, headerLen)
	if err != nil {
		return 0, nil, err
	}
	bkey, _, err := recordKey(src, bStart, idx)
	if err != nil {
		return 0, nil, err
	}

	begin := headerLen
	end := bStart
	probe := ceilHalf(begin, end)

	for probe > begin && probe < end {
		cStart, err := recordStart(src, probe, headerLen)
		if err != nil {
			return 0, nil, err
		}
		ckey, _, err := recordKey(src, cStart, idx)
		if err != nil {
			return 0, nil, err
		}
		if bytes.Equal(ckey, bkey) {
			end = cStart
		} else {
			begin = probe
		}
		probe = ceilHalf(begin, end)
	}

	finalStart, err := recordStart(src, probe, headerLen)
	if err != nil {
		return 0, nil, err
	}
	return finalStart, bkey, nil
}

func ceilHalf(a, b int64) int64 {
	return (a + b + 1) / 2
}
