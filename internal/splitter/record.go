package splitter

// recordStart walks backward from off to find the first byte of the record
// that contains off. It stops at the byte immediately following the nearest
// preceding record delimiter, or at floor if off's record is the first one
// in the searchable body (floor is the header length, or 0 when there is no
// header). off itself may sit anywhere inside the record, including on its
// terminating delimiter. An off at or past the end of src is treated as the
// last byte of src.
func recordStart(src Source, off, floor int64) (int64, error) {
	if size := src.Size(); off >= size {
		off = size - 1
	}
	if off <= floor {
		return floor, nil
	}
	pos := off - 1
	for {
		b, err := src.ByteAt(pos)
		if err != nil {
			return 0, err
		}
		if b == recordDelim {
			return pos + 1, nil
		}
		if pos <= floor {
			return floor, nil
		}
		pos--
	}
}

// recordKey extracts the key for the record beginning at start, built from
// the 1-based field indices in idx (already sorted ascending). Multiple
// indices are joined with '.' in the order given. A record with fewer
// fields than the highest requested index contributes an empty component
// for each missing field, so the key is always well-defined regardless of
// row width.
//
// It returns the key bytes and the offset one past the record's terminating
// delimiter (or the source size, if the record is the last one and
// unterminated).
func recordKey(src Source, start int64, idx []int) ([]byte, int64, error) {
	size := src.Size()
	if start >= size {
		return nil, size, nil
	}

	fieldStart := start
	field := 1
	fields := make([][]byte, 0, len(idx))
	wantSet := make(map[int]bool, len(idx))
	for _, i := range idx {
		wantSet[i] = true
	}
	collected := make(map[int][]byte, len(idx))

	pos := start
	for {
		if pos >= size {
			if wantSet[field] {
				collected[field] = src2slice(src, fieldStart, pos)
			}
			break
		}
		b, err := src.ByteAt(pos)
		if err != nil {
			return nil, 0, err
		}
		if b == fieldDelim {
			if wantSet[field] {
				collected[field] = src2slice(src, fieldStart, pos)
			}
			field++
			pos++
			fieldStart = pos
			continue
		}
		if b == recordDelim {
			if wantSet[field] {
				collected[field] = src2slice(src, fieldStart, pos)
			}
			pos++
			break
		}
		pos++
	}

	for _, i := range idx {
		fields = append(fields, collected[i])
	}
	return joinFields(fields), pos, nil
}

// src2slice materializes the bytes in [begin, end) from src. Sources are
// backed by an in-memory mapping, so this never touches disk beyond the
// initial mmap.
func src2slice(src Source, begin, end int64) []byte {
	if end <= begin {
		return nil
	}
	out := make([]byte, end-begin)
	for i := range out {
		b, err := src.ByteAt(begin + int64(i))
		if err != nil {
			return out[:i]
		}
		out[i] = b
	}
	return out
}

// joinFields concatenates field values with '.', matching the multi-key
// convention: a record shorter than the requested field list contributes
// empty strings for its missing trailing fields rather than an error.
func joinFields(fields [][]byte) []byte {
	if len(fields) == 1 {
		return fields[0]
	}
	total := len(fields) - 1
	for _, f := range fields {
		total += len(f)
	}
	out := make([]byte, 0, total)
	for i, f := range fields {
		if i > 0 {
			out = append(out, '.')
		}
		out = append(out, f...)
	}
	return out
}
