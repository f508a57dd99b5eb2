package allocator

import "unsafe"

// LineMap is the side table of one mark byte per line, addressable by line
// index. It lives in the last LineCount bytes of a block (see BumpBlock),
// so LineMap itself only stores a pointer to that trailing region.
type LineMap struct {
	lines unsafe.Pointer
}

// newLineMap wraps the mark-byte region starting at base and zero-fills it.
// base must point at the first of LineCount bytes reserved for line marks.
func newLineMap(base unsafe.Pointer) LineMap {
	lm := LineMap{lines: base}
	for i := 0; i < LineCount; i++ {
		lm.set(i, 0)
	}

	return lm
}

func (lm LineMap) set(index int, v byte) {
	*(*byte)(unsafe.Add(lm.lines, index)) = v
}

func (lm LineMap) get(index int) byte {
	return *(*byte)(unsafe.Add(lm.lines, index))
}

// FindNextAvailableHole walks line marks downward from startingAt (the
// previous hole's limit, in block-relative bytes) looking for a run of
// consecutive unmarked lines at least lines_required long. It returns the
// hole as a (cursor, limit) byte-offset pair, or ok=false if no hole exists
// below startingAt.
//
// When a run ends at a marked line, the free line immediately above that
// mark is treated as conservatively marked and excluded from the returned
// hole: a future tracer may only mark the first line of a multi-line
// object, so the line just above a mark could still hold the tail of a
// live object.
func (lm LineMap) FindNextAvailableHole(startingAt, allocSize uintptr) (cursor, limit uintptr, ok bool) {
	startingLine := int(startingAt / LineSize)
	linesRequired := int((allocSize + LineSize - 1) / LineSize)

	count := 0
	end := startingLine

	for index := startingLine - 1; index >= 0; index-- {
		if lm.get(index) == 0 {
			count++

			if index == 0 && count >= linesRequired {
				return uintptr(end) * LineSize, 0, true
			}

			continue
		}

		if count > linesRequired {
			limit := uintptr(index+2) * LineSize
			cursor := uintptr(end) * LineSize

			return cursor, limit, true
		}

		count = 0
		end = index
	}

	return 0, 0, false
}
