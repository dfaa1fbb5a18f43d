package workspace

import "unicode/utf16"

// LineIndex converts byte offsets into line/character positions. The
// parser core deals only in byte offsets; the protocol layer needs
// line-relative positions with UTF-16 character counts.
type LineIndex struct {
	content []byte
	// starts[i] is the byte offset of the first byte of line i.
	starts []int
}

func NewLineIndex(content []byte) *LineIndex {
	idx := &LineIndex{content: content, starts: []int{0}}
	for i, b := range content {
		if b == '\n' {
			idx.starts = append(idx.starts, i+1)
		}
	}
	return idx
}

// Position returns the zero-based line and UTF-16 character for a byte
// offset. Offsets beyond the end of the content clamp to the end.
func (idx *LineIndex) Position(offset int) (line, character int) {
	if offset > len(idx.content) {
		offset = len(idx.content)
	}
	if offset < 0 {
		offset = 0
	}

	lo, hi := 0, len(idx.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if idx.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	line = lo

	prefix := idx.content[idx.starts[line]:offset]
	character = len(utf16.Encode([]rune(string(prefix))))
	return line, character
}
