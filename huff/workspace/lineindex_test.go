package workspace

import "testing"

func TestLineIndexPosition(t *testing.T) {
	content := []byte("#define macro A() = {\n    stop\n}\n")
	idx := NewLineIndex(content)

	tests := []struct {
		name      string
		offset    int
		line      int
		character int
	}{
		{"start of file", 0, 0, 0},
		{"middle of first line", 8, 0, 8},
		{"newline byte", 21, 0, 21},
		{"start of second line", 22, 1, 0},
		{"indented token", 26, 1, 4},
		{"closing brace", 31, 2, 0},
		{"end of content", len(content), 3, 0},
		{"past the end clamps", len(content) + 10, 3, 0},
		{"negative clamps", -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, character := idx.Position(tt.offset)
			if line != tt.line || character != tt.character {
				t.Errorf("Position(%d) = (%d, %d), want (%d, %d)",
					tt.offset, line, character, tt.line, tt.character)
			}
		})
	}
}

func TestLineIndexUTF16Characters(t *testing.T) {
	// "é" is 2 bytes in UTF-8 but 1 UTF-16 code unit;
	// "𐍈" is 4 bytes in UTF-8 but 2 UTF-16 code units.
	content := []byte("// é𐍈x\nstop")
	idx := NewLineIndex(content)

	xOffset := len("// é𐍈")
	_, character := idx.Position(xOffset)
	if character != 6 {
		t.Errorf("character = %d, want 6 (3 ascii + 1 + 2 utf16 units)", character)
	}

	line, character := idx.Position(len(content))
	if line != 1 || character != 4 {
		t.Errorf("end position = (%d, %d), want (1, 4)", line, character)
	}
}

func TestLineIndexEmptyContent(t *testing.T) {
	idx := NewLineIndex(nil)
	line, character := idx.Position(0)
	if line != 0 || character != 0 {
		t.Errorf("Position(0) = (%d, %d), want (0, 0)", line, character)
	}
}
