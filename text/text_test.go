package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineMapPosition(t *testing.T) {
	m := NewLineMap([]byte("ab\ncd\r\nef\rg"))

	assert.Equal(t, 4, m.LineCount())

	tests := []struct {
		offset int
		want   LinePosition
	}{
		{0, LinePosition{0, 0}},
		{2, LinePosition{0, 2}},
		{3, LinePosition{1, 0}},
		{5, LinePosition{1, 2}},
		{7, LinePosition{2, 0}},
		{10, LinePosition{3, 0}},
		{11, LinePosition{3, 1}},
		{99, LinePosition{3, 1}},
		{-1, LinePosition{0, 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Position(tt.offset), "offset %d", tt.offset)
	}
}

func TestLineMapOffsetRoundTrip(t *testing.T) {
	content := []byte("function f() {\n    return;\n}\n")
	m := NewLineMap(content)
	for offset := 0; offset <= len(content); offset++ {
		assert.Equal(t, offset, m.Offset(m.Position(offset)))
	}
}

func TestLineMapOffsetClampsToLineEnd(t *testing.T) {
	m := NewLineMap([]byte("ab\ncd\r\nef"))
	tests := []struct {
		pos  LinePosition
		want int
	}{
		{LinePosition{0, 1}, 1},
		{LinePosition{0, 2}, 2},
		{LinePosition{0, 10}, 2},
		{LinePosition{1, 10}, 5},
		{LinePosition{2, 1}, 8},
		{LinePosition{2, 10}, 9},
		{LinePosition{5, 0}, 9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Offset(tt.pos), "position %v", tt.pos)
	}

	doc := NewDocument([]byte("ab\ncd\r\nef"))
	for line := range 3 {
		assert.Equal(t, doc.OffsetAtUTF16(line, 10), m.Offset(LinePosition{line, 10}), "line %d", line)
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Start: 2, End: 5}
	assert.False(t, r.Contains(1))
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5))
	assert.True(t, Range{Start: 3, End: 3}.Contains(3))
	assert.Equal(t, 3, r.Len())
}

func TestDocumentApply(t *testing.T) {
	doc := NewDocument([]byte("function f(){}"))

	got, err := doc.Apply(
		Edit{Range: Range{Start: 13, End: 13}, NewText: "return;"},
		Edit{Range: Range{Start: 9, End: 10}, NewText: "g"},
	)
	require.NoError(t, err)
	assert.Equal(t, "function g(){return;}", got.String())
	assert.Equal(t, "function f(){}", doc.String())

	_, err = doc.Apply(
		Edit{Range: Range{Start: 0, End: 5}},
		Edit{Range: Range{Start: 3, End: 6}},
	)
	assert.Error(t, err)
}

func TestDocumentUTF16Column(t *testing.T) {
	doc := NewDocument([]byte("s = \"é😀\";"))
	assert.Equal(t, 5, doc.UTF16Column(5))
	// é is two bytes and one UTF-16 unit, the emoji four bytes and two units.
	assert.Equal(t, 6, doc.UTF16Column(7))
	assert.Equal(t, 8, doc.UTF16Column(11))
}

func TestDocumentOffsetAtUTF16(t *testing.T) {
	doc := NewDocument([]byte("a\ns = \"é😀\";\nz"))
	assert.Equal(t, 0, doc.OffsetAtUTF16(0, 0))
	assert.Equal(t, 1, doc.OffsetAtUTF16(0, 10), "clamped to line end")
	assert.Equal(t, 7, doc.OffsetAtUTF16(1, 5))
	assert.Equal(t, 9, doc.OffsetAtUTF16(1, 6))
	assert.Equal(t, 13, doc.OffsetAtUTF16(1, 8))
	for offset := 2; offset <= 15; offset++ {
		col := doc.UTF16Column(offset)
		if offset == 8 || offset == 10 || offset == 11 || offset == 12 {
			continue
		}
		require.Equal(t, offset, doc.OffsetAtUTF16(1, col), "offset %d", offset)
	}
	assert.Equal(t, 17, doc.OffsetAtUTF16(5, 0))
}
