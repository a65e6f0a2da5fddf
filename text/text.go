// Package text holds source documents and the offset/line arithmetic shared
// by the syntax tree and its consumers.
package text

import (
	"fmt"
	"sort"
	"unicode/utf16"
	"unicode/utf8"
)

// Range is a half-open byte range [Start, End) into a document.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether offset lies inside the range. An empty range
// contains its own start offset.
func (r Range) Contains(offset int) bool {
	if r.Start == r.End {
		return offset == r.Start
	}
	return offset >= r.Start && offset < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// LinePosition is a zero-based line and byte column.
type LinePosition struct {
	Line   int
	Column int
}

func (p LinePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

type LineRange struct {
	Start LinePosition
	End   LinePosition
}

// LineMap maps byte offsets to line positions. LF, CR and CRLF all end a line.
type LineMap struct {
	lineStarts []int
	// lineEnds[i] is the offset of line i's terminator, or the document
	// length for the last line.
	lineEnds []int
	length   int
}

func NewLineMap(content []byte) *LineMap {
	starts := []int{0}
	var ends []int
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			ends = append(ends, i)
			starts = append(starts, i+1)
		case '\r':
			ends = append(ends, i)
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		}
	}
	ends = append(ends, len(content))
	return &LineMap{lineStarts: starts, lineEnds: ends, length: len(content)}
}

func (m *LineMap) LineCount() int {
	return len(m.lineStarts)
}

// LineStart returns the offset of the first byte of line.
func (m *LineMap) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(m.lineStarts) {
		return m.length
	}
	return m.lineStarts[line]
}

// Position converts an offset into a line position. Offsets outside the
// document are clamped.
func (m *LineMap) Position(offset int) LinePosition {
	if offset < 0 {
		offset = 0
	}
	if offset > m.length {
		offset = m.length
	}
	line := sort.Search(len(m.lineStarts), func(i int) bool {
		return m.lineStarts[i] > offset
	}) - 1
	return LinePosition{Line: line, Column: offset - m.lineStarts[line]}
}

// Offset converts a line position back into an offset. Columns past the end
// of the line clamp to the line's terminator, lines past the end of the
// document to its length.
func (m *LineMap) Offset(p LinePosition) int {
	if p.Line >= len(m.lineStarts) {
		return m.length
	}
	if p.Line < 0 {
		p.Line = 0
	}
	offset := m.lineStarts[p.Line] + max(p.Column, 0)
	return min(offset, m.lineEnds[p.Line])
}

func (m *LineMap) LineRange(r Range) LineRange {
	return LineRange{Start: m.Position(r.Start), End: m.Position(r.End)}
}

// Document is an immutable source text with its line map.
type Document struct {
	content []byte
	lines   *LineMap
}

func NewDocument(content []byte) *Document {
	return &Document{content: content, lines: NewLineMap(content)}
}

func (d *Document) Content() []byte {
	return d.content
}

func (d *Document) String() string {
	return string(d.content)
}

func (d *Document) Len() int {
	return len(d.content)
}

func (d *Document) Lines() *LineMap {
	return d.lines
}

func (d *Document) Slice(r Range) string {
	return string(d.content[r.Start:r.End])
}

// UTF16Column returns the column of offset counted in UTF-16 code units, the
// unit editors speaking LSP expect.
func (d *Document) UTF16Column(offset int) int {
	pos := d.lines.Position(offset)
	start := d.lines.LineStart(pos.Line)
	column := 0
	for _, r := range string(d.content[start : start+pos.Column]) {
		if r == utf8.RuneError {
			column++
			continue
		}
		column += utf16.RuneLen(r)
	}
	return column
}

// OffsetAtUTF16 is the inverse of UTF16Column: it converts a line and a
// UTF-16 column into a byte offset. Columns past the end of the line clamp
// to the line end.
func (d *Document) OffsetAtUTF16(line, column int) int {
	if line >= d.lines.LineCount() {
		return len(d.content)
	}
	offset := d.lines.LineStart(line)
	end := len(d.content)
	if line+1 < d.lines.LineCount() {
		end = d.lines.LineStart(line + 1)
	}
	units := 0
	for offset < end && units < column {
		r, size := utf8.DecodeRune(d.content[offset:end])
		if r == '\n' || r == '\r' {
			break
		}
		if r == utf8.RuneError {
			units++
		} else {
			units += utf16.RuneLen(r)
		}
		offset += size
	}
	return offset
}

// Edit replaces the bytes in Range with NewText.
type Edit struct {
	Range   Range
	NewText string
}

// Apply returns a new document with the edits applied. Edits may be given in
// any order but must not overlap.
func (d *Document) Apply(edits ...Edit) (*Document, error) {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Range.Start < sorted[j].Range.Start
	})

	out := make([]byte, 0, len(d.content))
	last := 0
	for _, e := range sorted {
		if e.Range.Start < last || e.Range.End < e.Range.Start || e.Range.End > len(d.content) {
			return nil, fmt.Errorf("invalid edit range %s", e.Range)
		}
		out = append(out, d.content[last:e.Range.Start]...)
		out = append(out, e.NewText...)
		last = e.Range.End
	}
	out = append(out, d.content[last:]...)
	return NewDocument(out), nil
}
