// Package textbuf provides an in-memory line buffer, carets, and a register
// implementing the engine's host interfaces. It is the reference host used
// by the terminal UI and the test suites.
package textbuf

import (
	"strings"
)

// Buffer stores text as a slice of rune lines. Offsets count one character
// per line separator; the buffer itself never stores the separators.
type Buffer struct {
	lines [][]rune

	// wrapWidth > 0 enables soft wrapping for visual line queries.
	wrapWidth int
}

// NewBuffer creates a buffer holding the given text. An empty string yields
// a single empty line.
func NewBuffer(text string) *Buffer {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return &Buffer{lines: lines}
}

// SetWrapWidth sets the soft-wrap width in display cells; zero disables
// wrapping.
func (b *Buffer) SetWrapWidth(w int) {
	b.wrapWidth = w
}

// WrapWidth returns the current soft-wrap width, zero when disabled.
func (b *Buffer) WrapWidth() int {
	return b.wrapWidth
}

// String returns the full buffer text.
func (b *Buffer) String() string {
	parts := make([]string, len(b.lines))
	for i, l := range b.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, "\n")
}

// Length returns the number of characters, counting one per separator.
func (b *Buffer) Length() int {
	n := len(b.lines) - 1
	for _, l := range b.lines {
		n += len(l)
	}
	return n
}

// LineCount returns the number of lines, at least one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

func (b *Buffer) clampLine(line int) int {
	if line < 0 {
		return 0
	}
	if line > len(b.lines)-1 {
		return len(b.lines) - 1
	}
	return line
}

// LineStart returns the offset of the first character of line.
func (b *Buffer) LineStart(line int) int {
	line = b.clampLine(line)
	offset := 0
	for i := 0; i < line; i++ {
		offset += len(b.lines[i]) + 1
	}
	return offset
}

// LineEnd returns the offset one past the last character of line.
func (b *Buffer) LineEnd(line int) int {
	line = b.clampLine(line)
	return b.LineStart(line) + len(b.lines[line])
}

// LineForOffset returns the line containing offset.
func (b *Buffer) LineForOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	for i, l := range b.lines {
		if offset <= len(l) {
			return i
		}
		offset -= len(l) + 1
	}
	return len(b.lines) - 1
}

// ColumnForOffset returns the column of offset within its line.
func (b *Buffer) ColumnForOffset(offset int) int {
	return offset - b.LineStart(b.LineForOffset(offset))
}

// OffsetOf returns the offset of (line, col), clamping both into the buffer.
func (b *Buffer) OffsetOf(line, col int) int {
	line = b.clampLine(line)
	if col < 0 {
		col = 0
	}
	if col > len(b.lines[line]) {
		col = len(b.lines[line])
	}
	return b.LineStart(line) + col
}

// Text returns the characters in [start, end), with "\n" for separators.
func (b *Buffer) Text(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > b.Length() {
		end = b.Length()
	}
	if start >= end {
		return ""
	}
	var sb strings.Builder
	offset := 0
	for _, l := range b.lines {
		lineEnd := offset + len(l)
		if start < lineEnd && end > offset {
			from := max(start-offset, 0)
			to := min(end-offset, len(l))
			sb.WriteString(string(l[from:to]))
		}
		// separator sits at lineEnd
		if start <= lineEnd && end > lineEnd {
			sb.WriteByte('\n')
		}
		offset = lineEnd + 1
		if offset > end {
			break
		}
	}
	return sb.String()
}

// Insert inserts text at offset. Newlines in text split lines.
func (b *Buffer) Insert(offset int, text string) {
	if text == "" {
		return
	}
	if offset < 0 {
		offset = 0
	}
	if offset > b.Length() {
		offset = b.Length()
	}
	line := b.LineForOffset(offset)
	col := offset - b.LineStart(line)

	head := append([]rune{}, b.lines[line][:col]...)
	tail := append([]rune{}, b.lines[line][col:]...)

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		b.lines[line] = append(append(head, []rune(parts[0])...), tail...)
		return
	}

	newLines := make([][]rune, len(parts))
	newLines[0] = append(head, []rune(parts[0])...)
	for i := 1; i < len(parts)-1; i++ {
		newLines[i] = []rune(parts[i])
	}
	newLines[len(parts)-1] = append([]rune(parts[len(parts)-1]), tail...)

	rebuilt := make([][]rune, 0, len(b.lines)+len(parts)-1)
	rebuilt = append(rebuilt, b.lines[:line]...)
	rebuilt = append(rebuilt, newLines...)
	rebuilt = append(rebuilt, b.lines[line+1:]...)
	b.lines = rebuilt
}

// Delete removes the characters in [start, end), joining lines when the
// span crosses separators.
func (b *Buffer) Delete(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > b.Length() {
		end = b.Length()
	}
	if start >= end {
		return
	}
	startLine := b.LineForOffset(start)
	endLine := b.LineForOffset(end)
	startCol := start - b.LineStart(startLine)
	endCol := end - b.LineStart(endLine)

	head := b.lines[startLine][:startCol]
	tail := b.lines[endLine][endCol:]
	joined := append(append([]rune{}, head...), tail...)

	rebuilt := make([][]rune, 0, len(b.lines)-(endLine-startLine))
	rebuilt = append(rebuilt, b.lines[:startLine]...)
	rebuilt = append(rebuilt, joined)
	rebuilt = append(rebuilt, b.lines[endLine+1:]...)
	b.lines = rebuilt
}

// rowsOf returns how many visual rows a logical line occupies under the
// current wrap width. Wrapping follows WrapLine so the count matches what a
// renderer produces.
func (b *Buffer) rowsOf(line int) int {
	if b.wrapWidth <= 0 {
		return 1
	}
	return len(WrapLine(string(b.lines[b.clampLine(line)]), b.wrapWidth))
}

// VisualLineOf maps a logical line to the visual row its first cell
// occupies.
func (b *Buffer) VisualLineOf(logicalLine int) int {
	logicalLine = b.clampLine(logicalLine)
	row := 0
	for i := 0; i < logicalLine; i++ {
		row += b.rowsOf(i)
	}
	return row
}

// LogicalLineOf maps a visual row back to the logical line covering it.
func (b *Buffer) LogicalLineOf(visualLine int) int {
	if visualLine < 0 {
		return 0
	}
	row := 0
	for i := range b.lines {
		row += b.rowsOf(i)
		if visualLine < row {
			return i
		}
	}
	return len(b.lines) - 1
}

// VisualLineCount returns the total number of visual rows.
func (b *Buffer) VisualLineCount() int {
	rows := 0
	for i := range b.lines {
		rows += b.rowsOf(i)
	}
	return rows
}
