package engine

import "github.com/google/uuid"

// CaretID is the stable identity of a host caret. The engine keys all
// per-caret auxiliary state by CaretID so it never has to attach data to the
// host's caret type.
type CaretID = uuid.UUID

// Buffer is the host text store. Offsets are rune offsets in [0, Length()];
// lines are 0-indexed. The engine never creates buffers, it only queries and
// mutates through this interface.
type Buffer interface {
	// Length returns the total number of characters, counting one per line
	// separator.
	Length() int

	// LineCount returns the number of lines. An empty buffer has one line.
	LineCount() int

	// Text returns the characters in [start, end).
	Text(start, end int) string

	// LineForOffset returns the line containing offset. Offsets are clamped
	// into [0, Length()].
	LineForOffset(offset int) int

	// ColumnForOffset returns the column of offset within its line.
	ColumnForOffset(offset int) int

	// OffsetOf returns the offset of (line, col), clamping col to the line's
	// length and line into the buffer.
	OffsetOf(line, col int) int

	// LineStart returns the offset of the first character of line.
	LineStart(line int) int

	// LineEnd returns the offset one past the last character of line (the
	// position of its newline, or Length() for the final line).
	LineEnd(line int) int

	// Insert inserts text at offset.
	Insert(offset int, text string)

	// Delete removes the characters in [start, end).
	Delete(start, end int)

	// VisualLineOf maps a logical line to its visual line (soft wrap, folds).
	// Hosts without wrapping return the line unchanged.
	VisualLineOf(logicalLine int) int

	// LogicalLineOf maps a visual line back to its logical line.
	LogicalLineOf(visualLine int) int

	// VisualLineCount returns the number of visual lines.
	VisualLineCount() int
}

// Caret is one of the host's cursors. The host owns caret lifecycle; the
// engine only reads and moves carets.
type Caret interface {
	// ID returns the caret's stable identity.
	ID() CaretID

	// Offset returns the caret's current offset.
	Offset() int

	// MoveTo moves the caret to offset.
	MoveTo(offset int)
}

// Host is the complete editor collaborator the engine runs against: a buffer
// plus its caret set. Exactly one caret is primary; the primary caret drives
// block-wise selection geometry.
type Host interface {
	Buffer

	// Carets returns all carets. The engine treats the slice as a snapshot.
	Carets() []Caret

	// Primary returns the primary caret.
	Primary() Caret
}

// Register receives yanked or deleted text. Register storage policy
// (named registers, clipboard sync) belongs to the host.
type Register interface {
	// SetText stores text, remembering whether it was taken line-wise.
	SetText(text string, linewise bool)
}

// normalizeOffset clamps offset into the addressable span of line. With
// allowEnd the offset may sit one past the last character (insert-style),
// otherwise it is capped at the last character.
func normalizeOffset(b Buffer, line, offset int, allowEnd bool) int {
	start := b.LineStart(line)
	end := b.LineEnd(line)
	if !allowEnd && end > start {
		end--
	}
	if offset < start {
		return start
	}
	if offset > end {
		return end
	}
	return offset
}

// normalizeColumn clamps col into the addressable columns of line.
func normalizeColumn(b Buffer, line, col int, allowEnd bool) int {
	width := b.LineEnd(line) - b.LineStart(line)
	maxCol := width
	if !allowEnd && maxCol > 0 {
		maxCol--
	}
	if col > maxCol {
		return maxCol
	}
	if col < 0 {
		return 0
	}
	return col
}

// lastLine returns the index of the final line.
func lastLine(b Buffer) int {
	return b.LineCount() - 1
}
