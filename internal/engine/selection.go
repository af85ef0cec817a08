package engine

// SelectionType is the granularity of a snapshotted selection.
type SelectionType int

const (
	// CharacterWise selections cover individual characters.
	CharacterWise SelectionType = iota
	// LineWise selections cover whole lines.
	LineWise
	// BlockWise selections cover a rectangle of columns across lines.
	BlockWise
)

// String returns the string representation of the selection type.
func (t SelectionType) String() string {
	switch t {
	case CharacterWise:
		return "CHARACTER_WISE"
	case LineWise:
		return "LINE_WISE"
	case BlockWise:
		return "BLOCK_WISE"
	default:
		return "UNKNOWN"
	}
}

// toSelectionType maps a visual sub-mode to the selection type it produces.
func toSelectionType(sm SubMode) SelectionType {
	switch sm {
	case SubModeLineWise:
		return LineWise
	case SubModeBlockWise:
		return BlockWise
	default:
		return CharacterWise
	}
}

// VimSelection is a normalized, immutable snapshot of one caret's selection
// at the moment an operator begins. Start <= End always holds; End is
// exclusive. The snapshot is decoupled from the live caret state, which the
// operator is about to change.
type VimSelection struct {
	Start int
	End   int
	Type  SelectionType
}

// Range resolves the selection into concrete buffer offsets. Line-wise
// selections snap to whole lines including the trailing newline; block-wise
// selections produce one segment per covered line, derived on demand from the
// start and end columns so buffer mutations between snapshot and use cannot
// leave stale per-line offsets.
func (sel VimSelection) Range(b Buffer) TextRange {
	switch sel.Type {
	case LineWise:
		startLine := b.LineForOffset(sel.Start)
		end := sel.End
		if end > sel.Start {
			end--
		}
		endLine := b.LineForOffset(end)
		start := b.LineStart(startLine)
		stop := b.LineEnd(endLine)
		if stop < b.Length() {
			stop++ // take the trailing newline with the lines
		}
		return NewRange(start, stop)
	case BlockWise:
		return blockSegments(b, sel.Start, sel.End)
	default:
		return NewRange(sel.Start, sel.End).Normalized()
	}
}

// Text returns the selected characters. Block-wise selections join their
// per-line segments with newlines.
func (sel VimSelection) Text(b Buffer) string {
	r := sel.Range(b)
	if !r.IsBlock() {
		return b.Text(r.Start(), r.End())
	}
	out := ""
	for i := 0; i < r.Segments(); i++ {
		if i > 0 {
			out += "\n"
		}
		start, end := r.Segment(i)
		out += b.Text(start, end)
	}
	return out
}

// blockSegments derives the rectangular span between two offsets: one
// segment per covered line, bounded by the two offsets' columns. Columns
// beyond a short line clamp to that line's end.
func blockSegments(b Buffer, start, end int) TextRange {
	if start > end {
		start, end = end, start
	}
	startLine := b.LineForOffset(start)
	// end is exclusive; step back one so a selection ending at a line start
	// does not bleed into the next line.
	endRef := end
	if endRef > start {
		endRef--
	}
	endLine := b.LineForOffset(endRef)

	loCol := b.ColumnForOffset(start)
	hiCol := b.ColumnForOffset(endRef) + 1
	if loCol > hiCol-1 {
		loCol, hiCol = hiCol-1, loCol+1
	}

	var starts, ends []int
	for line := startLine; line <= endLine; line++ {
		width := b.LineEnd(line) - b.LineStart(line)
		segStart := loCol
		if segStart > width {
			segStart = width
		}
		segEnd := hiCol
		if segEnd > width {
			segEnd = width
		}
		starts = append(starts, b.LineStart(line)+segStart)
		ends = append(ends, b.LineStart(line)+segEnd)
	}
	return NewBlockRange(starts, ends)
}

// VisualChange is the shape of a completed visual operator: lines and columns
// spanned, with EndOfLineColumn marking full-width selections. The shape is
// relative, so it can replay from any caret position on dot-repeat.
type VisualChange struct {
	Lines   int
	Columns int
	Type    SelectionType
}

// reconstruct rebuilds a selection of this shape anchored at offset.
func (vc VisualChange) reconstruct(b Buffer, offset int) VimSelection {
	startLine := b.LineForOffset(offset)
	startCol := b.ColumnForOffset(offset)

	endLine := startLine + vc.Lines - 1
	if endLine > lastLine(b) {
		endLine = lastLine(b)
	}

	switch vc.Type {
	case LineWise:
		return VimSelection{
			Start: b.LineStart(startLine),
			End:   b.LineEnd(endLine),
			Type:  LineWise,
		}
	default:
		var end int
		if vc.Columns == EndOfLineColumn {
			end = b.LineEnd(endLine)
		} else {
			endCol := vc.Columns
			if vc.Lines == 1 {
				endCol = startCol + vc.Columns
			}
			end = b.OffsetOf(endLine, endCol)
		}
		start := offset
		if vc.Type == BlockWise {
			start = b.OffsetOf(startLine, startCol)
		}
		if start > end {
			start, end = end, start
		}
		return VimSelection{Start: start, End: end, Type: vc.Type}
	}
}
