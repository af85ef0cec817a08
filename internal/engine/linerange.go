package engine

import "sort"

// LineRange is an inclusive span of buffer lines, as addressed by ex-style
// range commands.
type LineRange struct {
	Start int
	End   int
}

// lines returns the number of lines the range covers.
func (r LineRange) lines() int {
	return r.End - r.Start + 1
}

// contains reports whether line lies inside the range.
func (r LineRange) contains(line int) bool {
	return line >= r.Start && line <= r.End
}

// MoveLines moves each caret's line range below destLine, preserving the
// blocks' relative order. destLine is the line the moved text lands after;
// -1 moves it above the first line.
//
// Overlapping and adjacent ranges merge into one block before anything
// moves, so two carets addressing the same lines do not duplicate them. The
// whole call validates up front and returns ErrInvalidRange without touching
// the buffer when any range is out of bounds or the destination lies inside
// a moved block.
func (s *Session) MoveLines(ranges map[CaretID]LineRange, destLine int) error {
	b := s.host
	blocks, owners, err := mergeLineRanges(ranges)
	if err != nil {
		return err
	}
	if err := validateLineRanges(b, blocks, destLine); err != nil {
		return err
	}
	for _, blk := range blocks {
		// moving a block onto a line inside itself is the ex "move into
		// itself" error; the line directly above is a legal no-op
		if destLine >= blk.Start && destLine <= blk.End {
			return ErrInvalidRange
		}
	}

	// Extract bottom-up so earlier block positions stay valid, adjusting
	// the destination for every removed block above it.
	texts := make([]string, len(blocks))
	adjusted := destLine
	for i := len(blocks) - 1; i >= 0; i-- {
		texts[i] = deleteLines(b, blocks[i].Start, blocks[i].End)
		if blocks[i].End <= destLine {
			adjusted -= blocks[i].lines()
		}
	}

	// Reinsert in origin order, each block directly after the previous one.
	newStarts := make([]int, len(blocks))
	insertAt := adjusted + 1
	for i, text := range texts {
		insertLines(b, insertAt, text)
		newStarts[i] = insertAt
		insertAt += blocks[i].lines()
	}

	s.placeCaretsAfterLineOp(ranges, blocks, owners, newStarts)
	return nil
}

// CopyLines copies each caret's line range below destLine, preserving the
// blocks' relative order. The sources are left untouched; carets move to
// their block's copy.
func (s *Session) CopyLines(ranges map[CaretID]LineRange, destLine int) error {
	b := s.host
	blocks, owners, err := mergeLineRanges(ranges)
	if err != nil {
		return err
	}
	if err := validateLineRanges(b, blocks, destLine); err != nil {
		return err
	}

	texts := make([]string, len(blocks))
	for i, blk := range blocks {
		texts[i] = b.Text(b.LineStart(blk.Start), b.LineEnd(blk.End))
	}

	newStarts := make([]int, len(blocks))
	insertAt := destLine + 1
	for i, text := range texts {
		insertLines(b, insertAt, text)
		newStarts[i] = insertAt
		insertAt += blocks[i].lines()
	}

	s.placeCaretsAfterLineOp(ranges, blocks, owners, newStarts)
	return nil
}

// mergeLineRanges sorts the per-caret ranges and merges overlapping or
// adjacent ones into blocks. owners maps each caret to the index of the
// block that absorbed its range.
func mergeLineRanges(ranges map[CaretID]LineRange) ([]LineRange, map[CaretID]int, error) {
	if len(ranges) == 0 {
		return nil, nil, ErrMissingSelection
	}
	type entry struct {
		id CaretID
		r  LineRange
	}
	entries := make([]entry, 0, len(ranges))
	for id, r := range ranges {
		if r.Start > r.End {
			return nil, nil, ErrInvalidRange
		}
		entries = append(entries, entry{id: id, r: r})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].r.Start != entries[j].r.Start {
			return entries[i].r.Start < entries[j].r.Start
		}
		return entries[i].r.End < entries[j].r.End
	})

	var blocks []LineRange
	owners := make(map[CaretID]int, len(entries))
	for _, e := range entries {
		if n := len(blocks); n > 0 && e.r.Start <= blocks[n-1].End+1 {
			if e.r.End > blocks[n-1].End {
				blocks[n-1].End = e.r.End
			}
			owners[e.id] = n - 1
			continue
		}
		blocks = append(blocks, e.r)
		owners[e.id] = len(blocks) - 1
	}
	return blocks, owners, nil
}

// validateLineRanges bounds-checks every block and the destination before
// any mutation happens.
func validateLineRanges(b Buffer, blocks []LineRange, destLine int) error {
	if destLine < -1 || destLine > lastLine(b) {
		return ErrInvalidRange
	}
	for _, blk := range blocks {
		if blk.Start < 0 || blk.End > lastLine(b) {
			return ErrInvalidRange
		}
	}
	return nil
}

// placeCaretsAfterLineOp moves each participating caret to the first
// non-blank character of the new position of its original first line.
func (s *Session) placeCaretsAfterLineOp(
	ranges map[CaretID]LineRange, blocks []LineRange, owners map[CaretID]int, newStarts []int,
) {
	byID := make(map[CaretID]Caret)
	for _, c := range s.host.Carets() {
		byID[c.ID()] = c
	}
	for id, r := range ranges {
		c, ok := byID[id]
		if !ok {
			continue
		}
		blk := owners[id]
		line := newStarts[blk] + (r.Start - blocks[blk].Start)
		s.MoveCaret(c, firstNonBlankOnLine(s.host, line), 0)
	}
}

// deleteLines removes lines start..end and returns their text without a
// trailing newline. One adjacent separator goes with them so no empty line
// is left behind.
func deleteLines(b Buffer, start, end int) string {
	s0 := b.LineStart(start)
	e0 := b.LineEnd(end)
	text := b.Text(s0, e0)
	if e0 < b.Length() {
		e0++
	} else if s0 > 0 {
		s0--
	}
	b.Delete(s0, e0)
	return text
}

// insertLines inserts text as whole lines so its first line becomes the
// given line number; line may be one past the last line to append.
func insertLines(b Buffer, line int, text string) {
	if line <= lastLine(b) {
		b.Insert(b.LineStart(line), text+"\n")
		return
	}
	if b.Length() == 0 {
		b.Insert(0, text)
		return
	}
	b.Insert(b.Length(), "\n"+text)
}
