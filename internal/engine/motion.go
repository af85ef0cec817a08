package engine

// ResolveMotionRange computes the complete range a motion or text object
// covers: the basis for both visual selection extension and operator
// arguments (d}, y%, and so on). The two call sites go through this one
// routine so they cannot drift apart.
//
// The motion command's count is multiplied with the operator's count; the
// combined raw count is zero only when neither carried an explicit count.
// Returns ok=false when the motion has no destination (buffer boundary) or
// the text object finds nothing.
func (s *Session) ResolveMotionRange(c Caret, motion *Command, count, rawCount int, includeNewline bool) (TextRange, bool) {
	if motion == nil || motion.Action == nil {
		return TextRange{}, false
	}
	cnt, raw := combineCounts(motion, count, rawCount)

	var start, end int
	switch {
	case motion.Action.IsMotion():
		start = c.Offset()
		var ok bool
		end, ok = motion.Action.Motion(s, c, cnt, raw, motion.Argument)
		if !ok {
			return TextRange{}, false
		}
	case motion.Action.IsTextObject():
		r, ok := motion.Action.TextObject(s, c, motion, cnt)
		if !ok {
			return TextRange{}, false
		}
		start = r.Start()
		end = r.End()
	default:
		return TextRange{}, false
	}

	// Normalization order matters: the inclusive extension applies to the
	// motion's own end before the endpoints are ordered. A backward
	// inclusive motion therefore widens toward the caret, and an inner
	// text object that found nothing (end one before start) comes out as
	// an empty range rather than swallowing its delimiters.
	b := s.host
	flags := motion.EffectiveFlags()
	if flags&FlagLinewise != 0 {
		if start > end {
			start, end = end, start
		}
		start = b.LineStart(b.LineForOffset(start))
		end = b.LineEnd(b.LineForOffset(end))
		if includeNewline {
			end++
		}
		if end > b.Length() {
			end = b.Length()
		}
	} else if flags&FlagInclusive != 0 {
		end++
	}
	if start > end {
		start, end = end, start
	}

	return NewRange(start, end), true
}

// MoveCaret moves a caret and maintains its engine-owned bookkeeping: the
// remembered column (unless the motion preserves it) and, in visual modes,
// the active end of the caret's selection. The anchor never moves here.
func (s *Session) MoveCaret(c Caret, offset int, flags Flags) {
	if offset < 0 {
		offset = 0
	}
	if offset > s.host.Length() {
		offset = s.host.Length()
	}
	c.MoveTo(offset)

	st := s.state(c)
	switch {
	case flags&FlagToEndOfLine != 0:
		st.lastColumn = EndOfLineColumn
	case flags&FlagKeepColumn != 0:
		// vertical motion, column remembered across short lines
	default:
		st.lastColumn = s.host.ColumnForOffset(offset)
	}

	if s.InVisualMode() && st.selectionActive {
		st.selectionEnd = offset
	}
}

// ApplyMotion executes a simple motion command against one caret. Text
// objects do not move the caret; use ResolveMotionRange for those. Returns
// false when the motion had no destination.
func (s *Session) ApplyMotion(c Caret, cmd *Command) bool {
	if cmd == nil || cmd.Action == nil || !cmd.Action.IsMotion() {
		return false
	}
	offset, ok := cmd.Action.Motion(s, c, cmd.CountOr1(), cmd.RawCount, cmd.Argument)
	if !ok {
		return false
	}
	s.MoveCaret(c, offset, cmd.EffectiveFlags())
	return true
}

// ============================================================================
// Horizontal motions
// ============================================================================

func motionHorizontal(s *Session, c Caret, count int, allowPastEnd bool) (int, bool) {
	old := c.Offset()
	line := s.host.LineForOffset(old)
	offset := normalizeOffset(s.host, line, old+count, allowPastEnd)
	if offset == old {
		return 0, false
	}
	return offset, true
}

func motionLeft(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return motionHorizontal(s, c, -count, s.mode == ModeInsert)
}

func motionRight(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return motionHorizontal(s, c, count, s.mode == ModeInsert)
}

// motionLeftWrap and motionRightWrap cross line boundaries (<bs>, <space>).
func motionLeftWrap(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return motionHorizontalWrap(s, c, -count)
}

func motionRightWrap(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return motionHorizontalWrap(s, c, count)
}

func motionHorizontalWrap(s *Session, c Caret, count int) (int, bool) {
	old := c.Offset()
	offset := old + count
	if offset < 0 {
		offset = 0
	}
	if offset > s.host.Length() {
		offset = s.host.Length()
	}
	if offset == old {
		return 0, false
	}
	return offset, true
}

func motionColumn(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	line := s.host.LineForOffset(c.Offset())
	col := normalizeColumn(s.host, line, count-1, s.mode == ModeInsert)
	return s.host.OffsetOf(line, col), true
}

func motionLineStart(s *Session, c Caret, _, _ int, _ *Command) (int, bool) {
	return s.host.LineStart(s.host.LineForOffset(c.Offset())), true
}

func motionFirstNonBlank(s *Session, c Caret, _, _ int, _ *Command) (int, bool) {
	return firstNonBlankOnLine(s.host, s.host.LineForOffset(c.Offset())), true
}

func motionLineEnd(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	line := s.host.LineForOffset(c.Offset()) + count - 1
	if line > lastLine(s.host) {
		line = lastLine(s.host)
	}
	return normalizeOffset(s.host, line, s.host.LineEnd(line), s.mode == ModeInsert), true
}

// firstNonBlankOnLine returns the offset of the first non-whitespace
// character of line, or the line start for blank lines.
func firstNonBlankOnLine(b Buffer, line int) int {
	start := b.LineStart(line)
	end := b.LineEnd(line)
	text := []rune(b.Text(start, end))
	for i, r := range text {
		if r != ' ' && r != '\t' {
			return start + i
		}
	}
	return start
}

// ============================================================================
// Vertical motions
// ============================================================================

func motionVertical(s *Session, c Caret, count int) (int, bool) {
	b := s.host
	vis := b.VisualLineOf(b.LineForOffset(c.Offset()))
	if (vis == 0 && count < 0) || (vis >= b.VisualLineCount()-1 && count > 0) {
		return 0, false
	}
	newVis := vis + count
	if newVis < 0 {
		newVis = 0
	}
	if newVis > b.VisualLineCount()-1 {
		newVis = b.VisualLineCount() - 1
	}
	line := b.LogicalLineOf(newVis)
	col := normalizeColumn(b, line, s.state(c).lastColumn, s.mode == ModeInsert)
	return b.OffsetOf(line, col), true
}

func motionDown(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return motionVertical(s, c, count)
}

func motionUp(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return motionVertical(s, c, -count)
}

func motionDownFirstNonBlank(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return verticalFirstNonBlank(s, c, count)
}

func motionUpFirstNonBlank(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return verticalFirstNonBlank(s, c, -count)
}

func verticalFirstNonBlank(s *Session, c Caret, count int) (int, bool) {
	b := s.host
	line := b.LineForOffset(c.Offset())
	if (line == 0 && count < 0) || (line >= lastLine(b) && count > 0) {
		return 0, false
	}
	line += count
	if line < 0 {
		line = 0
	}
	if line > lastLine(b) {
		line = lastLine(b)
	}
	return firstNonBlankOnLine(b, line), true
}

// motionGotoLine implements G: the raw count distinguishes "no count" (last
// line) from an explicit line number.
func motionGotoLine(s *Session, c Caret, _, rawCount int, _ *Command) (int, bool) {
	b := s.host
	line := lastLine(b)
	if rawCount > 0 {
		line = rawCount - 1
		if line > lastLine(b) {
			line = lastLine(b)
		}
	}
	return firstNonBlankOnLine(b, line), true
}

// motionGotoFirstLine implements gg with an optional line count.
func motionGotoFirstLine(s *Session, c Caret, _, rawCount int, _ *Command) (int, bool) {
	b := s.host
	line := 0
	if rawCount > 0 {
		line = rawCount - 1
		if line > lastLine(b) {
			line = lastLine(b)
		}
	}
	return firstNonBlankOnLine(b, line), true
}

// motionLinePercent moves to the line at count percent of the file.
func motionLinePercent(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	b := s.host
	if count > 100 {
		count = 100
	}
	line := (b.LineCount()*count + 99) / 100
	if line > 0 {
		line--
	}
	return firstNonBlankOnLine(b, line), true
}

// motionNthChar moves to the zero-based character offset given by count,
// clamped into the buffer.
func motionNthChar(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	b := s.host
	offset := count
	if offset < 0 {
		offset = 0
	}
	if offset > b.Length()-1 {
		offset = b.Length() - 1
	}
	if offset < 0 {
		offset = 0
	}
	return offset, true
}

// ============================================================================
// Word and camel motions
// ============================================================================

// wordBoundaryGuard applies the common boundary rule: moving backward from
// the first character or forward from the last yields no result.
func wordBoundaryGuard(s *Session, c Caret, dir int) bool {
	offset := c.Offset()
	if offset == 0 && dir < 0 {
		return false
	}
	if offset >= s.host.Length()-1 && dir > 0 {
		return false
	}
	return true
}

func motionWordNext(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return wordMotion(s, c, count, false)
}

func motionWordPrev(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return wordMotion(s, c, -count, false)
}

func motionBigWordNext(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return wordMotion(s, c, count, true)
}

func motionBigWordPrev(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return wordMotion(s, c, -count, true)
}

func wordMotion(s *Session, c Caret, count int, big bool) (int, bool) {
	dir := 1
	if count < 0 {
		dir = -1
	}
	if !wordBoundaryGuard(s, c, dir) {
		return 0, false
	}
	return findNextWord(bufferText(s.host), c.Offset(), count, big), true
}

func motionWordEndNext(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return wordEndMotion(s, c, count, false)
}

func motionWordEndPrev(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return wordEndMotion(s, c, -count, false)
}

func motionBigWordEndNext(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return wordEndMotion(s, c, count, true)
}

func motionBigWordEndPrev(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return wordEndMotion(s, c, -count, true)
}

func wordEndMotion(s *Session, c Caret, count int, big bool) (int, bool) {
	dir := 1
	if count < 0 {
		dir = -1
	}
	if !wordBoundaryGuard(s, c, dir) {
		return 0, false
	}
	return findNextWordEnd(bufferText(s.host), c.Offset(), count, big), true
}

func motionCamelNext(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return camelMotion(s, c, count, findNextCamel)
}

func motionCamelPrev(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return camelMotion(s, c, -count, findNextCamel)
}

func motionCamelEndNext(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return camelMotion(s, c, count, findNextCamelEnd)
}

func motionCamelEndPrev(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return camelMotion(s, c, -count, findNextCamelEnd)
}

func camelMotion(s *Session, c Caret, count int, find func([]rune, int, int) int) (int, bool) {
	dir := 1
	if count < 0 {
		dir = -1
	}
	if !wordBoundaryGuard(s, c, dir) {
		return 0, false
	}
	pos := find(bufferText(s.host), c.Offset(), count)
	if pos < 0 {
		return 0, false
	}
	return pos, true
}

// ============================================================================
// Find-character motions (f, F, t, T)
// ============================================================================

func motionFindCharNext(s *Session, c Caret, count, _ int, arg *Command) (int, bool) {
	return findCharOnLine(s, c, count, arg, 0)
}

func motionFindCharPrev(s *Session, c Caret, count, _ int, arg *Command) (int, bool) {
	return findCharOnLine(s, c, -count, arg, 0)
}

func motionTillCharNext(s *Session, c Caret, count, _ int, arg *Command) (int, bool) {
	return findCharOnLine(s, c, count, arg, -1)
}

func motionTillCharPrev(s *Session, c Caret, count, _ int, arg *Command) (int, bool) {
	return findCharOnLine(s, c, -count, arg, 1)
}

// findCharOnLine scans the current line for the count-th occurrence of the
// argument character; adjust lands the caret before (-1) or after (+1) it.
func findCharOnLine(s *Session, c Caret, count int, arg *Command, adjust int) (int, bool) {
	if arg == nil || arg.Char == 0 {
		return 0, false
	}
	b := s.host
	line := b.LineForOffset(c.Offset())
	start := b.LineStart(line)
	text := []rune(b.Text(start, b.LineEnd(line)))
	pos := c.Offset() - start

	step := 1
	if count < 0 {
		step = -1
		count = -count
	}
	i := pos
	for ; count > 0; count-- {
		found := false
		for i += step; i >= 0 && i < len(text); i += step {
			if text[i] == arg.Char {
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return start + i + adjust, true
}

// ============================================================================
// Structure motions
// ============================================================================

func motionParagraphNext(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return paragraphMotion(s, c, count)
}

func motionParagraphPrev(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return paragraphMotion(s, c, -count)
}

// paragraphMotion moves to the count-th blank line in the given direction;
// past the last paragraph it stops at the buffer edge.
func paragraphMotion(s *Session, c Caret, count int) (int, bool) {
	b := s.host
	line := b.LineForOffset(c.Offset())
	step := 1
	if count < 0 {
		step = -1
		count = -count
	}
	if (line == 0 && step < 0) || (line >= lastLine(b) && step > 0) {
		return 0, false
	}
	for ; count > 0; count-- {
		found := false
		for l := line + step; l >= 0 && l <= lastLine(b); l += step {
			if b.LineStart(l) == b.LineEnd(l) {
				line = l
				found = true
				break
			}
		}
		if !found {
			if step > 0 {
				return normalizeOffset(b, lastLine(b), b.LineEnd(lastLine(b)), false), true
			}
			return 0, true
		}
	}
	return b.LineStart(line), true
}

func motionSentenceNext(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return sentenceMotion(s, c, count, findNextSentenceStart)
}

func motionSentencePrev(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return sentenceMotion(s, c, -count, findNextSentenceStart)
}

func motionSentenceEndNext(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return sentenceMotion(s, c, count, findNextSentenceEnd)
}

func motionSentenceEndPrev(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return sentenceMotion(s, c, -count, findNextSentenceEnd)
}

func sentenceMotion(s *Session, c Caret, count int, find func([]rune, int, int) int) (int, bool) {
	pos := find(bufferText(s.host), c.Offset(), count)
	if pos < 0 {
		return 0, false
	}
	return pos, true
}

// motionMatchingPair implements the percent motion: jump to the match of the
// first bracket at or after the caret on the current line, skipping brackets
// inside strings and comments.
func motionMatchingPair(s *Session, c Caret, _, _ int, _ *Command) (int, bool) {
	b := s.host
	line := b.LineForOffset(c.Offset())
	pos := findMatchingPair(bufferText(b), c.Offset(), b.LineEnd(line))
	if pos < 0 {
		return 0, false
	}
	return pos, true
}

func motionUnmatchedOpenParen(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return unmatchedMotion(s, c, -count, '(', ')')
}

func motionUnmatchedCloseParen(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return unmatchedMotion(s, c, count, '(', ')')
}

func motionUnmatchedOpenBrace(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return unmatchedMotion(s, c, -count, '{', '}')
}

func motionUnmatchedCloseBrace(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return unmatchedMotion(s, c, count, '{', '}')
}

func unmatchedMotion(s *Session, c Caret, count int, open, close rune) (int, bool) {
	pos := findUnmatchedBlock(bufferText(s.host), c.Offset(), count, open, close)
	if pos < 0 {
		return 0, false
	}
	return pos, true
}

// Method motions treat the enclosing brace block as the method body.
func motionMethodStart(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return unmatchedMotion(s, c, -count, '{', '}')
}

func motionMethodEnd(s *Session, c Caret, count, _ int, _ *Command) (int, bool) {
	return unmatchedMotion(s, c, count, '{', '}')
}

// motionSectionNext and motionSectionPrev move between lines whose first
// column holds the section character ('{' unless the command says
// otherwise).
func motionSectionNext(s *Session, c Caret, count, _ int, arg *Command) (int, bool) {
	return sectionMotion(s, c, count, arg)
}

func motionSectionPrev(s *Session, c Caret, count, _ int, arg *Command) (int, bool) {
	return sectionMotion(s, c, -count, arg)
}

func sectionMotion(s *Session, c Caret, count int, arg *Command) (int, bool) {
	marker := '{'
	if arg != nil && arg.Char != 0 {
		marker = arg.Char
	}
	b := s.host
	line := b.LineForOffset(c.Offset())
	step := 1
	if count < 0 {
		step = -1
		count = -count
	}
	for ; count > 0; count-- {
		found := false
		for l := line + step; l >= 0 && l <= lastLine(b); l += step {
			start := b.LineStart(l)
			if start < b.LineEnd(l) && []rune(b.Text(start, start+1))[0] == marker {
				line = l
				found = true
				break
			}
		}
		if !found {
			if step > 0 {
				return normalizeOffset(b, lastLine(b), b.LineEnd(lastLine(b)), false), true
			}
			return 0, true
		}
	}
	return b.LineStart(line), true
}

// ============================================================================
// Motion actions
// ============================================================================

var (
	MotionLeft      = &Action{Name: "motion.left", Flags: FlagExclusive, Motion: motionLeft}
	MotionRight     = &Action{Name: "motion.right", Flags: FlagExclusive, Motion: motionRight}
	MotionLeftWrap  = &Action{Name: "motion.left.wrap", Flags: FlagExclusive, Motion: motionLeftWrap}
	MotionRightWrap = &Action{Name: "motion.right.wrap", Flags: FlagExclusive, Motion: motionRightWrap}
	MotionColumn    = &Action{Name: "motion.column", Flags: FlagExclusive, Motion: motionColumn}
	MotionLineStart = &Action{Name: "motion.line.start", Flags: FlagExclusive, Motion: motionLineStart}
	MotionFirstNonBlank = &Action{
		Name: "motion.line.first-non-blank", Flags: FlagExclusive, Motion: motionFirstNonBlank,
	}
	MotionLineEnd = &Action{
		Name: "motion.line.end", Flags: FlagInclusive | FlagToEndOfLine, Motion: motionLineEnd,
	}

	MotionDown = &Action{Name: "motion.down", Flags: FlagLinewise | FlagKeepColumn, Motion: motionDown}
	MotionUp   = &Action{Name: "motion.up", Flags: FlagLinewise | FlagKeepColumn, Motion: motionUp}
	MotionDownFirstNonBlank = &Action{
		Name: "motion.down.first-non-blank", Flags: FlagLinewise, Motion: motionDownFirstNonBlank,
	}
	MotionUpFirstNonBlank = &Action{
		Name: "motion.up.first-non-blank", Flags: FlagLinewise, Motion: motionUpFirstNonBlank,
	}
	MotionGotoLine      = &Action{Name: "motion.goto.line", Flags: FlagLinewise, Motion: motionGotoLine}
	MotionGotoFirstLine = &Action{Name: "motion.goto.first-line", Flags: FlagLinewise, Motion: motionGotoFirstLine}
	MotionLinePercent   = &Action{Name: "motion.goto.percent", Flags: FlagLinewise, Motion: motionLinePercent}
	MotionNthChar       = &Action{Name: "motion.goto.char", Flags: FlagExclusive, Motion: motionNthChar}

	MotionWordNext       = &Action{Name: "motion.word.next", Flags: FlagExclusive, Motion: motionWordNext}
	MotionWordPrev       = &Action{Name: "motion.word.prev", Flags: FlagExclusive, Motion: motionWordPrev}
	MotionBigWordNext    = &Action{Name: "motion.bigword.next", Flags: FlagExclusive, Motion: motionBigWordNext}
	MotionBigWordPrev    = &Action{Name: "motion.bigword.prev", Flags: FlagExclusive, Motion: motionBigWordPrev}
	MotionWordEndNext    = &Action{Name: "motion.word.end.next", Flags: FlagInclusive, Motion: motionWordEndNext}
	MotionWordEndPrev    = &Action{Name: "motion.word.end.prev", Flags: FlagInclusive, Motion: motionWordEndPrev}
	MotionBigWordEndNext = &Action{Name: "motion.bigword.end.next", Flags: FlagInclusive, Motion: motionBigWordEndNext}
	MotionBigWordEndPrev = &Action{Name: "motion.bigword.end.prev", Flags: FlagInclusive, Motion: motionBigWordEndPrev}
	MotionCamelNext      = &Action{Name: "motion.camel.next", Flags: FlagExclusive, Motion: motionCamelNext}
	MotionCamelPrev      = &Action{Name: "motion.camel.prev", Flags: FlagExclusive, Motion: motionCamelPrev}
	MotionCamelEndNext   = &Action{Name: "motion.camel.end.next", Flags: FlagInclusive, Motion: motionCamelEndNext}
	MotionCamelEndPrev   = &Action{Name: "motion.camel.end.prev", Flags: FlagInclusive, Motion: motionCamelEndPrev}

	MotionFindCharNext = &Action{Name: "motion.find.next", Flags: FlagInclusive, Motion: motionFindCharNext}
	MotionFindCharPrev = &Action{Name: "motion.find.prev", Flags: FlagExclusive, Motion: motionFindCharPrev}
	MotionTillCharNext = &Action{Name: "motion.till.next", Flags: FlagInclusive, Motion: motionTillCharNext}
	MotionTillCharPrev = &Action{Name: "motion.till.prev", Flags: FlagExclusive, Motion: motionTillCharPrev}

	MotionParagraphNext   = &Action{Name: "motion.paragraph.next", Flags: FlagExclusive, Motion: motionParagraphNext}
	MotionParagraphPrev   = &Action{Name: "motion.paragraph.prev", Flags: FlagExclusive, Motion: motionParagraphPrev}
	MotionSentenceNext    = &Action{Name: "motion.sentence.next", Flags: FlagExclusive, Motion: motionSentenceNext}
	MotionSentencePrev    = &Action{Name: "motion.sentence.prev", Flags: FlagExclusive, Motion: motionSentencePrev}
	MotionSentenceEndNext = &Action{Name: "motion.sentence.end.next", Flags: FlagInclusive, Motion: motionSentenceEndNext}
	MotionSentenceEndPrev = &Action{Name: "motion.sentence.end.prev", Flags: FlagInclusive, Motion: motionSentenceEndPrev}

	MotionMatchingPair = &Action{Name: "motion.pair.match", Flags: FlagInclusive, Motion: motionMatchingPair}
	MotionUnmatchedOpenParen = &Action{
		Name: "motion.pair.unmatched-open-paren", Flags: FlagExclusive, Motion: motionUnmatchedOpenParen,
	}
	MotionUnmatchedCloseParen = &Action{
		Name: "motion.pair.unmatched-close-paren", Flags: FlagExclusive, Motion: motionUnmatchedCloseParen,
	}
	MotionUnmatchedOpenBrace = &Action{
		Name: "motion.pair.unmatched-open-brace", Flags: FlagExclusive, Motion: motionUnmatchedOpenBrace,
	}
	MotionUnmatchedCloseBrace = &Action{
		Name: "motion.pair.unmatched-close-brace", Flags: FlagExclusive, Motion: motionUnmatchedCloseBrace,
	}
	MotionMethodStart = &Action{Name: "motion.method.start", Flags: FlagExclusive, Motion: motionMethodStart}
	MotionMethodEnd   = &Action{Name: "motion.method.end", Flags: FlagInclusive, Motion: motionMethodEnd}
	MotionSectionNext = &Action{Name: "motion.section.next", Flags: FlagExclusive, Motion: motionSectionNext}
	MotionSectionPrev = &Action{Name: "motion.section.prev", Flags: FlagExclusive, Motion: motionSectionPrev}
)
