package engine

// Text objects compute the span surrounding the caret rather than a
// destination. The returned ranges carry inclusive end offsets; the
// FlagInclusive on each action makes ResolveMotionRange widen them to the
// engine's exclusive convention.

// ============================================================================
// Word objects
// ============================================================================

func objectInnerWord(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return wordObject(s, c, count, false, false)
}

func objectOuterWord(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return wordObject(s, c, count, false, true)
}

func objectInnerBigWord(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return wordObject(s, c, count, true, false)
}

func objectOuterBigWord(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return wordObject(s, c, count, true, true)
}

// wordObject selects the word under the caret plus count-1 following words.
// The outer variant swallows trailing whitespace, or leading whitespace when
// there is none trailing. When the caret owns a left-extending visual
// selection the object searches backward instead, so repeated iw/aw keep
// growing the selection in its own direction.
func wordObject(s *Session, c Caret, count int, big, outer bool) (TextRange, bool) {
	text := bufferText(s.host)
	if len(text) == 0 {
		return TextRange{}, false
	}
	pos := c.Offset()
	if pos >= len(text) {
		pos = len(text) - 1
	}

	if st := s.state(c); s.InVisualMode() && st.selectionActive && st.selectionEnd < st.selectionStart {
		return wordObjectBackward(text, pos, count, big, outer)
	}

	start := pos
	if !isSpace(text[start]) || text[start] == '\n' {
		start = wordObjectStart(text, pos, big)
	} else {
		for start > 0 && isSpace(text[start-1]) && text[start-1] != '\n' {
			start--
		}
	}

	end := pos
	for n := 0; n < count; n++ {
		if n > 0 {
			if end >= len(text)-1 {
				break
			}
			end++
		}
		end = wordObjectEnd(text, end, big)
		if outer {
			trailed := false
			for end < len(text)-1 && isSpace(text[end+1]) && text[end+1] != '\n' {
				end++
				trailed = true
			}
			if !trailed && n == count-1 {
				for start > 0 && isSpace(text[start-1]) && text[start-1] != '\n' {
					start--
				}
			}
		} else if n < count-1 {
			// inner objects count whitespace runs as words of their own
			for end < len(text)-1 && isSpace(text[end+1]) && text[end+1] != '\n' {
				end++
				n++
				if n >= count-1 {
					break
				}
			}
		}
	}
	return NewRange(start, end), true
}

// wordObjectBackward mirrors wordObject for a selection extending left: the
// end stays at the word under the caret and the start walks back count
// words. The outer variant swallows leading whitespace, or trailing when
// there is none leading.
func wordObjectBackward(text []rune, pos, count int, big, outer bool) (TextRange, bool) {
	end := pos
	if !isSpace(text[end]) || text[end] == '\n' {
		end = wordObjectEnd(text, pos, big)
	} else {
		for end < len(text)-1 && isSpace(text[end+1]) && text[end+1] != '\n' {
			end++
		}
	}

	start := pos
	for n := 0; n < count; n++ {
		if n > 0 {
			if start == 0 {
				break
			}
			start--
		}
		start = wordObjectStart(text, start, big)
		if outer {
			led := false
			for start > 0 && isSpace(text[start-1]) && text[start-1] != '\n' {
				start--
				led = true
			}
			if !led && n == count-1 {
				for end < len(text)-1 && isSpace(text[end+1]) && text[end+1] != '\n' {
					end++
				}
			}
		} else if n < count-1 {
			for start > 0 && isSpace(text[start-1]) && text[start-1] != '\n' {
				start--
				n++
				if n >= count-1 {
					break
				}
			}
		}
	}
	return NewRange(start, end), true
}

// wordObjectStart walks back to the start of the word containing pos.
func wordObjectStart(text []rune, pos int, big bool) int {
	cls := charClass(text[pos], big)
	for pos > 0 && charClass(text[pos-1], big) == cls {
		pos--
	}
	return pos
}

// wordObjectEnd walks forward to the end of the word or whitespace run at
// pos.
func wordObjectEnd(text []rune, pos int, big bool) int {
	cls := charClass(text[pos], big)
	for pos < len(text)-1 && charClass(text[pos+1], big) == cls {
		pos++
	}
	return pos
}

// ============================================================================
// Sentence and paragraph objects
// ============================================================================

func objectInnerSentence(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return sentenceObject(s, c, count, false)
}

func objectOuterSentence(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return sentenceObject(s, c, count, true)
}

func sentenceObject(s *Session, c Caret, count int, outer bool) (TextRange, bool) {
	text := bufferText(s.host)
	if len(text) == 0 {
		return TextRange{}, false
	}
	pos := c.Offset()
	if pos >= len(text) {
		pos = len(text) - 1
	}

	starts := sentenceStarts(text)
	if len(starts) == 0 {
		return TextRange{}, false
	}
	idx := 0
	for i, st := range starts {
		if st <= pos {
			idx = i
		}
	}
	start := starts[idx]
	last := idx + count - 1
	if last > len(starts)-1 {
		last = len(starts) - 1
	}
	end := len(text) - 1
	if last+1 < len(starts) {
		end = starts[last+1] - 1
	}
	if !outer {
		for end > start && isSpace(text[end]) {
			end--
		}
	}
	return NewRange(start, end), true
}

func objectInnerParagraph(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return paragraphObject(s, c, count, false)
}

func objectOuterParagraph(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return paragraphObject(s, c, count, true)
}

// paragraphObject selects whole lines; the action carries FlagLinewise so
// the resolver snaps to line boundaries. The outer variant swallows the
// blank lines that follow the paragraph.
func paragraphObject(s *Session, c Caret, count int, outer bool) (TextRange, bool) {
	b := s.host
	line := b.LineForOffset(c.Offset())
	blank := func(l int) bool { return b.LineStart(l) == b.LineEnd(l) }

	start := line
	for start > 0 && blank(start-1) == blank(line) {
		start--
	}
	end := line
	for n := 0; n < count; n++ {
		inBlank := blank(end)
		for end < lastLine(b) && blank(end+1) == inBlank {
			end++
		}
		if n < count-1 {
			if end >= lastLine(b) {
				break
			}
			end++
		}
	}
	if outer {
		ext := end
		for ext < lastLine(b) && blank(ext+1) {
			ext++
		}
		if ext == end && !blank(start) {
			for start > 0 && blank(start-1) {
				start--
			}
		}
		end = ext
	}
	return NewRange(b.LineStart(start), normalizeOffset(b, end, b.LineEnd(end), false)), true
}

// ============================================================================
// Quote objects
// ============================================================================

func objectInnerQuote(s *Session, c Caret, cmd *Command, _ int) (TextRange, bool) {
	return quoteObject(s, c, quoteChar(cmd), false)
}

func objectOuterQuote(s *Session, c Caret, cmd *Command, _ int) (TextRange, bool) {
	return quoteObject(s, c, quoteChar(cmd), true)
}

func quoteChar(cmd *Command) rune {
	if cmd != nil && cmd.Argument != nil && cmd.Argument.Char != 0 {
		return cmd.Argument.Char
	}
	if cmd != nil && cmd.Char != 0 {
		return cmd.Char
	}
	return '"'
}

// quoteObject finds a quoted span on the caret's line. Quotes pair up left
// to right from the line start, so the caret must sit inside or on a pair.
func quoteObject(s *Session, c Caret, quote rune, outer bool) (TextRange, bool) {
	b := s.host
	line := b.LineForOffset(c.Offset())
	lineStart := b.LineStart(line)
	text := []rune(b.Text(lineStart, b.LineEnd(line)))
	pos := c.Offset() - lineStart

	var openings []int
	for i := 0; i < len(text); i++ {
		if text[i] == quote && (i == 0 || text[i-1] != '\\') {
			openings = append(openings, i)
		}
	}
	for i := 0; i+1 < len(openings); i += 2 {
		open, close := openings[i], openings[i+1]
		if pos <= close {
			if outer {
				return NewRange(lineStart+open, lineStart+close), true
			}
			if open+1 > close-1 {
				// end one before start: the resolver turns this into an empty range
				return NewRange(lineStart+open+1, lineStart+open), true
			}
			return NewRange(lineStart+open+1, lineStart+close-1), true
		}
	}
	return TextRange{}, false
}

// ============================================================================
// Block objects
// ============================================================================

func objectInnerParen(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return blockObject(s, c, count, '(', ')', false)
}

func objectOuterParen(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return blockObject(s, c, count, '(', ')', true)
}

func objectInnerBrace(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return blockObject(s, c, count, '{', '}', false)
}

func objectOuterBrace(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return blockObject(s, c, count, '{', '}', true)
}

func objectInnerBracket(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return blockObject(s, c, count, '[', ']', false)
}

func objectOuterBracket(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return blockObject(s, c, count, '[', ']', true)
}

func objectInnerAngle(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return blockObject(s, c, count, '<', '>', false)
}

func objectOuterAngle(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return blockObject(s, c, count, '<', '>', true)
}

// blockObject selects the count-th enclosing bracket pair. The inner
// variant excludes the brackets; an empty pair yields an empty range.
func blockObject(s *Session, c Caret, count int, open, close rune, outer bool) (TextRange, bool) {
	o, cl, ok := findBlockRange(bufferText(s.host), c.Offset(), count, open, close)
	if !ok {
		return TextRange{}, false
	}
	if outer {
		return NewRange(o, cl), true
	}
	if o+1 > cl-1 {
		// empty pair, same marker as quoteObject
		return NewRange(o+1, o), true
	}
	return NewRange(o+1, cl-1), true
}

// ============================================================================
// Tag objects
// ============================================================================

func objectInnerTag(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return tagObject(s, c, count, false)
}

func objectOuterTag(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return tagObject(s, c, count, true)
}

// tagObject selects the content of the count-th enclosing XML tag pair, or
// the whole element for the outer variant.
func tagObject(s *Session, c Caret, count int, outer bool) (TextRange, bool) {
	text := bufferText(s.host)
	pos := c.Offset()
	if pos > len(text) {
		pos = len(text)
	}
	openStart, openEnd, closeStart, closeEnd, ok := findTagBlock(text, pos, count)
	if !ok {
		return TextRange{}, false
	}
	if outer {
		return NewRange(openStart, closeEnd), true
	}
	if openEnd+1 > closeStart-1 {
		return NewRange(openEnd+1, openEnd), true
	}
	return NewRange(openEnd+1, closeStart-1), true
}

// ============================================================================
// Method object
// ============================================================================

func objectInnerMethod(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return blockObject(s, c, count, '{', '}', false)
}

func objectOuterMethod(s *Session, c Caret, _ *Command, count int) (TextRange, bool) {
	return blockObject(s, c, count, '{', '}', true)
}

// ============================================================================
// Text object actions
// ============================================================================

var (
	ObjectInnerWord    = &Action{Name: "object.word.inner", Flags: FlagInclusive, TextObject: objectInnerWord}
	ObjectOuterWord    = &Action{Name: "object.word.outer", Flags: FlagInclusive, TextObject: objectOuterWord}
	ObjectInnerBigWord = &Action{Name: "object.bigword.inner", Flags: FlagInclusive, TextObject: objectInnerBigWord}
	ObjectOuterBigWord = &Action{Name: "object.bigword.outer", Flags: FlagInclusive, TextObject: objectOuterBigWord}

	ObjectInnerSentence = &Action{Name: "object.sentence.inner", Flags: FlagInclusive, TextObject: objectInnerSentence}
	ObjectOuterSentence = &Action{Name: "object.sentence.outer", Flags: FlagInclusive, TextObject: objectOuterSentence}
	ObjectInnerParagraph = &Action{
		Name: "object.paragraph.inner", Flags: FlagInclusive | FlagLinewise, TextObject: objectInnerParagraph,
	}
	ObjectOuterParagraph = &Action{
		Name: "object.paragraph.outer", Flags: FlagInclusive | FlagLinewise, TextObject: objectOuterParagraph,
	}

	ObjectInnerQuote = &Action{Name: "object.quote.inner", Flags: FlagInclusive, TextObject: objectInnerQuote}
	ObjectOuterQuote = &Action{Name: "object.quote.outer", Flags: FlagInclusive, TextObject: objectOuterQuote}

	ObjectInnerParen   = &Action{Name: "object.paren.inner", Flags: FlagInclusive, TextObject: objectInnerParen}
	ObjectOuterParen   = &Action{Name: "object.paren.outer", Flags: FlagInclusive, TextObject: objectOuterParen}
	ObjectInnerBrace   = &Action{Name: "object.brace.inner", Flags: FlagInclusive, TextObject: objectInnerBrace}
	ObjectOuterBrace   = &Action{Name: "object.brace.outer", Flags: FlagInclusive, TextObject: objectOuterBrace}
	ObjectInnerBracket = &Action{Name: "object.bracket.inner", Flags: FlagInclusive, TextObject: objectInnerBracket}
	ObjectOuterBracket = &Action{Name: "object.bracket.outer", Flags: FlagInclusive, TextObject: objectOuterBracket}
	ObjectInnerAngle   = &Action{Name: "object.angle.inner", Flags: FlagInclusive, TextObject: objectInnerAngle}
	ObjectOuterAngle   = &Action{Name: "object.angle.outer", Flags: FlagInclusive, TextObject: objectOuterAngle}

	ObjectInnerTag = &Action{Name: "object.tag.inner", Flags: FlagInclusive, TextObject: objectInnerTag}
	ObjectOuterTag = &Action{Name: "object.tag.outer", Flags: FlagInclusive, TextObject: objectOuterTag}

	ObjectInnerMethod = &Action{Name: "object.method.inner", Flags: FlagInclusive, TextObject: objectInnerMethod}
	ObjectOuterMethod = &Action{Name: "object.method.outer", Flags: FlagInclusive, TextObject: objectOuterMethod}
)
