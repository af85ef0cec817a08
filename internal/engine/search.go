package engine

import (
	"strings"
	"unicode"
)

// Character-level searches used by motions and text objects. All functions
// here are read-only and operate on a rune snapshot of the buffer; offsets in
// the snapshot equal buffer offsets because the host counts one character per
// line separator.

const (
	classWhitespace = iota
	classWord
	classPunct
)

// bufferText snapshots the whole buffer as runes.
func bufferText(b Buffer) []rune {
	return []rune(b.Text(0, b.Length()))
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

// charClass classifies a rune for word-motion purposes. With big=true every
// non-whitespace run is one WORD.
func charClass(r rune, big bool) int {
	if isSpace(r) {
		return classWhitespace
	}
	if big {
		return classWord
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		return classWord
	}
	return classPunct
}

// findNextWord returns the offset of the count-th next (or previous, for
// negative count) word start. The result clamps at the buffer edges.
func findNextWord(text []rune, pos, count int, big bool) int {
	step := 1
	if count < 0 {
		step = -1
		count = -count
	}
	for ; count > 0; count-- {
		if step > 0 {
			pos = forwardWordStart(text, pos, big)
		} else {
			pos = backwardWordStart(text, pos, big)
		}
	}
	return pos
}

func forwardWordStart(text []rune, pos int, big bool) int {
	n := len(text)
	if pos >= n-1 {
		return n - 1
	}
	i := pos
	cls := charClass(text[i], big)
	if cls != classWhitespace {
		for i < n && charClass(text[i], big) == cls {
			i++
		}
	}
	for i < n && charClass(text[i], big) == classWhitespace {
		i++
	}
	if i >= n {
		return n - 1
	}
	return i
}

func backwardWordStart(text []rune, pos int, big bool) int {
	i := pos - 1
	for i > 0 && charClass(text[i], big) == classWhitespace {
		i--
	}
	if i <= 0 {
		return 0
	}
	cls := charClass(text[i], big)
	for i > 0 && charClass(text[i-1], big) == cls {
		i--
	}
	return i
}

// findNextWordEnd returns the offset of the count-th next (or previous) word
// end.
func findNextWordEnd(text []rune, pos, count int, big bool) int {
	step := 1
	if count < 0 {
		step = -1
		count = -count
	}
	for ; count > 0; count-- {
		if step > 0 {
			pos = forwardWordEnd(text, pos, big)
		} else {
			pos = backwardWordEnd(text, pos, big)
		}
	}
	return pos
}

func forwardWordEnd(text []rune, pos int, big bool) int {
	n := len(text)
	i := pos + 1
	for i < n && charClass(text[i], big) == classWhitespace {
		i++
	}
	if i >= n {
		return n - 1
	}
	cls := charClass(text[i], big)
	for i+1 < n && charClass(text[i+1], big) == cls {
		i++
	}
	return i
}

func backwardWordEnd(text []rune, pos int, big bool) int {
	i := pos - 1
	if i <= 0 {
		return 0
	}
	// Step out of the current run first, then skip whitespace; what remains
	// is the previous word's last character.
	if charClass(text[i], big) != classWhitespace && i > 0 &&
		charClass(text[i], big) == charClass(text[pos], big) {
		cls := charClass(text[pos], big)
		for i > 0 && charClass(text[i], big) == cls {
			i--
		}
	}
	for i > 0 && charClass(text[i], big) == classWhitespace {
		i--
	}
	return i
}

// isCamelStart reports whether offset i begins a camel hump: a case or
// digit/letter transition inside an identifier, or the identifier's first
// character.
func isCamelStart(text []rune, i int) bool {
	r := text[i]
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return false
	}
	if i == 0 {
		return true
	}
	p := text[i-1]
	switch {
	case !unicode.IsLetter(p) && !unicode.IsDigit(p):
		return true
	case unicode.IsUpper(r) && !unicode.IsUpper(p):
		return true
	case unicode.IsUpper(r) && unicode.IsUpper(p) && i+1 < len(text) && unicode.IsLower(text[i+1]):
		// Last capital of an acronym followed by a lowercase word
		// ("HTTPServer" starts a hump at 'S').
		return true
	case unicode.IsDigit(r) && !unicode.IsDigit(p):
		return true
	}
	return false
}

// isCamelEnd reports whether offset i ends a camel hump.
func isCamelEnd(text []rune, i int) bool {
	r := text[i]
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return false
	}
	if i == len(text)-1 {
		return true
	}
	n := text[i+1]
	switch {
	case !unicode.IsLetter(n) && !unicode.IsDigit(n):
		return true
	case unicode.IsLower(r) && unicode.IsUpper(n):
		return true
	case unicode.IsUpper(r) && unicode.IsUpper(n) && i+2 < len(text) && unicode.IsLower(text[i+2]):
		return true
	case unicode.IsDigit(r) != unicode.IsDigit(n):
		return true
	}
	return false
}

// findNextCamel returns the offset of the count-th camel hump start in the
// count's direction, or -1 when none exists.
func findNextCamel(text []rune, pos, count int) int {
	return scanCamel(text, pos, count, isCamelStart)
}

// findNextCamelEnd returns the offset of the count-th camel hump end in the
// count's direction, or -1 when none exists.
func findNextCamelEnd(text []rune, pos, count int) int {
	return scanCamel(text, pos, count, isCamelEnd)
}

func scanCamel(text []rune, pos, count int, match func([]rune, int) bool) int {
	step := 1
	if count < 0 {
		step = -1
		count = -count
	}
	for ; count > 0; count-- {
		found := -1
		for i := pos + step; i >= 0 && i < len(text); i += step {
			if match(text, i) {
				found = i
				break
			}
		}
		if found < 0 {
			return -1
		}
		pos = found
	}
	return pos
}

// maskIgnored returns a copy of text with every character inside quoted
// strings, line comments, and block comments replaced by a NUL placeholder.
// Pair matching scans the masked text so delimiters inside strings and
// comments never participate. This is a lightweight lexical heuristic, not a
// parser: strings terminate at end of line, comments follow the // and
// /* ... */ conventions.
func maskIgnored(text []rune) []rune {
	masked := make([]rune, len(text))
	copy(masked, text)

	const (
		stNormal = iota
		stString
		stLineComment
		stBlockComment
	)
	state := stNormal
	var quote rune

	for i := 0; i < len(text); i++ {
		r := text[i]
		switch state {
		case stNormal:
			switch {
			case r == '"' || r == '\'':
				state = stString
				quote = r
				masked[i] = 0
			case r == '/' && i+1 < len(text) && text[i+1] == '/':
				state = stLineComment
				masked[i] = 0
			case r == '/' && i+1 < len(text) && text[i+1] == '*':
				state = stBlockComment
				masked[i] = 0
			}
		case stString:
			masked[i] = 0
			switch {
			case r == '\\' && i+1 < len(text):
				i++
				masked[i] = 0
			case r == quote:
				state = stNormal
			case r == '\n':
				// Unterminated string ends at the line break.
				state = stNormal
			}
		case stLineComment:
			if r == '\n' {
				state = stNormal
			} else {
				masked[i] = 0
			}
		case stBlockComment:
			masked[i] = 0
			if r == '/' && i > 0 && text[i-1] == '*' {
				state = stNormal
			}
		}
	}
	return masked
}

var pairKinds = []struct {
	open  rune
	close rune
}{
	{'(', ')'},
	{'[', ']'},
	{'{', '}'},
}

func pairFor(r rune) (open, close rune, isOpen, ok bool) {
	for _, p := range pairKinds {
		if r == p.open {
			return p.open, p.close, true, true
		}
		if r == p.close {
			return p.open, p.close, false, true
		}
	}
	return 0, 0, false, false
}

// findMatchingPair implements the percent motion: find the first bracket
// character at or after pos on the current line, then return the offset of
// its match, honoring nesting and skipping brackets inside strings and
// comments. Returns -1 when no pair is found.
func findMatchingPair(text []rune, pos, lineEnd int) int {
	masked := maskIgnored(text)
	for i := pos; i < lineEnd && i < len(masked); i++ {
		open, close, isOpen, ok := pairFor(masked[i])
		if !ok {
			continue
		}
		if isOpen {
			return matchForward(masked, i, open, close)
		}
		return matchBackward(masked, i, open, close)
	}
	return -1
}

func matchForward(masked []rune, from int, open, close rune) int {
	depth := 0
	for i := from; i < len(masked); i++ {
		switch masked[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func matchBackward(masked []rune, from int, open, close rune) int {
	depth := 0
	for i := from; i >= 0; i-- {
		switch masked[i] {
		case close:
			depth++
		case open:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// findUnmatchedBlock returns the offset of the count-th unmatched open (for
// negative count, scanning backward) or close (positive count, forward)
// bracket of the given kind, or -1.
func findUnmatchedBlock(text []rune, pos, count int, open, close rune) int {
	masked := maskIgnored(text)
	step := 1
	if count < 0 {
		step = -1
		count = -count
	}
	// Standing on a bracket counts from just past it.
	i := pos
	if i >= 0 && i < len(masked) && (masked[i] == open || masked[i] == close) {
		i += step
	}
	depth := 0
	for ; i >= 0 && i < len(masked); i += step {
		switch masked[i] {
		case open:
			if step < 0 {
				if depth == 0 {
					count--
					if count == 0 {
						return i
					}
				} else {
					depth--
				}
			} else {
				depth++
			}
		case close:
			if step > 0 {
				if depth == 0 {
					count--
					if count == 0 {
						return i
					}
				} else {
					depth--
				}
			} else {
				depth++
			}
		}
	}
	return -1
}

// findBlockRange locates the enclosing bracket pair of the given kind, count
// levels out. Returns the offsets of the open and close characters.
func findBlockRange(text []rune, pos, count int, open, close rune) (int, int, bool) {
	masked := maskIgnored(text)
	searchFrom := pos
	var o, c int
	for level := 0; level < count; level++ {
		var ok bool
		o, c, ok = enclosingPair(masked, searchFrom, open, close)
		if !ok {
			return 0, 0, false
		}
		// Next level searches from just outside this pair.
		searchFrom = o - 1
		if searchFrom < 0 {
			if level < count-1 {
				return 0, 0, false
			}
		}
	}
	return o, c, true
}

func enclosingPair(masked []rune, pos int, open, close rune) (int, int, bool) {
	if pos < 0 || pos >= len(masked) {
		return 0, 0, false
	}
	// Standing on a delimiter means that pair.
	if masked[pos] == open {
		if c := matchForward(masked, pos, open, close); c >= 0 {
			return pos, c, true
		}
		return 0, 0, false
	}
	if masked[pos] == close {
		if o := matchBackward(masked, pos, open, close); o >= 0 {
			return o, pos, true
		}
		return 0, 0, false
	}
	// Scan backward for the unmatched opener, then forward for its match.
	depth := 0
	o := -1
	for i := pos; i >= 0; i-- {
		switch masked[i] {
		case close:
			depth++
		case open:
			if depth == 0 {
				o = i
			} else {
				depth--
			}
		}
		if o >= 0 {
			break
		}
	}
	if o < 0 {
		return 0, 0, false
	}
	c := matchForward(masked, o, open, close)
	if c < 0 {
		return 0, 0, false
	}
	return o, c, true
}

// isSentenceTerminator reports whether offset i ends a sentence: a
// terminator character, optionally followed by closing quotes or brackets,
// followed by whitespace or end of text.
func isSentenceTerminator(text []rune, i int) bool {
	r := text[i]
	if r != '.' && r != '!' && r != '?' {
		return false
	}
	j := i + 1
	for j < len(text) && (text[j] == ')' || text[j] == ']' || text[j] == '"' || text[j] == '\'') {
		j++
	}
	return j >= len(text) || isSpace(text[j])
}

// sentenceStarts collects every sentence start offset: the first non-blank
// character of the text plus the first non-blank after each terminator.
func sentenceStarts(text []rune) []int {
	var starts []int
	i := 0
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	if i < len(text) {
		starts = append(starts, i)
	}
	for ; i < len(text); i++ {
		if !isSentenceTerminator(text, i) {
			continue
		}
		j := i + 1
		for j < len(text) && isSpace(text[j]) {
			j++
		}
		if j < len(text) {
			starts = append(starts, j)
		}
	}
	return starts
}

// findNextSentenceStart returns the offset of the count-th sentence start in
// the count's direction, or -1 when none exists.
func findNextSentenceStart(text []rune, pos, count int) int {
	starts := sentenceStarts(text)
	if count > 0 {
		for _, st := range starts {
			if st > pos {
				count--
				if count == 0 {
					return st
				}
			}
		}
		return -1
	}
	for i := len(starts) - 1; i >= 0; i-- {
		if starts[i] < pos {
			count++
			if count == 0 {
				return starts[i]
			}
		}
	}
	return -1
}

// findNextSentenceEnd returns the offset of the count-th sentence terminator
// in the count's direction, or -1.
func findNextSentenceEnd(text []rune, pos, count int) int {
	step := 1
	if count < 0 {
		step = -1
		count = -count
	}
	for ; count > 0; count-- {
		next := -1
		for i := pos + step; i >= 0 && i < len(text); i += step {
			if isSentenceTerminator(text, i) {
				next = i
				break
			}
		}
		if next < 0 {
			return -1
		}
		pos = next
	}
	return pos
}

// findTagBlock locates the count-th XML tag pair enclosing pos. It returns
// the offsets of the opening tag's '<' and '>' and the closing tag's '<'
// and '>'. Self-closing and mismatched tags are skipped.
func findTagBlock(text []rune, pos, count int) (openStart, openEnd, closeStart, closeEnd int, ok bool) {
	type tag struct {
		name             string
		start, end       int
		closing, selfEnd bool
	}
	var tags []tag
	for i := 0; i < len(text); i++ {
		if text[i] != '<' {
			continue
		}
		j := i + 1
		closing := false
		if j < len(text) && text[j] == '/' {
			closing = true
			j++
		}
		nameStart := j
		for j < len(text) && text[j] != '>' && text[j] != '<' {
			j++
		}
		if j >= len(text) || text[j] != '>' {
			continue
		}
		name := string(text[nameStart:j])
		selfEnd := false
		if k := len(name); k > 0 && name[k-1] == '/' {
			selfEnd = true
			name = name[:k-1]
		}
		if idx := strings.IndexByte(name, ' '); idx >= 0 {
			name = name[:idx]
		}
		if name != "" {
			tags = append(tags, tag{name: name, start: i, end: j, closing: closing, selfEnd: selfEnd})
		}
		i = j
	}

	// Pair tags with a stack, then pick enclosing pairs innermost first.
	type pair struct{ open, close tag }
	var stack []tag
	var pairs []pair
	for _, t := range tags {
		switch {
		case t.selfEnd:
		case !t.closing:
			stack = append(stack, t)
		default:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.name == t.name {
					pairs = append(pairs, pair{open: top, close: t})
					break
				}
			}
		}
	}

	var enclosing []pair
	for _, p := range pairs {
		if p.open.start <= pos && pos <= p.close.end {
			enclosing = append(enclosing, p)
		}
	}
	if count > len(enclosing) {
		return 0, 0, 0, 0, false
	}
	// pairs close innermost first, so enclosing is already ordered inner
	// to outer
	p := enclosing[count-1]
	return p.open.start, p.open.end, p.close.start, p.close.end, true
}

