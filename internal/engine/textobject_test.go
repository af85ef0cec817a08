package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// resolveObject runs a text object through the resolver and returns the
// covered text.
func resolveObject(t *testing.T, s *Session, c Caret, cmd *Command) string {
	t.Helper()
	r, ok := s.ResolveMotionRange(c, cmd, 1, 0, false)
	require.True(t, ok)
	if !r.IsBlock() {
		return s.Host().Text(r.Start(), r.End())
	}
	out := ""
	for i := 0; i < r.Segments(); i++ {
		start, end := r.Segment(i)
		out += s.Host().Text(start, end)
	}
	return out
}

// ============================================================================
// Word object tests
// ============================================================================

func TestObjectInnerWord_MiddleOfWord(t *testing.T) {
	s, h, _ := newTestSession("foo bar baz", 5)
	require.Equal(t, "bar", resolveObject(t, s, h.carets[0], &Command{Action: ObjectInnerWord}))
}

func TestObjectInnerWord_OnWhitespaceSelectsWhitespace(t *testing.T) {
	s, h, _ := newTestSession("foo   bar", 4)
	require.Equal(t, "   ", resolveObject(t, s, h.carets[0], &Command{Action: ObjectInnerWord}))
}

func TestObjectOuterWord_TakesTrailingSpace(t *testing.T) {
	s, h, _ := newTestSession("foo bar baz", 5)
	require.Equal(t, "bar ", resolveObject(t, s, h.carets[0], &Command{Action: ObjectOuterWord}))
}

func TestObjectOuterWord_LastWordTakesLeadingSpace(t *testing.T) {
	s, h, _ := newTestSession("foo bar", 5)
	require.Equal(t, " bar", resolveObject(t, s, h.carets[0], &Command{Action: ObjectOuterWord}))
}

func TestObjectInnerWord_PunctuationBoundary(t *testing.T) {
	s, h, _ := newTestSession("foo.bar", 1)
	require.Equal(t, "foo", resolveObject(t, s, h.carets[0], &Command{Action: ObjectInnerWord}))
}

func TestObjectInnerBigWord_IncludesPunctuation(t *testing.T) {
	s, h, _ := newTestSession("a foo.bar c", 4)
	require.Equal(t, "foo.bar", resolveObject(t, s, h.carets[0], &Command{Action: ObjectInnerBigWord}))
}

func TestObjectInnerWord_LeftwardSelectionExtendsBackward(t *testing.T) {
	// with the active end left of the anchor the object grows the
	// selection in its own direction
	s, h, _ := newTestSession("foo bar baz", 5)
	c := h.carets[0]
	s.EnterVisual(SubModeCharacterWise)
	s.ApplyMotion(c, &Command{Action: MotionLeft})

	cmd := &Command{Action: ObjectInnerWord, Count: 2, RawCount: 2}
	require.Equal(t, "foo bar", resolveObject(t, s, c, cmd))
}

func TestObjectOuterWord_LeftwardSelectionTakesLeadingSpace(t *testing.T) {
	s, h, _ := newTestSession("foo bar baz", 5)
	c := h.carets[0]
	s.EnterVisual(SubModeCharacterWise)
	s.ApplyMotion(c, &Command{Action: MotionLeft})

	require.Equal(t, " bar", resolveObject(t, s, c, &Command{Action: ObjectOuterWord}))
}

func TestObjectInnerWord_WithCount(t *testing.T) {
	s, h, _ := newTestSession("foo bar baz", 0)
	cmd := &Command{Action: ObjectInnerWord, Count: 3, RawCount: 3}
	require.Equal(t, "foo bar", resolveObject(t, s, h.carets[0], cmd))
}

// ============================================================================
// Quote object tests
// ============================================================================

func TestObjectInnerQuote_Inside(t *testing.T) {
	s, h, _ := newTestSession(`say "hello" now`, 7)
	cmd := &Command{Action: ObjectInnerQuote, Char: '"'}
	require.Equal(t, "hello", resolveObject(t, s, h.carets[0], cmd))
}

func TestObjectOuterQuote_IncludesQuotes(t *testing.T) {
	s, h, _ := newTestSession(`say "hello" now`, 7)
	cmd := &Command{Action: ObjectOuterQuote, Char: '"'}
	require.Equal(t, `"hello"`, resolveObject(t, s, h.carets[0], cmd))
}

func TestObjectInnerQuote_BeforeQuotesFindsNextPair(t *testing.T) {
	s, h, _ := newTestSession(`x = "val"`, 0)
	cmd := &Command{Action: ObjectInnerQuote, Char: '"'}
	require.Equal(t, "val", resolveObject(t, s, h.carets[0], cmd))
}

func TestObjectInnerQuote_SingleQuoteChar(t *testing.T) {
	s, h, _ := newTestSession(`it's 'quoted' here`, 4)
	cmd := &Command{Action: ObjectInnerQuote, Char: '\''}
	// quotes pair left to right from line start, so the apostrophe opens
	require.Equal(t, "s ", resolveObject(t, s, h.carets[0], cmd))
}

func TestObjectInnerQuote_EmptyPairIsEmptyRange(t *testing.T) {
	// the quotes themselves must stay outside the range
	s, h, _ := newTestSession(`x = ""`, 5)
	cmd := &Command{Action: ObjectInnerQuote, Char: '"'}
	r, ok := s.ResolveMotionRange(h.carets[0], cmd, 1, 0, false)
	require.True(t, ok)
	require.True(t, r.IsEmpty())
	require.Equal(t, 5, r.Start())
	require.Equal(t, 5, r.End())
}

func TestObjectInnerQuote_NoQuotesFails(t *testing.T) {
	s, h, _ := newTestSession("no quotes here")
	cmd := &Command{Action: ObjectInnerQuote, Char: '"'}
	_, ok := s.ResolveMotionRange(h.carets[0], cmd, 1, 0, false)
	require.False(t, ok)
}

// ============================================================================
// Block object tests
// ============================================================================

func TestObjectInnerParen(t *testing.T) {
	s, h, _ := newTestSession("call(a, b)", 6)
	require.Equal(t, "a, b", resolveObject(t, s, h.carets[0], &Command{Action: ObjectInnerParen}))
}

func TestObjectOuterParen(t *testing.T) {
	s, h, _ := newTestSession("call(a, b)", 6)
	require.Equal(t, "(a, b)", resolveObject(t, s, h.carets[0], &Command{Action: ObjectOuterParen}))
}

func TestObjectInnerParen_NestedCountReachesOuter(t *testing.T) {
	s, h, _ := newTestSession("f(g(x), y)", 4)
	cmd := &Command{Action: ObjectInnerParen, Count: 2, RawCount: 2}
	require.Equal(t, "g(x), y", resolveObject(t, s, h.carets[0], cmd))
}

func TestObjectInnerBrace_MultiLine(t *testing.T) {
	s, h, _ := newTestSession(lines("func f() {", "\tbody()", "}"), 12)
	require.Equal(t, lines("", "\tbody()", ""),
		resolveObject(t, s, h.carets[0], &Command{Action: ObjectInnerBrace}))
}

func TestObjectInnerParen_EmptyPairIsEmptyRange(t *testing.T) {
	s, h, _ := newTestSession("f()", 1)
	r, ok := s.ResolveMotionRange(h.carets[0], &Command{Action: ObjectInnerParen}, 1, 0, false)
	require.True(t, ok)
	require.True(t, r.IsEmpty())
	require.Equal(t, 2, r.Start())
}

func TestObjectInnerParen_NotInsideFails(t *testing.T) {
	s, h, _ := newTestSession("plain text")
	_, ok := s.ResolveMotionRange(h.carets[0], &Command{Action: ObjectInnerParen}, 1, 0, false)
	require.False(t, ok)
}

// ============================================================================
// Tag object tests
// ============================================================================

func TestObjectInnerTag(t *testing.T) {
	s, h, _ := newTestSession("<div>hello</div>", 7)
	require.Equal(t, "hello", resolveObject(t, s, h.carets[0], &Command{Action: ObjectInnerTag}))
}

func TestObjectOuterTag(t *testing.T) {
	s, h, _ := newTestSession("<div>hello</div>", 7)
	require.Equal(t, "<div>hello</div>",
		resolveObject(t, s, h.carets[0], &Command{Action: ObjectOuterTag}))
}

func TestObjectInnerTag_Nested(t *testing.T) {
	s, h, _ := newTestSession("<a><b>x</b></a>", 6)
	require.Equal(t, "x", resolveObject(t, s, h.carets[0], &Command{Action: ObjectInnerTag}))
}

func TestObjectInnerTag_NestedCountReachesOuter(t *testing.T) {
	s, h, _ := newTestSession("<a><b>x</b></a>", 6)
	cmd := &Command{Action: ObjectInnerTag, Count: 2, RawCount: 2}
	require.Equal(t, "<b>x</b>", resolveObject(t, s, h.carets[0], cmd))
}

func TestObjectInnerTag_EmptyElementIsEmptyRange(t *testing.T) {
	s, h, _ := newTestSession("<b></b>", 1)
	r, ok := s.ResolveMotionRange(h.carets[0], &Command{Action: ObjectInnerTag}, 1, 0, false)
	require.True(t, ok)
	require.True(t, r.IsEmpty())
	require.Equal(t, 3, r.Start())
}

func TestObjectInnerTag_MismatchedSkipped(t *testing.T) {
	s, h, _ := newTestSession("<a>no close", 4)
	_, ok := s.ResolveMotionRange(h.carets[0], &Command{Action: ObjectInnerTag}, 1, 0, false)
	require.False(t, ok)
}

// ============================================================================
// Sentence and paragraph object tests
// ============================================================================

func TestObjectInnerSentence(t *testing.T) {
	s, h, _ := newTestSession("One two. Three four. Five.", 12)
	require.Equal(t, "Three four.",
		resolveObject(t, s, h.carets[0], &Command{Action: ObjectInnerSentence}))
}

func TestObjectOuterSentence_TakesTrailingSpace(t *testing.T) {
	s, h, _ := newTestSession("One two. Three four. Five.", 12)
	require.Equal(t, "Three four. ",
		resolveObject(t, s, h.carets[0], &Command{Action: ObjectOuterSentence}))
}

func TestObjectInnerParagraph_SelectsWholeLines(t *testing.T) {
	s, h, _ := newTestSession(lines("one", "two", "", "three"), 5)
	c := h.carets[0]
	r, ok := s.ResolveMotionRange(c, &Command{Action: ObjectInnerParagraph}, 1, 0, true)
	require.True(t, ok)
	require.Equal(t, 0, r.Start())
	require.Equal(t, h.LineEnd(1)+1, r.End())
}

func TestObjectOuterParagraph_TakesTrailingBlankLines(t *testing.T) {
	s, h, _ := newTestSession(lines("one", "", "", "two"), 0)
	c := h.carets[0]
	r, ok := s.ResolveMotionRange(c, &Command{Action: ObjectOuterParagraph}, 1, 0, true)
	require.True(t, ok)
	require.Equal(t, 0, r.Start())
	require.Equal(t, h.LineEnd(2)+1, r.End())
}
