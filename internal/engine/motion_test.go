package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// ============================================================================
// Horizontal motion tests
// ============================================================================

func TestMotionRight_Simple(t *testing.T) {
	s, h, _ := newTestSession("hello")
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionRight}))
	require.Equal(t, 1, c.Offset())
}

func TestMotionRight_StopsAtLineEnd(t *testing.T) {
	s, h, _ := newTestSession("hi", 1)
	c := h.carets[0]
	// normal mode keeps the caret on the last character
	require.False(t, s.ApplyMotion(c, &Command{Action: MotionRight}))
	require.Equal(t, 1, c.Offset())
}

func TestMotionRight_InsertModeReachesLineEnd(t *testing.T) {
	s, h, _ := newTestSession("hi", 1)
	s.SetMode(ModeInsert)
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionRight}))
	require.Equal(t, 2, c.Offset())
}

func TestMotionLeft_AtLineStartFails(t *testing.T) {
	s, h, _ := newTestSession(lines("ab", "cd"), 3)
	c := h.carets[0]
	require.False(t, s.ApplyMotion(c, &Command{Action: MotionLeft}))
}

func TestMotionRightWrap_CrossesNewline(t *testing.T) {
	s, h, _ := newTestSession(lines("ab", "cd"), 1)
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionRightWrap, Count: 2, RawCount: 2}))
	require.Equal(t, 3, c.Offset())
}

func TestMotionLineEnd_UpdatesStickyColumn(t *testing.T) {
	s, h, _ := newTestSession(lines("hello", "hi", "world"))
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionLineEnd}))
	require.Equal(t, 4, c.Offset())
	require.Equal(t, EndOfLineColumn, s.LastColumn(c))

	// moving down sticks to each line's last character
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionDown}))
	require.Equal(t, h.LineEnd(1)-1, c.Offset())
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionDown}))
	require.Equal(t, h.LineEnd(2)-1, c.Offset())
}

func TestMotionFirstNonBlank(t *testing.T) {
	s, h, _ := newTestSession("   abc", 5)
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionFirstNonBlank}))
	require.Equal(t, 3, c.Offset())
}

func TestMotionColumn(t *testing.T) {
	s, h, _ := newTestSession("abcdef", 0)
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionColumn, Count: 4, RawCount: 4}))
	require.Equal(t, 3, c.Offset())
}

// ============================================================================
// Vertical motion tests
// ============================================================================

func TestMotionDown_RemembersColumnAcrossShortLine(t *testing.T) {
	s, h, _ := newTestSession(lines("abcdef", "ab", "uvwxyz"), 4)
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionDown}))
	require.Equal(t, h.OffsetOf(1, 1), c.Offset())

	// the remembered column survives the short line
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionDown}))
	require.Equal(t, h.OffsetOf(2, 4), c.Offset())
}

func TestMotionDown_AtLastLineFails(t *testing.T) {
	s, h, _ := newTestSession(lines("ab", "cd"), 3)
	c := h.carets[0]
	require.False(t, s.ApplyMotion(c, &Command{Action: MotionDown}))
}

func TestMotionGotoLine_NoCountGoesToLastLine(t *testing.T) {
	s, h, _ := newTestSession(lines("one", "two", "  three"))
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionGotoLine}))
	require.Equal(t, h.OffsetOf(2, 2), c.Offset())
}

func TestMotionGotoLine_WithCount(t *testing.T) {
	s, h, _ := newTestSession(lines("one", "two", "three"))
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionGotoLine, Count: 2, RawCount: 2}))
	require.Equal(t, h.LineStart(1), c.Offset())
}

func TestMotionLinePercent(t *testing.T) {
	text := lines("l1", "l2", "l3", "l4", "l5", "l6", "l7", "l8", "l9", "l10")
	s, h, _ := newTestSession(text)
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionLinePercent, Count: 50, RawCount: 50}))
	require.Equal(t, h.LineStart(4), c.Offset())
}

// ============================================================================
// Word motion tests
// ============================================================================

func TestMotionWordNext(t *testing.T) {
	s, h, _ := newTestSession("foo bar baz")
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionWordNext}))
	require.Equal(t, 4, c.Offset())
}

func TestMotionWordNext_PunctuationIsAWord(t *testing.T) {
	s, h, _ := newTestSession("foo.bar")
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionWordNext}))
	require.Equal(t, 3, c.Offset())
}

func TestMotionBigWordNext_SkipsPunctuation(t *testing.T) {
	s, h, _ := newTestSession("foo.bar qux")
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionBigWordNext}))
	require.Equal(t, 8, c.Offset())
}

func TestMotionWordNext_AtBufferEndFails(t *testing.T) {
	s, h, _ := newTestSession("foo bar", 6)
	c := h.carets[0]
	require.False(t, s.ApplyMotion(c, &Command{Action: MotionWordNext}))
}

func TestMotionWordPrev(t *testing.T) {
	s, h, _ := newTestSession("foo bar baz", 8)
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionWordPrev, Count: 2, RawCount: 2}))
	require.Equal(t, 0, c.Offset())
}

func TestMotionWordEndNext(t *testing.T) {
	s, h, _ := newTestSession("foo bar")
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionWordEndNext}))
	require.Equal(t, 2, c.Offset())
}

func TestMotionCamelNext(t *testing.T) {
	s, h, _ := newTestSession("fooBarBaz")
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionCamelNext}))
	require.Equal(t, 3, c.Offset())
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionCamelNext}))
	require.Equal(t, 6, c.Offset())
}

// ============================================================================
// Find-character motion tests
// ============================================================================

func TestMotionFindChar_Forward(t *testing.T) {
	s, h, _ := newTestSession("hello world")
	c := h.carets[0]
	cmd := &Command{Action: MotionFindCharNext, Argument: &Command{Char: 'o'}}
	require.True(t, s.ApplyMotion(c, cmd))
	require.Equal(t, 4, c.Offset())
}

func TestMotionFindChar_SecondOccurrence(t *testing.T) {
	s, h, _ := newTestSession("hello world")
	c := h.carets[0]
	cmd := &Command{Action: MotionFindCharNext, Count: 2, RawCount: 2, Argument: &Command{Char: 'o'}}
	require.True(t, s.ApplyMotion(c, cmd))
	require.Equal(t, 7, c.Offset())
}

func TestMotionFindChar_NotOnLineFails(t *testing.T) {
	s, h, _ := newTestSession(lines("hello", "oops"))
	c := h.carets[0]
	cmd := &Command{Action: MotionFindCharNext, Argument: &Command{Char: 'z'}}
	require.False(t, s.ApplyMotion(c, cmd))
}

func TestMotionTillChar_StopsBefore(t *testing.T) {
	s, h, _ := newTestSession("hello world")
	c := h.carets[0]
	cmd := &Command{Action: MotionTillCharNext, Argument: &Command{Char: 'w'}}
	require.True(t, s.ApplyMotion(c, cmd))
	require.Equal(t, 5, c.Offset())
}

func TestMotionFindCharPrev(t *testing.T) {
	s, h, _ := newTestSession("hello world", 10)
	c := h.carets[0]
	cmd := &Command{Action: MotionFindCharPrev, Argument: &Command{Char: 'o'}}
	require.True(t, s.ApplyMotion(c, cmd))
	require.Equal(t, 7, c.Offset())
}

// ============================================================================
// Matching pair tests
// ============================================================================

func TestMotionMatchingPair_FromInsideJumpsToOpenMatch(t *testing.T) {
	s, h, _ := newTestSession("foo(bar)", 4)
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionMatchingPair}))
	require.Equal(t, 3, c.Offset())
}

func TestMotionMatchingPair_OnOpenJumpsToClose(t *testing.T) {
	s, h, _ := newTestSession("foo(bar)", 3)
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionMatchingPair}))
	require.Equal(t, 7, c.Offset())
}

func TestMotionMatchingPair_SkipsBracketsInStrings(t *testing.T) {
	s, h, _ := newTestSession(`f(")", x)`, 1)
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionMatchingPair}))
	require.Equal(t, 8, c.Offset())
}

func TestMotionMatchingPair_SkipsBracketsInLineComments(t *testing.T) {
	s, h, _ := newTestSession(lines("x = (1 + // )", "2)"), 4)
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionMatchingPair}))
	require.Equal(t, h.OffsetOf(1, 1), c.Offset())
}

func TestMotionMatchingPair_NoBracketOnLineFails(t *testing.T) {
	s, h, _ := newTestSession("plain text")
	c := h.carets[0]
	require.False(t, s.ApplyMotion(c, &Command{Action: MotionMatchingPair}))
}

func TestMotionUnmatchedOpenBrace(t *testing.T) {
	s, h, _ := newTestSession("if x { y }", 7)
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionUnmatchedOpenBrace}))
	require.Equal(t, 5, c.Offset())
}

// ============================================================================
// Paragraph and sentence motion tests
// ============================================================================

func TestMotionParagraphNext(t *testing.T) {
	s, h, _ := newTestSession(lines("one", "two", "", "three"))
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionParagraphNext}))
	require.Equal(t, h.LineStart(2), c.Offset())
}

func TestMotionParagraphNext_PastLastStopsAtEnd(t *testing.T) {
	s, h, _ := newTestSession(lines("one", "two"))
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionParagraphNext}))
	require.Equal(t, h.LineEnd(1)-1, c.Offset())
}

func TestMotionSentenceNext(t *testing.T) {
	s, h, _ := newTestSession("One two. Three four. Five.")
	c := h.carets[0]
	require.True(t, s.ApplyMotion(c, &Command{Action: MotionSentenceNext}))
	require.Equal(t, 9, c.Offset())
}

// ============================================================================
// ResolveMotionRange tests
// ============================================================================

func TestResolveMotionRange_ExclusiveMotion(t *testing.T) {
	s, h, _ := newTestSession("foo bar baz")
	c := h.carets[0]
	r, ok := s.ResolveMotionRange(c, &Command{Action: MotionWordNext}, 1, 0, false)
	require.True(t, ok)
	require.Equal(t, 0, r.Start())
	require.Equal(t, 4, r.End())
}

func TestResolveMotionRange_InclusiveMotionWidensEnd(t *testing.T) {
	s, h, _ := newTestSession("foo bar")
	c := h.carets[0]
	r, ok := s.ResolveMotionRange(c, &Command{Action: MotionWordEndNext}, 1, 0, false)
	require.True(t, ok)
	require.Equal(t, 0, r.Start())
	require.Equal(t, 3, r.End())
}

func TestResolveMotionRange_BackwardInclusiveWidensTowardCaret(t *testing.T) {
	// the inclusive extension applies before endpoint ordering, so a
	// backward jump to the adjacent offset collapses to an empty range
	s, h, _ := newTestSession("foo(bar)", 4)
	c := h.carets[0]
	r, ok := s.ResolveMotionRange(c, &Command{Action: MotionMatchingPair}, 1, 0, false)
	require.True(t, ok)
	require.Equal(t, 4, r.Start())
	require.Equal(t, 4, r.End())
	require.True(t, r.IsEmpty())
}

func TestResolveMotionRange_BackwardInclusiveFartherJump(t *testing.T) {
	// ( at 3 matched from ) at 7: the extension moves the smaller end
	// inward, so the brackets themselves stay outside the range
	s, h, _ := newTestSession("foo(bar)", 7)
	c := h.carets[0]
	r, ok := s.ResolveMotionRange(c, &Command{Action: MotionMatchingPair}, 1, 0, false)
	require.True(t, ok)
	require.Equal(t, 4, r.Start())
	require.Equal(t, 7, r.End())
}

func TestResolveMotionRange_CountsMultiply(t *testing.T) {
	// an operator count of 2 with a motion count of 3 covers six words
	s, h, _ := newTestSession("a b c d e f g h")
	c := h.carets[0]
	motion := &Command{Action: MotionWordNext, Count: 3, RawCount: 3}
	r, ok := s.ResolveMotionRange(c, motion, 2, 2, false)
	require.True(t, ok)
	require.Equal(t, 0, r.Start())
	require.Equal(t, 12, r.End())
}

func TestResolveMotionRange_LinewiseSnapsToLineBoundaries(t *testing.T) {
	s, h, _ := newTestSession(lines("alpha", "beta", "gamma"), 2)
	c := h.carets[0]
	r, ok := s.ResolveMotionRange(c, &Command{Action: MotionDown}, 1, 0, true)
	require.True(t, ok)
	require.Equal(t, 0, r.Start())
	require.Equal(t, h.LineEnd(1)+1, r.End())
}

func TestResolveMotionRange_LinewiseClampsAtBufferEnd(t *testing.T) {
	s, h, _ := newTestSession(lines("alpha", "beta"), 7)
	c := h.carets[0]
	r, ok := s.ResolveMotionRange(c, &Command{Action: MotionUp}, 1, 0, true)
	require.True(t, ok)
	require.Equal(t, 0, r.Start())
	require.Equal(t, h.Length(), r.End())
}

func TestResolveMotionRange_FailedMotionHasNoRange(t *testing.T) {
	s, h, _ := newTestSession("foo", 2)
	c := h.carets[0]
	_, ok := s.ResolveMotionRange(c, &Command{Action: MotionWordNext}, 1, 0, false)
	require.False(t, ok)
}

func TestResolveMotionRange_AlwaysOrdered(t *testing.T) {
	text := lines("alpha beta", "gamma delta", "", "epsilon")
	motions := []*Action{
		MotionWordNext, MotionWordPrev, MotionWordEndNext, MotionWordEndPrev,
		MotionLineEnd, MotionDown, MotionUp, MotionParagraphNext, MotionParagraphPrev,
	}
	rapid.Check(t, func(rt *rapid.T) {
		s, h, _ := newTestSession(text)
		offset := rapid.IntRange(0, h.Length()-1).Draw(rt, "offset")
		h.carets[0].MoveTo(offset)
		motion := rapid.SampledFrom(motions).Draw(rt, "motion")
		count := rapid.IntRange(1, 3).Draw(rt, "count")
		r, ok := s.ResolveMotionRange(h.carets[0], &Command{Action: motion}, count, count, false)
		if !ok {
			return
		}
		require.LessOrEqual(rt, r.Start(), r.End())
		require.GreaterOrEqual(rt, r.Start(), 0)
		require.LessOrEqual(rt, r.End(), h.Length())
	})
}
