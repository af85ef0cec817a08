package textbuf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// ============================================================================
// Geometry tests
// ============================================================================

func TestBuffer_Empty(t *testing.T) {
	b := NewBuffer("")
	require.Equal(t, 0, b.Length())
	require.Equal(t, 1, b.LineCount())
	require.Equal(t, 0, b.LineStart(0))
	require.Equal(t, 0, b.LineEnd(0))
}

func TestBuffer_LineOffsets(t *testing.T) {
	b := NewBuffer("one\ntwo\nthree")
	require.Equal(t, 13, b.Length())
	require.Equal(t, 3, b.LineCount())
	require.Equal(t, 4, b.LineStart(1))
	require.Equal(t, 7, b.LineEnd(1))
	require.Equal(t, 13, b.LineEnd(2))
}

func TestBuffer_LineForOffset(t *testing.T) {
	b := NewBuffer("one\ntwo")
	require.Equal(t, 0, b.LineForOffset(0))
	require.Equal(t, 0, b.LineForOffset(3)) // the separator belongs to its line
	require.Equal(t, 1, b.LineForOffset(4))
	require.Equal(t, 1, b.LineForOffset(7))
}

func TestBuffer_OffsetOfClamps(t *testing.T) {
	b := NewBuffer("ab\ncd")
	require.Equal(t, 4, b.OffsetOf(1, 1))
	require.Equal(t, 5, b.OffsetOf(1, 99))
	require.Equal(t, 3, b.OffsetOf(1, -1))
	require.Equal(t, 0, b.OffsetOf(-5, 0))
}

func TestBuffer_TextAcrossLines(t *testing.T) {
	b := NewBuffer("one\ntwo\nthree")
	require.Equal(t, "ne\ntw", b.Text(1, 6))
	require.Equal(t, "one\ntwo\nthree", b.Text(0, b.Length()))
	require.Equal(t, "", b.Text(5, 5))
}

func TestBuffer_ColumnForOffset(t *testing.T) {
	b := NewBuffer("ab\ncd")
	require.Equal(t, 1, b.ColumnForOffset(4))
	require.Equal(t, 2, b.ColumnForOffset(2))
}

// ============================================================================
// Mutation tests
// ============================================================================

func TestInsert_MidLine(t *testing.T) {
	b := NewBuffer("held")
	b.Insert(3, "lo wor")
	require.Equal(t, "hello word", b.String()[:10])
}

func TestInsert_WithNewlinesSplitsLines(t *testing.T) {
	b := NewBuffer("ab")
	b.Insert(1, "x\ny")
	require.Equal(t, "ax\nyb", b.String())
	require.Equal(t, 2, b.LineCount())
}

func TestInsert_AtEnd(t *testing.T) {
	b := NewBuffer("ab")
	b.Insert(2, "\ncd")
	require.Equal(t, "ab\ncd", b.String())
}

func TestDelete_WithinLine(t *testing.T) {
	b := NewBuffer("hello")
	b.Delete(1, 4)
	require.Equal(t, "ho", b.String())
}

func TestDelete_AcrossLinesJoins(t *testing.T) {
	b := NewBuffer("one\ntwo\nthree")
	b.Delete(2, 9)
	require.Equal(t, "onhree", b.String())
	require.Equal(t, 1, b.LineCount())
}

func TestDelete_ExactlyOneSeparator(t *testing.T) {
	b := NewBuffer("ab\ncd")
	b.Delete(2, 3)
	require.Equal(t, "abcd", b.String())
}

// ============================================================================
// Soft wrap tests
// ============================================================================

func TestVisualLines_NoWrapIsIdentity(t *testing.T) {
	b := NewBuffer("one\ntwo")
	require.Equal(t, 1, b.VisualLineOf(1))
	require.Equal(t, 1, b.LogicalLineOf(1))
	require.Equal(t, 2, b.VisualLineCount())
}

func TestVisualLines_WrappedLineTakesMultipleRows(t *testing.T) {
	b := NewBuffer("abcdefgh\nxy")
	b.SetWrapWidth(4)
	require.Equal(t, 3, b.VisualLineCount())
	require.Equal(t, 0, b.VisualLineOf(0))
	require.Equal(t, 2, b.VisualLineOf(1))
	require.Equal(t, 0, b.LogicalLineOf(1))
	require.Equal(t, 1, b.LogicalLineOf(2))
}

func TestVisualLines_WideRunesCountCells(t *testing.T) {
	// four double-width characters need two rows at width four
	b := NewBuffer("ありがと")
	b.SetWrapWidth(4)
	require.Equal(t, 2, b.VisualLineCount())
}

// ============================================================================
// Properties
// ============================================================================

func TestBuffer_MatchesReferenceString(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ref := rapid.StringMatching(`[a-c\n]{0,20}`).Draw(rt, "initial")
		b := NewBuffer(ref)

		ops := rapid.IntRange(1, 10).Draw(rt, "ops")
		for i := 0; i < ops; i++ {
			refRunes := []rune(ref)
			if rapid.Bool().Draw(rt, "insert") {
				at := rapid.IntRange(0, len(refRunes)).Draw(rt, "at")
				text := rapid.StringMatching(`[d-f\n]{0,5}`).Draw(rt, "text")
				b.Insert(at, text)
				ref = string(refRunes[:at]) + text + string(refRunes[at:])
			} else if len(refRunes) > 0 {
				from := rapid.IntRange(0, len(refRunes)-1).Draw(rt, "from")
				to := rapid.IntRange(from, len(refRunes)).Draw(rt, "to")
				b.Delete(from, to)
				ref = string(refRunes[:from]) + string(refRunes[to:])
			}
			require.Equal(rt, ref, b.String())
			require.Equal(rt, len([]rune(ref)), b.Length())
			require.Equal(rt, strings.Count(ref, "\n")+1, b.LineCount())
		}
	})
}

// ============================================================================
// Editor tests
// ============================================================================

func TestEditor_PrimaryAndSecondaryCarets(t *testing.T) {
	e := NewEditor("hello")
	require.Len(t, e.Carets(), 1)

	c := e.AddCaret(3)
	require.Len(t, e.Carets(), 2)
	require.NotEqual(t, e.Primary().ID(), c.ID())

	e.SetPrimary(c.ID())
	require.Equal(t, c.ID(), e.Primary().ID())

	e.RemoveSecondaryCarets()
	require.Len(t, e.Carets(), 1)
	require.Equal(t, c.ID(), e.Primary().ID())
}

func TestRegister_StoresLinewiseFlag(t *testing.T) {
	r := &Register{}
	r.SetText("abc\n", true)
	require.Equal(t, "abc\n", r.Text())
	require.True(t, r.Linewise())
}

// ============================================================================
// Display helper tests
// ============================================================================

func TestGraphemes_CombiningCharacters(t *testing.T) {
	require.Len(t, Graphemes("éx"), 2)
}

func TestTruncateWidth_NeverSplitsWideRune(t *testing.T) {
	require.Equal(t, "あ", TruncateWidth("あい", 3))
}

func TestWrapLine_Rows(t *testing.T) {
	rows := WrapLine("abcdefgh", 3)
	require.Equal(t, []string{"abc", "def", "gh"}, rows)
}
