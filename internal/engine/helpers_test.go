package engine

import (
	"strings"

	"github.com/google/uuid"
)

// testBuffer is a minimal string-backed Buffer for the tests in this
// package. The real host lives in the textbuf package; tests here use this
// one to avoid coupling the engine tests to it.
type testBuffer struct {
	text []rune
}

func (b *testBuffer) Length() int { return len(b.text) }

func (b *testBuffer) LineCount() int {
	n := 1
	for _, r := range b.text {
		if r == '\n' {
			n++
		}
	}
	return n
}

func (b *testBuffer) Text(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(b.text) {
		end = len(b.text)
	}
	if start >= end {
		return ""
	}
	return string(b.text[start:end])
}

func (b *testBuffer) LineForOffset(offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.text) {
		offset = len(b.text)
	}
	line := 0
	for i := 0; i < offset; i++ {
		if b.text[i] == '\n' {
			line++
		}
	}
	return line
}

func (b *testBuffer) LineStart(line int) int {
	if line <= 0 {
		return 0
	}
	seen := 0
	for i, r := range b.text {
		if r == '\n' {
			seen++
			if seen == line {
				return i + 1
			}
		}
	}
	return len(b.text)
}

func (b *testBuffer) LineEnd(line int) int {
	start := b.LineStart(line)
	for i := start; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			return i
		}
	}
	return len(b.text)
}

func (b *testBuffer) ColumnForOffset(offset int) int {
	return offset - b.LineStart(b.LineForOffset(offset))
}

func (b *testBuffer) OffsetOf(line, col int) int {
	start := b.LineStart(line)
	width := b.LineEnd(line) - start
	if col < 0 {
		col = 0
	}
	if col > width {
		col = width
	}
	return start + col
}

func (b *testBuffer) Insert(offset int, text string) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.text) {
		offset = len(b.text)
	}
	out := make([]rune, 0, len(b.text)+len(text))
	out = append(out, b.text[:offset]...)
	out = append(out, []rune(text)...)
	out = append(out, b.text[offset:]...)
	b.text = out
}

func (b *testBuffer) Delete(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.text) {
		end = len(b.text)
	}
	if start >= end {
		return
	}
	b.text = append(b.text[:start:start], b.text[end:]...)
}

func (b *testBuffer) VisualLineOf(logicalLine int) int { return logicalLine }
func (b *testBuffer) LogicalLineOf(visualLine int) int { return visualLine }
func (b *testBuffer) VisualLineCount() int             { return b.LineCount() }

type testCaret struct {
	id     CaretID
	offset int
}

func (c *testCaret) ID() CaretID       { return c.id }
func (c *testCaret) Offset() int       { return c.offset }
func (c *testCaret) MoveTo(offset int) { c.offset = offset }

type testHost struct {
	*testBuffer
	carets  []*testCaret
	primary int
}

func (h *testHost) Carets() []Caret {
	out := make([]Caret, len(h.carets))
	for i, c := range h.carets {
		out[i] = c
	}
	return out
}

func (h *testHost) Primary() Caret { return h.carets[h.primary] }

func (h *testHost) addCaret(offset int) *testCaret {
	c := &testCaret{id: uuid.New(), offset: offset}
	h.carets = append(h.carets, c)
	return c
}

type testRegister struct {
	text     string
	linewise bool
}

func (r *testRegister) SetText(text string, linewise bool) {
	r.text = text
	r.linewise = linewise
}

// newTestHost builds a host over text with one caret per given offset (one
// caret at zero when none are given). Lines in text join with "\n".
func newTestHost(text string, offsets ...int) *testHost {
	h := &testHost{testBuffer: &testBuffer{text: []rune(text)}}
	if len(offsets) == 0 {
		offsets = []int{0}
	}
	for _, o := range offsets {
		h.addCaret(o)
	}
	return h
}

// newTestSession builds a session plus its host and register.
func newTestSession(text string, offsets ...int) (*Session, *testHost, *testRegister) {
	h := newTestHost(text, offsets...)
	reg := &testRegister{}
	return NewSession(h, WithRegister(reg)), h, reg
}

// lines joins its arguments with newlines, mirroring how buffers store text.
func lines(ls ...string) string {
	return strings.Join(ls, "\n")
}
