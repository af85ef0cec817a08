package textbuf

import (
	"github.com/google/uuid"

	"github.com/vimcore/vimcore/internal/engine"
)

// Caret is a cursor into a buffer with a stable identity.
type Caret struct {
	id     engine.CaretID
	offset int
}

// NewCaret creates a caret at offset.
func NewCaret(offset int) *Caret {
	return &Caret{id: uuid.New(), offset: offset}
}

// ID returns the caret's identity.
func (c *Caret) ID() engine.CaretID { return c.id }

// Offset returns the caret's current offset.
func (c *Caret) Offset() int { return c.offset }

// MoveTo moves the caret to offset.
func (c *Caret) MoveTo(offset int) { c.offset = offset }

// Editor couples a buffer with its caret set; it is the concrete engine
// host. The first caret added is primary until RemoveSecondaryCarets or
// SetPrimary changes that.
type Editor struct {
	*Buffer
	carets  []*Caret
	primary int
}

// NewEditor creates an editor over text with a single primary caret at
// offset zero.
func NewEditor(text string) *Editor {
	return &Editor{
		Buffer: NewBuffer(text),
		carets: []*Caret{NewCaret(0)},
	}
}

// Carets returns the caret set as engine carets.
func (e *Editor) Carets() []engine.Caret {
	out := make([]engine.Caret, len(e.carets))
	for i, c := range e.carets {
		out[i] = c
	}
	return out
}

// Primary returns the primary caret.
func (e *Editor) Primary() engine.Caret {
	return e.carets[e.primary]
}

// AddCaret adds a secondary caret at offset and returns it.
func (e *Editor) AddCaret(offset int) *Caret {
	c := NewCaret(offset)
	e.carets = append(e.carets, c)
	return c
}

// RemoveSecondaryCarets drops every caret except the primary one.
func (e *Editor) RemoveSecondaryCarets() {
	p := e.carets[e.primary]
	e.carets = []*Caret{p}
	e.primary = 0
}

// SetPrimary makes the caret with the given identity primary. Unknown
// identities are ignored.
func (e *Editor) SetPrimary(id engine.CaretID) {
	for i, c := range e.carets {
		if c.id == id {
			e.primary = i
			return
		}
	}
}

// Register is a single yank register remembering the last stored text and
// whether it was taken line-wise.
type Register struct {
	text     string
	linewise bool
}

// SetText stores text in the register.
func (r *Register) SetText(text string, linewise bool) {
	r.text = text
	r.linewise = linewise
}

// Text returns the stored text.
func (r *Register) Text() string { return r.text }

// Linewise reports whether the stored text was taken line-wise.
func (r *Register) Linewise() bool { return r.linewise }
