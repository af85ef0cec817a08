package engine

import "sort"

// EndOfLineColumn is the remembered-column sentinel meaning "stick to end of
// line". Vertical motions that find it land on the last character of every
// line they visit, and visual change shapes that carry it replay as
// full-width selections.
const EndOfLineColumn = 1 << 30

// caretState holds the engine-owned auxiliary fields of one caret. It lives
// in the Session's side table, keyed by caret identity, so the engine never
// attaches data to the host's caret type.
type caretState struct {
	lastColumn int
	// lastColumn saved while a dot-repeat runs, restored when it finishes.
	previousLastColumn int

	// Selection anchor and active end, valid only while selectionActive.
	selectionStart  int
	selectionEnd    int
	selectionActive bool

	// Shape of the last completed visual operator, for dot-repeat.
	lastVisualChange *VisualChange
}

// storedChange is the last successful visual operator command, kept for
// full-command dot-repeat.
type storedChange struct {
	cmd *Command
	op  Operator
}

// Session owns the buffer-global mode state and the per-caret side table for
// one host editor. All mode transitions are routed through the visual
// operator engine's start and finish stages; nothing else mutates mode
// directly except the explicit Enter/Exit helpers.
type Session struct {
	host Host
	reg  Register

	mode    Mode
	subMode SubMode

	carets map[CaretID]*caretState

	lastChange *storedChange

	// Mode requested by an operator (e.g. change wants insert mode); applied
	// when the visual operator engine finishes.
	pendingMode    Mode
	hasPendingMode bool
}

// Option configures a Session.
type Option func(*Session)

// WithRegister supplies the register that receives yanked and deleted text.
func WithRegister(r Register) Option {
	return func(s *Session) { s.reg = r }
}

// NewSession creates a session for the given host, starting in normal mode.
func NewSession(host Host, opts ...Option) *Session {
	s := &Session{
		host:   host,
		mode:   ModeNormal,
		carets: make(map[CaretID]*caretState),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Host returns the session's host editor.
func (s *Session) Host() Host {
	return s.host
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// SubMode returns the current selection sub-mode.
func (s *Session) SubMode() SubMode {
	return s.subMode
}

// InVisualMode reports whether a visual or select mode is active.
func (s *Session) InVisualMode() bool {
	return s.mode == ModeVisual || s.mode == ModeSelect
}

// SetMode switches to a non-visual mode. Visual modes must be entered through
// EnterVisual so selection anchors are initialized.
func (s *Session) SetMode(m Mode) {
	if m == ModeVisual || m == ModeSelect {
		return
	}
	s.mode = m
	s.subMode = SubModeNone
}

// requestMode records a mode the current operator wants after completion.
func (s *Session) requestMode(m Mode) {
	s.pendingMode = m
	s.hasPendingMode = true
}

// state returns the side-table entry for a caret, creating it on first use.
func (s *Session) state(c Caret) *caretState {
	st, ok := s.carets[c.ID()]
	if !ok {
		st = &caretState{lastColumn: s.host.ColumnForOffset(c.Offset())}
		s.carets[c.ID()] = st
	}
	return st
}

// LastColumn returns the caret's remembered column.
func (s *Session) LastColumn(c Caret) int {
	return s.state(c).lastColumn
}

// SetLastColumn sets the caret's remembered column.
func (s *Session) SetLastColumn(c Caret, col int) {
	s.state(c).lastColumn = col
}

// LastVisualChange returns the caret's stored visual operator shape, if any.
func (s *Session) LastVisualChange(c Caret) (VisualChange, bool) {
	st := s.state(c)
	if st.lastVisualChange == nil {
		return VisualChange{}, false
	}
	return *st.lastVisualChange, true
}

// caretsByOffsetDesc returns the host's carets ordered by descending offset.
// Mutating operators run in this order so earlier offsets stay valid while
// later text shifts.
func (s *Session) caretsByOffsetDesc() []Caret {
	cs := s.host.Carets()
	sorted := make([]Caret, len(cs))
	copy(sorted, cs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset() > sorted[j].Offset()
	})
	return sorted
}
