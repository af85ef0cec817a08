package engine

import (
	"strings"
	"unicode"
)

// Operator is one visual-mode editing action, executed once per caret with
// that caret's snapshotted selection. Implementations must not touch other
// carets' text; the engine orders the calls so later edits cannot shift
// earlier selections.
type Operator interface {
	Name() string
	ExecuteAction(s *Session, c Caret, sel VimSelection) bool
}

// BeforeExecutor runs once before any caret executes.
type BeforeExecutor interface {
	BeforeExecute(s *Session)
}

// AfterExecutor runs once after every caret executed, before mode
// restoration.
type AfterExecutor interface {
	AfterExecute(s *Session)
}

// ExecuteVisualOperator runs an operator against the active visual
// selections. The run has three stages:
//
//   - start: apply the command's mode adjustments (a forced line-wise
//     sub-mode, an early exit from visual mode for multi-key commands),
//     snapshot every participating caret's selection and, outside repeat
//     mode, record each selection's shape for dot-repeat;
//   - execute: call the operator per caret, highest offset first;
//   - finish: restore a forced sub-mode, leave visual mode unless the
//     command still expects input, and enter the mode the operator
//     requested, or normal mode.
//
// Returns ErrMissingSelection when no caret has a selection. A caret whose
// execution fails does not stop the others; the command is stored for
// dot-repeat only when every caret succeeded.
func (s *Session) ExecuteVisualOperator(cmd *Command, op Operator) error {
	var flags Flags
	if cmd != nil {
		flags = cmd.EffectiveFlags()
	}
	repeating := s.mode == ModeRepeat

	// Start. A forced line-wise sub-mode must be in place before the
	// snapshot so the collected selections cover whole lines.
	prevSub := s.subMode
	forcedSub := false
	if !repeating && flags&FlagForceLinewise != 0 && flags&FlagForceVisual != 0 &&
		s.InVisualMode() && s.subMode != SubModeLineWise {
		s.subMode = SubModeLineWise
		forcedSub = true
	}
	if repeating {
		for _, c := range s.host.Carets() {
			st := s.state(c)
			st.previousLastColumn = st.lastColumn
		}
	}

	sels, err := s.collectSelections()
	if err == nil && len(sels) == 0 {
		err = ErrMissingSelection
	}
	if err != nil {
		if forcedSub {
			s.subMode = prevSub
		}
		return err
	}

	if !repeating {
		for _, cs := range sels {
			s.recordChange(cs.caret, cs.sel)
		}
	}

	// Multi-key commands read their remaining keys in normal mode; an
	// explicit exit leaves visual mode too. The snapshots stay valid.
	if flags&(FlagMultiKey|FlagExitVisual) != 0 {
		if forcedSub {
			s.subMode = prevSub
			forcedSub = false
		}
		s.ExitVisual()
	}

	// Execute.
	if be, ok := op.(BeforeExecutor); ok {
		be.BeforeExecute(s)
	}
	allOK := true
	for _, cs := range sels {
		if !op.ExecuteAction(s, cs.caret, cs.sel) {
			allOK = false
		}
	}
	if ae, ok := op.(AfterExecutor); ok {
		ae.AfterExecute(s)
	}

	// Finish.
	if forcedSub {
		s.subMode = prevSub
	}
	if flags&(FlagMultiKey|FlagExpectsMore) == 0 {
		s.ExitVisual()
	}
	if s.hasPendingMode {
		s.SetMode(s.pendingMode)
		s.hasPendingMode = false
	}
	if repeating {
		for _, c := range s.host.Carets() {
			st := s.state(c)
			st.lastColumn = st.previousLastColumn
		}
	}

	if allOK && !repeating {
		s.lastChange = &storedChange{cmd: cmd, op: op}
	}
	if !allOK {
		return ErrInvalidRange
	}
	return nil
}

// finishOperator leaves visual mode and applies any mode the operator
// requested (change wants insert mode, for example).
func (s *Session) finishOperator() {
	s.ExitVisual()
	if s.hasPendingMode {
		s.SetMode(s.pendingMode)
		s.hasPendingMode = false
	}
}

// RepeatLastVisualChange replays the last completed visual operator at every
// caret's current position, using each caret's stored selection shape.
// Returns ErrMissingSelection when nothing has been recorded yet.
func (s *Session) RepeatLastVisualChange() error {
	if s.lastChange == nil {
		return ErrMissingSelection
	}
	prev := s.mode
	s.mode = ModeRepeat
	err := s.ExecuteVisualOperator(s.lastChange.cmd, s.lastChange.op)
	if s.mode == ModeRepeat {
		s.mode = prev
	}
	return err
}

// ExecuteMotionOperator runs an operator over the range a motion or text
// object covers at every caret, highest offset first (d{motion}, y{motion}
// and friends outside visual mode). Carets where the motion fails are
// skipped; the call fails when no caret produced a range or any execution
// failed, and the command is stored for dot-repeat only on full success.
func (s *Session) ExecuteMotionOperator(op Operator, motion *Command, count, rawCount int) error {
	executed := 0
	allOK := true
	for _, c := range s.caretsByOffsetDesc() {
		r, ok := s.ResolveMotionRange(c, motion, count, rawCount, false)
		if !ok {
			continue
		}
		t := CharacterWise
		if motion.EffectiveFlags()&FlagLinewise != 0 {
			t = LineWise
		}
		sel := VimSelection{Start: r.Start(), End: r.End(), Type: t}
		s.recordChange(c, sel)
		if !op.ExecuteAction(s, c, sel) {
			allOK = false
		}
		executed++
	}
	if executed == 0 {
		return ErrInvalidRange
	}
	if allOK {
		s.lastChange = &storedChange{cmd: &Command{}, op: op}
	}
	s.finishOperator()
	if !allOK {
		return ErrInvalidRange
	}
	return nil
}

// ExecuteLineOperator runs an operator over count whole lines starting at
// each caret's line (dd, yy, cc). A failed caret does not stop the rest;
// full success is required to store the command for dot-repeat.
func (s *Session) ExecuteLineOperator(op Operator, count int) error {
	if count < 1 {
		count = 1
	}
	b := s.host
	allOK := true
	for _, c := range s.caretsByOffsetDesc() {
		line := b.LineForOffset(c.Offset())
		endLine := line + count - 1
		if endLine > lastLine(b) {
			endLine = lastLine(b)
		}
		sel := VimSelection{Start: b.LineStart(line), End: b.LineEnd(endLine), Type: LineWise}
		s.recordChange(c, sel)
		if !op.ExecuteAction(s, c, sel) {
			allOK = false
		}
	}
	if allOK {
		s.lastChange = &storedChange{cmd: &Command{}, op: op}
	}
	s.finishOperator()
	if !allOK {
		return ErrInvalidRange
	}
	return nil
}

// deleteSelection removes a selection's text, writing it to the register
// first. Segments delete back to front so earlier offsets stay valid.
func deleteSelection(s *Session, sel VimSelection) {
	b := s.host
	if s.reg != nil {
		s.reg.SetText(sel.Text(b), sel.Type == LineWise)
	}
	r := sel.Range(b)
	for i := r.Segments() - 1; i >= 0; i-- {
		start, end := r.Segment(i)
		if start < end {
			b.Delete(start, end)
		}
	}
}

// mapSelection rewrites each segment of a selection through fn. Segment
// lengths are preserved, so no offset fixups are needed.
func mapSelection(s *Session, sel VimSelection, fn func(string) string) {
	b := s.host
	r := sel.Range(b)
	for i := r.Segments() - 1; i >= 0; i-- {
		start, end := r.Segment(i)
		if start >= end {
			continue
		}
		text := fn(b.Text(start, end))
		b.Delete(start, end)
		b.Insert(start, text)
	}
}

// ============================================================================
// Delete
// ============================================================================

// DeleteOperator removes the selected text (visual d/x).
type DeleteOperator struct{}

func (DeleteOperator) Name() string { return "op.delete" }

func (DeleteOperator) ExecuteAction(s *Session, c Caret, sel VimSelection) bool {
	b := s.host
	deleteSelection(s, sel)
	offset := sel.Start
	if offset > b.Length() {
		offset = b.Length()
	}
	line := b.LineForOffset(offset)
	if sel.Type == LineWise {
		offset = firstNonBlankOnLine(b, line)
	} else {
		offset = normalizeOffset(b, line, offset, false)
	}
	s.MoveCaret(c, offset, 0)
	return true
}

// ============================================================================
// Change
// ============================================================================

// ChangeOperator deletes the selection and requests insert mode (visual
// c/s). A line-wise change keeps an empty line open for the new text.
type ChangeOperator struct{}

func (ChangeOperator) Name() string { return "op.change" }

func (ChangeOperator) ExecuteAction(s *Session, c Caret, sel VimSelection) bool {
	b := s.host
	if sel.Type == LineWise {
		if s.reg != nil {
			s.reg.SetText(sel.Text(b), true)
		}
		r := sel.Range(b)
		start, end := r.Segment(0)
		// keep one empty line in place of the removed ones
		if end > start {
			keepNewline := strings.HasSuffix(b.Text(start, end), "\n")
			b.Delete(start, end)
			if keepNewline {
				b.Insert(start, "\n")
			}
		}
		s.MoveCaret(c, start, 0)
	} else {
		deleteSelection(s, sel)
		offset := sel.Start
		if offset > b.Length() {
			offset = b.Length()
		}
		s.MoveCaret(c, offset, 0)
	}
	s.requestMode(ModeInsert)
	return true
}

// ============================================================================
// Yank
// ============================================================================

// YankOperator copies the selection to the register (visual y). The caret
// lands on the selection start, as vim does.
type YankOperator struct{}

func (YankOperator) Name() string { return "op.yank" }

func (YankOperator) ExecuteAction(s *Session, c Caret, sel VimSelection) bool {
	if s.reg != nil {
		s.reg.SetText(sel.Text(s.host), sel.Type == LineWise)
	}
	s.MoveCaret(c, sel.Start, 0)
	return true
}

// ============================================================================
// Case operators
// ============================================================================

// ToggleCaseOperator flips the case of every selected letter (visual ~).
type ToggleCaseOperator struct{}

func (ToggleCaseOperator) Name() string { return "op.case.toggle" }

func (ToggleCaseOperator) ExecuteAction(s *Session, c Caret, sel VimSelection) bool {
	mapSelection(s, sel, toggleCase)
	s.MoveCaret(c, sel.Start, 0)
	return true
}

// LowerCaseOperator lowercases the selection (visual u).
type LowerCaseOperator struct{}

func (LowerCaseOperator) Name() string { return "op.case.lower" }

func (LowerCaseOperator) ExecuteAction(s *Session, c Caret, sel VimSelection) bool {
	mapSelection(s, sel, strings.ToLower)
	s.MoveCaret(c, sel.Start, 0)
	return true
}

// UpperCaseOperator uppercases the selection (visual U).
type UpperCaseOperator struct{}

func (UpperCaseOperator) Name() string { return "op.case.upper" }

func (UpperCaseOperator) ExecuteAction(s *Session, c Caret, sel VimSelection) bool {
	mapSelection(s, sel, strings.ToUpper)
	s.MoveCaret(c, sel.Start, 0)
	return true
}

func toggleCase(text string) string {
	out := []rune(text)
	for i, r := range out {
		switch {
		case unicode.IsLower(r):
			out[i] = unicode.ToUpper(r)
		case unicode.IsUpper(r):
			out[i] = unicode.ToLower(r)
		}
	}
	return string(out)
}
