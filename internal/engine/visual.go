package engine

// Visual selection tracking. The engine owns each caret's anchor in the side
// table; the active end follows the caret through MoveCaret. Selections are
// snapshotted into VimSelection values the moment an operator starts, so the
// operator works against immutable coordinates.

// EnterVisual switches to visual mode with the given sub-mode, anchoring a
// selection at every caret's current offset. Entering while already in a
// visual mode only changes the sub-mode; anchors stay put.
func (s *Session) EnterVisual(sub SubMode) {
	if sub == SubModeNone {
		sub = SubModeCharacterWise
	}
	if s.InVisualMode() {
		s.subMode = sub
		return
	}
	s.mode = ModeVisual
	s.subMode = sub
	for _, c := range s.host.Carets() {
		st := s.state(c)
		st.selectionStart = c.Offset()
		st.selectionEnd = c.Offset()
		st.selectionActive = true
	}
}

// ToggleVisual implements the v / V / <C-v> keys: enter visual mode, switch
// sub-mode, or leave when the pressed sub-mode is already active.
func (s *Session) ToggleVisual(sub SubMode) {
	if sub == SubModeNone {
		sub = SubModeCharacterWise
	}
	switch {
	case !s.InVisualMode():
		s.EnterVisual(sub)
	case s.subMode == sub:
		s.ExitVisual()
	default:
		s.subMode = sub
	}
}

// ExitVisual leaves visual mode and deactivates every caret's selection.
// Anchors remain in the side table for gv-style restoration by the host.
func (s *Session) ExitVisual() {
	if !s.InVisualMode() {
		return
	}
	for _, c := range s.host.Carets() {
		s.state(c).selectionActive = false
	}
	s.mode = ModeNormal
	s.subMode = SubModeNone
}

// SwapVisualEnds exchanges a caret's anchor and active end (the o command).
// Returns false outside visual mode.
func (s *Session) SwapVisualEnds(c Caret) bool {
	if !s.InVisualMode() {
		return false
	}
	st := s.state(c)
	if !st.selectionActive {
		return false
	}
	st.selectionStart, st.selectionEnd = st.selectionEnd, st.selectionStart
	s.MoveCaret(c, st.selectionEnd, FlagExclusive)
	return true
}

// SelectRange replaces a caret's selection with the given anchor and active
// end, moving the caret to the active end. Only valid in visual mode.
func (s *Session) SelectRange(c Caret, anchor, active int) bool {
	if !s.InVisualMode() {
		return false
	}
	st := s.state(c)
	st.selectionStart = anchor
	st.selectionEnd = active
	st.selectionActive = true
	s.MoveCaret(c, active, FlagExclusive)
	return true
}

// SelectionAnchor returns a caret's anchor offset while a selection is
// active.
func (s *Session) SelectionAnchor(c Caret) (int, bool) {
	st := s.state(c)
	if !st.selectionActive {
		return 0, false
	}
	return st.selectionStart, true
}

// Selection snapshots a caret's current selection. Both endpoints are
// included, so the snapshot's exclusive End is one past the rightmost
// endpoint. Returns ErrMissingSelection when the caret has no active
// selection.
func (s *Session) Selection(c Caret) (VimSelection, error) {
	st := s.state(c)
	if !s.InVisualMode() || !st.selectionActive {
		return VimSelection{}, ErrMissingSelection
	}
	return makeSelection(st.selectionStart, st.selectionEnd, toSelectionType(s.subMode)), nil
}

// makeSelection builds a normalized snapshot from an anchor and active end,
// both inclusive.
func makeSelection(anchor, active int, t SelectionType) VimSelection {
	lo, hi := anchor, active
	if lo > hi {
		lo, hi = hi, lo
	}
	return VimSelection{Start: lo, End: hi + 1, Type: t}
}

// collectSelections snapshots the selections an operator will consume, in
// descending offset order of their owning carets.
//
// Block-wise visual mode uses only the primary caret: the rectangle spans
// anchor to active end and the other carets are presentation artifacts. In
// repeat mode each caret replays its stored change shape; carets that have
// never completed a visual operator are skipped. A caret without an active
// selection is likewise skipped; ErrMissingSelection means no caret had one.
func (s *Session) collectSelections() ([]caretSelection, error) {
	if s.mode == ModeRepeat {
		return s.reconstructSelections(), nil
	}
	if !s.InVisualMode() {
		return nil, ErrMissingSelection
	}

	if s.subMode == SubModeBlockWise {
		primary := s.host.Primary()
		sel, err := s.Selection(primary)
		if err != nil {
			return nil, err
		}
		return []caretSelection{{caret: primary, sel: sel}}, nil
	}

	var out []caretSelection
	for _, c := range s.caretsByOffsetDesc() {
		sel, err := s.Selection(c)
		if err != nil {
			// a caret without a selection sits the operator out
			continue
		}
		out = append(out, caretSelection{caret: c, sel: sel})
	}
	if len(out) == 0 {
		return nil, ErrMissingSelection
	}
	return out, nil
}

// reconstructSelections rebuilds selections from stored change shapes for
// dot-repeat.
func (s *Session) reconstructSelections() []caretSelection {
	var out []caretSelection
	for _, c := range s.caretsByOffsetDesc() {
		st := s.state(c)
		if st.lastVisualChange == nil {
			continue
		}
		sel := st.lastVisualChange.reconstruct(s.host, c.Offset())
		out = append(out, caretSelection{caret: c, sel: sel})
	}
	return out
}

// caretSelection pairs a caret with its snapshotted selection.
type caretSelection struct {
	caret Caret
	sel   VimSelection
}

// recordChange stores the shape of a just-executed selection on its caret
// for later dot-repeat.
func (s *Session) recordChange(c Caret, sel VimSelection) {
	b := s.host
	startLine := b.LineForOffset(sel.Start)
	endRef := sel.End
	if endRef > sel.Start {
		endRef--
	}
	endLine := b.LineForOffset(endRef)

	vc := VisualChange{
		Lines: endLine - startLine + 1,
		Type:  sel.Type,
	}
	switch sel.Type {
	case LineWise:
		vc.Columns = EndOfLineColumn
	default:
		if s.LastColumn(c) == EndOfLineColumn {
			vc.Columns = EndOfLineColumn
		} else if vc.Lines == 1 {
			vc.Columns = sel.End - sel.Start
		} else {
			vc.Columns = b.ColumnForOffset(endRef) + 1
		}
	}
	s.state(c).lastVisualChange = &vc
}
