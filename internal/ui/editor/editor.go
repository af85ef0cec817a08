// Package editor is a bubbletea widget exposing the modal editing engine
// over an in-memory buffer: modal key handling, multi-caret support, and a
// status bar, rendered with lipgloss.
package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vimcore/vimcore/internal/config"
	"github.com/vimcore/vimcore/internal/engine"
	"github.com/vimcore/vimcore/internal/log"
	"github.com/vimcore/vimcore/internal/textbuf"
)

// Model is the editor widget state.
type Model struct {
	ed      *textbuf.Editor
	session *engine.Session
	reg     *textbuf.Register
	styles  Styles
	vp      viewport.Model

	width  int
	height int

	showLineNumbers bool
	showStatusBar   bool

	// Pending normal-mode state: typed count digits, an operator waiting
	// for its motion, a multi-key prefix (g, [, ], i, a), and a motion
	// waiting for its character argument.
	count      string
	opCount    string
	pendingOp  engine.Operator
	opKey      string
	prefix     string
	charMotion *engine.Action

	status string
}

// New creates an editor over the given text.
func New(text string) Model {
	ed := textbuf.NewEditor(text)
	reg := &textbuf.Register{}
	return Model{
		ed:      ed,
		reg:     reg,
		session: engine.NewSession(ed, engine.WithRegister(reg)),
		styles:  DefaultStyles(),
		vp:      viewport.New(80, 23),
		width:   80,
		height:  24,

		showLineNumbers: true,
		showStatusBar:   true,
	}
}

// ApplyConfig applies user configuration: wrap width, chrome toggles, and
// theme color overrides.
func (m *Model) ApplyConfig(cfg config.Config) {
	m.ed.SetWrapWidth(cfg.WrapWidth)
	m.showLineNumbers = cfg.UI.ShowLineNumbers
	m.showStatusBar = cfg.UI.ShowStatusBar

	t := cfg.Theme
	m.styles.Selection = m.styles.Selection.
		Background(lipgloss.Color(t.SelectionBg)).
		Foreground(lipgloss.Color(t.SelectionFg))
	m.styles.StatusBar = m.styles.StatusBar.
		Background(lipgloss.Color(t.StatusBg)).
		Foreground(lipgloss.Color(t.StatusFg))
	m.styles.Mode = m.styles.Mode.
		Background(lipgloss.Color(t.ModeBg)).
		Foreground(lipgloss.Color(t.ModeFg))
	m.styles.LineNr = m.styles.LineNr.Foreground(lipgloss.Color(t.LineNr))
	m.vp.Height = m.contentRows()
}

// Session exposes the engine session, mainly for tests.
func (m Model) Session() *engine.Session { return m.session }

// Editor exposes the underlying host, mainly for tests.
func (m Model) Editor() *textbuf.Editor { return m.ed }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = m.contentRows()
		return m, nil
	case tea.KeyMsg:
		if m.session.Mode() == engine.ModeInsert {
			m.handleInsertKey(msg)
		} else {
			m.handleNormalKey(msg.String())
		}
		m.scrollIntoView()
		return m, nil
	}
	return m, nil
}

// ============================================================================
// Insert mode
// ============================================================================

func (m *Model) handleInsertKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc":
		m.session.SetMode(engine.ModeNormal)
		for _, c := range m.ed.Carets() {
			m.session.MoveCaret(c, c.Offset()-1, 0)
		}
	case "enter":
		m.insertAtCarets("\n")
	case "backspace":
		m.backspaceAtCarets()
	case "tab":
		m.insertAtCarets("\t")
	default:
		if msg.Type == tea.KeyRunes {
			m.insertAtCarets(string(msg.Runes))
		}
	}
}

func (m *Model) insertAtCarets(text string) {
	for _, c := range caretsDesc(m.ed) {
		m.ed.Insert(c.Offset(), text)
		m.session.MoveCaret(c, c.Offset()+len([]rune(text)), 0)
	}
}

func (m *Model) backspaceAtCarets() {
	for _, c := range caretsDesc(m.ed) {
		if c.Offset() == 0 {
			continue
		}
		m.ed.Delete(c.Offset()-1, c.Offset())
		m.session.MoveCaret(c, c.Offset()-1, 0)
	}
}

// ============================================================================
// Normal and visual mode
// ============================================================================

func (m *Model) handleNormalKey(key string) {
	m.status = ""

	if m.charMotion != nil {
		m.finishCharMotion(key)
		return
	}
	if m.prefix != "" {
		m.finishPrefix(key)
		return
	}

	switch key {
	case "esc":
		m.resetPending()
		if m.session.InVisualMode() {
			m.session.ExitVisual()
		} else {
			m.ed.RemoveSecondaryCarets()
		}
		return
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.count += key
		return
	case "0":
		if m.count != "" {
			m.count += key
			return
		}
	case "g", "[", "]":
		m.prefix = key
		return
	case "i", "a":
		if m.pendingOp != nil || m.session.InVisualMode() {
			m.prefix = key
			return
		}
	case "f", "F", "t", "T":
		m.charMotion = charMotions[key]
		return
	case "%":
		// {count}% jumps to a percentage of the file, bare % to the
		// matching pair.
		if m.count != "" {
			m.runMotion(&engine.Command{Action: engine.MotionLinePercent, Count: m.takeCount(), RawCount: m.rawCount()})
			return
		}
	}

	if motion, ok := simpleMotions[key]; ok {
		m.runMotion(&engine.Command{Action: motion, Count: m.takeCount(), RawCount: m.rawCount()})
		return
	}

	if m.session.InVisualMode() {
		m.handleVisualKey(key)
		return
	}
	m.handleCommandKey(key)
}

func (m *Model) handleVisualKey(key string) {
	switch key {
	case "v":
		m.session.ToggleVisual(engine.SubModeCharacterWise)
	case "V":
		m.session.ToggleVisual(engine.SubModeLineWise)
	case "ctrl+v":
		m.session.ToggleVisual(engine.SubModeBlockWise)
	case "o":
		for _, c := range m.ed.Carets() {
			m.session.SwapVisualEnds(c)
		}
	default:
		if op, ok := visualOperators[key]; ok {
			if err := m.session.ExecuteVisualOperator(&engine.Command{}, op); err != nil {
				log.Warn(log.CatKeys, "visual %s: %v", key, err)
				m.status = err.Error()
			}
		}
	}
	m.resetPending()
}

func (m *Model) handleCommandKey(key string) {
	switch key {
	case "v":
		m.session.ToggleVisual(engine.SubModeCharacterWise)
	case "V":
		m.session.ToggleVisual(engine.SubModeLineWise)
	case "ctrl+v":
		m.session.ToggleVisual(engine.SubModeBlockWise)
	case "d", "c", "y":
		m.startOrRunOperator(key)
	case "x":
		m.runMotionOperator(engine.DeleteOperator{},
			&engine.Command{Action: engine.MotionRight, Count: m.takeCount(), RawCount: m.rawCount(), Flags: engine.FlagInclusive})
	case "~":
		m.runMotionOperator(engine.ToggleCaseOperator{},
			&engine.Command{Action: engine.MotionRight, Count: m.takeCount(), RawCount: m.rawCount(), Flags: engine.FlagInclusive})
	case ".":
		if err := m.session.RepeatLastVisualChange(); err != nil {
			m.status = err.Error()
		}
		m.resetPending()
	case "i":
		m.session.SetMode(engine.ModeInsert)
		m.resetPending()
	case "a":
		m.session.SetMode(engine.ModeInsert)
		for _, c := range m.ed.Carets() {
			m.session.ApplyMotion(c, &engine.Command{Action: engine.MotionRight})
		}
		m.resetPending()
	case "I":
		m.enterInsert(engine.MotionFirstNonBlank, 0)
	case "A":
		m.enterInsert(engine.MotionLineEnd, 1)
	case "o":
		m.openLineBelow()
	case "ctrl+n":
		m.addCaretBelow()
	case "alt+j":
		m.moveCaretLines(1)
	case "alt+k":
		m.moveCaretLines(-1)
	case "alt+d":
		m.copyCaretLines()
	default:
		m.resetPending()
	}
}

// startOrRunOperator begins a pending operator, or runs it line-wise when
// the same key is pressed twice (dd, yy, cc).
func (m *Model) startOrRunOperator(key string) {
	if m.pendingOp != nil && m.opKey == key {
		count := m.takeCount() * atoiOr1(m.opCount)
		if err := m.session.ExecuteLineOperator(m.pendingOp, count); err != nil {
			m.status = err.Error()
		}
		m.resetPending()
		return
	}
	m.pendingOp = visualOperators[key]
	m.opKey = key
	m.opCount = m.count
	m.count = ""
}

// runMotion either extends a pending operator with the motion, or moves
// every caret.
func (m *Model) runMotion(motion *engine.Command) {
	if m.pendingOp != nil {
		m.runMotionOperator(m.pendingOp, motion)
		return
	}
	for _, c := range m.ed.Carets() {
		m.session.ApplyMotion(c, motion)
	}
	m.resetPending()
}

func (m *Model) runMotionOperator(op engine.Operator, motion *engine.Command) {
	count := atoiOr1(m.opCount)
	raw := 0
	if m.opCount != "" {
		raw = count
	}
	if err := m.session.ExecuteMotionOperator(op, motion, count, raw); err != nil {
		log.Warn(log.CatKeys, "%s %s: %v", op.Name(), motion.Action.Name, err)
		m.status = err.Error()
	}
	m.resetPending()
}

func (m *Model) finishCharMotion(key string) {
	action := m.charMotion
	m.charMotion = nil
	if len([]rune(key)) != 1 {
		m.resetPending()
		return
	}
	cmd := &engine.Command{
		Action:   action,
		Count:    m.takeCount(),
		RawCount: m.rawCount(),
		Argument: &engine.Command{Char: []rune(key)[0]},
	}
	m.runMotion(cmd)
}

func (m *Model) finishPrefix(key string) {
	prefix := m.prefix
	m.prefix = ""
	switch prefix {
	case "g":
		if motion, ok := gMotions[key]; ok {
			m.runMotion(&engine.Command{Action: motion, Count: m.takeCount(), RawCount: m.rawCount()})
			return
		}
	case "[", "]":
		if motion, ok := bracketMotions[prefix][key]; ok {
			m.runMotion(&engine.Command{Action: motion, Count: m.takeCount(), RawCount: m.rawCount()})
			return
		}
	case "i", "a":
		if object, ok := textObjects[prefix][key]; ok {
			cmd := &engine.Command{
				Action:   object,
				Count:    m.takeCount(),
				RawCount: m.rawCount(),
				Argument: quoteArg(key),
			}
			m.runObject(cmd)
			return
		}
	}
	m.resetPending()
}

// runObject applies a text object: as an operator argument, or by turning
// the object's range into the visual selection.
func (m *Model) runObject(cmd *engine.Command) {
	if m.pendingOp != nil {
		m.runMotionOperator(m.pendingOp, cmd)
		return
	}
	if !m.session.InVisualMode() {
		m.resetPending()
		return
	}
	for _, c := range m.ed.Carets() {
		r, ok := m.session.ResolveMotionRange(c, cmd, 1, 0, false)
		if !ok {
			continue
		}
		m.session.SelectRange(c, r.Start(), r.End()-1)
	}
	m.resetPending()
}

// ============================================================================
// Commands built on the engine
// ============================================================================

func (m *Model) enterInsert(motion *engine.Action, countAdjust int) {
	for _, c := range m.ed.Carets() {
		m.session.ApplyMotion(c, &engine.Command{Action: motion})
	}
	m.session.SetMode(engine.ModeInsert)
	if countAdjust > 0 {
		for _, c := range m.ed.Carets() {
			m.session.MoveCaret(c, c.Offset()+countAdjust, 0)
		}
	}
	m.resetPending()
}

func (m *Model) openLineBelow() {
	for _, c := range caretsDesc(m.ed) {
		end := m.ed.LineEnd(m.ed.LineForOffset(c.Offset()))
		m.ed.Insert(end, "\n")
		c.MoveTo(end + 1)
	}
	m.session.SetMode(engine.ModeInsert)
	m.resetPending()
}

func (m *Model) addCaretBelow() {
	lowest := m.ed.Carets()[0]
	for _, c := range m.ed.Carets() {
		if c.Offset() > lowest.Offset() {
			lowest = c
		}
	}
	line := m.ed.LineForOffset(lowest.Offset())
	if line >= m.ed.LineCount()-1 {
		return
	}
	col := m.ed.ColumnForOffset(lowest.Offset())
	m.ed.AddCaret(m.ed.OffsetOf(line+1, col))
	m.resetPending()
}

// moveCaretLines shifts every caret's current line by one using the line
// move command, merging carets that share a line.
func (m *Model) moveCaretLines(dir int) {
	ranges := make(map[engine.CaretID]engine.LineRange)
	dest := -2
	for _, c := range m.ed.Carets() {
		line := m.ed.LineForOffset(c.Offset())
		ranges[c.ID()] = engine.LineRange{Start: line, End: line}
		target := line + dir
		if dir < 0 {
			target--
		}
		if dest == -2 || (dir > 0 && target > dest) || (dir < 0 && target < dest) {
			dest = target
		}
	}
	if err := m.session.MoveLines(ranges, dest); err != nil {
		m.status = err.Error()
	}
	m.resetPending()
}

// copyCaretLines duplicates every caret's line below the lowest caret.
func (m *Model) copyCaretLines() {
	ranges := make(map[engine.CaretID]engine.LineRange)
	dest := 0
	for _, c := range m.ed.Carets() {
		line := m.ed.LineForOffset(c.Offset())
		ranges[c.ID()] = engine.LineRange{Start: line, End: line}
		if line > dest {
			dest = line
		}
	}
	if err := m.session.CopyLines(ranges, dest); err != nil {
		m.status = err.Error()
	}
	m.resetPending()
}

// ============================================================================
// Pending state helpers
// ============================================================================

func (m *Model) resetPending() {
	m.count = ""
	m.opCount = ""
	m.pendingOp = nil
	m.opKey = ""
	m.prefix = ""
	m.charMotion = nil
}

func (m *Model) takeCount() int {
	return atoiOr1(m.count)
}

func (m *Model) rawCount() int {
	if m.count == "" {
		return 0
	}
	return atoiOr1(m.count)
}

func atoiOr1(s string) int {
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func caretsDesc(ed *textbuf.Editor) []engine.Caret {
	cs := ed.Carets()
	sorted := make([]engine.Caret, len(cs))
	copy(sorted, cs)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].Offset() > sorted[i].Offset() {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	return sorted
}

// ============================================================================
// View
// ============================================================================

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	selected := m.selectedOffsets()
	caretAt := make(map[int]bool)
	for _, c := range m.ed.Carets() {
		caretAt[c.Offset()] = true
	}

	wrap := m.ed.WrapWidth()
	for line := 0; line < m.ed.LineCount(); line++ {
		gutter := ""
		if m.showLineNumbers {
			num := m.styles.LineNr.Render(strconv.Itoa(line + 1))
			sb.WriteString(num)
			gutter = strings.Repeat(" ", lipgloss.Width(num))
		}
		start := m.ed.LineStart(line)
		end := m.ed.LineEnd(line)
		used := 0
		for off := start; off < end; off++ {
			ch := m.ed.Text(off, off+1)
			cw := textbuf.DisplayWidth(ch)
			if wrap > 0 && used+cw > wrap && used > 0 {
				// soft wrap: continuation rows get a blank gutter
				sb.WriteString("\n")
				sb.WriteString(gutter)
				used = 0
			}
			switch {
			case caretAt[off]:
				sb.WriteString(m.styles.Cursor.Render(ch))
			case selected[off]:
				sb.WriteString(m.styles.Selection.Render(ch))
			default:
				sb.WriteString(m.styles.Text.Render(ch))
			}
			used += cw
		}
		if caretAt[end] {
			sb.WriteString(m.styles.Cursor.Render(" "))
		}
		sb.WriteString("\n")
	}

	vp := m.vp
	vp.Width = m.width
	vp.Height = m.contentRows()
	vp.SetContent(strings.TrimSuffix(sb.String(), "\n"))

	out := vp.View()
	if m.showStatusBar {
		out += "\n" + m.statusBar()
	}
	return out
}

// contentRows is the buffer area height, leaving room for the status bar.
func (m Model) contentRows() int {
	rows := m.height
	if m.showStatusBar {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// scrollIntoView keeps the primary caret's visual row inside the viewport.
// Visual rows diverge from logical lines when soft wrap is on.
func (m *Model) scrollIntoView() {
	row := m.ed.VisualLineOf(m.ed.LineForOffset(m.ed.Primary().Offset()))
	rows := m.contentRows()
	if row < m.vp.YOffset {
		m.vp.YOffset = row
	} else if row >= m.vp.YOffset+rows {
		m.vp.YOffset = row - rows + 1
	}
}

// selectedOffsets marks every offset covered by an active selection.
func (m Model) selectedOffsets() map[int]bool {
	out := make(map[int]bool)
	if !m.session.InVisualMode() {
		return out
	}
	for _, c := range m.ed.Carets() {
		sel, err := m.session.Selection(c)
		if err != nil {
			continue
		}
		r := sel.Range(m.ed)
		for i := 0; i < r.Segments(); i++ {
			start, end := r.Segment(i)
			for off := start; off < end; off++ {
				out[off] = true
			}
		}
	}
	return out
}

func (m Model) statusBar() string {
	mode := m.styles.Mode.Render(modeLabel(m.session.Mode().String(), m.session.SubMode().String()))

	pending := m.count
	if m.pendingOp != nil {
		pending = m.opCount + m.opKey + pending
	}
	if m.prefix != "" {
		pending += m.prefix
	}

	right := fmt.Sprintf("%d caret(s)", len(m.ed.Carets()))
	if m.status != "" {
		right = m.status
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		mode,
		m.styles.Pending.Render(" "+pending),
	)
	gap := m.width - lipgloss.Width(bar) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return m.styles.StatusBar.Width(m.width).Render(
		bar + strings.Repeat(" ", gap) + right,
	)
}
