package engine

// Flags describe how a command's range is computed and how the visual
// operator engine treats the command.
type Flags uint16

const (
	// FlagInclusive extends a character-wise range to cover the destination
	// character.
	FlagInclusive Flags = 1 << iota
	// FlagExclusive stops a character-wise range before the destination
	// character. This is the default for motions without either flag.
	FlagExclusive
	// FlagLinewise snaps the range to whole lines.
	FlagLinewise
	// FlagKeepColumn preserves the caret's remembered column across the move
	// (vertical motions).
	FlagKeepColumn
	// FlagToEndOfLine sets the remembered column to the end-of-line sentinel
	// after the move.
	FlagToEndOfLine
	// FlagMultiKey marks a command that expects further input; the visual
	// operator engine exits visual mode up front so subsequent keys are read
	// in normal mode.
	FlagMultiKey
	// FlagForceLinewise forces line-wise behavior for the duration of the
	// command.
	FlagForceLinewise
	// FlagForceVisual marks a command that wants the visual sub-mode adjusted
	// while it runs (paired with FlagForceLinewise).
	FlagForceVisual
	// FlagExitVisual makes the operator engine leave visual mode before
	// executing; the snapshot taken at collection time stays valid.
	FlagExitVisual
	// FlagExpectsMore marks a pending operator awaiting further input; the
	// engine skips the normal visual-mode exit at completion.
	FlagExpectsMore
)

// MotionFunc computes the destination offset of a simple motion. It returns
// ok=false when no further position exists in the motion's direction; that is
// expected control flow, not an error.
type MotionFunc func(s *Session, c Caret, count, rawCount int, arg *Command) (int, bool)

// TextObjectFunc computes the range of a text object. Returned ranges use
// inclusive end offsets; resolution applies the action's flags afterwards.
// ok=false means no object exists at the caret position.
type TextObjectFunc func(s *Session, c Caret, cmd *Command, count int) (TextRange, bool)

// Action is one entry of the closed command vocabulary: either a simple
// motion or a text object, plus the flags governing range normalization.
type Action struct {
	// Name identifies the action, e.g. "motion.word.next" or
	// "object.word.inner".
	Name string

	// Flags are the action's default flags, combined with the command's own
	// flags during resolution.
	Flags Flags

	// Motion is non-nil for simple motions.
	Motion MotionFunc

	// TextObject is non-nil for text objects.
	TextObject TextObjectFunc
}

// IsMotion reports whether the action produces a single destination offset.
func (a *Action) IsMotion() bool {
	return a != nil && a.Motion != nil
}

// IsTextObject reports whether the action produces a range directly.
func (a *Action) IsTextObject() bool {
	return a != nil && a.TextObject != nil
}

// Command is a parsed command produced by the host's key-parsing front end.
// Commands are treated as immutable by the engine.
type Command struct {
	// Action is the command's action.
	Action *Action

	// Count is the numeric count, 0 when none was typed.
	Count int

	// RawCount is the count exactly as typed, 0 when none was typed. It is
	// kept separate because some motions behave differently for "no count"
	// versus an explicit count of 1.
	RawCount int

	// Flags are additional flags supplied by the front end (force-linewise,
	// multi-key, and so on).
	Flags Flags

	// Argument is the nested motion of an operator command, if any.
	Argument *Command

	// Char is the character argument of commands like f, t, or the quote and
	// bracket text objects.
	Char rune
}

// CountOr1 returns the count, treating "none typed" as 1.
func (c *Command) CountOr1() int {
	if c == nil || c.Count < 1 {
		return 1
	}
	return c.Count
}

// EffectiveFlags combines the action's flags with the command's own.
func (c *Command) EffectiveFlags() Flags {
	f := c.Flags
	if c.Action != nil {
		f |= c.Action.Flags
	}
	return f
}

// combineCounts merges an operator's count with its motion argument's count.
// The combined count is the product; the combined raw count is zero only when
// neither the operator nor the motion had an explicit count.
func combineCounts(motion *Command, count, rawCount int) (cnt, raw int) {
	outer := count
	if outer < 1 {
		outer = 1
	}
	cnt = motion.CountOr1() * outer
	if rawCount == 0 && motion.RawCount == 0 {
		raw = 0
	} else {
		raw = cnt
	}
	return cnt, raw
}
