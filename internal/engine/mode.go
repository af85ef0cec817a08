package engine

// Mode represents the current editing mode. Exactly one Mode is active per
// session; VISUAL and SELECT additionally carry a SubMode.
type Mode int

const (
	// ModeNormal is the default mode for navigation and commands.
	ModeNormal Mode = iota
	// ModeInsert is the mode for inserting text.
	ModeInsert
	// ModeVisual is the mode for visual selection.
	ModeVisual
	// ModeSelect is like visual mode but typed text replaces the selection.
	ModeSelect
	// ModeReplace is the overwrite mode.
	ModeReplace
	// ModeRepeat is active while a dot-repeat of a visual operator is
	// replayed; selections are reconstructed from stored shapes instead of
	// live anchors.
	ModeRepeat
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeSelect:
		return "SELECT"
	case ModeReplace:
		return "REPLACE"
	case ModeRepeat:
		return "REPEAT"
	default:
		return "UNKNOWN"
	}
}

// SubMode is the selection granularity axis for visual and select modes.
type SubMode int

const (
	// SubModeNone means no selection granularity applies (non-visual modes).
	SubModeNone SubMode = iota
	// SubModeCharacterWise selects individual characters.
	SubModeCharacterWise
	// SubModeLineWise selects whole lines.
	SubModeLineWise
	// SubModeBlockWise selects a rectangular column span across lines.
	SubModeBlockWise
)

// String returns the string representation of the sub-mode.
func (sm SubMode) String() string {
	switch sm {
	case SubModeNone:
		return "NONE"
	case SubModeCharacterWise:
		return "CHARACTER"
	case SubModeLineWise:
		return "LINE"
	case SubModeBlockWise:
		return "BLOCK"
	default:
		return "UNKNOWN"
	}
}
