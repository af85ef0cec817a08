package editor

import (
	"github.com/vimcore/vimcore/internal/engine"
)

// simpleMotions maps normal and visual mode keys directly to motion actions.
var simpleMotions = map[string]*engine.Action{
	"h":     engine.MotionLeft,
	"left":  engine.MotionLeft,
	"l":     engine.MotionRight,
	"right": engine.MotionRight,
	"j":     engine.MotionDown,
	"down":  engine.MotionDown,
	"k":     engine.MotionUp,
	"up":    engine.MotionUp,

	" ":         engine.MotionRightWrap,
	"backspace": engine.MotionLeftWrap,

	"w": engine.MotionWordNext,
	"W": engine.MotionBigWordNext,
	"b": engine.MotionWordPrev,
	"B": engine.MotionBigWordPrev,
	"e": engine.MotionWordEndNext,
	"E": engine.MotionBigWordEndNext,

	"0": engine.MotionLineStart,
	"^": engine.MotionFirstNonBlank,
	"$": engine.MotionLineEnd,
	"|": engine.MotionColumn,
	"G": engine.MotionGotoLine,
	"+": engine.MotionDownFirstNonBlank,
	"-": engine.MotionUpFirstNonBlank,

	"}": engine.MotionParagraphNext,
	"{": engine.MotionParagraphPrev,
	")": engine.MotionSentenceNext,
	"(": engine.MotionSentencePrev,
	"%": engine.MotionMatchingPair,
}

// gMotions are motions reached through the g prefix.
var gMotions = map[string]*engine.Action{
	"g": engine.MotionGotoFirstLine,
	"e": engine.MotionWordEndPrev,
	"E": engine.MotionBigWordEndPrev,
	"o": engine.MotionNthChar,
	")": engine.MotionSentenceEndNext,
	"(": engine.MotionSentenceEndPrev,
}

// bracketMotions are motions reached through [ and ].
var bracketMotions = map[string]map[string]*engine.Action{
	"[": {
		"(": engine.MotionUnmatchedOpenParen,
		"{": engine.MotionUnmatchedOpenBrace,
		"m": engine.MotionMethodStart,
		"[": engine.MotionSectionPrev,
		"w": engine.MotionCamelPrev,
		"e": engine.MotionCamelEndPrev,
	},
	"]": {
		")": engine.MotionUnmatchedCloseParen,
		"}": engine.MotionUnmatchedCloseBrace,
		"m": engine.MotionMethodEnd,
		"]": engine.MotionSectionNext,
		"w": engine.MotionCamelNext,
		"e": engine.MotionCamelEndNext,
	},
}

// charMotions are motions awaiting a character argument.
var charMotions = map[string]*engine.Action{
	"f": engine.MotionFindCharNext,
	"F": engine.MotionFindCharPrev,
	"t": engine.MotionTillCharNext,
	"T": engine.MotionTillCharPrev,
}

// textObjects maps the i/a prefix plus a key to a text object action.
var textObjects = map[string]map[string]*engine.Action{
	"i": {
		"w": engine.ObjectInnerWord,
		"W": engine.ObjectInnerBigWord,
		"s": engine.ObjectInnerSentence,
		"p": engine.ObjectInnerParagraph,
		`"`: engine.ObjectInnerQuote,
		"'": engine.ObjectInnerQuote,
		"`": engine.ObjectInnerQuote,
		"(": engine.ObjectInnerParen,
		")": engine.ObjectInnerParen,
		"b": engine.ObjectInnerParen,
		"{": engine.ObjectInnerBrace,
		"}": engine.ObjectInnerBrace,
		"B": engine.ObjectInnerBrace,
		"[": engine.ObjectInnerBracket,
		"]": engine.ObjectInnerBracket,
		"<": engine.ObjectInnerAngle,
		">": engine.ObjectInnerAngle,
		"t": engine.ObjectInnerTag,
		"m": engine.ObjectInnerMethod,
	},
	"a": {
		"w": engine.ObjectOuterWord,
		"W": engine.ObjectOuterBigWord,
		"s": engine.ObjectOuterSentence,
		"p": engine.ObjectOuterParagraph,
		`"`: engine.ObjectOuterQuote,
		"'": engine.ObjectOuterQuote,
		"`": engine.ObjectOuterQuote,
		"(": engine.ObjectOuterParen,
		")": engine.ObjectOuterParen,
		"b": engine.ObjectOuterParen,
		"{": engine.ObjectOuterBrace,
		"}": engine.ObjectOuterBrace,
		"B": engine.ObjectOuterBrace,
		"[": engine.ObjectOuterBracket,
		"]": engine.ObjectOuterBracket,
		"<": engine.ObjectOuterAngle,
		">": engine.ObjectOuterAngle,
		"t": engine.ObjectOuterTag,
		"m": engine.ObjectOuterMethod,
	},
}

// quoteArg returns the argument command for quote objects so the object
// knows which quote character to pair.
func quoteArg(key string) *engine.Command {
	switch key {
	case `"`, "'", "`":
		return &engine.Command{Char: rune(key[0])}
	default:
		return nil
	}
}

// visualOperators maps visual mode keys to operators.
var visualOperators = map[string]engine.Operator{
	"d": engine.DeleteOperator{},
	"x": engine.DeleteOperator{},
	"c": engine.ChangeOperator{},
	"s": engine.ChangeOperator{},
	"y": engine.YankOperator{},
	"~": engine.ToggleCaseOperator{},
	"u": engine.LowerCaseOperator{},
	"U": engine.UpperCaseOperator{},
}
