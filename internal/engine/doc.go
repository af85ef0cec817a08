// Package engine implements a vim-style modal editing core: motion
// resolution, text objects, per-caret visual selections, and operator
// execution across multiple carets.
//
// The engine does not own text storage or key parsing. It consumes a Host
// (buffer queries, mutation primitives, and a caret set with stable
// identities) and parsed Command values, and it exposes three entry points:
// ResolveMotionRange, ExecuteVisualOperator, and the line-range commands
// (MoveLines/CopyLines). Mode and sub-mode are buffer-global and owned by the
// Session; per-caret auxiliary state (remembered column, selection anchor,
// last visual operator shape) lives in a side table keyed by caret identity,
// never on the host's caret type.
//
// All offsets are rune offsets into the host buffer. Lines are 0-indexed.
package engine
