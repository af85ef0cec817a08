package engine

// TextRange describes a span of buffer offsets with an exclusive end. A range
// normally holds a single (start, end) pair; block-wise selections hold one
// pair per covered line.
type TextRange struct {
	starts []int
	ends   []int
}

// NewRange creates a single-segment range. The pair is stored as given;
// call Normalized to guarantee start <= end.
func NewRange(start, end int) TextRange {
	return TextRange{starts: []int{start}, ends: []int{end}}
}

// NewBlockRange creates a multi-segment range with one (start, end) pair per
// line of a block selection. The slices are copied.
func NewBlockRange(starts, ends []int) TextRange {
	s := make([]int, len(starts))
	e := make([]int, len(ends))
	copy(s, starts)
	copy(e, ends)
	return TextRange{starts: s, ends: e}
}

// IsBlock reports whether the range carries more than one segment.
func (r TextRange) IsBlock() bool {
	return len(r.starts) > 1
}

// Segments returns the number of (start, end) pairs.
func (r TextRange) Segments() int {
	return len(r.starts)
}

// Segment returns the i-th (start, end) pair.
func (r TextRange) Segment(i int) (start, end int) {
	return r.starts[i], r.ends[i]
}

// Start returns the first segment's start offset.
func (r TextRange) Start() int {
	if len(r.starts) == 0 {
		return 0
	}
	return r.starts[0]
}

// End returns the last segment's end offset.
func (r TextRange) End() int {
	if len(r.ends) == 0 {
		return 0
	}
	return r.ends[len(r.ends)-1]
}

// Size returns the total number of characters covered by all segments.
func (r TextRange) Size() int {
	n := 0
	for i := range r.starts {
		n += r.ends[i] - r.starts[i]
	}
	return n
}

// IsEmpty reports whether the range covers no characters.
func (r TextRange) IsEmpty() bool {
	return r.Size() == 0
}

// Normalized returns a copy with every segment ordered so start <= end.
// Motions may produce start > end when moving backward; all consumers of a
// resolved range rely on this normalization.
func (r TextRange) Normalized() TextRange {
	starts := make([]int, len(r.starts))
	ends := make([]int, len(r.ends))
	for i := range r.starts {
		s, e := r.starts[i], r.ends[i]
		if s > e {
			s, e = e, s
		}
		starts[i] = s
		ends[i] = e
	}
	return TextRange{starts: starts, ends: ends}
}

// Contains reports whether the offset falls inside any segment.
func (r TextRange) Contains(offset int) bool {
	for i := range r.starts {
		if offset >= r.starts[i] && offset < r.ends[i] {
			return true
		}
	}
	return false
}
