package mark

import "strconv"

// bulletGlyph replaces every unordered list marker, whichever of '-', '*',
// or '+' the source used.
const bulletGlyph = "•"

// renumberer carries the per-indent-level ordinal counters for ordered list
// items. It belongs to one document parse; it is never shared.
type renumberer struct {
	counters map[int]int
}

// marker renders the substitute marker for a list item: the running ordinal
// for ordered markers, the fixed bullet for unordered ones.
func (rn *renumberer) marker(indent int, ordered bool) string {
	if !ordered {
		return bulletGlyph + " "
	}
	if rn.counters == nil {
		rn.counters = make(map[int]int)
	}
	rn.counters[indent]++
	return strconv.Itoa(rn.counters[indent]) + ". "
}

// reset drops every level's counter. Called whenever a non-list line is
// seen: list numbering does not survive an intervening paragraph at any
// level.
func (rn *renumberer) reset() {
	rn.counters = nil
}
