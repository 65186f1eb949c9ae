package mark

import "strings"

// tabWidth is how many indent width units a tab occupies; an indent level is
// one tabWidth worth of leading whitespace.
const tabWidth = 4

// SplitLines normalizes newline conventions (CRLF and lone CR become LF) and
// splits the text into logical lines. A trailing line break produces a
// trailing empty line, so the result always has one more line than the number
// of breaks.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// Indent measures the leading whitespace of a line, counting a space as one
// width unit and a tab as tabWidth units, and returns the indent level along
// with the residual content.
//
// The residual is the line with exactly level*tabWidth width units of leading
// whitespace removed: stripping is width based, not character based, so a
// single tab may satisfy several units, and leftover whitespace short of the
// next level boundary is preserved verbatim. That leftover matters inside
// code fences, where internal indentation is content.
func Indent(line string) (level int, rest string) {
	width := 0
scan:
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			width++
		case '\t':
			width += tabWidth
		default:
			break scan
		}
	}
	level = width / tabWidth

	// consume characters until the level boundary is satisfied; a tab that
	// straddles the boundary is consumed whole
	n, i := 0, 0
	for i < len(line) && n < level*tabWidth {
		if line[i] == '\t' {
			n += tabWidth
		} else {
			n++
		}
		i++
	}
	return level, line[i:]
}
