package mark

import "strings"

// Kind identifies the structural role of one source line.
type Kind int

// Kind constants for the closed set of recognized line kinds.
const (
	Empty Kind = iota
	Header
	Paragraph
	ListItem
	CodeBlock
	Quote
	HorizontalRule
	Table
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Header:
		return "Header"
	case Paragraph:
		return "Paragraph"
	case ListItem:
		return "ListItem"
	case CodeBlock:
		return "CodeBlock"
	case Quote:
		return "Quote"
	case HorizontalRule:
		return "HorizontalRule"
	case Table:
		return "Table"
	default:
		return "Invalid"
	}
}

const fenceDelim = "```"

// lineInfo is the classifier's verdict for one line: its kind plus whatever
// the marker match extracted (header level, list ordering, residual content
// after the marker).
type lineInfo struct {
	kind    Kind
	level   int    // header level, 1..6
	ordered bool   // ListItem only: marker was an ordered pattern
	fenced  bool   // Paragraph only: content line inside an open fence
	content string // marker-stripped content handed to inline formatting
}

// classify assigns a kind to the indent-stripped residual of a line. Rules
// are tried in strict precedence order; the first match wins. The fence flag
// is carried across lines by the caller and is toggled here by every fence
// delimiter line, open or close.
func classify(rest string, inFence *bool) lineInfo {
	if rest == "" {
		return lineInfo{kind: Empty}
	}
	if *inFence && !strings.HasPrefix(rest, fenceDelim) {
		return lineInfo{kind: Paragraph, fenced: true, content: rest}
	}
	if level, cont, ok := headerMark(rest); ok {
		return lineInfo{kind: Header, level: level, content: cont}
	}
	if ordered, cont, ok := listMark(rest); ok {
		return lineInfo{kind: ListItem, ordered: ordered, content: cont}
	}
	if strings.HasPrefix(rest, fenceDelim) {
		*inFence = !*inFence
		return lineInfo{kind: CodeBlock}
	}
	if cont, ok := strings.CutPrefix(rest, "> "); ok {
		return lineInfo{kind: Quote, content: cont}
	}
	if isRule(rest) {
		return lineInfo{kind: HorizontalRule}
	}
	if isTableRow(rest) {
		return lineInfo{kind: Table, content: rest}
	}
	return lineInfo{kind: Paragraph, content: rest}
}

// headerMark matches one to six '#' bytes followed by a single whitespace
// byte, returning the header level and the trailing content.
func headerMark(s string) (level int, cont string, ok bool) {
	for level < len(s) && s[level] == '#' {
		level++
	}
	if level < 1 || level > 6 || level >= len(s) {
		return 0, "", false
	}
	if c := s[level]; c != ' ' && c != '\t' {
		return 0, "", false
	}
	return level, s[level+1:], true
}

// listMark matches an unordered marker ('-', '*', or '+' then one whitespace)
// or an ordered marker (digits, '.', one whitespace).
func listMark(s string) (ordered bool, cont string, ok bool) {
	if len(s) >= 2 && isByte(s[0], '-', '*', '+') && isSpace(s[1]) {
		return false, s[2:], true
	}
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n < 1 || n+1 >= len(s) || s[n] != '.' || !isSpace(s[n+1]) {
		return false, "", false
	}
	return true, s[n+2:], true
}

// isRule reports whether the line is three or more repetitions of exactly one
// rule byte and nothing else.
func isRule(s string) bool {
	if len(s) < 3 || !isByte(s[0], '-', '*', '_') {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// isTableRow reports whether the line starts and ends with '|' and contains
// at least two '|' bytes in total.
func isTableRow(s string) bool {
	return len(s) >= 2 && s[0] == '|' && s[len(s)-1] == '|' &&
		strings.Count(s, "|") >= 2
}

func isByte(b byte, any ...byte) bool {
	for _, ab := range any {
		if b == ab {
			return true
		}
	}
	return false
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }
