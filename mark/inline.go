package mark

import (
	"html"
	"strings"
)

// The inline grammar is a closed set of constructs. Each parsed node is one
// variant; anything unrecognized stays literal text. Strong, emphasis,
// strikethrough, and link nodes carry children; code spans, images, and text
// are leaves.
type nodeKind int

const (
	nodeText nodeKind = iota
	nodeStrong
	nodeEmph
	nodeStrike
	nodeCode
	nodeLink
	nodeImage
)

type node struct {
	kind nodeKind
	text string // nodeText literal, nodeCode content, nodeImage alt
	dest string // nodeLink target, nodeImage source
	kids []node
}

// imageAltPlaceholder labels image runs whose alt text is empty.
const imageAltPlaceholder = "image"

// FormatInline parses the inline markup of one line's content into an
// ordered, merged run sequence. Malformed markup never fails: an unmatched
// delimiter or incomplete link degrades to literal text.
func (st Styles) FormatInline(content string) []Run {
	runs := st.runsFor(parseInline(content), Style{}, "", nil)
	if len(runs) == 0 {
		runs = []Run{{}}
	}
	return mergeRuns(runs)
}

// parseInline tokenizes one line's content. Escaped characters and HTML
// entities are resolved into the literal text they denote.
func parseInline(s string) []node {
	var (
		nodes []node
		lit   strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			nodes = append(nodes, node{kind: nodeText, text: html.UnescapeString(lit.String())})
			lit.Reset()
		}
	}
	for i := 0; i < len(s); {
		switch c := s[i]; c {
		case '\\':
			if i+1 < len(s) {
				lit.WriteByte(s[i+1])
				i += 2
				continue
			}
			lit.WriteByte(c)
			i++

		case '`':
			if j := strings.IndexByte(s[i+1:], '`'); j >= 0 {
				flush()
				nodes = append(nodes, node{kind: nodeCode, text: html.UnescapeString(s[i+1 : i+1+j])})
				i += j + 2
				continue
			}
			lit.WriteByte(c)
			i++

		case '*', '_', '~':
			if n, next, ok := emphasis(s, i); ok {
				flush()
				nodes = append(nodes, n)
				i = next
				continue
			}
			lit.WriteByte(c)
			i++

		case '[':
			if n, next, ok := linkNode(s, i); ok {
				flush()
				nodes = append(nodes, n)
				i = next
				continue
			}
			lit.WriteByte(c)
			i++

		case '!':
			if n, next, ok := imageNode(s, i); ok {
				flush()
				nodes = append(nodes, n)
				i = next
				continue
			}
			lit.WriteByte(c)
			i++

		case '<':
			// embedded raw markup is flattened to literal text, shielding
			// its interior from delimiter matching
			if tag, next, ok := rawMarkup(s, i); ok {
				lit.WriteString(tag)
				i = next
				continue
			}
			lit.WriteByte(c)
			i++

		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return nodes
}

// emphasis matches a strong, emphasis, or strikethrough span opening at i.
// Underscore delimiters do not fire against the inside of a word: an opener
// preceded by an alphanumeric, or a closer followed by one, is rejected.
// Asterisk delimiters carry no such restriction. An opener with no matching
// closer reports no match, leaving the delimiter literal.
func emphasis(s string, i int) (node, int, bool) {
	c := s[i]
	delim := s[i : i+1]
	kind := nodeEmph
	switch {
	case c == '~':
		if !strings.HasPrefix(s[i:], "~~") {
			return node{}, 0, false
		}
		delim, kind = "~~", nodeStrike
	case strings.HasPrefix(s[i:], delim+delim):
		delim, kind = s[i:i+2], nodeStrong
	}
	if c == '_' && i > 0 && isAlnum(s[i-1]) {
		return node{}, 0, false
	}

	start := i + len(delim)
	j := findDelim(s, delim, start)
	for j >= 0 && c == '_' && j+len(delim) < len(s) && isAlnum(s[j+len(delim)]) {
		j = findDelim(s, delim, j+1)
	}
	if j <= start { // includes not-found and empty interior
		return node{}, 0, false
	}
	return node{kind: kind, kids: parseInline(s[start:j])}, j + len(delim), true
}

// findDelim locates the next occurrence of delim at or after from, skipping
// backslash-escaped bytes.
func findDelim(s, delim string, from int) int {
	for i := from; i+len(delim) <= len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case delim[0]:
			if strings.HasPrefix(s[i:], delim) {
				return i
			}
		}
	}
	return -1
}

// linkNode matches a [text](target) construct opening at i. Its children are
// parsed recursively from the bracket body.
func linkNode(s string, i int) (node, int, bool) {
	inner, j, ok := bracketBody(s, i+1)
	if !ok || j >= len(s) || s[j] != '(' {
		return node{}, 0, false
	}
	dest, n, ok := linkTarget(s[j+1:])
	if !ok {
		return node{}, 0, false
	}
	return node{kind: nodeLink, dest: dest, kids: parseInline(inner)}, j + 1 + n, true
}

// imageNode matches an ![alt](src) construct opening at i. Images never
// recurse: the alt text is kept verbatim.
func imageNode(s string, i int) (node, int, bool) {
	if i+1 >= len(s) || s[i+1] != '[' {
		return node{}, 0, false
	}
	alt, j, ok := bracketBody(s, i+2)
	if !ok || j >= len(s) || s[j] != '(' {
		return node{}, 0, false
	}
	src, n, ok := linkTarget(s[j+1:])
	if !ok {
		return node{}, 0, false
	}
	return node{kind: nodeImage, text: alt, dest: src}, j + 1 + n, true
}

// bracketBody scans for the ']' closing a bracket body opened just before
// from, honoring backslash escapes. next indexes past the ']'.
func bracketBody(s string, from int) (inner string, next int, ok bool) {
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case ']':
			return s[from:i], i + 1, true
		}
	}
	return "", 0, false
}

// linkTarget scans a link target, s starting just past the '('. A balanced
// parenthesis pair is retained as part of the target, an escaped ')' is
// retained as a literal byte, and the first unbalanced ')' terminates the
// target. n counts the bytes consumed, including the terminating ')'.
func linkTarget(s string) (dest string, n int, ok bool) {
	var b strings.Builder
	depth := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			if i+1 < len(s) && (s[i+1] == ')' || s[i+1] == '(') {
				b.WriteByte(s[i+1])
				i++
				continue
			}
			b.WriteByte(c)
		case '(':
			depth++
			b.WriteByte(c)
		case ')':
			if depth == 0 {
				return b.String(), i + 1, true
			}
			depth--
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return "", 0, false
}

// rawMarkup matches a <tag ...> span at i, returned verbatim.
func rawMarkup(s string, i int) (tag string, next int, ok bool) {
	j := i + 1
	if j < len(s) && s[j] == '/' {
		j++
	}
	if j >= len(s) || !isAlpha(s[j]) {
		return "", 0, false
	}
	for ; j < len(s); j++ {
		switch s[j] {
		case '>':
			return s[i : j+1], j + 1, true
		case '<':
			return "", 0, false
		}
	}
	return "", 0, false
}

// runsFor renders a node sequence into runs. Entering an emphasis variant
// adds its one flag to the style inherited by the children; entering a link
// stamps the target onto every run produced beneath it.
func (st Styles) runsFor(nodes []node, inherit Style, link string, out []Run) []Run {
	for _, n := range nodes {
		switch n.kind {
		case nodeStrong:
			s := inherit
			s.Bold = true
			out = st.runsFor(n.kids, s, link, out)

		case nodeEmph:
			s := inherit
			s.Italic = true
			out = st.runsFor(n.kids, s, link, out)

		case nodeStrike:
			s := inherit
			s.Strike = true
			out = st.runsFor(n.kids, s, link, out)

		case nodeCode:
			s := inherit
			s.Code = true
			s.Font = st.CodeFont
			s.Color = st.InlineCodeColor
			out = append(out, Run{Text: n.text, Style: s, Link: link})

		case nodeLink:
			s := inherit
			s.Underline = true
			s.Color = st.LinkColor
			out = st.runsFor(n.kids, s, n.dest, out)

		case nodeImage:
			alt := n.text
			if alt == "" {
				alt = imageAltPlaceholder
			}
			s := inherit
			s.Color = st.ImageColor
			out = append(out, Run{Text: alt, Style: s, Link: link, Image: &Image{Src: n.dest, Alt: n.text}})

		default: // nodeText and anything unrecognized stays literal
			out = append(out, Run{Text: n.text, Style: inherit, Link: link})
		}
	}
	return out
}

// overlayHeader stamps header-level weight and size onto every run of a
// header line without disturbing styles already set by inline markup.
func (st Styles) overlayHeader(runs []Run, level int) {
	sz := st.headerSize(level)
	for i := range runs {
		runs[i].Style.Bold = true
		runs[i].Style.Size = sz
	}
}

// codeRun builds the single unparsed run carried by a content line inside an
// open code fence.
func (st Styles) codeRun(text string) Run {
	return Run{Text: text, Style: Style{Code: true, Font: st.CodeFont, Color: st.CodeColor}}
}

func isAlnum(b byte) bool {
	return isAlpha(b) || (b >= '0' && b <= '9')
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
