package mark

// Style is the visual treatment of one run. The zero value means "inherit":
// no flags set, default font, default size, default color.
//
// Style is a small fixed set of named fields on purpose, so that run merging
// can compare values directly instead of deep-comparing an open-ended record.
type Style struct {
	Bold      bool
	Italic    bool
	Strike    bool
	Underline bool
	Code      bool // inline code span or fenced code content

	Font  string // "" inherits the body font
	Size  int    // 0 inherits the base size
	Color string // "" inherits the default text color
}

// Image describes an image reference carried by a run.
type Image struct {
	Src string
	Alt string
}

// Run is a maximal span of text sharing one style: the atomic unit of the
// rich text model. Link, when non-empty, is the target URL stamped on every
// run produced inside a link. Image runs carry the source reference; their
// Text holds the alt text (or a placeholder when the alt is empty).
type Run struct {
	Text  string
	Style Style
	Link  string
	Image *Image
}

// mergeable reports whether two adjacent runs may be concatenated: identical
// style fields, identical link target, and identical image descriptor.
func mergeable(a, b Run) bool {
	if a.Style != b.Style || a.Link != b.Link {
		return false
	}
	if (a.Image == nil) != (b.Image == nil) {
		return false
	}
	return a.Image == nil || *a.Image == *b.Image
}

// mergeRuns concatenates adjacent mergeable runs, left to right, in place.
func mergeRuns(runs []Run) []Run {
	out := runs[:0]
	for _, r := range runs {
		if n := len(out); n > 0 && mergeable(out[n-1], r) {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}

// Styles is the font and color palette consulted while formatting. It is
// part of the external configuration surface; parsing structure never
// depends on it, only the styles stamped onto runs do.
type Styles struct {
	BodyFont string
	CodeFont string
	BaseSize int

	// HeaderSizes maps header level-1 to font size.
	HeaderSizes [6]int

	CodeColor       string // fenced code content
	InlineCodeColor string // inline code spans
	LinkColor       string
	ImageColor      string // image alt placeholder text
}

// DefaultStyles returns the built-in palette used when no configuration is
// supplied.
func DefaultStyles() Styles {
	return Styles{
		BodyFont:        "Calibri",
		CodeFont:        "Courier New",
		BaseSize:        11,
		HeaderSizes:     [6]int{24, 20, 16, 14, 12, 11},
		CodeColor:       "#24292E",
		InlineCodeColor: "#C7254E",
		LinkColor:       "#0563C1",
		ImageColor:      "#7F7F7F",
	}
}

// headerSize returns the configured font size for a header level in 1..6.
func (st Styles) headerSize(level int) int {
	if level < 1 || level > len(st.HeaderSizes) {
		return st.BaseSize
	}
	if sz := st.HeaderSizes[level-1]; sz > 0 {
		return sz
	}
	return st.BaseSize
}
