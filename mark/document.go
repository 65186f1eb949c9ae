package mark

import (
	"strings"
	"time"
)

// Format carries the line-level formatting hints consumed by placement:
// header level, quote and rule flags, code context, and the effective font
// size. Colors for quote borders and code backgrounds live in the layout
// configuration, not here.
type Format struct {
	HeaderLevel int // 1..6, 0 for non-headers
	Quote       bool
	Rule        bool
	Code        bool // fence delimiter or fence content line
	FontSize    int
}

// Line is the immutable per-line record: indent, kind, the styled runs, the
// formatting hints, and the verbatim source line kept for diagnostics.
type Line struct {
	Indent   int
	Kind     Kind
	Runs     []Run
	Format   Format
	Original string
}

// Plain returns the line's unstyled text: the concatenation of its run
// texts, always derived and never stored.
func (l Line) Plain() string {
	var b strings.Builder
	for _, r := range l.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Meta describes a parsed document. It is descriptive only and never
// consulted by parsing or placement.
type Meta struct {
	Source   string
	Lines    int
	ParsedAt time.Time
}

// Document is the parsed model: the source lines in order, each classified
// and formatted. A Document is built once by Parse and not mutated after.
type Document struct {
	Lines []Line
	Meta  Meta
}

// tableLabel prefixes the single verbatim run of a table line; tables are
// never decomposed.
const tableLabel = "[table] "

// Parser converts source text into Documents. The zero value is not useful;
// construct one with a Styles palette (DefaultStyles for the built-ins). A
// Parser holds no state across documents, so one Parser may serve many
// documents, concurrently or not.
type Parser struct {
	Styles Styles
}

// Parse converts one complete source text into a Document. It accepts any
// input: malformed fences and unterminated emphasis degrade to literal text
// rather than failing, so there is no error to return.
func (p Parser) Parse(name, text string) *Document {
	var (
		raw     = SplitLines(text)
		lines   = make([]Line, 0, len(raw))
		inFence = false
		rn      renumberer
	)
	for _, orig := range raw {
		level, rest := Indent(orig)
		info := classify(rest, &inFence)
		if info.kind != ListItem {
			rn.reset()
		}

		line := Line{
			Indent:   level,
			Kind:     info.kind,
			Format:   Format{FontSize: p.Styles.BaseSize},
			Original: orig,
		}
		switch info.kind {
		case Empty:
			line.Runs = []Run{{}}

		case CodeBlock:
			// the fence delimiter line reduces to empty text
			line.Runs = []Run{{}}
			line.Format.Code = true

		case HorizontalRule:
			line.Runs = []Run{{}}
			line.Format.Rule = true

		case Table:
			line.Runs = []Run{{Text: tableLabel + info.content}}

		case Header:
			line.Runs = p.Styles.FormatInline(info.content)
			p.Styles.overlayHeader(line.Runs, info.level)
			line.Format.HeaderLevel = info.level
			line.Format.FontSize = p.Styles.headerSize(info.level)

		case ListItem:
			marker := rn.marker(level, info.ordered)
			runs := append([]Run{{Text: marker}}, p.Styles.FormatInline(info.content)...)
			line.Runs = mergeRuns(runs)

		case Quote:
			line.Runs = p.Styles.FormatInline(info.content)
			line.Format.Quote = true

		default: // Paragraph, fenced or not
			if info.fenced {
				line.Runs = []Run{p.Styles.codeRun(info.content)}
				line.Format.Code = true
			} else {
				line.Runs = p.Styles.FormatInline(info.content)
			}
		}
		lines = append(lines, line)
	}

	return &Document{
		Lines: lines,
		Meta: Meta{
			Source:   name,
			Lines:    len(lines),
			ParsedAt: time.Now(),
		},
	}
}

// Parse converts source text using the default style palette.
func Parse(name, text string) *Document {
	return Parser{Styles: DefaultStyles()}.Parse(name, text)
}
