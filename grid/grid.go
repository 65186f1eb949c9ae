// Package grid projects a parsed document onto a row/column grid of styled
// cells, deduplicates cross-document hyperlinks into a numbered table, and
// assembles the trailing link appendix. Placement is a pure function of the
// document and a layout; it mutates neither.
package grid

import (
	"fmt"

	"github.com/sheetdown/sheetdown/mark"
)

// Layout is the external placement configuration: uniform cell geometry, the
// indent-to-column multiplier, appendix shape, and the cell-level colors.
type Layout struct {
	SheetName  string
	CellWidth  float64
	RowHeight  float64
	IndentCols int // columns per indent level
	GapRows    int // blank rows between content and the link appendix

	LinksLabel string // appendix section header text

	LinkColor   string
	QuoteBG     string
	QuoteBorder string
	RuleBorder  string
	CodeBG      string
	ImageBG     string
}

// DefaultLayout returns the built-in layout used when no configuration is
// supplied.
func DefaultLayout() Layout {
	return Layout{
		SheetName:   "Document",
		CellWidth:   60,
		RowHeight:   18,
		IndentCols:  2,
		GapRows:     2,
		LinksLabel:  "Links",
		LinkColor:   "#0563C1",
		QuoteBG:     "#F2F2F2",
		QuoteBorder: "#BFBFBF",
		RuleBorder:  "#808080",
		CodeBG:      "#F6F8FA",
		ImageBG:     "#EFEFEF",
	}
}

// Cell is one populated grid cell: a 1-based coordinate, the styled runs
// placed there, and cell-level visual attributes. Border fields hold a color
// hint or are empty for no border.
type Cell struct {
	Row, Col     int
	Runs         []mark.Run
	BorderLeft   string
	BorderBottom string
	Background   string
}

// Result is everything the serialization collaborator needs: the populated
// cells (content plus appendix), the deduplicated link table in
// first-occurrence order, the total row extent, and the layout to apply
// uniformly across the addressable range.
type Result struct {
	Layout Layout
	Cells  []Cell
	Links  []string // entry k is reference number k+1
	Rows   int
}

// Place maps every document line to a cell, numbers the document's distinct
// link targets, annotates link runs with their [n] marker, and appends the
// link table after a blank gap.
func Place(doc *mark.Document, lay Layout) Result {
	res := Result{Layout: lay, Rows: len(doc.Lines)}
	num := make(map[string]int)
	for _, line := range doc.Lines {
		for _, r := range line.Runs {
			if r.Link != "" && num[r.Link] == 0 {
				res.Links = append(res.Links, r.Link)
				num[r.Link] = len(res.Links)
			}
		}
	}

	for i, line := range doc.Lines {
		if line.Kind == mark.Empty {
			continue
		}
		cell := Cell{
			Row:  i + 1,
			Col:  line.Indent*lay.IndentCols + 1,
			Runs: annotate(line.Runs, num),
		}
		switch {
		case line.Format.Quote:
			cell.BorderLeft = lay.QuoteBorder
			cell.Background = lay.QuoteBG
		case line.Format.Rule:
			cell.BorderBottom = lay.RuleBorder
		case line.Format.Code:
			cell.Background = lay.CodeBG
		case hasImage(line.Runs):
			cell.Background = lay.ImageBG
		}
		res.Cells = append(res.Cells, cell)
	}

	if len(res.Links) > 0 {
		head := len(doc.Lines) + lay.GapRows + 1
		res.Cells = append(res.Cells, Cell{
			Row:  head,
			Col:  1,
			Runs: []mark.Run{{Text: lay.LinksLabel, Style: mark.Style{Bold: true}}},
		})
		for k, target := range res.Links {
			res.Cells = append(res.Cells, Cell{
				Row: head + 1 + k,
				Col: 1,
				Runs: []mark.Run{{
					Text:  fmt.Sprintf("[%d] %s", k+1, target),
					Style: mark.Style{Underline: true, Color: lay.LinkColor},
					Link:  target,
				}},
			})
		}
		res.Rows = head + len(res.Links)
	}
	return res
}

func hasImage(runs []mark.Run) bool {
	for _, r := range runs {
		if r.Image != nil {
			return true
		}
	}
	return false
}

// annotate copies the line's runs, appending the shared [n] reference marker
// after each rendered link. A link whose styling split it into several
// adjacent runs gets one marker, on the last run of the group; the source
// runs are never modified.
func annotate(runs []mark.Run, num map[string]int) []mark.Run {
	out := make([]mark.Run, len(runs))
	copy(out, runs)
	for i := range out {
		target := out[i].Link
		if target == "" {
			continue
		}
		if i+1 < len(out) && out[i+1].Link == target {
			continue // marker goes after the whole group
		}
		out[i].Text = fmt.Sprintf("%s [%d]", out[i].Text, num[target])
	}
	return out
}
