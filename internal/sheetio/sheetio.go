// Package sheetio serializes a placed grid into an .xlsx workbook. When the
// destination workbook already exists the grid is appended as a new sheet,
// with the name collision policy computed by the grid package; otherwise a
// fresh workbook is created. The final bytes are written atomically.
package sheetio

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/renameio"
	"github.com/xuri/excelize/v2"

	"github.com/sheetdown/sheetdown/grid"
	"github.com/sheetdown/sheetdown/mark"
)

// lastColumn bounds the uniform column width application: the full
// addressable column range of the sheet format.
const lastColumn = "XFD"

// Write serializes the grid result to path, returning the sheet name chosen
// for it.
func Write(path string, res grid.Result, st mark.Styles, meta mark.Meta) (string, error) {
	f, fresh, err := openWorkbook(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	name := grid.SheetName(res.Layout.SheetName, func(n string) bool {
		idx, err := f.GetSheetIndex(n)
		return err == nil && idx >= 0
	})
	idx, err := f.NewSheet(name)
	if err != nil {
		return "", fmt.Errorf("add sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if fresh && name != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return "", err
		}
	}

	if err := applyLayout(f, name, res); err != nil {
		return "", err
	}
	for _, cell := range res.Cells {
		if err := writeCell(f, name, cell, st); err != nil {
			return "", err
		}
	}

	if fresh {
		// descriptive only; parsing never sees these
		if err := f.SetDocProps(&excelize.DocProperties{
			Title:       meta.Source,
			Description: fmt.Sprintf("%d lines", meta.Lines),
			Created:     meta.ParsedAt.Format(time.RFC3339),
		}); err != nil {
			return "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", fmt.Errorf("serialize workbook: %w", err)
	}
	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return name, nil
}

func openWorkbook(path string) (f *excelize.File, fresh bool, err error) {
	if _, serr := os.Stat(path); serr == nil {
		f, err = excelize.OpenFile(path)
		if err != nil {
			err = fmt.Errorf("open %s: %w", path, err)
		}
		return f, false, err
	}
	return excelize.NewFile(), true, nil
}

// applyLayout sets the uniform cell geometry across the addressable range:
// one column width for all columns, one row height for every row of the
// grid's extent.
func applyLayout(f *excelize.File, sheet string, res grid.Result) error {
	if err := f.SetColWidth(sheet, "A", lastColumn, res.Layout.CellWidth); err != nil {
		return err
	}
	for row := 1; row <= res.Rows; row++ {
		if err := f.SetRowHeight(sheet, row, res.Layout.RowHeight); err != nil {
			return err
		}
	}
	return nil
}

func writeCell(f *excelize.File, sheet string, cell grid.Cell, st mark.Styles) error {
	ref, err := excelize.CoordinatesToCellName(cell.Col, cell.Row)
	if err != nil {
		return err
	}

	rich := make([]excelize.RichTextRun, 0, len(cell.Runs))
	link := ""
	for _, r := range cell.Runs {
		rich = append(rich, excelize.RichTextRun{Text: r.Text, Font: runFont(r, st)})
		if link == "" && r.Link != "" {
			link = r.Link
		}
	}
	if err := f.SetCellRichText(sheet, ref, rich); err != nil {
		return err
	}
	if link != "" {
		if err := f.SetCellHyperLink(sheet, ref, link, "External"); err != nil {
			return err
		}
	}
	return applyCellStyle(f, sheet, ref, cell)
}

// runFont translates a run style into a workbook font, resolving inherited
// fields against the configured body font and base size.
func runFont(r mark.Run, st mark.Styles) *excelize.Font {
	font := excelize.Font{
		Bold:   r.Style.Bold,
		Italic: r.Style.Italic,
		Strike: r.Style.Strike,
		Family: st.BodyFont,
		Size:   float64(st.BaseSize),
		Color:  hexColor(r.Style.Color),
	}
	if r.Style.Underline {
		font.Underline = "single"
	}
	if r.Style.Font != "" {
		font.Family = r.Style.Font
	}
	if r.Style.Size > 0 {
		font.Size = float64(r.Style.Size)
	}
	return &font
}

func applyCellStyle(f *excelize.File, sheet, ref string, cell grid.Cell) error {
	style := excelize.Style{}
	styled := false
	if cell.BorderLeft != "" {
		style.Border = append(style.Border, excelize.Border{
			Type: "left", Color: hexColor(cell.BorderLeft), Style: 2,
		})
		styled = true
	}
	if cell.BorderBottom != "" {
		style.Border = append(style.Border, excelize.Border{
			Type: "bottom", Color: hexColor(cell.BorderBottom), Style: 2,
		})
		styled = true
	}
	if cell.Background != "" {
		style.Fill = excelize.Fill{
			Type: "pattern", Pattern: 1, Color: []string{hexColor(cell.Background)},
		}
		styled = true
	}
	if !styled {
		return nil
	}
	id, err := f.NewStyle(&style)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, ref, ref, id)
}

// hexColor strips the configuration's "#" prefix; the workbook format wants
// bare RGB hex.
func hexColor(c string) string {
	return strings.TrimPrefix(c, "#")
}
