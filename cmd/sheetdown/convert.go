package main

import (
	"path/filepath"

	"github.com/sheetdown/sheetdown/grid"
	"github.com/sheetdown/sheetdown/internal/config"
	"github.com/sheetdown/sheetdown/internal/sheetio"
	"github.com/sheetdown/sheetdown/internal/source"
	"github.com/sheetdown/sheetdown/mark"
)

// convert runs the whole pipeline for one document: fetch text, parse, place,
// serialize. Conversion is all or nothing; the only errors are the source
// fetch and the workbook write.
func convert(src source.Source, out string, opts *config.Options) (sheet string, err error) {
	text, err := source.ReadAll(src)
	if err != nil {
		return "", err
	}
	doc := mark.Parser{Styles: opts.Styles()}.Parse(filepath.Base(src.Name()), text)
	res := grid.Place(doc, opts.Layout())
	return sheetio.Write(out, res, opts.Styles(), doc.Meta)
}
