package sheetio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sheetdown/sheetdown/grid"
	"github.com/sheetdown/sheetdown/mark"
)

func place(text string) (grid.Result, mark.Meta) {
	doc := mark.Parse("test.md", text)
	return grid.Place(doc, grid.DefaultLayout()), doc.Meta
}

func TestWrite_freshWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	res, meta := place("# Title\npara [x](http://a)")

	name, err := Write(path, res, mark.DefaultStyles(), meta)
	require.NoError(t, err)
	assert.Equal(t, "Document", name)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Document", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Title", got)

	got, err = f.GetCellValue("Document", "A2")
	require.NoError(t, err)
	assert.Equal(t, "para x [1]", got)

	// appendix header after the configured gap
	got, err = f.GetCellValue("Document", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Links", got)
}

func TestWrite_appendsSheetOnExistingWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	res, meta := place("one")

	name, err := Write(path, res, mark.DefaultStyles(), meta)
	require.NoError(t, err)
	assert.Equal(t, "Document", name)

	name, err = Write(path, res, mark.DefaultStyles(), meta)
	require.NoError(t, err)
	assert.Equal(t, "Document (1)", name)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.ElementsMatch(t, []string{"Document", "Document (1)"}, f.GetSheetList())
}
