package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	opts, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Document", opts.Sheet)
	assert.Equal(t, 11, opts.BaseSize)
	assert.Equal(t, 24, opts.HeaderSizes["1"])
	assert.Equal(t, 11, opts.HeaderSizes["6"])

	st := opts.Styles()
	assert.Equal(t, "Courier New", st.CodeFont)
	assert.Equal(t, [6]int{24, 20, 16, 14, 12, 11}, st.HeaderSizes)

	lay := opts.Layout()
	assert.Equal(t, 2, lay.IndentCols)
	assert.Equal(t, st.LinkColor, lay.LinkColor)
}

func TestLoad_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheetdown.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sheet: Report
cell_width: 80
header_sizes:
  1: 30
colors:
  link: "#FF0000"
  quote_bg: "#EEEEEE"
unrecognized_key: ignored
`), 0o644))

	opts, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Report", opts.Sheet)
	assert.Equal(t, 80.0, opts.CellWidth)
	assert.Equal(t, "#FF0000", opts.Colors.Link)

	st := opts.Styles()
	assert.Equal(t, 30, st.HeaderSizes[0], "overridden level keeps effect")
	assert.Equal(t, 20, st.HeaderSizes[1], "unmentioned levels keep defaults")

	lay := opts.Layout()
	assert.Equal(t, "Report", lay.SheetName)
	assert.Equal(t, 80.0, lay.CellWidth)
	assert.Equal(t, "#EEEEEE", lay.QuoteBG)
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
