package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll_memory(t *testing.T) {
	text, err := ReadAll(Memory("doc.md", "# hi\n"))
	require.NoError(t, err)
	assert.Equal(t, "# hi\n", text)
}

func TestReadAll_stripsBOM(t *testing.T) {
	text, err := ReadAll(Memory("doc.md", "\uFEFF# hi"))
	require.NoError(t, err)
	assert.Equal(t, "# hi", text)
}

func TestReadAll_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("body"), 0o644))

	src := File(path)
	assert.Equal(t, path, src.Name())
	text, err := ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "body", text)
}

func TestReadAll_missingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.md")
	_, err := ReadAll(File(path))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotExists)
	assert.Contains(t, err.Error(), "no such file")
	assert.Contains(t, err.Error(), path)
}
