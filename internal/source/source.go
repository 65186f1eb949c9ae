// Package source is the file-access boundary in front of the parser: it
// resolves a named source into decoded text, or into one of the two
// file-level errors. The parser itself never touches the filesystem.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNotExists reports a source that could not be found. Wrapped errors
// carry the source name.
var ErrNotExists = errors.New("no such file")

// Source locates one document's text.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// File returns a Source backed by a filesystem path.
func File(path string) Source { return fileSource(path) }

type fileSource string

func (fs fileSource) Name() string { return string(fs) }

func (fs fileSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(string(fs))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotExists, string(fs))
	}
	return f, err
}

// Memory returns a Source serving fixed content, for tests and tooling that
// convert without touching storage.
func Memory(name, content string) Source {
	return &memSource{name: name, content: content}
}

type memSource struct {
	name    string
	content string
}

func (ms *memSource) Name() string { return ms.name }

func (ms *memSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(ms.content)), nil
}

// ReadAll fetches the complete text of a source, stripping any UTF-8 byte
// order mark. A read failure aborts the whole conversion; there is no
// partial result.
func ReadAll(src Source) (string, error) {
	rc, err := src.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read failure: %s: %w", src.Name(), err)
	}
	return strings.TrimPrefix(string(b), "\uFEFF"), nil
}
