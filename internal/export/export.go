// Package export persists rendered frames as standalone replay scripts:
// shell scripts that re-emit the exact captured output when executed.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fracviz/internal/fractal"
)

// ErrWriteFailed indicates neither the primary directory nor the temp
// fallback could be written.
var ErrWriteFailed = errors.New("export: could not write replay script")

// DefaultDir is the primary export location, relative to the working
// directory.
const DefaultDir = ".fracviz"

// Writer writes replay scripts, falling back to the system temp directory
// when its primary directory is not writable.
type Writer struct {
	dir string
}

// NewWriter targets dir, or DefaultDir when empty.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = DefaultDir
	}
	return &Writer{dir: dir}
}

// metadata is the YAML block embedded as comments at the top of every
// replay script, so an exported frame is self-describing.
type metadata struct {
	Family   string    `yaml:"family"`
	Real     float64   `yaml:"real"`
	Imag     float64   `yaml:"imag"`
	Zoom     float64   `yaml:"zoom"`
	Exported time.Time `yaml:"exported"`
}

// Export writes content as an executable replay script and returns its
// path. content is the raw frame write, control sequences included.
func (w *Writer) Export(content string, family fractal.Family, center fractal.Point, zoom float64) (string, error) {
	meta, err := yaml.Marshal(metadata{
		Family:   family.String(),
		Real:     center.Real,
		Imag:     center.Imag,
		Zoom:     zoom,
		Exported: time.Now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	for _, line := range strings.Split(strings.TrimRight(string(meta), "\n"), "\n") {
		b.WriteString("# ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	// Single-quoted printf reproduces the capture byte for byte; a heredoc
	// would force a trailing newline on it.
	b.WriteString("printf '%s' '")
	b.WriteString(strings.ReplaceAll(content, "'", `'\''`))
	b.WriteString("'\n")

	name := fmt.Sprintf("frame_%d.sh", time.Now().UnixNano())
	path, err := write(w.dir, name, b.String())
	if err != nil {
		path, err = write(os.TempDir(), name, b.String())
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
	}
	return path, nil
}

func write(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		return "", err
	}
	return path, nil
}
