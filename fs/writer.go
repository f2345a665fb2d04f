// Package fs provides file-based output for scraped records.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/alaskavn"
)

// Ensure Writer implements alaskavn.RecordWriter at compile time.
var _ alaskavn.RecordWriter = (*Writer)(nil)

// Writer serializes records as pretty-printed JSON files. Vietnamese
// text is written as-is rather than \u-escaped, and HTML characters in
// URLs are left unescaped so the files stay greppable.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write serializes v to path, creating parent directories as needed.
func (w *Writer) Write(v any, path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}

	return f.Close()
}
