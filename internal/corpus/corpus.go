// Package corpus provides the raw-text document abstraction that language
// models train and evaluate on.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
)

// Document is a named piece of raw text. Content is the full text; Path is
// empty for in-memory documents.
type Document struct {
	Name    string
	Path    string
	Content string
}

// FromString wraps in-memory text as a document.
func FromString(name, content string) *Document {
	return &Document{Name: name, Content: content}
}

// FromFile reads a document from disk. The file name becomes the document
// name.
func FromFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}
	return &Document{
		Name:    filepath.Base(path),
		Path:    path,
		Content: string(data),
	}, nil
}

// Len returns the content length in bytes.
func (d *Document) Len() int {
	return len(d.Content)
}
