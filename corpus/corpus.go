// Package corpus provides the document abstraction murmur models train on.
package corpus

import (
	"github.com/murmur-lm/murmur/internal/corpus"
)

// Document is a named piece of raw text.
type Document = corpus.Document

// FromString wraps in-memory text as a document.
func FromString(name, content string) *Document {
	return corpus.FromString(name, content)
}

// FromFile reads a document from disk.
func FromFile(path string) (*Document, error) {
	return corpus.FromFile(path)
}
