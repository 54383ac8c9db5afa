// Package tokenizer is the public API for murmur's tokenizers.
//
// Tokenizers turn raw document text into the ordered token sequence a model
// trains and scores on. All implementations are deterministic.
//
// Example usage:
//
//	tok := tokenizer.NewWord()
//	tokens, err := tok.Tokenize("The cat sat on the mat.")
package tokenizer

import (
	"github.com/murmur-lm/murmur/internal/tokenizer"
)

// Tokenizer converts raw text into an ordered, finite token sequence.
type Tokenizer = tokenizer.Tokenizer

// NewWord creates a tokenizer that emits lowercased Unicode word tokens.
func NewWord() Tokenizer {
	return tokenizer.NewWord()
}

// NewChar creates a tokenizer that emits one token per non-space rune.
func NewChar() Tokenizer {
	return tokenizer.NewChar()
}

// NewTikToken creates a tokenizer backed by an OpenAI BPE encoding,
// e.g. "cl100k_base" or "p50k_base".
func NewTikToken(encodingName string) (Tokenizer, error) {
	return tokenizer.NewTikToken(encodingName)
}

// NewTikTokenForModel creates a BPE tokenizer for a specific model name,
// e.g. "gpt-4".
func NewTikTokenForModel(modelName string) (Tokenizer, error) {
	return tokenizer.NewTikTokenForModel(modelName)
}
