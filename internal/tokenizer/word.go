package tokenizer

import (
	"strings"
	"unicode"
)

// Word splits text into lowercased word tokens. A word is a maximal run of
// Unicode letters or digits; punctuation and whitespace separate tokens and
// are never emitted.
type Word struct{}

// NewWord creates a word tokenizer.
func NewWord() *Word {
	return &Word{}
}

// Tokenize implements Tokenizer.
func (*Word) Tokenize(text string) ([]string, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return fields, nil
}
