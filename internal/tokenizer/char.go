package tokenizer

import "unicode"

// Char emits one token per rune, skipping whitespace. Useful for
// character-level models and for languages without word boundaries.
type Char struct{}

// NewChar creates a character tokenizer.
func NewChar() *Char {
	return &Char{}
}

// Tokenize implements Tokenizer.
func (*Char) Tokenize(text string) ([]string, error) {
	out := make([]string, 0, len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, string(r))
	}
	return out, nil
}
