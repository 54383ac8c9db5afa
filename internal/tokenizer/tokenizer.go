// Package tokenizer produces the ordered token sequences that n-gram models
// consume.
//
// Three implementations are provided:
//   - Word: Unicode-aware, lowercased word tokens
//   - Char: one token per rune
//   - TikToken: OpenAI BPE vocabularies via pkoukk/tiktoken-go
package tokenizer

// Tokenizer converts raw text into an ordered, finite token sequence.
//
// Implementations must be deterministic: the same text always yields the
// same sequence, so a document can be re-tokenized to restart iteration.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}
