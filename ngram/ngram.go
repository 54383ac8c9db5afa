// Package ngram is the public API for murmur's smoothed n-gram language
// models.
//
// A model is trained once from a token sequence (or a corpus document plus a
// tokenizer) and is immutable afterwards. It answers conditional probability
// queries, scores sequences by log-likelihood and perplexity, and generates
// reproducible random token sequences.
//
// Example usage:
//
//	import (
//	    "github.com/murmur-lm/murmur/corpus"
//	    "github.com/murmur-lm/murmur/ngram"
//	    "github.com/murmur-lm/murmur/tokenizer"
//	)
//
//	doc, err := corpus.FromFile("train.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	model, err := ngram.TrainDocument(doc, tokenizer.NewWord(), 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pp := model.Perplexity(tokens)
//	sentence, err := model.Generate(42, 20)
package ngram

import (
	"github.com/murmur-lm/murmur/internal/corpus"
	"github.com/murmur-lm/murmur/internal/ngram"
	"github.com/murmur-lm/murmur/internal/tokenizer"
)

// Model is a recursively smoothed n-gram language model.
type Model = ngram.Model

// Distribution is the read-only probability table for one model order.
type Distribution = ngram.Distribution

// Errors returned by training and generation.
var (
	ErrEmptyModel   = ngram.ErrEmptyModel
	ErrInvalidOrder = ngram.ErrInvalidOrder
)

// Train builds a model of the given order from a token sequence.
func Train(tokens []string, order int) (*Model, error) {
	return ngram.Train(tokens, order)
}

// TrainDocument tokenizes a document and trains a model on the result.
func TrainDocument(doc *corpus.Document, tok tokenizer.Tokenizer, order int) (*Model, error) {
	return ngram.TrainDocument(doc, tok, order)
}
