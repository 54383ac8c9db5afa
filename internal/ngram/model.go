package ngram

import (
	"fmt"

	"github.com/murmur-lm/murmur/internal/corpus"
	"github.com/murmur-lm/murmur/internal/tokenizer"
)

// Model is a recursively smoothed n-gram language model. Levels are indexed
// by order: levels[k] holds the finished order-k table, with levels[0] the
// hardcoded degenerate base case. Everything is computed once at training
// time; a Model never mutates afterwards and is safe for concurrent reads.
type Model struct {
	order  int
	levels []modelLevel
}

type modelLevel struct {
	freq     FreqMap
	discount float64
	dist     *Distribution
}

// Train builds a model of the given order from a token sequence. Levels are
// built bottom-up: each order's smoothing consumes the next lower order's
// finished table.
//
// A sequence shorter than the model order carries no full window, so every
// level stays empty with a discount of 0. That is a valid degenerate model,
// not an error: probabilities are 0 everywhere and Generate reports
// ErrEmptyModel.
func Train(tokens []string, order int) (*Model, error) {
	if order < 1 {
		return nil, fmt.Errorf("train: %w (got %d)", ErrInvalidOrder, order)
	}

	m := &Model{order: order, levels: make([]modelLevel, order+1)}
	m.levels[0] = modelLevel{dist: emptyDistribution()}

	if len(tokens) < order {
		for k := 1; k <= order; k++ {
			m.levels[k] = modelLevel{freq: make(FreqMap), dist: emptyDistribution()}
		}
		return m, nil
	}

	for k := 1; k <= order; k++ {
		freq := countNgrams(tokens, k)
		discount := estimateDiscount(freq)
		m.levels[k] = modelLevel{
			freq:     freq,
			discount: discount,
			dist:     buildDistribution(freq, discount, m.levels[k-1].dist),
		}
	}
	return m, nil
}

// TrainDocument tokenizes a document and trains a model on the result.
func TrainDocument(doc *corpus.Document, tok tokenizer.Tokenizer, order int) (*Model, error) {
	tokens, err := tok.Tokenize(doc.Content)
	if err != nil {
		return nil, fmt.Errorf("tokenize %s: %w", doc.Name, err)
	}
	return Train(tokens, order)
}

// Order returns the model's maximal n-gram order N.
func (m *Model) Order() int {
	return m.order
}

// Prob returns the probability of token following context, resolved against
// the maximal-order table. Unseen contexts and unseen continuations are
// exactly 0. Lower-order tables are queried through KthDistribution.
func (m *Model) Prob(context []string, token string) float64 {
	return m.levels[m.order].dist.Prob(context, token)
}

// ProbToken is the convenience form of Prob with an empty context.
func (m *Model) ProbToken(token string) float64 {
	return m.Prob(nil, token)
}

// KthDistribution returns the finished probability table for order k.
// k = 0 yields the degenerate empty table. Requests outside [0, Order()]
// cannot arise from valid data and panic as a contract violation.
func (m *Model) KthDistribution(k int) *Distribution {
	if k < 0 || k > m.order {
		panic(fmt.Sprintf("ngram: distribution order %d out of range [0, %d]", k, m.order))
	}
	return m.levels[k].dist
}
