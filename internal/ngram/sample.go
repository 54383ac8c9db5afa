package ngram

import (
	"math/rand"
)

// Generate emits count tokens by repeated inverse-CDF sampling from the
// maximal-order table. The generator is seeded once at call start, so the
// output is fully determined by (model, seed, count); concurrent calls are
// safe because each owns its own rand source.
//
// A sliding window of the last N-1 emitted tokens selects the current
// distribution. When the window does not match an observed context
// (including the empty window at the start), a fresh context is drawn by
// inverse CDF with uniform weights over the known contexts, in lexicographic
// context order, and sampling continues from there.
//
// A model whose top-level table is empty cannot generate and returns
// ErrEmptyModel.
func (m *Model) Generate(seed int64, count int) ([]string, error) {
	top := m.levels[m.order].dist
	if top.Len() == 0 {
		return nil, ErrEmptyModel
	}

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic generation is the contract
	out := make([]string, 0, count)
	var window []string

	for len(out) < count {
		cd := top.byKey[packContext(window)]
		if cd == nil {
			cd = pickContext(rng.Float64(), top.ordered)
			window = append(window[:0], cd.context...)
		}
		tok := pickToken(rng.Float64(), cd)
		out = append(out, tok)
		window = append(window, tok)
		if len(window) > m.order-1 {
			window = window[1:]
		}
	}
	return out, nil
}

// pickToken walks the context's continuations in lexicographic order and
// returns the first token whose cumulative mass exceeds r. Discounting can
// leave the total stored mass short of 1; the last token absorbs the
// remainder, mirroring the usual inverse-CDF rounding fallback.
func pickToken(r float64, cd *contextDist) string {
	sum := 0.0
	for _, tok := range cd.tokens {
		sum += cd.probs[tok]
		if sum > r {
			return tok
		}
	}
	return cd.tokens[len(cd.tokens)-1]
}

// pickContext selects a fresh context by the same cumulative technique,
// with every known context carrying equal mass.
func pickContext(r float64, ordered []*contextDist) *contextDist {
	step := 1.0 / float64(len(ordered))
	sum := 0.0
	for _, cd := range ordered {
		sum += step
		if sum > r {
			return cd
		}
	}
	return ordered[len(ordered)-1]
}
