package ngram

import (
	"math"
	"slices"
	"sort"
)

// contextDist holds the finished distribution over the continuations of a
// single context. tokens is kept sorted so that any enumeration-dependent
// operation (sampling, tests) sees a stable lexicographic order instead of
// map iteration order.
type contextDist struct {
	context []string
	tokens  []string
	probs   map[string]float64
}

// Distribution is the read-only probability table for one model order. It is
// fully materialized at training time; queries are table lookups only.
type Distribution struct {
	byKey   map[string]*contextDist
	ordered []*contextDist // sorted lexicographically by context tokens
}

func emptyDistribution() *Distribution {
	return &Distribution{byKey: make(map[string]*contextDist)}
}

// buildDistribution converts one order's frequency counts into smoothed
// probabilities using absolute discounting:
//
//	p(w|c) = max(freq[c][w] - D, 0)/T(c) + (D/T(c)) * |S(c)| * pLower(w)
//
// where T(c) is the context's total count, S(c) its observed token set and
// pLower the next lower order's token probability. lower is the finished
// table of order k-1; for order 1 that is the empty order-0 table, whose
// constant-zero lookup makes the backoff term vanish. That is the defined
// behavior of the formula, not a gap to fill with a uniform fallback.
func buildDistribution(freq FreqMap, discount float64, lower *Distribution) *Distribution {
	dist := emptyDistribution()
	for key, counts := range freq {
		var total uint64
		for _, c := range counts {
			total += c
		}
		t := float64(total)
		observed := float64(len(counts))

		cd := &contextDist{
			context: unpackContext(key),
			tokens:  make([]string, 0, len(counts)),
			probs:   make(map[string]float64, len(counts)),
		}
		for tok, c := range counts {
			body := math.Max(float64(c)-discount, 0) / t
			backoff := discount / t * observed * lower.Prob(nil, tok)
			cd.probs[tok] = body + backoff
			cd.tokens = append(cd.tokens, tok)
		}
		sort.Strings(cd.tokens)

		dist.byKey[key] = cd
		dist.ordered = append(dist.ordered, cd)
	}
	sort.Slice(dist.ordered, func(i, j int) bool {
		return slices.Compare(dist.ordered[i].context, dist.ordered[j].context) < 0
	})
	return dist
}

// Len returns the number of contexts in the table.
func (d *Distribution) Len() int {
	return len(d.byKey)
}

// Prob returns the stored probability of token following context. It is
// exactly 0 when the context was never observed, and exactly 0 when the
// context was observed but never continued by token. No further backoff
// happens at query time; training already baked the lower-order mass in.
func (d *Distribution) Prob(context []string, token string) float64 {
	cd := d.byKey[packContext(context)]
	if cd == nil {
		return 0
	}
	return cd.probs[token]
}

// Contexts returns every observed context in lexicographic token order.
// The returned slices are copies; the table itself stays immutable.
func (d *Distribution) Contexts() [][]string {
	out := make([][]string, len(d.ordered))
	for i, cd := range d.ordered {
		out[i] = slices.Clone(cd.context)
	}
	return out
}

// Tokens returns the observed continuations of context in lexicographic
// order, or nil if the context was never observed.
func (d *Distribution) Tokens(context []string) []string {
	cd := d.byKey[packContext(context)]
	if cd == nil {
		return nil
	}
	return slices.Clone(cd.tokens)
}
