package ngram

import "math"

// LogLikelihood sums log Prob over every full n-gram window of tokens.
// A window whose probability is 0 contributes math.Log(0) = -Inf, and the
// -Inf propagates through the sum; that is the uniform zero-probability
// policy for scoring. A sequence with no full window scores 0.
//
// The result depends only on (model, tokens): repeated calls are
// bit-identical.
func (m *Model) LogLikelihood(tokens []string) float64 {
	ll := 0.0
	for i := 0; i+m.order <= len(tokens); i++ {
		window := tokens[i : i+m.order]
		ll += math.Log(m.Prob(window[:m.order-1], window[m.order-1]))
	}
	return ll
}

// Perplexity returns exp(-LogLikelihood/n) where n is the number of scored
// windows. A sequence too short to score yields +Inf, as does any sequence
// containing a zero-probability window.
func (m *Model) Perplexity(tokens []string) float64 {
	scored := len(tokens) - m.order + 1
	if scored <= 0 {
		return math.Inf(1)
	}
	return math.Exp(-m.LogLikelihood(tokens) / float64(scored))
}
