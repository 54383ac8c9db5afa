package ngram

// countNgrams slides a window of size order across tokens and accumulates
// (context, token) counts, where the context is the first order-1 tokens of
// the window and the target is the last. A sequence shorter than the window
// yields an empty map; that is valid, not an error.
//
// Each model level counts independently with its own window width, so this
// runs once per order over the same underlying sequence.
func countNgrams(tokens []string, order int) FreqMap {
	freq := make(FreqMap)
	if order < 1 || len(tokens) < order {
		return freq
	}
	for i := 0; i+order <= len(tokens); i++ {
		window := tokens[i : i+order]
		key := packContext(window[:order-1])
		counts := freq[key]
		if counts == nil {
			counts = make(map[string]uint64)
			freq[key] = counts
		}
		counts[window[order-1]]++
	}
	return freq
}
