package ngram

// estimateDiscount derives the absolute-discounting constant for one order:
//
//	D = n1 / (n1 + 2*n2)
//
// where n1 and n2 are the number of distinct (context, token) pairs observed
// exactly once and exactly twice. The same D applies to every context of the
// order. When no singleton or doubleton n-grams exist the estimate defaults
// to 0, which reduces the smoothed distribution to plain relative frequency.
func estimateDiscount(freq FreqMap) float64 {
	var n1, n2 uint64
	for _, counts := range freq {
		for _, c := range counts {
			switch c {
			case 1:
				n1++
			case 2:
				n2++
			}
		}
	}
	if n1+n2 == 0 {
		return 0
	}
	return float64(n1) / float64(n1+2*n2)
}
