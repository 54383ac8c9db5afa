// Package ngram implements a hierarchical, absolute-discounting n-gram
// language model.
//
// A model of order N owns one finished probability table per order 0..N.
// Training counts every order's n-gram frequencies over the same token
// sequence, derives one discount constant per order from count-of-counts
// statistics, and folds each order's freed probability mass into the next
// lower order's estimates. Order 0 is the degenerate base case: an empty
// table that assigns probability zero to everything.
//
// Once trained, a model is immutable and safe for concurrent reads. It
// supports four consumer operations:
//   - conditional probability lookup (Prob, ProbToken)
//   - sequence scoring (LogLikelihood, Perplexity)
//   - reproducible random generation (Generate)
//   - direct access to any order's table (KthDistribution)
package ngram
