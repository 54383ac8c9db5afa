package ngram

import "errors"

// Common errors.
var (
	// ErrEmptyModel is returned by Generate when the model's top-level table
	// has no observed contexts, e.g. after training on a sequence shorter
	// than the model order.
	ErrEmptyModel = errors.New("model has no observed contexts")

	// ErrInvalidOrder is returned by Train for orders below 1.
	ErrInvalidOrder = errors.New("model order must be at least 1")
)
