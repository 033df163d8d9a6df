package game

import "errors"

var (
	// ErrInvalidSymbol is returned for a label outside the five-symbol domain.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrInvalidWeightVector is returned for weights of the wrong length, with a
	// negative or non-finite entry, or summing to zero.
	ErrInvalidWeightVector = errors.New("invalid weight vector")
	// ErrDegenerateBelief is returned when a belief update would divide by zero.
	ErrDegenerateBelief = errors.New("degenerate belief")
)
