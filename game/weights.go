package game

import (
	"fmt"
	"math"
	"rpsls/meta"
	"rpsls/utils"
)

// WeightVector holds one non-negative weight per symbol, index-aligned with
// Symbols(). It is an array so that assignment copies it; updates always
// produce a new vector.
type WeightVector [meta.NUM_SYMBOLS]float64

// NewWeightVector validates ws and packs it into a WeightVector.
func NewWeightVector(ws ...float64) (WeightVector, error) {
	var w WeightVector
	if len(ws) != meta.NUM_SYMBOLS {
		return w, fmt.Errorf("%w: want %d weights, got %d", ErrInvalidWeightVector, meta.NUM_SYMBOLS, len(ws))
	}
	copy(w[:], ws)
	if err := w.Validate(); err != nil {
		return WeightVector{}, err
	}
	return w, nil
}

// MustWeightVector is NewWeightVector for fixed tables; it panics on bad input.
func MustWeightVector(ws ...float64) WeightVector {
	w, err := NewWeightVector(ws...)
	if err != nil {
		panic(err)
	}
	return w
}

// Uniform returns the vector with equal weight on every symbol.
func Uniform() WeightVector {
	var w WeightVector
	for i := range w {
		w[i] = 1.0 / meta.NUM_SYMBOLS
	}
	return w
}

// Validate checks that every entry is finite and non-negative and that the
// entries do not all equal zero.
func (w WeightVector) Validate() error {
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: weight %d is not finite", ErrInvalidWeightVector, i)
		}
		if v < 0 {
			return fmt.Errorf("%w: weight %d is negative (%v)", ErrInvalidWeightVector, i, v)
		}
	}
	if w.Sum() == 0 {
		return fmt.Errorf("%w: all weights are zero", ErrInvalidWeightVector)
	}
	return nil
}

func (w WeightVector) Sum() float64 {
	return utils.Sum(w[:])
}

// Normalize scales w so that it sums to 1.
func (w WeightVector) Normalize() (WeightVector, error) {
	if err := w.Validate(); err != nil {
		return WeightVector{}, err
	}
	total := w.Sum()
	var n WeightVector
	for i, v := range w {
		n[i] = v / total
	}
	return n, nil
}
