package utils

import "golang.org/x/exp/constraints"

// FindIndex returns the position of item in slice, or -1 if absent
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Sum adds up every element of values
func Sum[T constraints.Integer | constraints.Float](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}
