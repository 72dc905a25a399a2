// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

/*
Package slice complements the standard [slices] package by providing functional
programming utilities (Map, Sum) leveraging generics.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Sum accumulates a numeric projection of each element.
func Sum[T any, N int64 | float64](input []T, value func(T) N) N {
	var total N
	for _, v := range input {
		total += value(v)
	}
	return total
}
