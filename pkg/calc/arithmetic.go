// Package calc provides elementary arithmetic and text operations.
package calc

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an argument violates a precondition.
var ErrInvalidArgument = errors.New("invalid argument")

// Add returns the sum of two integers.
func Add(a, b int) int {
	return a + b
}

// Sub returns the difference of two integers.
func Sub(a, b int) int {
	return a - b
}

// Mul returns the product of two integers.
func Mul(a, b int) int {
	return a * b
}

// Div returns the quotient of a and b.
// It fails with ErrInvalidArgument when b is zero.
func Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: b must not be 0", ErrInvalidArgument)
	}

	return a / b, nil
}

// Max returns the greater of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// SumAll returns the sum of all elements of nums. An empty slice sums to 0.
func SumAll(nums []int) int {
	s := 0
	for _, n := range nums {
		s += n
	}

	return s
}
