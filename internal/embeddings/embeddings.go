package embeddings

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmpty is returned when a vector field holds no values.
	ErrEmpty = errors.New("embedding is empty")
	// ErrNotFinite is returned for NaN or infinite components, which have
	// no C float literal.
	ErrNotFinite = errors.New("embedding value is not finite")
)

// Vector is an ordered sequence of embedding components.
type Vector []float64

// Dim returns the number of components.
func (v Vector) Dim() int { return len(v) }

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Norm(v, 2)
}

// Parse converts the bracketed textual form "[ 0.012 -0.045 ... ]" into a
// Vector. Brackets are optional and any run of whitespace separates tokens.
// A token that is not a finite number fails the whole field.
func Parse(s string) (Vector, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "[")
	s = strings.TrimRight(s, "]")

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, ErrEmpty
	}

	vec := make(Vector, len(fields))
	for i, f := range fields {
		val, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("token %d %q: %w", i, f, err)
		}
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, fmt.Errorf("token %d %q: %w", i, f, ErrNotFinite)
		}
		vec[i] = val
	}
	return vec, nil
}
