package speaker

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned for a record whose vector length
// differs from the dimension fixed by the first accepted record.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// Validator fixes the embedding dimension on the first record it accepts
// and rejects every later record of a different length.
type Validator struct {
	dim int
}

// Accept checks rec against the fixed dimension, fixing it if unset.
func (v *Validator) Accept(rec Record) error {
	n := rec.Vector.Dim()
	if n == 0 {
		return fmt.Errorf("speaker %q: empty embedding", rec.Name)
	}
	if v.dim == 0 {
		v.dim = n
		return nil
	}
	if n != v.dim {
		return &MismatchError{Expected: v.dim, Actual: n}
	}
	return nil
}

// Dimension returns the fixed dimension, or 0 before the first Accept.
func (v *Validator) Dimension() int { return v.dim }

// MismatchError carries the expected and actual vector lengths.
type MismatchError struct {
	Expected int
	Actual   int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: expected %d, got %d", ErrDimensionMismatch, e.Expected, e.Actual)
}

func (e *MismatchError) Unwrap() error { return ErrDimensionMismatch }
