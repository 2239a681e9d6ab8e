package numerics

import (
	"errors"
	"fmt"
)

var (
	// ErrNonconvergence is matched by every *NonconvergenceError.
	ErrNonconvergence = errors.New("algorithm failed to converge")

	// ErrDomain is matched by every *DomainError.
	ErrDomain = errors.New("argument out of range")

	// ErrDimensionMismatch is matched by every *DimensionMismatchError.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// NonconvergenceError reports that an iterative method did not settle
// within Limit iterations.
type NonconvergenceError struct {
	Limit int
}

func (e *NonconvergenceError) Error() string {
	return fmt.Sprintf("%s within %d iterations", ErrNonconvergence.Error(), e.Limit)
}

// Is reports whether target is ErrNonconvergence.
func (e *NonconvergenceError) Is(target error) bool {
	return target == ErrNonconvergence
}

// DomainError reports an argument outside the domain of a function.
type DomainError struct {
	Arg   string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s = %v", ErrDomain.Error(), e.Arg, e.Value)
}

// Is reports whether target is ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// DimensionMismatchError reports objects of incompatible dimensions.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: want %d, got %d", ErrDimensionMismatch.Error(), e.Want, e.Got)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
