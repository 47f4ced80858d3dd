package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParameter reports a parameter that is NaN, infinite or zero
	// where zero has no physical meaning.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrStateUnavailable reports an operation that needs an active run or
	// an initialized board.
	ErrStateUnavailable = errors.New("state unavailable")
)

// ParamError names the offending parameter. It matches ErrInvalidParameter
// under errors.Is.
type ParamError struct {
	Key    string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidParameter, e.Key, e.Reason)
}

func (e *ParamError) Unwrap() error { return ErrInvalidParameter }

// CheckFinite rejects NaN and infinities.
func CheckFinite(key string, v float64) error {
	if math.IsNaN(v) {
		return &ParamError{Key: key, Reason: "not a number"}
	}
	if math.IsInf(v, 0) {
		return &ParamError{Key: key, Reason: "infinite"}
	}
	return nil
}

// CheckPositive rejects NaN, infinities, zero and negative values.
func CheckPositive(key string, v float64) error {
	if err := CheckFinite(key, v); err != nil {
		return err
	}
	if v == 0 {
		return &ParamError{Key: key, Reason: "must not be zero"}
	}
	if v < 0 {
		return &ParamError{Key: key, Reason: "must be positive"}
	}
	return nil
}
