package index

import (
	"errors"
	"fmt"

	"github.com/hupe1980/graphgeo/model"
)

// ErrInvariantViolation is matched by every error returned from Validate.
// It signals a defect in the index itself, never a caller mistake.
var ErrInvariantViolation = errors.New("geometry index invariant violated")

// InvariantViolationError describes one broken invariant.
type InvariantViolationError struct {
	Key    model.Key
	Reason string
}

func (e *InvariantViolationError) Error() string {
	if e.Key == (model.Key{}) {
		return fmt.Sprintf("%s: %s", ErrInvariantViolation, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvariantViolation, e.Key, e.Reason)
}

func (e *InvariantViolationError) Unwrap() error { return ErrInvariantViolation }
