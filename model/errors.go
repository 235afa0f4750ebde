package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a width or height below 1 is requested.
	ErrInvalidDimension = errors.New("dimension must be at least 1")
	// ErrUnknownPolicy is returned for construction policy names New does not know.
	ErrUnknownPolicy = errors.New("unknown construction policy")
	// ErrUnknownPattern is returned by PatternByName for unregistered names.
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrMissingDecisionSource is returned when the random policy has nothing to draw from.
	ErrMissingDecisionSource = errors.New("random policy requires a decision source")
)

func validateDimensions(op string, width, height int) error {
	if width < 1 {
		return errors.Wrapf(ErrInvalidDimension, "[%s] invalid width: %+v", op, width)
	}
	if height < 1 {
		return errors.Wrapf(ErrInvalidDimension, "[%s] invalid height: %+v", op, height)
	}
	return nil
}
