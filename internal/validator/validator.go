// Package validator rejects malformed tiling requests before the
// search core ever runs.
package validator

import (
	"errors"

	"svw.info/snaketile/internal/domain"
	"svw.info/snaketile/internal/shape"
)

// Snake length limits accepted by the API.
const (
	MinSnakeLen = 1
	MaxSnakeLen = 11
)

// Sentinel errors for request rejection.
var (
	// ErrEmptyShape indicates the shape text contains no marked cell.
	ErrEmptyShape = errors.New("validator: shape contains no marked cell")
	// ErrLenRange indicates a snake length outside [1, 11].
	ErrLenRange = errors.New("validator: snake lengths must be between 1 and 11")
	// ErrLenOrder indicates minLen exceeds maxLen.
	ErrLenOrder = errors.New("validator: minLen must not exceed maxLen")
)

type RequestValidator struct{}

func New() *RequestValidator { return &RequestValidator{} }

// Validate checks the request's parameter ranges and that the shape has
// at least one tile. Cheap checks run before the shape is parsed.
func (v *RequestValidator) Validate(req domain.TilingRequest) error {
	if req.MinLen < MinSnakeLen || req.MinLen > MaxSnakeLen ||
		req.MaxLen < MinSnakeLen || req.MaxLen > MaxSnakeLen {
		return ErrLenRange
	}
	if req.MinLen > req.MaxLen {
		return ErrLenOrder
	}
	if shape.Parse(req.Shape).Size() == 0 {
		return ErrEmptyShape
	}
	return nil
}

// IsRejection reports whether err belongs to the input-rejection class,
// as opposed to search exhaustion or an internal fault.
func IsRejection(err error) bool {
	return errors.Is(err, ErrEmptyShape) ||
		errors.Is(err, ErrLenRange) ||
		errors.Is(err, ErrLenOrder)
}
