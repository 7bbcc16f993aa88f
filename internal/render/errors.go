package render

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to the presentation layer.
var (
	ErrEmptyText      = errors.New("text is required")
	ErrInvalidPalette = errors.New("palette needs at least one color stop")
	ErrInvalidSize    = errors.New("image dimensions must be positive")
	ErrUnknownPalette = errors.New("unknown palette")
	ErrEncode         = errors.New("text cannot be encoded as a QR code")
)

// EncodeError wraps a failure from the QR encoder.
type EncodeError struct {
	Text string
	Err  error
}

func (e *EncodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("encoding %d bytes: %v", len(e.Text), e.Err)
}

func (e *EncodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is(err, ErrEncode) match any EncodeError.
func (e *EncodeError) Is(target error) bool {
	return target == ErrEncode
}
