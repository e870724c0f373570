package formkit

import (
	"errors"
	"fmt"
)

// Decode and intake errors.
var (
	ErrNotMultipart    = errors.New("content type is not multipart/form-data")
	ErrMissingBoundary = errors.New("no boundary parameter in content type")
	ErrInvalidBoundary = errors.New("invalid boundary")
	ErrMalformedPart   = errors.New("part header has no field name")
	ErrTruncatedBody   = errors.New("body truncated before closing boundary")
	ErrBodyTooLarge    = errors.New("body exceeds maximum size")
	ErrTooManyParts    = errors.New("part count exceeds maximum")
	ErrNoFilePart      = errors.New("no file part found")
)

// DecodeError records a strict-mode decode failure and the byte offset at
// which it was detected.
type DecodeError struct {
	Offset int
	Err    error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode multipart at offset %d: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsTruncated reports whether an error indicates a body cut off before its
// closing boundary.
func IsTruncated(err error) bool {
	return errors.Is(err, ErrTruncatedBody)
}

// IsMalformed reports whether an error indicates a part whose headers carried
// no field name.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedPart)
}
