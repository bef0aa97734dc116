package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidIdentifier = errors.New("invalid identifier format")

	ErrInvalidTimestamp = errors.New("invalid timestamp format")
)
