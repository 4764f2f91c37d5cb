package calculations

import "errors"

var (
	ErrNotFound     = errors.New("calculation not found")
	ErrInvalidInput = errors.New("invalid input")
)
