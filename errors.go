package main

import "errors"

var (
	// ErrEmptyInput is returned when there is no ciphertext to work on.
	ErrEmptyInput = errors.New("empty ciphertext")

	// ErrInvalidIterations is returned for a negative search length.
	ErrInvalidIterations = errors.New("iteration count must not be negative")

	ErrInvalidKey    = errors.New("invalid key map")
	ErrInvalidConfig = errors.New("invalid configuration")
)
