package jukebox

import "errors"

var (
	// ErrInvalidConfig is returned when the configuration cannot be used
	ErrInvalidConfig = errors.New("invalid config")
	// ErrCancelled is returned when the operator declines to answer a prompt
	ErrCancelled = errors.New("cancelled by operator")
	// ErrTemplateMissing is returned when the reference template cannot be located
	ErrTemplateMissing = errors.New("reference template missing")
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
