package model

import "errors"

var (
	// ErrInvalidInput is returned when a grid, layout or setting violates a precondition.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRange is returned for cell coordinates outside the grid.
	ErrOutOfRange = errors.New("cell out of range")

	// ErrInvalidTemplate is returned when a template file cannot be interpreted.
	ErrInvalidTemplate = errors.New("invalid template")
)
