package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid would have zero area or a
	// replacement buffer does not match the grid shape
	ErrInvalidDimensions = errors.New("invalid grid dimensions")

	// ErrOutOfBounds is returned on access outside [0,width)x[0,height)
	ErrOutOfBounds = errors.New("cell out of bounds")

	// ErrUnknownSeed is returned when a seed pattern name is not recognized
	ErrUnknownSeed = errors.New("unknown seed pattern")
)
