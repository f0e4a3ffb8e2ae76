package collage

import (
	"errors"
	"fmt"
)

// Sentinel errors for the collage package.
var (
	// ErrInvalidParameter is returned for parameters that cannot be clamped
	// into range, such as a non-positive canvas size.
	ErrInvalidParameter = errors.New("collage: invalid parameter")

	// ErrUnknownLayout is returned when a layout kind is not recognized.
	ErrUnknownLayout = errors.New("collage: unknown layout")

	// ErrEmptyGrid is returned when an assignment is requested on a grid
	// with no cells. An empty grid is a valid result of generation; callers
	// should surface it as "grid too small".
	ErrEmptyGrid = errors.New("collage: grid has no cells")

	// ErrCellOutOfRange is returned when a cell index does not exist in the
	// current grid.
	ErrCellOutOfRange = errors.New("collage: cell index out of range")

	// ErrImageLoad is returned when a photo fails to decode or has zero
	// width or height. The registry is left unchanged; retrying is safe.
	ErrImageLoad = errors.New("collage: image failed to load")

	// ErrStaleAssignment is returned when an assignment completes after a
	// newer request for the same cell, or after the grid was regenerated.
	// The result is dropped.
	ErrStaleAssignment = errors.New("collage: stale assignment")
)

// ParameterError describes a rejected parameter.
type ParameterError struct {
	Name  string
	Value any
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("collage: invalid %s: %v", e.Name, e.Value)
}

// Unwrap makes ParameterError match ErrInvalidParameter.
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
