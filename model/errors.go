package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidBoardFormat matches any *InvalidBoardFormatError
	ErrInvalidBoardFormat = errors.New("invalid board format")
	// ErrInvalidBoardDimensions matches any *InvalidBoardDimensionsError
	ErrInvalidBoardDimensions = errors.New("invalid board dimensions")
)

// InvalidBoardFormatError reports a malformed text grid. Line and Column are 1-based,
// Column is 0 when the whole line is at fault.
type InvalidBoardFormatError struct {
	Line   int
	Column int
	Reason string
}

func (e *InvalidBoardFormatError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("%v: line %d, column %d: %s", ErrInvalidBoardFormat, e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("%v: line %d: %s", ErrInvalidBoardFormat, e.Line, e.Reason)
}

// Is lets errors.Is match the sentinel
func (e *InvalidBoardFormatError) Is(target error) bool {
	return target == ErrInvalidBoardFormat
}

// InvalidBoardDimensionsError reports a board that cannot be laid out as a grid of cells
type InvalidBoardDimensionsError struct {
	Width    int
	Height   int
	CellSize int
}

func (e *InvalidBoardDimensionsError) Error() string {
	return fmt.Sprintf("%v: %dx%d with cell size %d", ErrInvalidBoardDimensions, e.Width, e.Height, e.CellSize)
}

// Is lets errors.Is match the sentinel
func (e *InvalidBoardDimensionsError) Is(target error) bool {
	return target == ErrInvalidBoardDimensions
}

func validateDimensions(width, height, cellSize int) error {
	if width <= 0 || height <= 0 || cellSize <= 0 || width%cellSize != 0 || height%cellSize != 0 {
		return &InvalidBoardDimensionsError{Width: width, Height: height, CellSize: cellSize}
	}
	return nil
}
