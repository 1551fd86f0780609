package storage

import (
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-patterns/model"
)

// LoadBoard reads a text grid file into a board with cell size 1
func LoadBoard(filename string) (*model.Board, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] failed to open file: %+v", filename)
	}
	defer f.Close()

	grid, err := ParseGrid(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBoard] failed to parse file: %+v", filename)
	}
	return model.NewBoardFromGrid(grid)
}

// SaveBoard writes the board's current liveness to filename, replacing it
func SaveBoard(filename string, board *model.Board) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "[SaveBoard] failed to create file: %+v", filename)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "[SaveBoard] failed to close file: %+v", filename)
		}
	}()

	if err = WriteGrid(f, board.Snapshot(nil)); err != nil {
		return errors.Wrapf(err, "[SaveBoard] failed to write file: %+v", filename)
	}
	return nil
}
