package storage

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-patterns/model"
)

const (
	aliveChar = '1'
	deadChar  = '0'
)

/*
ParseGrid reads a text grid: one row per line, '1' alive and '0' dead.

All rows must have the length of the first. A trailing '\r' is dropped and
blank lines after the last row are ignored; a blank line between rows is a
format error.
*/
func ParseGrid(r io.Reader) (*model.Grid, error) {
	var (
		rows    [][]bool
		blankAt int
		line    int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if text == "" {
			if blankAt == 0 {
				blankAt = line
			}
			continue
		}
		if blankAt != 0 {
			return nil, &model.InvalidBoardFormatError{Line: blankAt, Reason: "blank line inside grid"}
		}

		row := make([]bool, len(text))
		for i := 0; i < len(text); i++ {
			switch text[i] {
			case aliveChar:
				row[i] = true
			case deadChar:
			default:
				return nil, &model.InvalidBoardFormatError{
					Line:   line,
					Column: i + 1,
					Reason: fmt.Sprintf("unexpected character %q", text[i]),
				}
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, &model.InvalidBoardFormatError{
				Line:   line,
				Reason: fmt.Sprintf("row has %d cells, expected %d", len(row), len(rows[0])),
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParseGrid] failed to read grid")
	}
	if len(rows) == 0 {
		return nil, &model.InvalidBoardFormatError{Line: 1, Reason: "grid is empty"}
	}

	return model.NewGridFromRows(rows)
}

// WriteGrid writes g row-major in the format ParseGrid reads
func WriteGrid(w io.Writer, g *model.Grid) error {
	bw := bufio.NewWriter(w)
	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			c := byte(deadChar)
			if g.Get(x, y) {
				c = aliveChar
			}
			if err := bw.WriteByte(c); err != nil {
				return errors.Wrap(err, "[WriteGrid] failed to write cell")
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "[WriteGrid] failed to write row")
		}
	}
	return errors.Wrap(bw.Flush(), "[WriteGrid] failed to flush")
}
