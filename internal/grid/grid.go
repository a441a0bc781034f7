// Package grid lays a flat string of tiles out as a square board and knows
// which runs of cells on that board form straight lines.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotSquare = errors.New("grid: tile count is not a perfect square")
	ErrBadSpan   = errors.New("grid: span must be between 1 and the side length")
)

// Coord is a 0-indexed (row, column) position.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Grid is a read-only square view over one arrangement of tiles.
type Grid struct {
	rows [][]rune
	side int
}

// SideFor returns the side of a square board holding n tiles.
func SideFor(n int) (int, error) {
	side := 0
	for side*side < n {
		side++
	}
	if side*side != n {
		return 0, fmt.Errorf("%w: %d", ErrNotSquare, n)
	}
	return side, nil
}

// New splits flat into side rows of side tiles each.
func New(flat string, side int) (Grid, error) {
	tiles := []rune(flat)
	if len(tiles) != side*side {
		return Grid{}, fmt.Errorf("%w: %d tiles for side %d", ErrNotSquare, len(tiles), side)
	}
	return FromTiles(tiles, side), nil
}

// FromTiles is New without the length check; tiles must hold side*side
// runes. The grid aliases tiles rather than copying it.
func FromTiles(tiles []rune, side int) Grid {
	rows := make([][]rune, side)
	for r := range rows {
		rows[r] = tiles[r*side : (r+1)*side]
	}
	return Grid{rows: rows, side: side}
}

func (g Grid) Side() int { return g.side }

func (g Grid) At(c Coord) rune {
	return g.rows[c.Row][c.Col]
}

// Word reads the tiles under line, in line order.
func (g Grid) Word(line Line) string {
	var sb strings.Builder
	for _, c := range line {
		sb.WriteRune(g.At(c))
	}
	return sb.String()
}

// Rows returns the board one row per string.
func (g Grid) Rows() []string {
	out := make([]string, len(g.rows))
	for i, r := range g.rows {
		out[i] = string(r)
	}
	return out
}

func (g Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
