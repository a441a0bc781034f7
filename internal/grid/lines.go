package grid

// Line is a run of cells, in reading order, along a row, a column or a
// diagonal.
type Line []Coord

// Lines returns every straight run of span cells on a side x side board.
// For each index i it lists the windows along row i then column i; after
// those come the down-right and down-left diagonals. A 4x4 board with
// span 3 has 24 of them.
func Lines(side, span int) ([]Line, error) {
	if span < 1 || span > side {
		return nil, ErrBadSpan
	}
	starts := side - span + 1
	lines := []Line{}
	for i := 0; i < side; i++ {
		for s := 0; s < starts; s++ {
			lines = append(lines, walk(Coord{i, s}, 0, 1, span))
		}
		for s := 0; s < starts; s++ {
			lines = append(lines, walk(Coord{s, i}, 1, 0, span))
		}
	}
	for i := 0; i < starts; i++ {
		for j := 0; j < starts; j++ {
			lines = append(lines, walk(Coord{i, j}, 1, 1, span))
			lines = append(lines, walk(Coord{i, side - 1 - j}, 1, -1, span))
		}
	}
	return lines, nil
}

// MustLines is Lines for constant arguments.
func MustLines(side, span int) []Line {
	lines, err := Lines(side, span)
	if err != nil {
		panic(err)
	}
	return lines
}

func walk(from Coord, dr, dc, span int) Line {
	line := make(Line, span)
	for k := range line {
		line[k] = Coord{from.Row + k*dr, from.Col + k*dc}
	}
	return line
}

// Valid reports whether the line sits on a side x side board and its cells
// are distinct neighbours along one straight direction.
func (l Line) Valid(side int) bool {
	if len(l) == 0 {
		return false
	}
	for _, c := range l {
		if c.Row < 0 || c.Row >= side || c.Col < 0 || c.Col >= side {
			return false
		}
	}
	if len(l) == 1 {
		return true
	}
	dr, dc := l[1].Row-l[0].Row, l[1].Col-l[0].Col
	if dr < -1 || dr > 1 || dc < -1 || dc > 1 || (dr == 0 && dc == 0) {
		return false
	}
	for k := 2; k < len(l); k++ {
		if l[k].Row-l[k-1].Row != dr || l[k].Col-l[k-1].Col != dc {
			return false
		}
	}
	return true
}
