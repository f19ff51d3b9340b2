package minpath

import (
	"fmt"
	"strings"
)

// Path is the forward sequence of moves from (0,0). A minimal path of an
// n×n matrix holds n-1 Down and n-1 Right moves.
type Path []Direction

// String joins the long direction names with ", ".
func (p Path) String() string {
	return p.Join(", ")
}

// Join joins the long direction names ("Down", "Right") with sep.
func (p Path) Join(sep string) string {
	names := make([]string, len(p))
	for i, d := range p {
		names[i] = d.String()
	}

	return strings.Join(names, sep)
}

// JoinSymbols joins the one-letter forms ('D', 'R') with sep.
func (p Path) JoinSymbols(sep string) string {
	var b strings.Builder
	for i, d := range p {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteRune(d.Symbol())
	}

	return b.String()
}

// Counts returns the number of Down and Right moves.
func (p Path) Counts() (downs, rights int) {
	for _, d := range p {
		if d == Right {
			rights++
		} else {
			downs++
		}
	}

	return downs, rights
}

// Cells replays p from (0,0) and returns every visited coordinate,
// start included, so len(Cells()) == len(p)+1.
func (p Path) Cells() []Coord {
	cells := make([]Coord, 0, len(p)+1)
	at := Coord{}
	cells = append(cells, at)
	for _, d := range p {
		if d == Right {
			at.Col++
		} else {
			at.Row++
		}
		cells = append(cells, at)
	}

	return cells
}

// Sum replays p over m and returns the total of every visited cell.
// Returns ErrPathOutOfGrid if a move leaves m.
func (p Path) Sum(m Matrix) (int, error) {
	total := 0
	for _, at := range p.Cells() {
		if at.Row >= len(m) || at.Col >= len(m[at.Row]) {
			return 0, fmt.Errorf("cell (%d,%d): %w", at.Row, at.Col, ErrPathOutOfGrid)
		}
		total += m[at.Row][at.Col]
	}

	return total, nil
}
