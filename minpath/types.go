// Package minpath defines the grid, move and option types used by the solver.
package minpath

import (
	"fmt"
	"strings"
)

// Matrix is a square grid of weights indexed as Matrix[row][col].
// The solver never mutates it.
type Matrix = [][]int

// Coord addresses a single cell of the grid.
type Coord struct {
	Row, Col int
}

// Direction is one forward move of a monotone path.
type Direction uint8

const (
	// Down moves from (r,c) to (r+1,c).
	Down Direction = iota
	// Right moves from (r,c) to (r,c+1).
	Right
)

// String returns "Down" or "Right".
func (d Direction) String() string {
	switch d {
	case Down:
		return "Down"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Symbol returns the one-letter form: 'D' or 'R'.
func (d Direction) Symbol() rune {
	if d == Right {
		return 'R'
	}

	return 'D'
}

// Predecessor tags which neighbour contributed the minimum cost of a cell.
// The value at (0,0) is unused.
type Predecessor uint8

const (
	// FromAbove means the cheapest way in came from (r-1,c).
	FromAbove Predecessor = iota
	// FromLeft means the cheapest way in came from (r,c-1).
	FromLeft
)

// String returns "above" or "left".
func (p Predecessor) String() string {
	if p == FromLeft {
		return "left"
	}

	return "above"
}

// MemoryMode controls how the solver stores its cost table.
//
//   - FullTables — keep the n×n cost and predecessor tables.
//     Supports path reconstruction. Memory: O(n²).
//
//   - SingleRow — keep a single cost row that is overwritten in place.
//     Only the sum is available. Memory: O(n).
type MemoryMode int

const (
	// FullTables stores both tables and supports ReturnPath.
	FullTables MemoryMode = iota

	// SingleRow keeps one rolling cost row, no path recovery.
	SingleRow
)

// Sweep selects the cell visitation order. Any order that computes (r,c)
// after (r-1,c) and (r,c-1) is valid, so the choice never changes results.
type Sweep int

const (
	// RowMajor visits rows top to bottom, each left to right.
	RowMajor Sweep = iota

	// AntiDiagonal visits the diagonals r+c = 1..2n-2, each from bottom-left
	// to top-right.
	AntiDiagonal
)

// String returns the lower-case name used by ParseSweep.
func (s Sweep) String() string {
	switch s {
	case RowMajor:
		return "rowmajor"
	case AntiDiagonal:
		return "antidiagonal"
	default:
		return fmt.Sprintf("Sweep(%d)", int(s))
	}
}

// ParseSweep maps a case-insensitive name ("rowmajor", "antidiagonal",
// "diagonal") to a Sweep. An empty name yields RowMajor.
func ParseSweep(name string) (Sweep, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rowmajor", "row-major", "rows":
		return RowMajor, nil
	case "antidiagonal", "anti-diagonal", "diagonal":
		return AntiDiagonal, nil
	default:
		return RowMajor, fmt.Errorf("unknown sweep %q: %w", name, ErrBadOptions)
	}
}

// Options configures MinPath.
//
// Fields:
//   - ReturnPath — reconstruct the minimal path. Requires MemoryMode=FullTables.
//   - MemoryMode — FullTables or SingleRow storage.
//   - Sweep      — RowMajor or AntiDiagonal fill order (FullTables only;
//     SingleRow always sweeps row by row).
//
// Example:
//
//	opts := minpath.DefaultOptions()
//	opts.Sweep = minpath.AntiDiagonal
//	sum, path, err := minpath.MinPath(m, &opts)
type Options struct {
	ReturnPath bool
	MemoryMode MemoryMode
	Sweep      Sweep
}

// DefaultOptions returns ReturnPath=true, MemoryMode=FullTables, Sweep=RowMajor.
func DefaultOptions() Options {
	return Options{
		ReturnPath: true,
		MemoryMode: FullTables,
		Sweep:      RowMajor,
	}
}

// validate checks enum ranges and the ReturnPath/MemoryMode combination.
func (o Options) validate() error {
	switch o.MemoryMode {
	case FullTables, SingleRow:
	default:
		return fmt.Errorf("memory mode %d: %w", o.MemoryMode, ErrBadOptions)
	}
	switch o.Sweep {
	case RowMajor, AntiDiagonal:
	default:
		return fmt.Errorf("sweep %d: %w", o.Sweep, ErrBadOptions)
	}
	if o.ReturnPath && o.MemoryMode != FullTables {
		return ErrPathNeedsTables
	}

	return nil
}
