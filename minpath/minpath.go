package minpath

import "fmt"

// MinPath — minimal Down/Right path sum
//
// Description:
//
//	Finds the cheapest monotone walk from (0,0) to (n-1,n-1) of a square
//	matrix, counting every visited cell, and optionally reconstructs it.
//
// Algorithm Outline (FullTables):
//  1. Validate that m is non-empty and n×n.
//  2. C[0][0] = M[0][0].
//  3. For every other cell in sweep order:
//     top row:     C[0][c] = M[0][c] + C[0][c-1],  P = FromLeft
//     left column: C[r][0] = M[r][0] + C[r-1][0],  P = FromAbove
//     interior:    above = C[r-1][c], left = C[r][c-1]
//     if left < above { P = FromLeft } else { P = FromAbove }
//     C[r][c] = M[r][c] + min(above, left)
//  4. sum = C[n-1][n-1].
//  5. If ReturnPath, walk P back from (n-1,n-1) to (0,0) emitting Right for
//     FromLeft and Down for FromAbove, then reverse.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n²) (FullTables) or O(n) (SingleRow)
//
// Errors:
//   - ErrInvalidInput    — empty or non-square matrix.
//   - ErrPathNeedsTables — ReturnPath=true with SingleRow.
//   - ErrBadOptions      — unknown MemoryMode or Sweep.
func MinPath(m Matrix, opts *Options) (sum int, path Path, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err = o.validate(); err != nil {
		return 0, nil, err
	}
	n, err := Validate(m)
	if err != nil {
		return 0, nil, err
	}

	if o.MemoryMode == SingleRow {
		return rollingSum(m, n), nil, nil
	}

	cost, pred := fillTables(m, n, o.Sweep)
	sum = cost[n-1][n-1]
	if o.ReturnPath {
		path = backtrack(pred, n)
	}

	return sum, path, nil
}

// Solve returns the minimal path sum of m and one minimal path, using full
// tables and a row-major sweep. Equal costs prefer the cell above, so the
// path is deterministic. A 1×1 matrix yields its only value and an empty path.
func Solve(m Matrix) (int, Path, error) {
	opts := DefaultOptions()

	return MinPath(m, &opts)
}

// Tables fills and returns the cost and predecessor tables for m.
// cost[r][c] is the minimal sum reaching (r,c); pred[0][0] is unused.
func Tables(m Matrix, sweep Sweep) (cost [][]int, pred [][]Predecessor, err error) {
	if sweep != RowMajor && sweep != AntiDiagonal {
		return nil, nil, fmt.Errorf("sweep %d: %w", sweep, ErrBadOptions)
	}
	n, err := Validate(m)
	if err != nil {
		return nil, nil, err
	}
	cost, pred = fillTables(m, n, sweep)

	return cost, pred, nil
}

// Validate reports the side length n of m, or ErrInvalidInput when m has no
// rows or any row length differs from the row count.
func Validate(m Matrix) (int, error) {
	n := len(m)
	if n == 0 {
		return 0, fmt.Errorf("no rows: %w", ErrInvalidInput)
	}
	for r, row := range m {
		if len(row) != n {
			return 0, fmt.Errorf("row %d has %d values, want %d: %w", r, len(row), n, ErrInvalidInput)
		}
	}

	return n, nil
}

// fillTables allocates both n×n tables and fills them in the given order.
func fillTables(m Matrix, n int, sweep Sweep) ([][]int, [][]Predecessor) {
	cost := make([][]int, n)
	pred := make([][]Predecessor, n)
	for r := 0; r < n; r++ {
		cost[r] = make([]int, n)
		pred[r] = make([]Predecessor, n)
	}
	cost[0][0] = m[0][0]

	switch sweep {
	case AntiDiagonal:
		// Diagonal d holds the cells with r+c == d; walk each from
		// bottom-left to top-right.
		for d := 1; d <= 2*(n-1); d++ {
			r := min(n-1, d)
			c := d - r
			for r >= 0 && c < n {
				relax(m, cost, pred, r, c)
				r--
				c++
			}
		}
	default:
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				if r == 0 && c == 0 {
					continue
				}
				relax(m, cost, pred, r, c)
			}
		}
	}

	return cost, pred
}

// relax sets cost[r][c] and pred[r][c] from the already computed up/left
// neighbours. (r,c) must not be (0,0).
func relax(m Matrix, cost [][]int, pred [][]Predecessor, r, c int) {
	switch {
	case r == 0:
		cost[r][c] = m[r][c] + cost[r][c-1]
		pred[r][c] = FromLeft
	case c == 0:
		cost[r][c] = m[r][c] + cost[r-1][c]
		pred[r][c] = FromAbove
	default:
		above, left := cost[r-1][c], cost[r][c-1]
		// Ties go to above.
		if left < above {
			cost[r][c] = m[r][c] + left
			pred[r][c] = FromLeft
		} else {
			cost[r][c] = m[r][c] + above
			pred[r][c] = FromAbove
		}
	}
}

// rollingSum computes only C[n-1][n-1] with a single reusable row.
// Before row r is processed, row[c] still holds C[r-1][c] (the "above" value).
func rollingSum(m Matrix, n int) int {
	row := make([]int, n)
	row[0] = m[0][0]
	for c := 1; c < n; c++ {
		row[c] = m[0][c] + row[c-1]
	}
	for r := 1; r < n; r++ {
		row[0] += m[r][0]
		for c := 1; c < n; c++ {
			row[c] = m[r][c] + min(row[c], row[c-1])
		}
	}

	return row[n-1]
}

// backtrack walks pred from (n-1,n-1) to (0,0) and returns the forward path.
// The result has exactly 2(n-1) moves and is never nil.
func backtrack(pred [][]Predecessor, n int) Path {
	path := make(Path, 0, 2*(n-1))
	r, c := n-1, n-1
	for r > 0 || c > 0 {
		if pred[r][c] == FromLeft {
			path = append(path, Right)
			c--
		} else {
			path = append(path, Down)
			r--
		}
	}
	// reverse path in-place
	for l, h := 0, len(path)-1; l < h; l, h = l+1, h-1 {
		path[l], path[h] = path[h], path[l]
	}

	return path
}
