// Package minpath computes the minimal path sum through a square grid of
// integer weights when movement is restricted to Down and Right, and
// reconstructs one minimal path as a sequence of moves.
//
// What:
//
//	Given an n×n matrix, find the cheapest monotone walk from the top-left
//	cell (0,0) to the bottom-right cell (n-1,n-1). The cost of a walk is the
//	sum of every visited cell, both endpoints included.
//
// How:
//
//   - A cost table C[r][c] holds the cheapest sum reaching (r,c).
//   - A predecessor table P[r][c] records whether that sum came from above
//     or from the left.
//   - C[r][c] = M[r][c] + min(C[r-1][c], C[r][c-1]); edges have one candidate.
//   - Ties prefer the cell above, so the reconstructed path is reproducible.
//   - Backtracking P from (n-1,n-1) and reversing yields the forward path.
//
// Options:
//
//   - MemoryMode: FullTables (path recovery) or SingleRow (sum only, O(n) memory).
//   - Sweep:      RowMajor or AntiDiagonal fill order; results are identical.
//   - ReturnPath: skip backtracking when only the sum is needed.
//
// Usage:
//
//	sum, path, err := minpath.Solve(m)
//	if err != nil {
//	  // errors.Is(err, minpath.ErrInvalidInput)
//	}
//	fmt.Println(sum, path.Join(" -> "))
//
// Complexity:
//
//   - Time:   O(n²)
//   - Memory: O(n²) (FullTables) or O(n) (SingleRow)
//
// Errors:
//
//   - ErrInvalidInput:    matrix is empty or not square.
//   - ErrPathNeedsTables: ReturnPath requested with SingleRow.
//   - ErrBadOptions:      unknown MemoryMode or Sweep.
package minpath
