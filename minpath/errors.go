package minpath

import "errors"

var (
	// ErrInvalidInput indicates the matrix is empty, ragged, or not square.
	ErrInvalidInput = errors.New("minpath: matrix must be non-empty and square")

	// ErrPathNeedsTables indicates path recovery was requested without the predecessor table.
	ErrPathNeedsTables = errors.New("minpath: ReturnPath requires MemoryMode=FullTables")

	// ErrBadOptions indicates an unknown MemoryMode or Sweep value.
	ErrBadOptions = errors.New("minpath: invalid options")

	// ErrPathOutOfGrid indicates a replayed path leaves the matrix.
	ErrPathOutOfGrid = errors.New("minpath: path leaves the grid")
)
