package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/katalvlaran/minpath/internal/log"
	"github.com/katalvlaran/minpath/minpath"
)

var (
	// ErrNoRows indicates the input contained no data rows.
	ErrNoRows = errors.New("loader: input has no rows")
	// ErrRaggedRow indicates a row length differs from the first row.
	ErrRaggedRow = errors.New("loader: rows must have the same number of values")
	// ErrBadValue indicates a field that is not an integer.
	ErrBadValue = errors.New("loader: value is not an integer")
	// ErrBadSeparator indicates a separator rune csv cannot use.
	ErrBadSeparator = errors.New("loader: invalid separator")
)

// Options tunes parsing.
type Options struct {
	// Separator splits values within a line. Zero means ','.
	Separator rune
}

// DefaultOptions returns Separator=','.
func DefaultOptions() Options {
	return Options{Separator: ','}
}

// Read parses comma-separated rows from r.
func Read(r io.Reader) (minpath.Matrix, error) {
	return ReadWith(r, DefaultOptions())
}

// ReadWith parses rows from r using opts.Separator.
func ReadWith(r io.Reader, opts Options) (minpath.Matrix, error) {
	sep := opts.Separator
	if sep == 0 {
		sep = ','
	}
	if sep == '\r' || sep == '\n' || sep == '"' || sep == ' ' || sep == utf8.RuneError || !utf8.ValidRune(sep) {
		return nil, fmt.Errorf("separator %q: %w", sep, ErrBadSeparator)
	}

	cr := csv.NewReader(r)
	cr.Comma = sep
	cr.FieldsPerRecord = 0 // first row fixes the width
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var m minpath.Matrix
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("line %d: %d values, want %d: %w", pe.Line, len(rec), len(m[0]), ErrRaggedRow)
			}
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("line %d: %v: %w", pe.Line, pe.Err, ErrBadValue)
			}

			return nil, fmt.Errorf("loader: read: %w", err)
		}

		line, _ := cr.FieldPos(0)
		row := make([]int, len(rec))
		for i, field := range rec {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %q: %w", line, i+1, field, ErrBadValue)
			}
			row[i] = v
		}
		m = append(m, row)
	}
	if len(m) == 0 {
		return nil, ErrNoRows
	}

	return m, nil
}

// ReadFile opens path and parses it with opts.
func ReadFile(path string, opts Options) (minpath.Matrix, error) {
	logger := log.WithComponent("loader")
	start := time.Now()

	// #nosec G304 -- the matrix path is chosen by the operator
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open: %w", err)
	}
	defer f.Close()

	m, err := ReadWith(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug().
		Str("file", path).
		Int("rows", len(m)).
		Int("cols", len(m[0])).
		Dur("elapsed", time.Since(start)).
		Msg("matrix loaded")

	return m, nil
}
