// Package loader reads the textual matrix format consumed by minpath:
// one row per line, values separated by commas (or a configured rune),
// no header. Blank lines are skipped and spaces around a value are ignored.
//
//	131,673,234
//	201,96,342
//	630,803,746
//
// Errors:
//
//   - ErrNoRows:    input holds no data rows.
//   - ErrRaggedRow: a row has a different number of values than the first.
//   - ErrBadValue:  a field is not a base-10 integer.
//
// Squareness is not checked here; minpath.Validate owns that rule.
package loader
