package core

import "fmt"

// ColumnOutOfBoundsError reports a key column spec that resolves outside a
// sheet's column range.
type ColumnOutOfBoundsError struct {
	Spec    int // the offending spec, as the user wrote it
	Columns int // the sheet's column count
}

func (e *ColumnOutOfBoundsError) Error() string {
	return fmt.Sprintf("column %d is out of bounds (total columns: %d)", e.Spec, e.Columns)
}

// ColumnOrderingError reports a combination of left- and right-anchored key
// columns whose positions could coincide or cross given the sheet's width.
type ColumnOrderingError struct {
	Positive       int // the largest positive spec
	Negative       int // the smallest negative spec
	NegativeOffset int // the negative spec's resolved 0-based offset
	Columns        int
}

func (e *ColumnOrderingError) Error() string {
	return fmt.Sprintf(
		"positively indexed columns must precede negatively indexed columns; got %d ~ %d <= %d",
		e.Negative, e.NegativeOffset, e.Positive,
	)
}

// IrregularShapeError reports a row whose column count disagrees with the
// first row of the same input.
type IrregularShapeError struct {
	Row          int // 1-based row number of the offending row
	Columns      int // its column count
	FirstColumns int // the first row's column count
}

func (e *IrregularShapeError) Error() string {
	return fmt.Sprintf("the first row has %s, but row #%d has %s",
		countWith(e.FirstColumns, "column"), e.Row, countWith(e.Columns, "column"))
}

// AmbiguousMergeError reports a key group that admits more than one pairing
// while multi-merge has not been permitted.
type AmbiguousMergeError struct {
	Key  Key
	Flag string // the override flag to suggest in the message
}

func (e *AmbiguousMergeError) Error() string {
	return fmt.Sprintf(
		"there are multiple ways to merge records; if this is intended, consider passing the %s flag; the ambiguous record is:\n%s",
		e.Flag, e.Key,
	)
}

// DegenerateInputError reports that no input contains a record with more
// than one column, which usually means the delimiter was wrong.
type DegenerateInputError struct {
	Flag string // the override flag to suggest in the message
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf(
		"your data seems not to contain any records with more than one column; did you specify the delimiter correctly? if so, consider passing the %s flag",
		e.Flag,
	)
}
