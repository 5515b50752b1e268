package dimtable

import (
	"fmt"

	"github.com/MacroPower/dimgen/pkg/dimerrors"
)

// RowShapeError reports a non-blank row whose column count is not
// [ColumnCount].
type RowShapeError struct {
	Line    int
	Columns int
}

func (e *RowShapeError) Error() string {
	return fmt.Sprintf("line %d: expected %d columns, got %d", e.Line, ColumnCount, e.Columns)
}

func (e *RowShapeError) Unwrap() error {
	return dimerrors.ErrRowShape
}

// ExponentParseError reports an exponent cell that is not a "{num,den}" pair.
type ExponentParseError struct {
	Err error
	Raw string

	// Column is the 1-based column in the table.
	Column    int
	Line      int
	Dimension BaseDimension
}

func (e *ExponentParseError) Error() string {
	return fmt.Sprintf("line %d: error parsing column %d (%s) %q: %v", e.Line, e.Column, e.Dimension, e.Raw, e.Err)
}

func (e *ExponentParseError) Unwrap() []error {
	return []error{dimerrors.ErrExponentParse, e.Err}
}
