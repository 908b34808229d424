package simplex

import "github.com/pkg/errors"

var (
	// ErrInvalidShape is returned by New for negative dimensions or an
	// artificial count that does not fit in the variable columns.
	ErrInvalidShape = errors.New("invalid tableau shape")

	// ErrShapeMismatch is returned by AddLine when the row length differs
	// from the tableau column count.
	ErrShapeMismatch = errors.New("row length does not match tableau columns")

	// ErrZeroPivot is returned by Pivot when the selected cell is zero.
	ErrZeroPivot = errors.New("pivot value is zero")

	ErrInvalidOption = errors.New("invalid tableau option")
)
