package treegrid

import (
	"errors"
	"fmt"
)

// ErrMalformedGrid is the class of every construction error below.
var ErrMalformedGrid = errors.New("treegrid: malformed grid")

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrBadHeight indicates a cell outside 0..9 or a non-digit character.
	ErrBadHeight = fmt.Errorf("%w: height must be a single digit", ErrMalformedGrid)
)
