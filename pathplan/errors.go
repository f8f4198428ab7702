package pathplan

import "errors"

var (
	// ErrEmptyPath is returned when a path with no vertices is given to
	// the optimizer; there is nothing to order.
	ErrEmptyPath = errors.New("pathplan: path has no vertices")
)
