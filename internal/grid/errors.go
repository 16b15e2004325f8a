package grid

import "errors"

// ErrInvalidGrid indicates an axis with fewer than two points or a grid
// whose axis count does not match its dimension.
var ErrInvalidGrid = errors.New("grid: invalid grid")
