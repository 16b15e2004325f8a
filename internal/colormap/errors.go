package colormap

import "errors"

var (
	// ErrInvalidMap indicates a map with no breakpoints or a degenerate span.
	ErrInvalidMap = errors.New("colormap: invalid map")

	// ErrUnknownPalette is returned by Get for unregistered names.
	ErrUnknownPalette = errors.New("colormap: unknown palette")
)
