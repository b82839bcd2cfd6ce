package tableview

import "errors"

// Common errors returned by the tableview package.
var (
	// ErrConfiguration is wrapped by all construction time errors.
	ErrConfiguration = errors.New("invalid table configuration")

	// ErrNoRenderer is returned by New when Options.Renderer is nil.
	ErrNoRenderer = errors.New("no renderer")

	// ErrNoColumns is returned by New when Options.Columns is empty.
	ErrNoColumns = errors.New("no columns")

	// ErrUnknownSortColumn is returned by New when the initial
	// sort key does not reference a configured column.
	ErrUnknownSortColumn = errors.New("unknown sort column")
)
