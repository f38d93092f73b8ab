package filterable

import "errors"

var (
	// ErrEmptyKey is returned when a filter or sorter is registered
	// against an empty input key.
	ErrEmptyKey = errors.New("filterable: empty key")

	// ErrNilHandler is returned when a nil filter, sorter or constructor
	// is registered.
	ErrNilHandler = errors.New("filterable: nil handler")

	// ErrInvalidFilter is returned when a registered value is neither a
	// Filter, a compatible function, nor a Filter constructor.
	ErrInvalidFilter = errors.New("filterable: not a filter")

	// ErrInvalidSorter is the sorter counterpart of ErrInvalidFilter.
	ErrInvalidSorter = errors.New("filterable: not a sorter")
)
