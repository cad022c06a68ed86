package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyExists indicates an item with the same name already exists.
	// Surfaced from the unique index on items.name, not from a pre-check.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrInvalidItem indicates the item fields violate domain constraints.
	ErrInvalidItem = errors.New("invalid item")
)
