package service

import "errors"

var (
	// ErrSessionNotFound is returned for unknown or expired session IDs
	ErrSessionNotFound = errors.New("session not found")
	// ErrItemNotFound is returned when a name is not in the session catalog
	ErrItemNotFound = errors.New("catalog item not found")
	// ErrDuplicateItem is returned when a name is already taken in the catalog
	ErrDuplicateItem = errors.New("catalog item already exists")
	// ErrInvalidCatalog is returned when a catalog source yields unusable records
	ErrInvalidCatalog = errors.New("invalid catalog")
)
