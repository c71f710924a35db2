package storage

import "errors"

// Common client storage errors
var (
	// ErrTokenNotFound indicates that no bearer token is stored
	ErrTokenNotFound = errors.New("bearer token not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
