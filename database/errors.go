package database

import "errors"

var (
	// ErrNotConnected is returned when the store is used before
	// a successful connection or after a failed one
	ErrNotConnected = errors.New("database is not connected")
	// ErrMissingURL is returned by the connection attempt when
	// no connection string is configured
	ErrMissingURL = errors.New("database connection string is not defined")
)
