package errors

import "errors"

var (
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrCacheUnavailable  = errors.New("cache backend unavailable")
	ErrInvalidCacheTTL   = errors.New("invalid cache TTL configuration")
	ErrUnauthorized      = errors.New("unauthorized")
)
