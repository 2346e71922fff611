package errors

import "errors"

var (
	ErrSnippetNotFound    = errors.New("snippet not found")
	ErrInvalidSnippetData = errors.New("invalid snippet data")
)
