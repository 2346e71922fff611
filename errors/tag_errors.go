package errors

import "errors"

var (
	ErrTagNotFound = errors.New("tag not found")
	ErrTagConflict = errors.New("tag conflict")
)
