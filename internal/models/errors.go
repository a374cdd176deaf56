package models

import "errors"

// Errors returned by stores. Services translate them into their own
// domain errors.
var (
	ErrNotFound   = errors.New("no rows")
	ErrConstraint = errors.New("constraint violation")
)
