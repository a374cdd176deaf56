package services

import "errors"

var (
	ErrValidation        = errors.New("invalid input")
	ErrForbidden         = errors.New("forbidden")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrAlreadyClaimed    = errors.New("order already claimed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotDeletable      = errors.New("order can no longer be deleted")
	ErrUpload            = errors.New("document upload failed")
	ErrAuth              = errors.New("authentication failed")
	ErrSessionExpired    = errors.New("session expired")
)
