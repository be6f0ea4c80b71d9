package domain

import "errors"

// Auth errors
var (
	ErrMissingToken       = errors.New("token is missing")
	ErrInvalidToken       = errors.New("token is invalid or expired")
	ErrMemberNotFound     = errors.New("member not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Member errors
var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicatePhone = errors.New("phone number already registered")
)

// Review errors
var (
	ErrEmptyContent       = errors.New("review content is empty")
	ErrResultMenuNotFound = errors.New("result menu not found")
	ErrAlreadyReviewed    = errors.New("result menu already reviewed")
	ErrNotOwner           = errors.New("member did not visit this restaurant")
	ErrUploadFailed       = errors.New("review image upload failed")
)
