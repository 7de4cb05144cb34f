// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadyExists = errors.New("already exists")
	ErrUnauthorized  = errors.New("unauthorized")

	// Company-related errors
	ErrCompanyNotFound = errors.New("company not found")

	// Role-related errors
	ErrRoleNotFound       = errors.New("role not found")
	ErrInviteCodeInvalid  = errors.New("invite code not found")
	ErrDuplicateCode      = errors.New("role code already exists")
	ErrCodeSpaceExhausted = errors.New("invite code space exhausted")

	// Profile-related errors
	ErrProfileNotFound = errors.New("profile not found")

	// Property-related errors
	ErrPropertyNotFound = errors.New("property not found")

	// Work-order-related errors
	ErrWorkOrderNotFound = errors.New("work order not found")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrImageNotFound     = errors.New("image not found")
)
