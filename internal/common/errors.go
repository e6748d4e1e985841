// Package common defines shared constants and sentinel errors used across
// the store, service and transport layers. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorUpstream = errors.New("upstream error")

	// Validation errors.
	ErrorValidation  = errors.New("validation error")
	ErrInvalidAmount = fmt.Errorf("%w: amount must be greater than or equal to 1 cent", ErrorValidation)

	// Auth errors.
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrForbidden    = errors.New("forbidden access")
)
