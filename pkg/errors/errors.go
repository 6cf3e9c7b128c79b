// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package errors defines the error taxonomy shared across kgmcp.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Error types
const (
	// ErrValidation is returned when a tool call carries an unknown tool,
	// an unknown action, or arguments that fail validation
	ErrValidation = "validation"

	// ErrPathDenied is returned when the ingestion allowlist rejects a path
	ErrPathDenied = "path_denied"

	// ErrBackend is returned when the knowledge-graph API responds with a
	// non-2xx status or the call fails at the network level
	ErrBackend = "backend"

	// ErrAuth is returned when OAuth token acquisition or refresh fails
	ErrAuth = "auth"

	// ErrNotFound is returned when a requested entity does not exist
	ErrNotFound = "not_found"

	// ErrInternal is returned when there is an internal error
	ErrInternal = "internal"
)

// Error represents an error in the application
type Error struct {
	// Type is the error type
	Type string

	// Message is the error message
	Message string

	// Cause is the underlying error
	Cause error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error
func NewError(errorType, message string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *Error {
	return NewError(ErrValidation, message, cause)
}

// NewPathDeniedError creates a new path denied error
func NewPathDeniedError(message string, cause error) *Error {
	return NewError(ErrPathDenied, message, cause)
}

// NewBackendError creates a new backend error
func NewBackendError(message string, cause error) *Error {
	return NewError(ErrBackend, message, cause)
}

// NewAuthError creates a new auth error
func NewAuthError(message string, cause error) *Error {
	return NewError(ErrAuth, message, cause)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, cause error) *Error {
	return NewError(ErrNotFound, message, cause)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, cause error) *Error {
	return NewError(ErrInternal, message, cause)
}

// isType checks whether err or any error it wraps carries the given type.
func isType(err error, errorType string) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Type == errorType
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return isType(err, ErrValidation)
}

// IsPathDenied checks if the error is a path denied error
func IsPathDenied(err error) bool {
	return isType(err, ErrPathDenied)
}

// IsBackend checks if the error is a backend error
func IsBackend(err error) bool {
	return isType(err, ErrBackend)
}

// IsAuth checks if the error is an auth error
func IsAuth(err error) bool {
	return isType(err, ErrAuth)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return isType(err, ErrNotFound)
}

// IsInternal checks if the error is an internal error
func IsInternal(err error) bool {
	return isType(err, ErrInternal)
}
