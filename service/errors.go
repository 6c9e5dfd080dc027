package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means a brewery is enabled but currently has no
	// registered instance. Transient; retryable.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that a provided parameter does not match the
	// declared contract.
	ErrBadParameter = "bad_parameter"
	// ErrConfigurationAbsent means the requested kind was never enabled by
	// configuration (or discovery is stopped). Permanent; not retryable.
	ErrConfigurationAbsent = "configuration_absent"
	// ErrNoHealthyInstance means the enabled kind has zero eligible
	// candidates right now. Transient; retryable.
	ErrNoHealthyInstance = "no_healthy_instance"
)

// DiscoveryError represents an error within the context of confdiscovery
// services. Callers discriminate by Code, never by message.
type DiscoveryError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewDiscoveryError creates a new DiscoveryError.
func NewDiscoveryError(code string, message string, inner error) *DiscoveryError {
	return &DiscoveryError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewInternalServerError(message string, inner error) *DiscoveryError {
	if derr := ToDiscoveryError(inner); derr != nil {
		return derr
	}

	return NewDiscoveryError(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *DiscoveryError {
	if derr := ToDiscoveryError(inner); derr != nil {
		return derr
	}

	return NewDiscoveryError(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *DiscoveryError {
	if derr := ToDiscoveryError(inner); derr != nil {
		return derr
	}

	return NewDiscoveryError(ErrBadParameter, message, inner)
}

func NewConfigurationAbsentError(message string, inner error) *DiscoveryError {
	if derr := ToDiscoveryError(inner); derr != nil {
		return derr
	}

	return NewDiscoveryError(ErrConfigurationAbsent, message, inner)
}

func NewNoHealthyInstanceError(message string, inner error) *DiscoveryError {
	if derr := ToDiscoveryError(inner); derr != nil {
		return derr
	}

	return NewDiscoveryError(ErrNoHealthyInstance, message, inner)
}

func (e DiscoveryError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e DiscoveryError) Unwrap() error {
	return e.Inner
}

// ToDiscoveryError returns a pointer to a confdiscovery error, or nil if it
// is not a confdiscovery error.
func ToDiscoveryError(err error) *DiscoveryError {
	var e *DiscoveryError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToDiscoveryErrorCode returns the code of the error, if available.
func ToDiscoveryErrorCode(err error) string {
	derr := ToDiscoveryError(err)
	if derr != nil {
		return derr.Code
	}
	return ""
}

func IsDiscoveryError(err error, code string) bool {
	derr := ToDiscoveryError(err)
	if derr != nil {
		return derr.Code == code
	}
	return false
}

func IsInternalServerError(err error) bool {
	return IsDiscoveryError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsDiscoveryError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsDiscoveryError(err, ErrBadParameter)
}

func IsConfigurationAbsentError(err error) bool {
	return IsDiscoveryError(err, ErrConfigurationAbsent)
}

func IsNoHealthyInstanceError(err error) bool {
	return IsDiscoveryError(err, ErrNoHealthyInstance)
}
