package apperrors

import (
	"errors"
	"fmt"
)

// NotFoundError means the requested resource does not exist. Recoverable:
// the caller shows a message and keeps the session alive.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// ValidationError covers bad user input: empty credentials, duplicate
// username, navigation actions the current screen does not allow.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ExternalServiceError wraps any outbound call failure. These never
// propagate to the client as-is; the component boundary converts them to a
// fallback value or a fixed reply and logs them.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// ConfigurationError means a startup artifact is missing or unusable. Fatal
// for the feature that needs it, not for the process.
type ConfigurationError struct {
	Component string
	Err       error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured: %v", e.Component, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsExternalService(err error) bool {
	var target *ExternalServiceError
	return errors.As(err, &target)
}

func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}
