package errors

import (
	"fmt"
)

// ConfigurationError reports a structural assembly fault: a component was
// built without the ancestor (provider) it depends on.
type ConfigurationError struct {
	Component string
	Requires  string
	Err       error
}

// NewConfigurationError constructs a ConfigurationError.
func NewConfigurationError(component, requires string) error {
	return &ConfigurationError{Component: component, Requires: requires}
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Requires != "" {
		return fmt.Sprintf("configuration error: %s must be used within %s", e.Component, e.Requires)
	}
	return fmt.Sprintf("configuration error: %s", e.Component)
}

// Unwrap exposes the underlying error.
func (e *ConfigurationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures rejected input, either a config field or a value
// handed to a setter.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PersistenceError indicates a key-value backend failed to read or write.
type PersistenceError struct {
	Backend string
	Key     string
	Err     error
}

// NewPersistenceError constructs a PersistenceError for the given backend.
func NewPersistenceError(backend, key string, err error) error {
	return &PersistenceError{Backend: backend, Key: key, Err: err}
}

func (e *PersistenceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("persistence error [%s] %s: %v", e.Backend, e.Key, e.Err)
	}
	return fmt.Sprintf("persistence error [%s]: %v", e.Backend, e.Err)
}

// Unwrap exposes the underlying error.
func (e *PersistenceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
