package errors

import "fmt"

// ValidationError reports a malformed or missing answer while building a
// commit message interactively.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s]: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ParseError reports a commit message that does not match the conventional
// commit grammar.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s: %q", e.Reason, e.Input)
}

// NewParseError creates a new parse error
func NewParseError(input, reason string) *ParseError {
	return &ParseError{Input: input, Reason: reason}
}

// ConventionNotFoundError indicates that no rule set was registered under
// the requested name.
type ConventionNotFoundError struct {
	Name string
}

func (e *ConventionNotFoundError) Error() string {
	return fmt.Sprintf("convention '%s' not found in the registry", e.Name)
}

// NewConventionNotFoundError creates a new convention-not-found error
func NewConventionNotFoundError(name string) *ConventionNotFoundError {
	return &ConventionNotFoundError{Name: name}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Err: err}
}
