// Package errors provides standardized error handling for the radial menu.
// It defines the error kinds the launcher distinguishes (defaultable config
// problems, input injection failures, capture cancellation and hook
// registration failures) and helpers for creating, wrapping and classifying
// them.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
	// Join combines errors into one
	Join = errors.Join
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Config error kinds
	ConfigDefaultable
	InvalidConfig
	ConfigNotFound
	// Input error kinds
	InputInjectionFailure
	CaptureCancelled
	HookRegistrationFailure
	InvalidChord
)

// String returns the kind name used in log output.
func (k ErrorKind) String() string {
	switch k {
	case ConfigDefaultable:
		return "config_defaultable"
	case InvalidConfig:
		return "invalid_config"
	case ConfigNotFound:
		return "config_not_found"
	case InputInjectionFailure:
		return "input_injection_failure"
	case CaptureCancelled:
		return "capture_cancelled"
	case HookRegistrationFailure:
		return "hook_registration_failure"
	case InvalidChord:
		return "invalid_chord"
	default:
		return "unknown"
	}
}

// Common error constants for frequently occurring errors
var (
	ErrCaptureCancelled = &ApplicationError{msg: "capture cancelled", kind: CaptureCancelled}
	ErrHookBusy         = NewHookError("input hook already held by another capture", "", nil)
	ErrHookClosed       = NewHookError("input hook is not running", "", nil)
	ErrEmptyChord       = &ApplicationError{msg: "empty chord", kind: InvalidChord}
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// NewDefaulted reports that param was missing or invalid and a default was
// substituted.
func NewDefaulted(param string, format string, args ...interface{}) *ConfigError {
	return NewConfigError(fmt.Sprintf(format, args...), param, ConfigDefaultable, nil)
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// LogFields exposes the error context to the logger.
func (e *ConfigError) LogFields() map[string]interface{} {
	return map[string]interface{}{"param": e.param}
}

// InjectionError reports a synthetic key send or text typing step that the
// OS rejected.
type InjectionError struct {
	ApplicationError
	step    string
	payload string
}

// NewInjectionError creates an injection failure for step ("hotkey" or
// "text") carrying the chord or text that failed.
func NewInjectionError(step, payload string, err error) *InjectionError {
	return &InjectionError{
		ApplicationError: ApplicationError{
			msg:  "input injection failed",
			err:  err,
			kind: InputInjectionFailure,
		},
		step:    step,
		payload: payload,
	}
}

// Error returns the injection error message
func (e *InjectionError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s %q: %v", e.msg, e.step, e.payload, e.err)
	}
	return fmt.Sprintf("%s: %s %q", e.msg, e.step, e.payload)
}

// Step returns which dispatch step failed.
func (e *InjectionError) Step() string {
	return e.step
}

// LogFields exposes the error context to the logger.
func (e *InjectionError) LogFields() map[string]interface{} {
	return map[string]interface{}{"step": e.step, "payload": e.payload}
}

// HookError reports that the global input hook could not be installed or
// subscribed to.
type HookError struct {
	ApplicationError
	source string
}

// NewHookError creates a hook registration failure.
func NewHookError(msg, source string, err error) *HookError {
	return &HookError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: HookRegistrationFailure,
		},
		source: source,
	}
}

// LogFields exposes the error context to the logger.
func (e *HookError) LogFields() map[string]interface{} {
	return map[string]interface{}{"source": e.source}
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the first kind other than Unknown found in err's tree.
func KindOf(err error) ErrorKind {
	kind := Unknown
	walk(err, func(e error) bool {
		if k, ok := e.(interface{ Kind() ErrorKind }); ok && k.Kind() != Unknown {
			kind = k.Kind()
			return true
		}
		return false
	})
	return kind
}

// hasKind walks the whole tree, so a classified error is still found under
// an Unknown wrapper or inside a joined error.
func hasKind(err error, kind ErrorKind) bool {
	return walk(err, func(e error) bool {
		k, ok := e.(interface{ Kind() ErrorKind })
		return ok && k.Kind() == kind
	})
}

// walk visits err and everything it wraps, depth first, until fn returns
// true.
func walk(err error, fn func(error) bool) bool {
	for err != nil {
		if fn(err) {
			return true
		}
		switch u := err.(type) {
		case interface{ Unwrap() []error }:
			for _, e := range u.Unwrap() {
				if walk(e, fn) {
					return true
				}
			}
			return false
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		default:
			return false
		}
	}
	return false
}

// IsConfigDefaultable checks if the error reports a substituted default
func IsConfigDefaultable(err error) bool {
	return hasKind(err, ConfigDefaultable)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	return hasKind(err, InvalidConfig)
}

// IsInjectionFailure checks if the error is an input injection failure
func IsInjectionFailure(err error) bool {
	return hasKind(err, InputInjectionFailure)
}

// IsCaptureCancelled checks if the error is a user cancellation of capture
func IsCaptureCancelled(err error) bool {
	return hasKind(err, CaptureCancelled)
}

// IsHookRegistrationFailure checks if the error is a hook registration failure
func IsHookRegistrationFailure(err error) bool {
	return hasKind(err, HookRegistrationFailure)
}
