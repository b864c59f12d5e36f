// Package errors provides standardized error handling for seqrename.
// It defines the error kinds a renaming pass can hit and helpers for
// creating, wrapping and classifying them.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileAccessDenied
	InvalidPath
	FileOperationFailed
	TargetCollision
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

// String returns a short name for the kind
func (k ErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "file_not_found"
	case FileAccessDenied:
		return "file_access_denied"
	case InvalidPath:
		return "invalid_path"
	case FileOperationFailed:
		return "file_operation_failed"
	case TargetCollision:
		return "target_collision"
	case InvalidConfig:
		return "invalid_config"
	case ConfigNotFound:
		return "config_not_found"
	default:
		return "unknown"
	}
}

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

// FileError represents errors related to file operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// FromOS wraps an error returned by the os package into a FileError whose
// kind reflects the underlying cause.
func FromOS(msg string, path string, err error) error {
	if err == nil {
		return nil
	}
	kind := FileOperationFailed
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = FileNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = FileAccessDenied
	case errors.Is(err, fs.ErrExist):
		kind = TargetCollision
	case errors.Is(err, syscall.ENOTDIR):
		kind = InvalidPath
	}
	return NewFileError(msg, path, kind, err)
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

// KindOf returns the kind of the outermost typed error in err's chain.
func KindOf(err error) ErrorKind {
	var kinded interface{ Kind() ErrorKind }
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}
	return Unknown
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == FileNotFound
	}
	return false
}

// IsFileAccessDenied checks if the error is a file access denied error
func IsFileAccessDenied(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == FileAccessDenied
	}
	return false
}

// IsTargetCollision checks if the error reports a target name that was already taken
func IsTargetCollision(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == TargetCollision
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsConfigNotFound checks if the error reports a missing configuration file
func IsConfigNotFound(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == ConfigNotFound
	}
	return false
}
