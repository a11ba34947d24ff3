package errors

import (
	"errors"
	"fmt"
)

// Standard decode-time errors. Each one names the first grammar violation
// found in a left-to-right scan of the input; decoding stops there.
var (
	ErrEmptyInput            = errors.New("input is empty or contains only whitespace")
	ErrInvalidCharacter      = errors.New("invalid character")
	ErrUnexpectedColon       = errors.New("unexpected colon")
	ErrUnexpectedValue       = errors.New("unexpected value")
	ErrDanglingKey           = errors.New("dangling key")
	ErrTrailingComma         = errors.New("trailing comma")
	ErrMismatchedBracket     = errors.New("mismatched bracket")
	ErrUnterminatedContainer = errors.New("unterminated container")
	ErrUnterminatedString    = errors.New("unterminated string")
	ErrInvalidEscape         = errors.New("invalid escape")
	ErrCorruptNumber         = errors.New("corrupt number")
	ErrCorruptTrue           = errors.New("corrupt true")
	ErrCorruptFalse          = errors.New("corrupt false")
	ErrCorruptNull           = errors.New("corrupt null")
	ErrInvalidKey            = errors.New("invalid key")
)

// Access-time errors, raised by value accessors independently of decoding.
var (
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrKeyNotFound     = errors.New("key not found")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Input/output errors for the CLI surface.
var (
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe JSON data to stdin")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrInvalidFilePath = errors.New("invalid file path")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput     ErrorType = "input"
	ErrorTypeDecode    ErrorType = "decode"
	ErrorTypeAccess    ErrorType = "access"
	ErrorTypeTransform ErrorType = "transform"
	ErrorTypeOutput    ErrorType = "output"
	ErrorTypeUnknown   ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	// Check if target is also an *AppError and if the types match
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewDecodeError creates a new error related to JSON decoding
func NewDecodeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeDecode,
		Message: message,
		Err:     err,
	}
}

// NewAccessError creates a new error related to value-accessor misuse
func NewAccessError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeAccess,
		Message: message,
		Err:     err,
	}
}

// NewTransformError creates a new error related to tree transformation
func NewTransformError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeTransform,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeDecode:
			if appErr.Err != nil {
				return fmt.Sprintf("JSON decode error: %s: %v", appErr.Message, appErr.Err)
			}
			return fmt.Sprintf("JSON decode error: %s", appErr.Message)
		case ErrorTypeAccess:
			return fmt.Sprintf("Value access error: %s", appErr.Message)
		case ErrorTypeTransform:
			return fmt.Sprintf("Transform error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
