package neorpc

import (
	"errors"
	"fmt"
)

// Error represents JSON-RPC 2.0 error object.
type Error struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

// Standard JSON-RPC 2.0 and Neo-specific error codes.
const (
	ParseErrorCode          = -32700
	InvalidRequestCode      = -32600
	MethodNotFoundCode      = -32601
	InvalidParamsCode       = -32602
	InternalServerErrorCode = -32603
	RPCErrorCode            = -100
	ErrUnknownCode          = -500
	ErrAlreadyExistsCode    = -501
	ErrOutOfMemoryCode      = -502
	ErrUnableToVerifyCode   = -503
	ErrValidationFailedCode = -504
	ErrPolicyFailCode       = -505
)

var (
	// ErrInvalidParams represents a generic 'invalid parameters' error.
	ErrInvalidParams = NewInvalidParamsError("invalid params")
	// ErrMethodNotFound is returned by the server for unsupported methods.
	ErrMethodNotFound = NewError(MethodNotFoundCode, "Method not found", "")
	// ErrAlreadyExists represents SubmitError with code -501.
	ErrAlreadyExists = NewSubmitError(ErrAlreadyExistsCode, "Block or transaction already exists and cannot be sent repeatedly.")
	// ErrOutOfMemory represents SubmitError with code -502.
	ErrOutOfMemory = NewSubmitError(ErrOutOfMemoryCode, "The memory pool is full and no more transactions can be sent.")
	// ErrUnableToVerify represents SubmitError with code -503.
	ErrUnableToVerify = NewSubmitError(ErrUnableToVerifyCode, "The block cannot be validated.")
	// ErrValidationFailed represents SubmitError with code -504.
	ErrValidationFailed = NewSubmitError(ErrValidationFailedCode, "Block or transaction validation failed.")
	// ErrPolicyFail represents SubmitError with code -505.
	ErrPolicyFail = NewSubmitError(ErrPolicyFailCode, "One of the Policy filters failed.")
	// ErrUnknown represents SubmitError with code -500.
	ErrUnknown = NewSubmitError(ErrUnknownCode, "Unknown error.")
)

// NewError is an Error constructor that takes Error contents from its
// parameters.
func NewError(code int64, message string, data string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// NewInvalidParamsError creates a new error with code -32602.
func NewInvalidParamsError(data string) *Error {
	return NewError(InvalidParamsCode, "Invalid Params", data)
}

// NewInternalServerError creates a new error with code -32603.
func NewInternalServerError(data string) *Error {
	return NewError(InternalServerErrorCode, "Internal error", data)
}

// NewSubmitError creates a new error with specified error code and error message.
func NewSubmitError(code int64, message string) *Error {
	return NewError(code, message, "")
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Data) == 0 {
		return fmt.Sprintf("%s (%d)", e.Message, e.Code)
	}
	return fmt.Sprintf("%s (%d) - %s", e.Message, e.Code, e.Data)
}

// Is denotes whether the error matches the target one. Errors are compared
// by code only, so that server-provided messages and data don't matter.
func (e *Error) Is(target error) bool {
	var clTarget *Error
	if !errors.As(target, &clTarget) {
		return false
	}
	return e.Code == clTarget.Code
}

// WrapErrorWithData returns copy of the given error with the specified data.
// It does not modify the source error.
func WrapErrorWithData(e *Error, data string) *Error {
	return NewError(e.Code, e.Message, data)
}
