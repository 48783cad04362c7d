// Unified error handling for gcodegen
//
// Copyright (C) 2026  Go Migration Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents the category of error
type ErrorCode string

const (
	// Catalog errors
	ErrCatalogUnknownOp  ErrorCode = "CATALOG_UNKNOWN_OP"
	ErrCatalogDefinition ErrorCode = "CATALOG_DEFINITION"
	ErrCatalogArgument   ErrorCode = "CATALOG_ARGUMENT"

	// Program file errors
	ErrProgramParse ErrorCode = "PROGRAM_PARSE"
	ErrProgramStep  ErrorCode = "PROGRAM_STEP"

	// Output errors
	ErrSinkWrite ErrorCode = "SINK_WRITE"
	ErrSinkOpen  ErrorCode = "SINK_OPEN"

	// Configuration errors
	ErrConfig ErrorCode = "CONFIG"
)

// Error is the unified error type
type Error struct {
	// Code is the error category
	Code ErrorCode

	// Message is a human-readable error description
	Message string

	// Op is the catalog operation involved (if any)
	Op string

	// Param is the parameter key involved (if any)
	Param string

	// Step is the 1-based program step (0 when not applicable)
	Step int

	// Err wraps the underlying error
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Step > 0 {
		msg = fmt.Sprintf("[%s] step %d: %s", e.Code, e.Step, e.Message)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// SetOp sets the operation name
func (e *Error) SetOp(op string) *Error {
	e.Op = op
	return e
}

// SetParam sets the parameter key
func (e *Error) SetParam(param string) *Error {
	e.Param = param
	return e
}

// SetStep sets the program step number
func (e *Error) SetStep(step int) *Error {
	e.Step = step
	return e
}

// Wrap wraps an existing error with additional context
func Wrap(err error, code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// New creates a new Error
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Catalog errors

// UnknownOpError reports an operation missing from the catalog
func UnknownOpError(op string) *Error {
	return New(ErrCatalogUnknownOp, fmt.Sprintf("unknown operation '%s'", op)).SetOp(op)
}

// DefinitionError reports a malformed catalog definition
func DefinitionError(op, reason string) *Error {
	return New(ErrCatalogDefinition, fmt.Sprintf("operation '%s': %s", op, reason)).SetOp(op)
}

// ArgumentError reports an argument that does not fit its declaration
func ArgumentError(op, param, reason string) *Error {
	return New(ErrCatalogArgument, fmt.Sprintf("operation '%s': argument '%s': %s", op, param, reason)).
		SetOp(op).
		SetParam(param)
}

// Program errors

// ProgramParseError reports an unreadable program file
func ProgramParseError(source string, err error) *Error {
	return Wrap(err, ErrProgramParse, fmt.Sprintf("failed to parse program %s", source))
}

// ProgramStepError attaches a step number to a failure while running a program
func ProgramStepError(step int, err error) *Error {
	return Wrap(err, ErrProgramStep, "step failed").SetStep(step)
}

// Output errors

// SinkWriteError wraps a failed write to the output sink
func SinkWriteError(err error) *Error {
	return Wrap(err, ErrSinkWrite, "write failed")
}

// SinkOpenError wraps a failure to open an output destination
func SinkOpenError(path string, err error) *Error {
	return Wrap(err, ErrSinkOpen, fmt.Sprintf("cannot open %s", path))
}

// ConfigError wraps a configuration failure
func ConfigError(source string, err error) *Error {
	return Wrap(err, ErrConfig, fmt.Sprintf("config %s", source))
}

// Is checks if err, or any error it wraps, carries the given code
func Is(err error, code ErrorCode) bool {
	var e *Error
	for err != nil {
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Err
	}
	return false
}

// IsCatalog checks if error is a catalog error
func IsCatalog(err error) bool {
	return Is(err, ErrCatalogUnknownOp) ||
		Is(err, ErrCatalogDefinition) ||
		Is(err, ErrCatalogArgument)
}

// IsProgram checks if error is a program error
func IsProgram(err error) bool {
	return Is(err, ErrProgramParse) || Is(err, ErrProgramStep)
}

// IsSink checks if error is an output error
func IsSink(err error) bool {
	return Is(err, ErrSinkWrite) || Is(err, ErrSinkOpen)
}

// RootCode returns the code of the innermost *Error in err's chain, or ""
// when there is none.
func RootCode(err error) ErrorCode {
	var code ErrorCode
	var e *Error
	for err != nil && stderrors.As(err, &e) {
		code = e.Code
		err = e.Err
	}
	return code
}
