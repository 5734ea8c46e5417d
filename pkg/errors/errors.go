// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeMissingEnv indicates none of the candidate environment variables
	// for a logical concept (home directory, username, ...) was set.
	ErrCodeMissingEnv ErrorCode = "MISSING_ENV"
	// ErrCodeIO indicates a filesystem or process level operation failed.
	ErrCodeIO ErrorCode = "IO_FAILURE"
)

// ContextKeyLabel is the Context key holding the logical concept label
// of a MISSING_ENV error.
const ContextKeyLabel = "label"

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewMissingEnv reports that no candidate variable for label was set.
// The label names the concept (e.g. "HOME/USERPROFILE"), not a single key.
func NewMissingEnv(label string) *StructuredError {
	return NewWithContext(ErrCodeMissingEnv,
		"Missing environment variable: "+label,
		map[string]any{ContextKeyLabel: label})
}

// WrapIO wraps a filesystem or process failure.
func WrapIO(message string, cause error) *StructuredError {
	return Wrap(ErrCodeIO, message, cause)
}

// IsCode reports whether any error in err's chain is a StructuredError with code.
func IsCode(err error, code ErrorCode) bool {
	var se *StructuredError
	if !stderrors.As(err, &se) {
		return false
	}
	return se.Code == code
}

// MissingEnvLabel returns the concept label carried by a MISSING_ENV error.
func MissingEnvLabel(err error) (string, bool) {
	var se *StructuredError
	if !stderrors.As(err, &se) || se.Code != ErrCodeMissingEnv {
		return "", false
	}
	label, ok := se.Context[ContextKeyLabel].(string)
	return label, ok
}
