// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

// Package s3ops exposes one request/response method per storage
// operation. Every method returns a Result; SDK errors never cross the
// package boundary.
package s3ops

import "fmt"

// Status is the outcome of a single operation.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the uniform record returned by every facade method.
// Message is always populated on error. Fields carry operation-specific
// outputs (sizes, counts, etags) and have no fixed schema.
type Result struct {
	Status  Status
	Message string
	Kind    ErrKind
	Fields  map[string]any
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// With returns a copy of the result with an extra field attached.
func (r Result) With(key string, value any) Result {
	fields := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		fields[k] = v
	}
	fields[key] = value
	r.Fields = fields
	return r
}

// Int returns an integer field, or 0 when absent.
func (r Result) Int(key string) int64 {
	switch v := r.Fields[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	}
	return 0
}

// Str returns a string field, or "" when absent.
func (r Result) Str(key string) string {
	if v, ok := r.Fields[key].(string); ok {
		return v
	}
	return ""
}

// Fail converts a successful result into a failure with the given
// message. Used by integrity checks that downgrade a remote success.
func (r Result) Fail(message string) Result {
	r.Status = StatusError
	r.Message = message
	return r
}

// Success builds a success result. Exported for callers that derive a
// verdict from several operations.
func Success(format string, args ...any) Result {
	return success(format, args...)
}

// Errorf builds a failure result from a local condition.
func Errorf(format string, args ...any) Result {
	return failuref(format, args...)
}

func success(format string, args ...any) Result {
	return Result{Status: StatusSuccess, Message: fmt.Sprintf(format, args...)}
}

// failure classifies err and wraps it in an error result.
func failure(err error) Result {
	return Result{
		Status:  StatusError,
		Message: err.Error(),
		Kind:    Classify(err),
	}
}

// failuref builds an error result from a local condition, without a
// remote error to classify.
func failuref(format string, args ...any) Result {
	return Result{Status: StatusError, Message: fmt.Sprintf(format, args...), Kind: KindUnknown}
}

// notFound builds the domain-level "<resource> not found" failure used
// by head operations.
func notFound(resource string) Result {
	return Result{Status: StatusError, Message: resource + " not found", Kind: KindNotFound}
}
