// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package s3ops

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// ErrKind is a closed classification of remote errors. Facade callers
// branch on kinds instead of matching substrings in free-text messages.
type ErrKind int

const (
	KindNone ErrKind = iota
	KindNotFound
	KindPreconditionFailed
	KindNotModified
	KindAccessDenied
	KindNoSuchConfig
	KindTransient
	KindUnknown
)

func (k ErrKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not-found"
	case KindPreconditionFailed:
		return "precondition-failed"
	case KindNotModified:
		return "not-modified"
	case KindAccessDenied:
		return "access-denied"
	case KindNoSuchConfig:
		return "no-such-config"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// preconditionHints is the substring fallback for transports that do
// not surface a structured error code. Known weak point; the structured
// code path in Classify is authoritative.
var preconditionHints = []string{"412", "PreconditionFailed", "does not match"}

// Classify maps an SDK error to an ErrKind. Structured smithy API error
// codes are inspected first; the message substring fallback only
// applies when no code is available.
func Classify(err error) ErrKind {
	if err == nil {
		return KindNone
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound", "NoSuchUpload", "404":
			return KindNotFound
		case "PreconditionFailed", "412":
			return KindPreconditionFailed
		case "NotModified", "304":
			return KindNotModified
		case "AccessDenied", "Forbidden", "403":
			return KindAccessDenied
		case "NoSuchBucketPolicy",
			"NoSuchCORSConfiguration",
			"NoSuchTagSet",
			"NoSuchLifecycleConfiguration",
			"NoSuchPublicAccessBlockConfiguration",
			"ObjectLockConfigurationNotFoundError",
			"ServerSideEncryptionConfigurationNotFoundError":
			return KindNoSuchConfig
		case "SlowDown", "RequestTimeout", "InternalError", "ServiceUnavailable", "Throttling", "ThrottlingException":
			return KindTransient
		default:
			return KindUnknown
		}
	}

	msg := err.Error()
	for _, hint := range preconditionHints {
		if strings.Contains(msg, hint) {
			return KindPreconditionFailed
		}
	}
	return KindUnknown
}

// IsPreconditionFailure reports whether a failure result represents a
// rejected conditional write, as opposed to any other error.
func (r Result) IsPreconditionFailure() bool {
	if r.Kind == KindPreconditionFailed {
		return true
	}
	for _, hint := range preconditionHints {
		if strings.Contains(r.Message, hint) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether a failure result represents a missing
// bucket, object, or subresource configuration.
func (r Result) IsNotFound() bool {
	return r.Kind == KindNotFound || r.Kind == KindNoSuchConfig
}
