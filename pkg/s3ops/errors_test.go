// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package s3ops

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func apiErr(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: "remote rejected request"}
}

func TestClassify_StructuredCodes(t *testing.T) {
	tests := []struct {
		code string
		want ErrKind
	}{
		{"NoSuchKey", KindNotFound},
		{"NoSuchBucket", KindNotFound},
		{"NotFound", KindNotFound},
		{"NoSuchUpload", KindNotFound},
		{"PreconditionFailed", KindPreconditionFailed},
		{"412", KindPreconditionFailed},
		{"NotModified", KindNotModified},
		{"AccessDenied", KindAccessDenied},
		{"NoSuchBucketPolicy", KindNoSuchConfig},
		{"NoSuchCORSConfiguration", KindNoSuchConfig},
		{"NoSuchTagSet", KindNoSuchConfig},
		{"NoSuchLifecycleConfiguration", KindNoSuchConfig},
		{"ObjectLockConfigurationNotFoundError", KindNoSuchConfig},
		{"ServerSideEncryptionConfigurationNotFoundError", KindNoSuchConfig},
		{"SlowDown", KindTransient},
		{"InternalError", KindTransient},
		{"SomethingNew", KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(apiErr(tt.code)))
		})
	}
}

func TestClassify_WrappedAPIError(t *testing.T) {
	err := fmt.Errorf("operation failed: %w", apiErr("NoSuchBucket"))
	assert.Equal(t, KindNotFound, Classify(err))
}

func TestClassify_Nil(t *testing.T) {
	assert.Equal(t, KindNone, Classify(nil))
}

func TestClassify_SubstringFallback(t *testing.T) {
	// No structured code available; only the message hints at the cause.
	assert.Equal(t, KindPreconditionFailed, Classify(errors.New("https response error StatusCode: 412")))
	assert.Equal(t, KindPreconditionFailed, Classify(errors.New("At least one of the pre-conditions you specified did not match")))
	assert.Equal(t, KindUnknown, Classify(errors.New("connection reset by peer")))
}

func TestIsPreconditionFailure(t *testing.T) {
	assert.True(t, failure(apiErr("PreconditionFailed")).IsPreconditionFailure())
	assert.True(t, Result{Status: StatusError, Message: "status 412 returned"}.IsPreconditionFailure())
	assert.False(t, failure(apiErr("NoSuchKey")).IsPreconditionFailure())
	assert.False(t, Success("all good").IsPreconditionFailure())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, failure(apiErr("NoSuchBucket")).IsNotFound())
	assert.True(t, failure(apiErr("NoSuchTagSet")).IsNotFound())
	assert.False(t, failure(apiErr("AccessDenied")).IsNotFound())
}
