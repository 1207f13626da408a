// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package s3ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_With_DoesNotMutateOriginal(t *testing.T) {
	base := success("ok").With("size", int64(5))
	extended := base.With("etag", "abc")

	assert.Equal(t, int64(5), extended.Int("size"))
	assert.Equal(t, "abc", extended.Str("etag"))
	assert.Empty(t, base.Str("etag"), "With must copy, not mutate")
}

func TestResult_FieldAccessors(t *testing.T) {
	res := success("ok").
		With("count", 3).
		With("size", int64(42)).
		With("name", "bucket")

	assert.Equal(t, int64(3), res.Int("count"))
	assert.Equal(t, int64(42), res.Int("size"))
	assert.Equal(t, "bucket", res.Str("name"))
	assert.Zero(t, res.Int("missing"))
	assert.Empty(t, res.Str("missing"))
	assert.Empty(t, res.Str("count"), "wrong-typed access returns zero value")
}

func TestResult_Fail(t *testing.T) {
	res := success("uploaded").With("etag", "abc")
	failed := res.Fail("size mismatch")

	assert.False(t, failed.OK())
	assert.Equal(t, "size mismatch", failed.Message)
	assert.Equal(t, "abc", failed.Str("etag"), "fields survive the downgrade")
	assert.True(t, res.OK(), "original result is unchanged")
}

func TestNotFound(t *testing.T) {
	res := notFound("Bucket")

	assert.False(t, res.OK())
	assert.Equal(t, "Bucket not found", res.Message)
	assert.Equal(t, KindNotFound, res.Kind)
}

func TestExportedConstructors(t *testing.T) {
	ok := Success("did %d things", 3)
	assert.True(t, ok.OK())
	assert.Equal(t, "did 3 things", ok.Message)

	bad := Errorf("broke %s", "badly")
	assert.False(t, bad.OK())
	assert.Equal(t, "broke badly", bad.Message)
}
