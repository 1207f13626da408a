// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestETag(t *testing.T) {
	// md5("hello") is a fixed, well-known value.
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", ETag([]byte("hello")))
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "abc123", StripQuotes(`"abc123"`))
	assert.Equal(t, "abc123", StripQuotes("abc123"))
	assert.Equal(t, "abc-2", StripQuotes(`"abc-2"`))
}

func TestCheckSize(t *testing.T) {
	assert.NoError(t, CheckSize(1024, 1024))

	err := CheckSize(1024, 512)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size mismatch")
}

func TestCheckETag(t *testing.T) {
	data := []byte("hello")

	assert.NoError(t, CheckETag(data, `"5d41402abc4b2a76b9719d911017c592"`))
	assert.NoError(t, CheckETag(data, "5d41402abc4b2a76b9719d911017c592"))

	err := CheckETag(data, `"ffffffffffffffffffffffffffffffff"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "etag mismatch")
}

func TestCheckMultipartETag(t *testing.T) {
	assert.NoError(t, CheckMultipartETag(`"9bb58f26192e4ba00f01e2e7b136bbd8-2"`, 2))
}

func TestCheckMultipartETag_MissingSuffix(t *testing.T) {
	err := CheckMultipartETag(`"9bb58f26192e4ba00f01e2e7b136bbd8"`, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no multipart part-count suffix")
}

func TestCheckMultipartETag_CountMismatch(t *testing.T) {
	err := CheckMultipartETag(`"9bb58f26192e4ba00f01e2e7b136bbd8-3"`, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "part count 3 does not match 2")
}

func TestCheckMultipartETag_ZeroPartsIsNotMultipart(t *testing.T) {
	// A "-0" suffix is not a valid part count.
	err := CheckMultipartETag(`"abc-0"`, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no multipart part-count suffix")
}

func TestCheckSSE(t *testing.T) {
	assert.NoError(t, CheckSSE("", "anything"), "no expectation, no check")
	assert.NoError(t, CheckSSE("AES256", "AES256"))

	err := CheckSSE("AES256", "None")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reported none")

	err = CheckSSE("AES256", "aws:kms")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aws:kms")
}
