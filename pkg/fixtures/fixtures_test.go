// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package fixtures

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SetupAndTeardown(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Setup())
	defer m.Teardown()

	for _, size := range []Size{SizeText, SizeText2, Size1KB, Size5MB, Size10MB, Size50MB} {
		path := m.Path(size)
		require.NotEmpty(t, path)

		info, err := os.Stat(path)
		require.NoError(t, err)
		if ByteSize(size) > 0 {
			assert.Equal(t, ByteSize(size), info.Size())
		} else {
			assert.Positive(t, info.Size(), "text fixtures have content")
		}
	}
}

func TestManager_FixtureContent(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Setup())
	defer m.Teardown()

	data, err := m.Bytes(Size1KB)
	require.NoError(t, err)
	require.Len(t, data, 1024)
	for _, b := range data {
		require.Equal(t, byte('X'), b)
	}

	text, err := m.Bytes(SizeText)
	require.NoError(t, err)
	assert.Equal(t, "This is a test file for S3 automation testing.", string(text))
}

func TestManager_TeardownToleratesMissingFiles(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Setup())

	// Simulate a test body that consumed a fixture.
	require.NoError(t, os.Remove(m.Path(Size1KB)))

	assert.NotPanics(t, func() { m.Teardown() })
	_, err := os.Stat(m.Path(Size5MB))
	assert.True(t, os.IsNotExist(err), "teardown removes remaining fixtures")
}

func TestManager_TeardownRemovesTempPathTargets(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Setup())

	dest := m.TempPath("downloaded.bin")
	require.NoError(t, os.WriteFile(dest, []byte("payload"), 0o644))

	m.Teardown()
	_, err := os.Stat(dest)
	assert.True(t, os.IsNotExist(err))
}

func TestManager_BytesBeforeSetup(t *testing.T) {
	m := NewManager()
	_, err := m.Bytes(Size1KB)
	assert.Error(t, err)
}

func TestBucketNames(t *testing.T) {
	re := regexp.MustCompile(`^test-bucket-[0-9a-f]{8}$`)
	lockRe := regexp.MustCompile(`^test-bucket-lock-[0-9a-f]{8}$`)

	assert.Regexp(t, re, BucketName())
	assert.Regexp(t, lockRe, LockBucketName())
	assert.NotEqual(t, BucketName(), BucketName(), "names must not collide across runs")
}

func TestPartSizeConstants(t *testing.T) {
	assert.Equal(t, int64(10*1024*1024), DownloadPartSize)
	assert.Equal(t, int64(5*1024*1024), UploadPartSize)
}
