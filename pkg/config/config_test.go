// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCreds(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeCreds(t, "credentials.json", `{
		"access_key": "AKIA_TEST",
		"secret_key": "secret",
		"region": "eu-central-1",
		"endpoint_url": "http://localhost:9000",
		"bucket_name": "my-bucket"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "AKIA_TEST", cfg.AccessKey)
	assert.Equal(t, "secret", cfg.SecretKey)
	assert.Equal(t, "eu-central-1", cfg.Region)
	assert.Equal(t, "http://localhost:9000", cfg.Endpoint)
	assert.Equal(t, "my-bucket", cfg.BucketName)
	assert.False(t, cfg.UsesDefaultEndpoint())
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeCreds(t, "credentials.json", `{
		"access_key": "AKIA_TEST",
		"secret_key": "secret"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultRegion, cfg.Region)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, "test-automation-bucket", cfg.BucketName)
	assert.True(t, cfg.UsesDefaultEndpoint())
}

func TestLoad_YAML(t *testing.T) {
	path := writeCreds(t, "credentials.yaml", `
access_key: AKIA_TEST
secret_key: secret
region: us-west-2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
}

func TestLoad_MissingCredentialsRejected(t *testing.T) {
	path := writeCreds(t, "credentials.json", `{"region": "us-east-1"}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access_key and secret_key are required")
}

func TestLoad_MissingFileRejected(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoad_UnparsableFileRejected(t *testing.T) {
	path := writeCreds(t, "credentials.json", `{not json at all`)

	_, err := Load(path)
	require.Error(t, err)
}
