// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads harness credentials and target settings.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultEndpoint is the public AWS S3 endpoint. When the configured
// endpoint equals this value no endpoint override is passed to the SDK.
const DefaultEndpoint = "https://s3.amazonaws.com"

// DefaultRegion is used when the credentials file does not set one.
const DefaultRegion = "us-east-1"

// Config holds everything needed to talk to the target service.
type Config struct {
	AccessKey  string
	SecretKey  string
	Region     string
	Endpoint   string
	BucketName string
}

// Load reads the credentials file (JSON or YAML key/value document) and
// returns the resulting configuration. A missing or unparsable file is
// an error; callers treat it as fatal before any test runs.
func Load(file string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(file)
	v.AutomaticEnv()
	v.SetEnvPrefix("S3PROBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("region", DefaultRegion)
	v.SetDefault("endpoint_url", DefaultEndpoint)
	v.SetDefault("bucket_name", "test-automation-bucket")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read credentials file %s: %w", file, err)
	}

	cfg := &Config{
		AccessKey:  v.GetString("access_key"),
		SecretKey:  v.GetString("secret_key"),
		Region:     v.GetString("region"),
		Endpoint:   v.GetString("endpoint_url"),
		BucketName: v.GetString("bucket_name"),
	}

	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("credentials file %s: access_key and secret_key are required", file)
	}

	return cfg, nil
}

// UsesDefaultEndpoint reports whether the config points at public AWS.
func (c *Config) UsesDefaultEndpoint() bool {
	return c.Endpoint == "" || c.Endpoint == DefaultEndpoint
}
