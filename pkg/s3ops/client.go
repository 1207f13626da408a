// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package s3ops

import (
	"context"
	"fmt"
	"net/http"
	"time"

	probecfg "github.com/LeeDigitalWorks/s3probe/pkg/config"
	"github.com/LeeDigitalWorks/s3probe/pkg/probelog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Client wraps a configured S3 client. It is the only state shared
// between operations; every method issues a direct remote call.
type Client struct {
	api    *s3.Client
	region string
}

// New builds a Client from the harness configuration. A custom endpoint
// forces path-style addressing, which every S3-compatible target under
// test expects.
func New(ctx context.Context, cfg *probecfg.Config) (*Client, error) {
	staticCreds := credentials.NewStaticCredentialsProvider(
		cfg.AccessKey,
		cfg.SecretKey,
		"", // session token (empty for permanent credentials)
	)

	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(staticCreds),
		awsconfig.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	opts := []func(*s3.Options){}
	if !cfg.UsesDefaultEndpoint() {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	probelog.Debug().
		Str("endpoint", cfg.Endpoint).
		Str("region", cfg.Region).
		Msg("Created S3 client")

	return &Client{
		api:    s3.NewFromConfig(awsCfg, opts...),
		region: cfg.Region,
	}, nil
}

// Region returns the configured region.
func (c *Client) Region() string {
	return c.region
}

// createBucketInput builds the CreateBucket request. us-east-1 must
// omit the location constraint; every other region must include it.
func createBucketInput(bucket, region string, objectLock bool) *s3.CreateBucketInput {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}
	if region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}
	if objectLock {
		input.ObjectLockEnabledForBucket = aws.Bool(true)
	}
	return input
}
