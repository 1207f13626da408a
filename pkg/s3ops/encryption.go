// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package s3ops

import (
	"context"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// PutBucketEncryption enables default server-side encryption.
func (c *Client) PutBucketEncryption(ctx context.Context, bucket string, algorithm types.ServerSideEncryption) Result {
	_, err := c.api.PutBucketEncryption(ctx, &s3.PutBucketEncryptionInput{
		Bucket: aws.String(bucket),
		ServerSideEncryptionConfiguration: &types.ServerSideEncryptionConfiguration{
			Rules: []types.ServerSideEncryptionRule{{
				ApplyServerSideEncryptionByDefault: &types.ServerSideEncryptionByDefault{
					SSEAlgorithm: algorithm,
				},
			}},
		},
	})
	if err != nil {
		return failure(err)
	}
	return success("Bucket encryption enabled with %s", algorithm)
}

// GetBucketEncryption returns the default encryption algorithm.
func (c *Client) GetBucketEncryption(ctx context.Context, bucket string) Result {
	resp, err := c.api.GetBucketEncryption(ctx, &s3.GetBucketEncryptionInput{Bucket: aws.String(bucket)})
	if err != nil {
		return failure(err)
	}
	algorithm := "None"
	if resp.ServerSideEncryptionConfiguration != nil &&
		len(resp.ServerSideEncryptionConfiguration.Rules) > 0 &&
		resp.ServerSideEncryptionConfiguration.Rules[0].ApplyServerSideEncryptionByDefault != nil {
		algorithm = string(resp.ServerSideEncryptionConfiguration.Rules[0].ApplyServerSideEncryptionByDefault.SSEAlgorithm)
	}
	return success("Bucket encryption: %s", algorithm).With("sse_algorithm", algorithm)
}

// DeleteBucketEncryption removes the default encryption configuration.
func (c *Client) DeleteBucketEncryption(ctx context.Context, bucket string) Result {
	_, err := c.api.DeleteBucketEncryption(ctx, &s3.DeleteBucketEncryptionInput{Bucket: aws.String(bucket)})
	if err != nil {
		return failure(err)
	}
	return success("Bucket encryption removed")
}

// PutObjectWithSSE uploads a local file with an explicit server-side
// encryption algorithm on the request.
func (c *Client) PutObjectWithSSE(ctx context.Context, bucket, key, filePath string, algorithm types.ServerSideEncryption) Result {
	f, err := os.Open(filePath)
	if err != nil {
		return failuref("File not found: %s", filePath)
	}
	defer f.Close()

	resp, err := c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:               aws.String(bucket),
		Key:                  aws.String(key),
		Body:                 f,
		ServerSideEncryption: algorithm,
	})
	if err != nil {
		return failure(err)
	}
	return success("Object %s uploaded with %s encryption", key, algorithm).
		With("etag", aws.ToString(resp.ETag)).
		With("encryption", string(resp.ServerSideEncryption))
}

// GetObjectWithSSE downloads an object and reports which encryption
// algorithm the service applied to it.
func (c *Client) GetObjectWithSSE(ctx context.Context, bucket, key, destPath string) Result {
	resp, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return failure(err)
	}
	defer resp.Body.Close()

	var dest io.Writer = io.Discard
	if destPath != "" {
		f, err := os.Create(destPath)
		if err != nil {
			return failuref("Unexpected error: %v", err)
		}
		defer f.Close()
		dest = f
	}
	written, err := io.Copy(dest, resp.Body)
	if err != nil {
		return failuref("Unexpected error: %v", err)
	}

	algorithm := string(resp.ServerSideEncryption)
	if algorithm == "" {
		algorithm = "None"
	}
	return success("Object downloaded with %s encryption", algorithm).
		With("size", written).
		With("etag", aws.ToString(resp.ETag)).
		With("encryption", algorithm)
}
