// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package s3ops

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// defaultLifecycleRules expires current and noncurrent versions after
// one day, matching every key in the bucket.
func defaultLifecycleRules() []types.LifecycleRule {
	return []types.LifecycleRule{{
		ID:     aws.String("ExpireCurrentAndOld1Day"),
		Status: types.ExpirationStatusEnabled,
		Filter: &types.LifecycleRuleFilter{Prefix: aws.String("")},
		Expiration: &types.LifecycleExpiration{
			Days: aws.Int32(1),
		},
		NoncurrentVersionExpiration: &types.NoncurrentVersionExpiration{
			NoncurrentDays: aws.Int32(1),
		},
	}}
}

// PutBucketLifecycle sets lifecycle rules; nil installs the default
// one-day expiration rule.
func (c *Client) PutBucketLifecycle(ctx context.Context, bucket string, rules []types.LifecycleRule) Result {
	if rules == nil {
		rules = defaultLifecycleRules()
	}
	_, err := c.api.PutBucketLifecycleConfiguration(ctx, &s3.PutBucketLifecycleConfigurationInput{
		Bucket: aws.String(bucket),
		LifecycleConfiguration: &types.BucketLifecycleConfiguration{
			Rules: rules,
		},
	})
	if err != nil {
		return failure(err)
	}
	return success("Lifecycle rules configured for %s", bucket)
}

// GetBucketLifecycle returns the configured lifecycle rules.
func (c *Client) GetBucketLifecycle(ctx context.Context, bucket string) Result {
	resp, err := c.api.GetBucketLifecycleConfiguration(ctx, &s3.GetBucketLifecycleConfigurationInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return failure(err)
	}
	ids := make([]string, 0, len(resp.Rules))
	for _, rule := range resp.Rules {
		ids = append(ids, aws.ToString(rule.ID))
	}
	return success("Found %d lifecycle rules", len(ids)).
		With("rules_count", len(ids)).
		With("rule_ids", ids)
}

// DeleteBucketLifecycle removes the lifecycle configuration.
func (c *Client) DeleteBucketLifecycle(ctx context.Context, bucket string) Result {
	_, err := c.api.DeleteBucketLifecycle(ctx, &s3.DeleteBucketLifecycleInput{Bucket: aws.String(bucket)})
	if err != nil {
		return failure(err)
	}
	return success("Lifecycle configuration deleted")
}
