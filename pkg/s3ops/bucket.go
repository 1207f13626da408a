// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package s3ops

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// CreateBucket creates a bucket in the configured region.
func (c *Client) CreateBucket(ctx context.Context, bucket string) Result {
	_, err := c.api.CreateBucket(ctx, createBucketInput(bucket, c.region, false))
	if err != nil {
		return failure(err)
	}
	return success("Bucket %s created successfully", bucket)
}

// CreateBucketWithObjectLock creates a bucket with WORM protection
// enabled. Object Lock can only be enabled at bucket creation.
func (c *Client) CreateBucketWithObjectLock(ctx context.Context, bucket string) Result {
	_, err := c.api.CreateBucket(ctx, createBucketInput(bucket, c.region, true))
	if err != nil {
		return failure(err)
	}
	return success("Bucket %s created with Object Lock enabled", bucket)
}

// DeleteBucket deletes an empty bucket.
func (c *Client) DeleteBucket(ctx context.Context, bucket string) Result {
	_, err := c.api.DeleteBucket(ctx, &s3.DeleteBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		return failure(err)
	}
	return success("Bucket %s deleted successfully", bucket)
}

// HeadBucket checks whether the bucket exists and is accessible.
func (c *Client) HeadBucket(ctx context.Context, bucket string) Result {
	_, err := c.api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		if Classify(err) == KindNotFound {
			return notFound("Bucket")
		}
		return failure(err)
	}
	return success("Bucket %s exists and is accessible", bucket)
}

// GetBucketLocation returns the bucket's region. An empty location
// constraint means us-east-1.
func (c *Client) GetBucketLocation(ctx context.Context, bucket string) Result {
	resp, err := c.api.GetBucketLocation(ctx, &s3.GetBucketLocationInput{Bucket: aws.String(bucket)})
	if err != nil {
		return failure(err)
	}
	location := string(resp.LocationConstraint)
	if location == "" {
		location = "us-east-1"
	}
	return success("Bucket location: %s", location).With("location", location)
}

// PutBucketACL sets a canned ACL on the bucket.
func (c *Client) PutBucketACL(ctx context.Context, bucket string, acl types.BucketCannedACL) Result {
	_, err := c.api.PutBucketAcl(ctx, &s3.PutBucketAclInput{
		Bucket: aws.String(bucket),
		ACL:    acl,
	})
	if err != nil {
		return failure(err)
	}
	return success("Bucket ACL set to %s", acl)
}

// GetBucketACL returns the bucket's grant count and owner.
func (c *Client) GetBucketACL(ctx context.Context, bucket string) Result {
	resp, err := c.api.GetBucketAcl(ctx, &s3.GetBucketAclInput{Bucket: aws.String(bucket)})
	if err != nil {
		return failure(err)
	}
	owner := "Unknown"
	if resp.Owner != nil && resp.Owner.DisplayName != nil {
		owner = *resp.Owner.DisplayName
	}
	grants := len(resp.Grants)
	return success("Bucket has %d grants", grants).
		With("owner", owner).
		With("grants_count", grants)
}

// PutBucketTagging replaces the bucket tag set.
func (c *Client) PutBucketTagging(ctx context.Context, bucket string, tags map[string]string) Result {
	_, err := c.api.PutBucketTagging(ctx, &s3.PutBucketTaggingInput{
		Bucket:  aws.String(bucket),
		Tagging: &types.Tagging{TagSet: toTagSet(tags)},
	})
	if err != nil {
		return failure(err)
	}
	return success("Tags added to bucket %s", bucket)
}

// GetBucketTagging returns the bucket tag set.
func (c *Client) GetBucketTagging(ctx context.Context, bucket string) Result {
	resp, err := c.api.GetBucketTagging(ctx, &s3.GetBucketTaggingInput{Bucket: aws.String(bucket)})
	if err != nil {
		return failure(err)
	}
	tags := fromTagSet(resp.TagSet)
	return success("Retrieved %d tags", len(tags)).With("tags", tags)
}

// DeleteBucketTagging removes all tags from the bucket.
func (c *Client) DeleteBucketTagging(ctx context.Context, bucket string) Result {
	_, err := c.api.DeleteBucketTagging(ctx, &s3.DeleteBucketTaggingInput{Bucket: aws.String(bucket)})
	if err != nil {
		return failure(err)
	}
	return success("Tags deleted from bucket %s", bucket)
}

// PutBucketCORS sets the CORS configuration.
func (c *Client) PutBucketCORS(ctx context.Context, bucket string, rules []types.CORSRule) Result {
	_, err := c.api.PutBucketCors(ctx, &s3.PutBucketCorsInput{
		Bucket:            aws.String(bucket),
		CORSConfiguration: &types.CORSConfiguration{CORSRules: rules},
	})
	if err != nil {
		return failure(err)
	}
	return success("CORS rules added to bucket %s", bucket)
}

// GetBucketCORS returns the number of configured CORS rules.
func (c *Client) GetBucketCORS(ctx context.Context, bucket string) Result {
	resp, err := c.api.GetBucketCors(ctx, &s3.GetBucketCorsInput{Bucket: aws.String(bucket)})
	if err != nil {
		return failure(err)
	}
	count := len(resp.CORSRules)
	return success("Found %d CORS rules", count).With("rules_count", count)
}

// DeleteBucketCORS removes the CORS configuration.
func (c *Client) DeleteBucketCORS(ctx context.Context, bucket string) Result {
	_, err := c.api.DeleteBucketCors(ctx, &s3.DeleteBucketCorsInput{Bucket: aws.String(bucket)})
	if err != nil {
		return failure(err)
	}
	return success("CORS configuration deleted from %s", bucket)
}

// EnableBucketVersioning turns on versioning.
func (c *Client) EnableBucketVersioning(ctx context.Context, bucket string) Result {
	return c.putVersioning(ctx, bucket, types.BucketVersioningStatusEnabled)
}

// SuspendBucketVersioning suspends versioning.
func (c *Client) SuspendBucketVersioning(ctx context.Context, bucket string) Result {
	return c.putVersioning(ctx, bucket, types.BucketVersioningStatusSuspended)
}

func (c *Client) putVersioning(ctx context.Context, bucket string, status types.BucketVersioningStatus) Result {
	_, err := c.api.PutBucketVersioning(ctx, &s3.PutBucketVersioningInput{
		Bucket:                  aws.String(bucket),
		VersioningConfiguration: &types.VersioningConfiguration{Status: status},
	})
	if err != nil {
		return failure(err)
	}
	switch status {
	case types.BucketVersioningStatusEnabled:
		return success("Versioning enabled for bucket %s", bucket)
	default:
		return success("Versioning suspended for bucket %s", bucket)
	}
}

// GetBucketVersioning returns the versioning status, "Not Set" when the
// bucket never had versioning configured.
func (c *Client) GetBucketVersioning(ctx context.Context, bucket string) Result {
	resp, err := c.api.GetBucketVersioning(ctx, &s3.GetBucketVersioningInput{Bucket: aws.String(bucket)})
	if err != nil {
		return failure(err)
	}
	status := string(resp.Status)
	if status == "" {
		status = "Not Set"
	}
	return success("Bucket versioning status: %s", status).With("versioning_status", status)
}

// PutPublicAccessBlock applies the public access block configuration.
func (c *Client) PutPublicAccessBlock(ctx context.Context, bucket string, blockAll bool) Result {
	_, err := c.api.PutPublicAccessBlock(ctx, &s3.PutPublicAccessBlockInput{
		Bucket: aws.String(bucket),
		PublicAccessBlockConfiguration: &types.PublicAccessBlockConfiguration{
			BlockPublicAcls:       aws.Bool(blockAll),
			IgnorePublicAcls:      aws.Bool(blockAll),
			BlockPublicPolicy:     aws.Bool(blockAll),
			RestrictPublicBuckets: aws.Bool(blockAll),
		},
	})
	if err != nil {
		return failure(err)
	}
	return success("Public access block applied to %s", bucket)
}

// GetPublicAccessBlock returns the public access block configuration.
func (c *Client) GetPublicAccessBlock(ctx context.Context, bucket string) Result {
	resp, err := c.api.GetPublicAccessBlock(ctx, &s3.GetPublicAccessBlockInput{Bucket: aws.String(bucket)})
	if err != nil {
		return failure(err)
	}
	cfg := resp.PublicAccessBlockConfiguration
	if cfg == nil {
		return failuref("public access block configuration missing from response")
	}
	return success("Public access block configuration retrieved").
		With("block_public_acls", aws.ToBool(cfg.BlockPublicAcls)).
		With("ignore_public_acls", aws.ToBool(cfg.IgnorePublicAcls)).
		With("block_public_policy", aws.ToBool(cfg.BlockPublicPolicy)).
		With("restrict_public_buckets", aws.ToBool(cfg.RestrictPublicBuckets))
}

// PutBucketPolicy applies a policy document. A nil policy installs a
// permissive default scoped to the bucket.
func (c *Client) PutBucketPolicy(ctx context.Context, bucket string, policy map[string]any) Result {
	if policy == nil {
		policy = map[string]any{
			"Version": "2012-10-17",
			"Statement": []map[string]any{{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:*",
				"Resource": []string{
					fmt.Sprintf("arn:aws:s3:::%s", bucket),
					fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
				},
			}},
		}
	}

	raw, err := json.Marshal(policy)
	if err != nil {
		return failuref("marshal bucket policy: %v", err)
	}

	_, err = c.api.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(bucket),
		Policy: aws.String(string(raw)),
	})
	if err != nil {
		return failure(err)
	}
	return success("Bucket policy applied to %s", bucket)
}

// GetBucketPolicy returns the policy document.
func (c *Client) GetBucketPolicy(ctx context.Context, bucket string) Result {
	resp, err := c.api.GetBucketPolicy(ctx, &s3.GetBucketPolicyInput{Bucket: aws.String(bucket)})
	if err != nil {
		if Classify(err) == KindNoSuchConfig {
			return Result{Status: StatusError, Message: "No bucket policy found", Kind: KindNoSuchConfig}
		}
		return failure(err)
	}
	return success("Bucket policy retrieved for %s", bucket).
		With("policy", aws.ToString(resp.Policy))
}

// DeleteBucketPolicy removes the policy document.
func (c *Client) DeleteBucketPolicy(ctx context.Context, bucket string) Result {
	_, err := c.api.DeleteBucketPolicy(ctx, &s3.DeleteBucketPolicyInput{Bucket: aws.String(bucket)})
	if err != nil {
		return failure(err)
	}
	return success("Bucket policy deleted from %s", bucket)
}

func toTagSet(tags map[string]string) []types.Tag {
	set := make([]types.Tag, 0, len(tags))
	for k, v := range tags {
		set = append(set, types.Tag{Key: aws.String(k), Value: aws.String(v)})
	}
	return set
}

func fromTagSet(set []types.Tag) map[string]string {
	tags := make(map[string]string, len(set))
	for _, tag := range set {
		tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}
	return tags
}
