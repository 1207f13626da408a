// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package s3ops

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// PurgeBucket deletes every object version and delete marker in the
// bucket, then the bucket itself. Required for versioned buckets, where
// a plain delete leaves versions behind and DeleteBucket fails with
// BucketNotEmpty. bypassGovernance additionally lifts GOVERNANCE
// retention so locked buckets can be removed.
func (c *Client) PurgeBucket(ctx context.Context, bucket string, bypassGovernance bool) Result {
	var keyMarker, versionMarker *string
	var removed int
	for {
		resp, err := c.api.ListObjectVersions(ctx, &s3.ListObjectVersionsInput{
			Bucket:          aws.String(bucket),
			KeyMarker:       keyMarker,
			VersionIdMarker: versionMarker,
		})
		if err != nil {
			return failure(err)
		}

		objects := make([]types.ObjectIdentifier, 0, len(resp.Versions)+len(resp.DeleteMarkers))
		for _, v := range resp.Versions {
			objects = append(objects, types.ObjectIdentifier{Key: v.Key, VersionId: v.VersionId})
		}
		for _, m := range resp.DeleteMarkers {
			objects = append(objects, types.ObjectIdentifier{Key: m.Key, VersionId: m.VersionId})
		}

		if len(objects) > 0 {
			input := &s3.DeleteObjectsInput{
				Bucket: aws.String(bucket),
				Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
			}
			if bypassGovernance {
				input.BypassGovernanceRetention = aws.Bool(true)
			}
			if _, err := c.api.DeleteObjects(ctx, input); err != nil {
				return failure(err)
			}
			removed += len(objects)
		}

		if !aws.ToBool(resp.IsTruncated) {
			break
		}
		keyMarker = resp.NextKeyMarker
		versionMarker = resp.NextVersionIdMarker
	}

	if _, err := c.api.DeleteBucket(ctx, &s3.DeleteBucketInput{Bucket: aws.String(bucket)}); err != nil {
		return failure(err)
	}
	return success("Bucket %s purged (%d versions removed)", bucket, removed)
}
