// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package s3ops

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// PutObject uploads the contents of a local file.
func (c *Client) PutObject(ctx context.Context, bucket, key, filePath string) Result {
	f, err := os.Open(filePath)
	if err != nil {
		return failuref("File not found: %s", filePath)
	}
	defer f.Close()

	resp, err := c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return failure(err)
	}
	return success("Object %s uploaded successfully", key).
		With("etag", aws.ToString(resp.ETag))
}

// PutObjectBytes uploads in-memory content.
func (c *Client) PutObjectBytes(ctx context.Context, bucket, key string, data []byte) Result {
	resp, err := c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return failure(err)
	}
	return success("Object %s uploaded successfully", key).
		With("etag", aws.ToString(resp.ETag)).
		With("size", int64(len(data)))
}

// GetObject downloads an object. When destPath is non-empty the body is
// written there; otherwise it is drained and only counted.
func (c *Client) GetObject(ctx context.Context, bucket, key, destPath string) Result {
	resp, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return failure(err)
	}
	defer resp.Body.Close()

	var written int64
	if destPath != "" {
		f, err := os.Create(destPath)
		if err != nil {
			return failuref("Unexpected error: %v", err)
		}
		defer f.Close()
		written, err = io.Copy(f, resp.Body)
		if err != nil {
			return failuref("Unexpected error: %v", err)
		}
	} else {
		written, err = io.Copy(io.Discard, resp.Body)
		if err != nil {
			return failuref("Unexpected error: %v", err)
		}
	}

	return success("Object %s downloaded successfully", key).
		With("size", written).
		With("etag", aws.ToString(resp.ETag)).
		With("encryption", string(resp.ServerSideEncryption))
}

// HeadObject checks object existence and returns its metadata.
func (c *Client) HeadObject(ctx context.Context, bucket, key string) Result {
	resp, err := c.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if Classify(err) == KindNotFound {
			return notFound("Object")
		}
		return failure(err)
	}
	contentType := aws.ToString(resp.ContentType)
	if contentType == "" {
		contentType = "N/A"
	}
	res := success("Object %s exists", key).
		With("size", aws.ToInt64(resp.ContentLength)).
		With("content_type", contentType).
		With("etag", aws.ToString(resp.ETag))
	if resp.LastModified != nil {
		res = res.With("last_modified", resp.LastModified.UTC())
	}
	return res
}

// DeleteObject removes a single object.
func (c *Client) DeleteObject(ctx context.Context, bucket, key string) Result {
	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return failure(err)
	}
	return success("Object %s deleted successfully", key)
}

// DeleteObjects removes a batch of objects in one request.
func (c *Client) DeleteObjects(ctx context.Context, bucket string, keys []string) Result {
	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(key)})
	}

	resp, err := c.api.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &types.Delete{Objects: objects},
	})
	if err != nil {
		return failure(err)
	}
	deleted := len(resp.Deleted)
	failed := len(resp.Errors)
	return success("Deleted %d objects with %d errors", deleted, failed).
		With("deleted", deleted).
		With("errors", failed)
}

// CopyObject copies srcBucket/srcKey to dstBucket/dstKey.
func (c *Client) CopyObject(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) Result {
	_, err := c.api.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(dstBucket),
		Key:        aws.String(dstKey),
		CopySource: aws.String(srcBucket + "/" + srcKey),
	})
	if err != nil {
		return failure(err)
	}
	return success("Object copied to %s/%s", dstBucket, dstKey)
}

// ListObjects lists the bucket's objects under a prefix.
func (c *Client) ListObjects(ctx context.Context, bucket, prefix string) Result {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(bucket)}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}
	resp, err := c.api.ListObjectsV2(ctx, input)
	if err != nil {
		return failure(err)
	}
	keys := make([]string, 0, len(resp.Contents))
	for _, obj := range resp.Contents {
		keys = append(keys, aws.ToString(obj.Key))
	}
	return success("Found %d objects", len(keys)).
		With("count", len(keys)).
		With("keys", keys)
}

// ListObjectVersions lists all object versions in a versioned bucket.
func (c *Client) ListObjectVersions(ctx context.Context, bucket string) Result {
	resp, err := c.api.ListObjectVersions(ctx, &s3.ListObjectVersionsInput{Bucket: aws.String(bucket)})
	if err != nil {
		return failure(err)
	}
	count := len(resp.Versions)
	return success("Found %d object versions", count).With("versions_count", count)
}

// PutObjectACL sets a canned ACL on an object.
func (c *Client) PutObjectACL(ctx context.Context, bucket, key string, acl types.ObjectCannedACL) Result {
	_, err := c.api.PutObjectAcl(ctx, &s3.PutObjectAclInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		ACL:    acl,
	})
	if err != nil {
		return failure(err)
	}
	return success("Object ACL set to %s", acl)
}

// GetObjectACL returns the object's grant count.
func (c *Client) GetObjectACL(ctx context.Context, bucket, key string) Result {
	resp, err := c.api.GetObjectAcl(ctx, &s3.GetObjectAclInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return failure(err)
	}
	grants := len(resp.Grants)
	return success("Object has %d grants", grants).With("grants_count", grants)
}

// PutObjectTagging replaces an object's tag set.
func (c *Client) PutObjectTagging(ctx context.Context, bucket, key string, tags map[string]string) Result {
	_, err := c.api.PutObjectTagging(ctx, &s3.PutObjectTaggingInput{
		Bucket:  aws.String(bucket),
		Key:     aws.String(key),
		Tagging: &types.Tagging{TagSet: toTagSet(tags)},
	})
	if err != nil {
		return failure(err)
	}
	return success("Tags added to object %s", key)
}

// GetObjectTagging returns an object's tag set.
func (c *Client) GetObjectTagging(ctx context.Context, bucket, key string) Result {
	resp, err := c.api.GetObjectTagging(ctx, &s3.GetObjectTaggingInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return failure(err)
	}
	tags := fromTagSet(resp.TagSet)
	return success("Retrieved %d tags", len(tags)).With("tags", tags)
}

// DeleteObjectTagging removes all tags from an object.
func (c *Client) DeleteObjectTagging(ctx context.Context, bucket, key string) Result {
	_, err := c.api.DeleteObjectTagging(ctx, &s3.DeleteObjectTaggingInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return failure(err)
	}
	return success("Tags deleted from object %s", key)
}
