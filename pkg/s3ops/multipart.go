// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package s3ops

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// partRange is a closed byte range [Start, End] within an object.
type partRange struct {
	Start int64
	End   int64
}

func (p partRange) header() string {
	return fmt.Sprintf("bytes=%d-%d", p.Start, p.End)
}

// planParts splits an object of the given size into ceil(size/partSize)
// ranges covering [0, size) with no gap and no overlap. The final range
// may be shorter than partSize.
func planParts(size, partSize int64) []partRange {
	if size <= 0 || partSize <= 0 {
		return nil
	}
	ranges := make([]partRange, 0, (size+partSize-1)/partSize)
	for start := int64(0); start < size; start += partSize {
		end := start + partSize - 1
		if end > size-1 {
			end = size - 1
		}
		ranges = append(ranges, partRange{Start: start, End: end})
	}
	return ranges
}

// InitiateMultipartUpload starts a multipart upload and returns its ID.
func (c *Client) InitiateMultipartUpload(ctx context.Context, bucket, key string) Result {
	resp, err := c.api.CreateMultipartUpload(ctx, &s3.CreateMultipartUploadInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return failure(err)
	}
	uploadID := aws.ToString(resp.UploadId)
	return success("Multipart upload initiated with ID: %s", uploadID).
		With("upload_id", uploadID)
}

// ListMultipartUploads lists in-progress multipart uploads.
func (c *Client) ListMultipartUploads(ctx context.Context, bucket string) Result {
	resp, err := c.api.ListMultipartUploads(ctx, &s3.ListMultipartUploadsInput{Bucket: aws.String(bucket)})
	if err != nil {
		return failure(err)
	}
	count := len(resp.Uploads)
	return success("Found %d ongoing multipart uploads", count).With("uploads_count", count)
}

// AbortMultipartUpload abandons an in-progress upload.
func (c *Client) AbortMultipartUpload(ctx context.Context, bucket, key, uploadID string) Result {
	_, err := c.api.AbortMultipartUpload(ctx, &s3.AbortMultipartUploadInput{
		Bucket:   aws.String(bucket),
		Key:      aws.String(key),
		UploadId: aws.String(uploadID),
	})
	if err != nil {
		return failure(err)
	}
	return success("Multipart upload %s aborted", uploadID)
}

// UploadMultipart uploads a local file split into fixed-size parts,
// even when the file is small enough for a single-shot upload. This
// deterministically produces a multipart-shaped ETag (<hash>-<parts>)
// that callers can verify.
func (c *Client) UploadMultipart(ctx context.Context, bucket, key, filePath string, partSize int64) Result {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return failuref("File not found: %s", filePath)
	}
	return c.uploadMultipartBytes(ctx, bucket, key, data, partSize)
}

func (c *Client) uploadMultipartBytes(ctx context.Context, bucket, key string, data []byte, partSize int64) Result {
	ranges := planParts(int64(len(data)), partSize)
	if len(ranges) == 0 {
		return failuref("nothing to upload for %s", key)
	}

	createResp, err := c.api.CreateMultipartUpload(ctx, &s3.CreateMultipartUploadInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return failure(err)
	}
	uploadID := aws.ToString(createResp.UploadId)

	completed := make([]types.CompletedPart, 0, len(ranges))
	for i, r := range ranges {
		partNumber := int32(i + 1)
		partResp, err := c.api.UploadPart(ctx, &s3.UploadPartInput{
			Bucket:     aws.String(bucket),
			Key:        aws.String(key),
			UploadId:   aws.String(uploadID),
			PartNumber: aws.Int32(partNumber),
			Body:       bytes.NewReader(data[r.Start : r.End+1]),
		})
		if err != nil {
			c.abortQuietly(ctx, bucket, key, uploadID)
			return failure(err)
		}
		completed = append(completed, types.CompletedPart{
			ETag:       partResp.ETag,
			PartNumber: aws.Int32(partNumber),
		})
	}

	completeResp, err := c.api.CompleteMultipartUpload(ctx, &s3.CompleteMultipartUploadInput{
		Bucket:   aws.String(bucket),
		Key:      aws.String(key),
		UploadId: aws.String(uploadID),
		MultipartUpload: &types.CompletedMultipartUpload{
			Parts: completed,
		},
	})
	if err != nil {
		c.abortQuietly(ctx, bucket, key, uploadID)
		return failure(err)
	}

	return success("Object %s uploaded in %d parts", key, len(completed)).
		With("parts_uploaded", len(completed)).
		With("etag", aws.ToString(completeResp.ETag)).
		With("size", int64(len(data)))
}

// abortQuietly cleans up a failed multipart upload; the original error
// is what the caller reports.
func (c *Client) abortQuietly(ctx context.Context, bucket, key, uploadID string) {
	_, _ = c.api.AbortMultipartUpload(ctx, &s3.AbortMultipartUploadInput{
		Bucket:   aws.String(bucket),
		Key:      aws.String(key),
		UploadId: aws.String(uploadID),
	})
}

// GetObjectMultipart downloads an object with sequential ranged reads
// of partSize bytes each, concatenating parts in order. When destPath
// is non-empty the reconstructed content is written there.
func (c *Client) GetObjectMultipart(ctx context.Context, bucket, key, destPath string, partSize int64) Result {
	head, err := c.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return failure(err)
	}
	totalSize := aws.ToInt64(head.ContentLength)

	var dest io.Writer = io.Discard
	if destPath != "" {
		f, err := os.Create(destPath)
		if err != nil {
			return failuref("Unexpected error: %v", err)
		}
		defer f.Close()
		dest = f
	}

	var downloaded int64
	ranges := planParts(totalSize, partSize)
	for _, r := range ranges {
		resp, err := c.api.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
			Range:  aws.String(r.header()),
		})
		if err != nil {
			return failure(err)
		}
		n, err := io.Copy(dest, resp.Body)
		resp.Body.Close()
		if err != nil {
			return failuref("Unexpected error: %v", err)
		}
		downloaded += n
	}

	if downloaded != totalSize {
		return failuref("downloaded %d bytes, expected %d", downloaded, totalSize)
	}

	return success("Downloaded object in %d parts (%.2f MB total)",
		len(ranges), float64(totalSize)/(1024*1024)).
		With("total_size", totalSize).
		With("parts_downloaded", len(ranges)).
		With("part_size_mb", float64(partSize)/(1024*1024))
}
