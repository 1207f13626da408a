// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

// Package verify checks content integrity of uploaded and downloaded
// objects: size equality, and identity-tag (ETag) agreement for both
// single-part and multipart uploads.
package verify

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// multipartETagRe matches the multipart identity-tag shape
// <hex>-<partCount>.
var multipartETagRe = regexp.MustCompile(`^[0-9a-f]+-[1-9][0-9]*$`)

// ETag computes the single-part identity tag (hex MD5) of content.
func ETag(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// StripQuotes removes the surrounding quote characters the service
// puts around reported ETags.
func StripQuotes(etag string) string {
	return strings.Trim(etag, `"`)
}

// CheckSize compares uploaded and downloaded byte counts.
func CheckSize(original, downloaded int64) error {
	if original != downloaded {
		return fmt.Errorf("size mismatch: original %d bytes, downloaded %d bytes", original, downloaded)
	}
	return nil
}

// CheckETag asserts the service-reported tag equals the content hash.
// Only valid for single-part uploads.
func CheckETag(data []byte, reported string) error {
	want := ETag(data)
	got := StripQuotes(reported)
	if got != want {
		return fmt.Errorf("etag mismatch: computed %s, service reported %s", want, got)
	}
	return nil
}

// CheckMultipartETag asserts the reported tag has the multipart shape
// and its part count matches the number of parts transmitted. A tag
// without the part suffix fails distinctly from a count mismatch.
func CheckMultipartETag(reported string, parts int) error {
	tag := StripQuotes(reported)
	if !multipartETagRe.MatchString(tag) {
		return fmt.Errorf("etag %q has no multipart part-count suffix", tag)
	}
	idx := strings.LastIndex(tag, "-")
	count, err := strconv.Atoi(tag[idx+1:])
	if err != nil {
		return fmt.Errorf("etag %q has no multipart part-count suffix", tag)
	}
	if count != parts {
		return fmt.Errorf("etag part count %d does not match %d parts transmitted", count, parts)
	}
	return nil
}

// CheckSSE verifies the reported encryption algorithm when one was
// expected. An empty expectation records the reported value without
// affecting pass/fail.
func CheckSSE(expected, reported string) error {
	if expected == "" {
		return nil
	}
	if reported == "" || reported == "None" {
		return fmt.Errorf("expected %s encryption, service reported none", expected)
	}
	if reported != expected {
		return fmt.Errorf("expected %s encryption, service reported %s", expected, reported)
	}
	return nil
}
