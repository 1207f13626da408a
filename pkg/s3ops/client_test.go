// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package s3ops

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBucketInput_USEast1OmitsConstraint(t *testing.T) {
	input := createBucketInput("my-bucket", "us-east-1", false)

	require.NotNil(t, input.Bucket)
	assert.Equal(t, "my-bucket", *input.Bucket)
	assert.Nil(t, input.CreateBucketConfiguration, "us-east-1 must not send a location constraint")
	assert.Nil(t, input.ObjectLockEnabledForBucket)
}

func TestCreateBucketInput_OtherRegionsIncludeConstraint(t *testing.T) {
	input := createBucketInput("my-bucket", "eu-west-1", false)

	require.NotNil(t, input.CreateBucketConfiguration)
	assert.Equal(t, "eu-west-1", string(input.CreateBucketConfiguration.LocationConstraint))
}

func TestCreateBucketInput_ObjectLock(t *testing.T) {
	input := createBucketInput("my-bucket", "us-east-1", true)

	assert.True(t, aws.ToBool(input.ObjectLockEnabledForBucket))
	assert.Nil(t, input.CreateBucketConfiguration)
}
