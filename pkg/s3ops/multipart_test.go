// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package s3ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanParts_EvenSplit(t *testing.T) {
	ranges := planParts(100, 25)

	require.Len(t, ranges, 4)
	assert.Equal(t, partRange{Start: 0, End: 24}, ranges[0])
	assert.Equal(t, partRange{Start: 75, End: 99}, ranges[3])
}

func TestPlanParts_ShortFinalPart(t *testing.T) {
	ranges := planParts(10, 4)

	require.Len(t, ranges, 3)
	assert.Equal(t, partRange{Start: 0, End: 3}, ranges[0])
	assert.Equal(t, partRange{Start: 4, End: 7}, ranges[1])
	assert.Equal(t, partRange{Start: 8, End: 9}, ranges[2])
}

func TestPlanParts_SinglePart(t *testing.T) {
	ranges := planParts(10, 100)

	require.Len(t, ranges, 1)
	assert.Equal(t, partRange{Start: 0, End: 9}, ranges[0])
}

func TestPlanParts_CoversEveryByteOnce(t *testing.T) {
	const size = int64(52428800) // 50MB
	const partSize = int64(10485760)

	ranges := planParts(size, partSize)
	require.NotEmpty(t, ranges)

	var next int64
	for _, r := range ranges {
		assert.Equal(t, next, r.Start, "ranges must be contiguous")
		assert.GreaterOrEqual(t, r.End, r.Start)
		next = r.End + 1
	}
	assert.Equal(t, size, next, "ranges must cover the full object")
}

func TestPlanParts_Degenerate(t *testing.T) {
	assert.Nil(t, planParts(0, 10))
	assert.Nil(t, planParts(10, 0))
	assert.Nil(t, planParts(-1, 10))
}

func TestPartRangeHeader(t *testing.T) {
	assert.Equal(t, "bytes=0-9", partRange{Start: 0, End: 9}.header())
	assert.Equal(t, "bytes=10485760-20971519", partRange{Start: 10485760, End: 20971519}.header())
}
