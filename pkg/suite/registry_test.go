// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package suite

import (
	"testing"

	"github.com/LeeDigitalWorks/s3probe/pkg/s3ops"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopScenario(*Suite) s3ops.Result {
	return s3ops.Success("ok")
}

func TestDefaultRegistry_Valid(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 62, reg.Len())
}

func TestDefaultRegistry_RunAllOrder(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	names := reg.Names()
	require.NotEmpty(t, names)
	assert.Equal(t, "create_bucket", names[0], "bucket creation runs first")
	assert.Equal(t, "delete_bucket", names[len(names)-1], "bucket deletion runs last")

	// The teardown scenarios all run after every non-teardown scenario.
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	assert.Greater(t, index["delete_object"], index["get_object"])
	assert.Greater(t, index["delete_objects"], index["delete_object"])
	assert.Greater(t, index["suspend_bucket_versioning"], index["enable_bucket_versioning"])
	assert.Greater(t, index["delete_bucket"], index["suspend_bucket_versioning"])
}

func TestDefaultRegistry_LookupAndCategories(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	sc, ok := reg.Lookup("put_get_1kb_immediate")
	require.True(t, ok)
	assert.Equal(t, catLargeFile, sc.Category)

	_, ok = reg.Lookup("no_such_test")
	assert.False(t, ok)

	groups := reg.ByCategory()
	var cats []string
	total := 0
	for _, g := range groups {
		cats = append(cats, g.Category)
		total += len(g.Names)
		assert.IsIncreasing(t, g.Names, "names are sorted within a category")
	}
	assert.Equal(t, []string{catBucket, catObject, catLargeFile, catEncryption, catLifecycle, catLock}, cats)
	assert.Equal(t, reg.Len(), total)
}

func TestDefaultRegistry_PreconditionNamesComplete(t *testing.T) {
	// Every defined precondition has a display name; a new enum value
	// without one would print as precondition(N).
	for p := Precondition(0); p < preconditionCount; p++ {
		_, ok := preconditionNames[p]
		assert.True(t, ok, "precondition %d has no display name", int(p))
	}
}

func TestNewRegistry_RejectsDuplicateNames(t *testing.T) {
	_, err := NewRegistry([]Scenario{
		{Name: "dup", Category: "c", Run: noopScenario},
		{Name: "dup", Category: "c", Run: noopScenario},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewRegistry_RejectsMissingPieces(t *testing.T) {
	_, err := NewRegistry([]Scenario{{Category: "c", Run: noopScenario}})
	assert.ErrorContains(t, err, "no name")

	_, err = NewRegistry([]Scenario{{Name: "a", Run: noopScenario}})
	assert.ErrorContains(t, err, "no category")

	_, err = NewRegistry([]Scenario{{Name: "a", Category: "c"}})
	assert.ErrorContains(t, err, "no body")
}

func TestNewRegistry_RejectsUndefinedPrecondition(t *testing.T) {
	_, err := NewRegistry([]Scenario{{
		Name:     "a",
		Category: "c",
		Needs:    []Precondition{preconditionCount + 1},
		Run:      noopScenario,
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined precondition")
}
