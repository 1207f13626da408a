// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package suite

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/LeeDigitalWorks/s3probe/pkg/fixtures"
	"github.com/LeeDigitalWorks/s3probe/pkg/s3ops"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestSuite builds a suite around a local-only registry; scenarios
// must not touch the remote client.
func newTestSuite(t *testing.T, scenarios []Scenario) (*Suite, *bytes.Buffer) {
	t.Helper()
	reg, err := NewRegistry(scenarios)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	s, err := New(nil, fixtures.NewManager(),
		WithRegistry(reg),
		WithOutput(out),
		WithBuckets("test-bucket-local", "test-bucket-lock-local"))
	require.NoError(t, err)
	s.ctx = context.Background()
	return s, out
}

func TestRunScenario_ContinuesAfterFailure(t *testing.T) {
	s, out := newTestSuite(t, []Scenario{
		{Name: "first", Category: "c", Run: func(*Suite) s3ops.Result { return s3ops.Success("fine") }},
		{Name: "second", Category: "c", Run: func(*Suite) s3ops.Result { return s3ops.Errorf("broken") }},
		{Name: "third", Category: "c", Run: func(*Suite) s3ops.Result { return s3ops.Success("also fine") }},
	})

	for i := range s.reg.ordered {
		s.runScenario(&s.reg.ordered[i])
	}

	sum := s.summary()
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 2, sum.Passed)
	assert.Equal(t, 1, sum.Failed)

	require.Len(t, sum.Records, 3)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{sum.Records[0].Name, sum.Records[1].Name, sum.Records[2].Name})

	assert.Contains(t, out.String(), "✓ first: fine")
	assert.Contains(t, out.String(), "✗ second: broken")
}

func TestRunScenario_PanicBecomesFailure(t *testing.T) {
	s, _ := newTestSuite(t, []Scenario{
		{Name: "explodes", Category: "c", Run: func(*Suite) s3ops.Result { panic("boom") }},
	})

	s.runScenario(&s.reg.ordered[0])

	sum := s.summary()
	require.Equal(t, 1, sum.Total)
	assert.Equal(t, 1, sum.Failed)
	assert.Contains(t, sum.Records[0].Result.Message, "panic: boom")
}

func TestRunScenario_RerunAppends(t *testing.T) {
	s, _ := newTestSuite(t, []Scenario{
		{Name: "only", Category: "c", Run: func(*Suite) s3ops.Result { return s3ops.Success("ok") }},
	})

	s.runScenario(&s.reg.ordered[0])
	s.runScenario(&s.reg.ordered[0])

	sum := s.summary()
	assert.Equal(t, 2, sum.Total, "records are append-only; reruns never overwrite")
}

func TestRunOne_UnknownNameMakesNoRemoteCall(t *testing.T) {
	s, out := newTestSuite(t, []Scenario{
		{Name: "known", Category: "c", Run: func(*Suite) s3ops.Result { return s3ops.Success("ok") }},
	})

	// The suite has no client at all; an unknown name must fail before
	// anything would need one.
	_, err := s.RunOne(context.Background(), "unknown")
	require.Error(t, err)

	var unknown *UnknownScenarioError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "unknown", unknown.Name)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, s.records)
	assert.Empty(t, out.String())
}

func TestEstablish_UndefinedPrecondition(t *testing.T) {
	s, _ := newTestSuite(t, []Scenario{
		{Name: "x", Category: "c", Run: noopScenario},
	})

	res := s.establish(preconditionCount)
	assert.False(t, res.OK())
}

func TestPrintSummary_ListsFailures(t *testing.T) {
	s, out := newTestSuite(t, []Scenario{
		{Name: "bad", Category: "c", Run: func(*Suite) s3ops.Result { return s3ops.Errorf("remote said no") }},
	})

	s.runScenario(&s.reg.ordered[0])
	s.printSummary(s.summary())

	text := out.String()
	assert.Contains(t, text, "TEST SUMMARY")
	assert.Contains(t, text, "Failed: 1")
	assert.Contains(t, text, "- bad: remote said no")
}

func TestUnknownScenarioError_Message(t *testing.T) {
	err := error(&UnknownScenarioError{Name: "whatever"})
	assert.True(t, errors.As(err, new(*UnknownScenarioError)))
	assert.Equal(t, `test "whatever" not found`, err.Error())
}
