// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

// Package suite runs registered scenarios against a live endpoint.
// Each scenario declares its remote preconditions; the runner
// establishes them, executes the body, and records exactly one result
// per scenario. A failing scenario never stops the run.
package suite

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LeeDigitalWorks/s3probe/pkg/fixtures"
	"github.com/LeeDigitalWorks/s3probe/pkg/probelog"
	"github.com/LeeDigitalWorks/s3probe/pkg/s3ops"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Object keys used across scenarios. Fixed names keep preconditions
// idempotent: establishing an object twice just overwrites it.
const (
	keyObject      = "test-object.txt"
	keySecond      = "test-object-2.txt"
	keyCopy        = "test-object-copy.txt"
	key1KB         = "test-object-1kb.bin"
	key5MB         = "test-object-5mb.bin"
	key10MB        = "test-object-10mb.bin"
	key50MB        = "test-object-50mb.bin"
	keySSE         = "test-object-sse.txt"
	keyLock        = "test-object-lock.txt"
	keyConditional = "test-object-conditional.txt"
	keyMultipart   = "test-object-multipart.txt"
)

// Record is one appended scenario outcome. The slice of records is
// append-only; reruns of a name append again rather than overwrite.
type Record struct {
	Name   string
	Result s3ops.Result
}

// Summary aggregates a finished run.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Records []Record
}

// UnknownScenarioError reports a run-one request for a name that is
// not registered. It carries the registry so callers can print the
// available names; no remote call is made.
type UnknownScenarioError struct {
	Name     string
	Registry *Registry
}

func (e *UnknownScenarioError) Error() string {
	return fmt.Sprintf("test %q not found", e.Name)
}

// Suite holds the state of one run: the operation client, fixture
// manager, registry, and the per-run bucket names.
type Suite struct {
	ops *s3ops.Client
	fx  *fixtures.Manager
	reg *Registry
	out io.Writer

	ctx        context.Context
	bucket     string
	lockBucket string
	records    []Record
}

// Option configures a Suite.
type Option func(*Suite)

// WithRegistry substitutes the scenario registry.
func WithRegistry(reg *Registry) Option {
	return func(s *Suite) { s.reg = reg }
}

// WithOutput redirects progress output, which defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Suite) { s.out = w }
}

// WithBuckets overrides the generated bucket names.
func WithBuckets(bucket, lockBucket string) Option {
	return func(s *Suite) {
		s.bucket = bucket
		s.lockBucket = lockBucket
	}
}

// New builds a suite with fresh random bucket names and the default
// registry.
func New(ops *s3ops.Client, fx *fixtures.Manager, opts ...Option) (*Suite, error) {
	reg, err := Default()
	if err != nil {
		return nil, err
	}
	s := &Suite{
		ops:        ops,
		fx:         fx,
		reg:        reg,
		out:        os.Stdout,
		bucket:     fixtures.BucketName(),
		lockBucket: fixtures.LockBucketName(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Registry returns the suite's scenario registry.
func (s *Suite) Registry() *Registry {
	return s.reg
}

// RunAll executes every registered scenario in registration order,
// establishing each scenario's preconditions first, then sweeps the
// remote buckets so nothing survives the run. The returned error
// covers setup problems only; scenario failures live in the Summary.
func (s *Suite) RunAll(ctx context.Context) (Summary, error) {
	s.banner("Running S3 API Automation Test Suite - ALL TESTS")

	if err := s.fx.Setup(); err != nil {
		return Summary{}, err
	}
	defer s.fx.Teardown()
	defer s.sweepRemote(ctx)

	s.ctx = ctx
	for i := range s.reg.ordered {
		s.runScenario(&s.reg.ordered[i])
	}

	sum := s.summary()
	s.printSummary(sum)
	return sum, nil
}

// RunOne executes a single scenario by name with only its declared
// preconditions, then cleans up best-effort. An unknown name returns
// UnknownScenarioError before any remote call.
func (s *Suite) RunOne(ctx context.Context, name string) (Summary, error) {
	sc, ok := s.reg.Lookup(name)
	if !ok {
		return Summary{}, &UnknownScenarioError{Name: name, Registry: s.reg}
	}

	s.banner(fmt.Sprintf("Running specific test: %s", name))

	if err := s.fx.Setup(); err != nil {
		return Summary{}, err
	}
	defer s.fx.Teardown()
	defer s.sweepRemote(ctx)

	s.ctx = ctx
	s.runScenario(sc)

	sum := s.summary()
	s.printSummary(sum)
	return sum, nil
}

// runScenario establishes preconditions, runs the body, and records
// the outcome. A panic in the body becomes a recorded failure rather
// than aborting the run.
func (s *Suite) runScenario(sc *Scenario) {
	defer func() {
		if r := recover(); r != nil {
			probelog.Error().Str("test", sc.Name).Msgf("Scenario panicked: %v", r)
			s.record(sc.Name, s3ops.Errorf("panic: %v", r))
		}
	}()

	for _, need := range sc.Needs {
		if res := s.establish(need); !res.OK() {
			s.record(sc.Name, res.Fail(fmt.Sprintf("precondition %q failed: %s", need, res.Message)))
			return
		}
	}

	s.record(sc.Name, sc.Run(s))
}

// establish brings one piece of remote state into existence. All
// establishment operations are idempotent puts, so re-establishing
// already-present state is harmless.
func (s *Suite) establish(need Precondition) s3ops.Result {
	switch need {
	case NeedBucket:
		if res := s.ops.HeadBucket(s.ctx, s.bucket); res.OK() {
			return res
		}
		return s.ops.CreateBucket(s.ctx, s.bucket)
	case NeedLockBucket:
		if res := s.ops.HeadBucket(s.ctx, s.lockBucket); res.OK() {
			return res
		}
		return s.ops.CreateBucketWithObjectLock(s.ctx, s.lockBucket)
	case NeedObject:
		return s.ops.PutObject(s.ctx, s.bucket, keyObject, s.fx.Path(fixtures.SizeText))
	case NeedSecondObject:
		return s.ops.PutObject(s.ctx, s.bucket, keySecond, s.fx.Path(fixtures.SizeText2))
	case NeedVersioning:
		return s.ops.EnableBucketVersioning(s.ctx, s.bucket)
	case Need5MBObject:
		return s.ops.PutObject(s.ctx, s.bucket, key5MB, s.fx.Path(fixtures.Size5MB))
	case Need50MBObject:
		return s.ops.PutObject(s.ctx, s.bucket, key50MB, s.fx.Path(fixtures.Size50MB))
	case NeedSSEObject:
		return s.ops.PutObjectWithSSE(s.ctx, s.bucket, keySSE, s.fx.Path(fixtures.SizeText), types.ServerSideEncryptionAes256)
	case NeedLockObject:
		return s.ops.PutObject(s.ctx, s.lockBucket, keyLock, s.fx.Path(fixtures.SizeText))
	case NeedBucketTags:
		return s.ops.PutBucketTagging(s.ctx, s.bucket, defaultTags())
	case NeedObjectTags:
		return s.ops.PutObjectTagging(s.ctx, s.bucket, keyObject, defaultTags())
	case NeedCORS:
		return s.ops.PutBucketCORS(s.ctx, s.bucket, defaultCORSRules())
	case NeedPolicy:
		return s.ops.PutBucketPolicy(s.ctx, s.bucket, nil)
	case NeedPublicAccessBlock:
		return s.ops.PutPublicAccessBlock(s.ctx, s.bucket, true)
	case NeedEncryption:
		return s.ops.PutBucketEncryption(s.ctx, s.bucket, types.ServerSideEncryptionAes256)
	case NeedLifecycle:
		return s.ops.PutBucketLifecycle(s.ctx, s.bucket, nil)
	case NeedRetention:
		return s.ops.PutObjectRetention(s.ctx, s.lockBucket, keyLock, types.ObjectLockRetentionModeGovernance, 1)
	case NeedLegalHold:
		return s.ops.PutObjectLegalHold(s.ctx, s.lockBucket, keyLock, types.ObjectLockLegalHoldStatusOn)
	}
	return s3ops.Errorf("no establishment defined for precondition %q", need)
}

// record appends the outcome and prints one progress line.
func (s *Suite) record(name string, res s3ops.Result) {
	s.records = append(s.records, Record{Name: name, Result: res})
	mark := "✓"
	if !res.OK() {
		mark = "✗"
	}
	fmt.Fprintf(s.out, "%s %s: %s\n", mark, name, res.Message)
}

// sweepRemote removes everything the run created on the endpoint.
// Best effort: results are logged, never recorded as test outcomes.
func (s *Suite) sweepRemote(ctx context.Context) {
	// Lift the legal hold first or the lock bucket cannot be purged.
	if res := s.ops.PutObjectLegalHold(ctx, s.lockBucket, keyLock, types.ObjectLockLegalHoldStatusOff); !res.OK() {
		probelog.Debug().Str("bucket", s.lockBucket).Msg("No legal hold to lift")
	}
	for _, purge := range []struct {
		bucket string
		bypass bool
	}{
		{s.bucket, false},
		{s.lockBucket, true},
	} {
		res := s.ops.PurgeBucket(ctx, purge.bucket, purge.bypass)
		if !res.OK() && !res.IsNotFound() {
			probelog.Warn().Str("bucket", purge.bucket).Msg("Sweep could not remove bucket: " + res.Message)
		}
	}
}

func (s *Suite) summary() Summary {
	sum := Summary{Total: len(s.records), Records: s.records}
	for _, rec := range s.records {
		if rec.Result.OK() {
			sum.Passed++
		} else {
			sum.Failed++
		}
	}
	return sum
}

func (s *Suite) banner(title string) {
	line := strings.Repeat("=", 60)
	fmt.Fprintf(s.out, "%s\n%s\n%s\n", line, title, line)
}

func (s *Suite) printSummary(sum Summary) {
	line := strings.Repeat("=", 60)
	fmt.Fprintf(s.out, "\n%s\nTEST SUMMARY\n%s\n", line, line)
	fmt.Fprintf(s.out, "Total tests: %d\nPassed: %d\nFailed: %d\n", sum.Total, sum.Passed, sum.Failed)
	if sum.Failed > 0 {
		fmt.Fprintln(s.out, "\nFailed tests:")
		for _, rec := range sum.Records {
			if !rec.Result.OK() {
				fmt.Fprintf(s.out, "  - %s: %s\n", rec.Name, rec.Result.Message)
			}
		}
	}
	fmt.Fprintln(s.out, line)
}

func defaultTags() map[string]string {
	return map[string]string{
		"Environment": "Test",
		"Project":     "S3Automation",
	}
}
