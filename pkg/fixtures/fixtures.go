// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

// Package fixtures produces the local artifacts a test run needs:
// deterministic files at fixed sizes and collision-free bucket names.
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LeeDigitalWorks/s3probe/pkg/probelog"

	"github.com/google/uuid"
)

// Size identifies one of the fixed fixture payloads.
type Size int

const (
	SizeText Size = iota
	SizeText2
	Size1KB
	Size5MB
	Size10MB
	Size50MB
)

const (
	kb = 1024
	mb = 1024 * 1024
)

// DownloadPartSize is the default ranged-download part size (10MB).
const DownloadPartSize int64 = 10 * mb

// UploadPartSize is the forced multipart upload part size (5MB, the
// service minimum for non-final parts).
const UploadPartSize int64 = 5 * mb

var specs = map[Size]struct {
	name    string
	size    int64
	pattern byte
}{
	SizeText:  {"test-file.txt", 0, 0},
	SizeText2: {"test-file-2.txt", 0, 0},
	Size1KB:   {"test-1kb.bin", 1 * kb, 'X'},
	Size5MB:   {"test-5mb.bin", 5 * mb, '0'},
	Size10MB:  {"test-10mb.bin", 10 * mb, 'M'},
	Size50MB:  {"test-50mb.bin", 50 * mb, 'L'},
}

const textContent = "This is a test file for S3 automation testing."
const textContent2 = "This is a second test file."

// Manager owns the fixture files for one run. Setup creates everything
// fresh; Teardown removes every tracked path and tolerates files that
// are already gone.
type Manager struct {
	dir   string
	paths map[Size]string
}

// NewManager returns a manager rooted in a fresh directory under the
// platform temp dir.
func NewManager() *Manager {
	return &Manager{paths: make(map[Size]string)}
}

// Setup creates all fixture files. Calling it again creates a new set;
// paths from the previous call become stale.
func (m *Manager) Setup() error {
	dir, err := os.MkdirTemp("", "s3probe-")
	if err != nil {
		return fmt.Errorf("create fixture dir: %w", err)
	}
	m.dir = dir
	m.paths = make(map[Size]string)

	for size, spec := range specs {
		path := filepath.Join(dir, spec.name)
		if err := writeFixture(path, spec.size, spec.pattern, size); err != nil {
			return fmt.Errorf("create fixture %s: %w", spec.name, err)
		}
		m.paths[size] = path
	}

	probelog.Debug().Str("dir", dir).Msg("Fixture files created")
	return nil
}

func writeFixture(path string, size int64, pattern byte, s Size) error {
	if s == SizeText {
		return os.WriteFile(path, []byte(textContent), 0o644)
	}
	if s == SizeText2 {
		return os.WriteFile(path, []byte(textContent2), 0o644)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Write in 1MB chunks so the 50MB fixture never holds the whole
	// payload in memory.
	chunk := []byte(strings.Repeat(string(pattern), mb))
	for remaining := size; remaining > 0; {
		n := int64(len(chunk))
		if remaining < n {
			n = remaining
		}
		if _, err := f.Write(chunk[:n]); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}

// Teardown deletes every tracked fixture. Missing files are not an
// error; teardown must run even after a failed test body.
func (m *Manager) Teardown() {
	for _, path := range m.paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			probelog.Warn().Err(err).Str("path", path).Msg("Failed to remove fixture")
		}
	}
	// Sweep the directory to catch download targets handed out via
	// TempPath.
	if m.dir != "" {
		if err := os.RemoveAll(m.dir); err != nil {
			probelog.Warn().Err(err).Str("dir", m.dir).Msg("Failed to remove fixture dir")
		}
	}
	m.paths = make(map[Size]string)
}

// Path returns the file path for a fixture size. Empty before Setup.
func (m *Manager) Path(size Size) string {
	return m.paths[size]
}

// Bytes reads a fixture's content.
func (m *Manager) Bytes(size Size) ([]byte, error) {
	path := m.paths[size]
	if path == "" {
		return nil, fmt.Errorf("fixture %d not created", size)
	}
	return os.ReadFile(path)
}

// TempPath returns a path in the fixture directory for download
// targets; the file is tracked only via the directory sweep.
func (m *Manager) TempPath(name string) string {
	return filepath.Join(m.dir, name)
}

// ByteSize returns the nominal size of a fixture payload.
func ByteSize(size Size) int64 {
	return specs[size].size
}

// randomSuffix returns 8 hex chars for bucket-name uniqueness across
// concurrent runs; bucket names are globally unique on the service.
func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// BucketName generates the per-run test bucket name.
func BucketName() string {
	return "test-bucket-" + randomSuffix()
}

// LockBucketName generates the per-run Object Lock bucket name.
func LockBucketName() string {
	return "test-bucket-lock-" + randomSuffix()
}
