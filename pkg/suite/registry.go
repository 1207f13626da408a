// Copyright 2025 S3Probe Authors
// SPDX-License-Identifier: Apache-2.0

package suite

import (
	"fmt"
	"sort"

	"github.com/LeeDigitalWorks/s3probe/pkg/s3ops"
)

// Precondition names a piece of remote state a scenario requires
// before its body runs. The runner establishes them in slice order.
type Precondition int

const (
	NeedBucket Precondition = iota
	NeedLockBucket
	NeedObject
	NeedSecondObject
	NeedVersioning
	Need5MBObject
	Need50MBObject
	NeedSSEObject
	NeedLockObject
	NeedBucketTags
	NeedObjectTags
	NeedCORS
	NeedPolicy
	NeedPublicAccessBlock
	NeedEncryption
	NeedLifecycle
	NeedRetention
	NeedLegalHold
	preconditionCount // sentinel for validation
)

var preconditionNames = map[Precondition]string{
	NeedBucket:            "bucket",
	NeedLockBucket:        "lock bucket",
	NeedObject:            "object",
	NeedSecondObject:      "second object",
	NeedVersioning:        "versioning enabled",
	Need5MBObject:         "5MB object",
	Need50MBObject:        "50MB object",
	NeedSSEObject:         "encrypted object",
	NeedLockObject:        "object in lock bucket",
	NeedBucketTags:        "bucket tags",
	NeedObjectTags:        "object tags",
	NeedCORS:              "CORS configuration",
	NeedPolicy:            "bucket policy",
	NeedPublicAccessBlock: "public access block",
	NeedEncryption:        "bucket encryption",
	NeedLifecycle:         "lifecycle configuration",
	NeedRetention:         "object retention",
	NeedLegalHold:         "legal hold",
}

func (p Precondition) String() string {
	if name, ok := preconditionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("precondition(%d)", int(p))
}

// Scenario is one registered test case: a unique name, a display
// category, the remote state it depends on, and its body. The body
// returns the final result; the runner records it exactly once.
type Scenario struct {
	Name     string
	Category string
	Needs    []Precondition
	Run      func(*Suite) s3ops.Result
}

// Registry is the ordered scenario table. Slice order is the run-all
// execution order; the map serves run-one lookup.
type Registry struct {
	ordered []Scenario
	byName  map[string]*Scenario
}

// NewRegistry builds a registry and validates it. The validation
// replaces the consistency check that used to be a manual script:
// every name unique, every body present, every precondition defined.
func NewRegistry(scenarios []Scenario) (*Registry, error) {
	r := &Registry{
		ordered: scenarios,
		byName:  make(map[string]*Scenario, len(scenarios)),
	}
	for i := range r.ordered {
		sc := &r.ordered[i]
		if sc.Name == "" {
			return nil, fmt.Errorf("scenario %d has no name", i)
		}
		if sc.Category == "" {
			return nil, fmt.Errorf("scenario %s has no category", sc.Name)
		}
		if sc.Run == nil {
			return nil, fmt.Errorf("scenario %s has no body", sc.Name)
		}
		if _, dup := r.byName[sc.Name]; dup {
			return nil, fmt.Errorf("duplicate scenario name %s", sc.Name)
		}
		for _, need := range sc.Needs {
			if need < 0 || need >= preconditionCount {
				return nil, fmt.Errorf("scenario %s has undefined precondition %d", sc.Name, need)
			}
		}
		r.byName[sc.Name] = sc
	}
	return r, nil
}

// Lookup returns the scenario registered under name.
func (r *Registry) Lookup(name string) (*Scenario, bool) {
	sc, ok := r.byName[name]
	return sc, ok
}

// Len returns the number of registered scenarios.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// Names returns all scenario names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ordered))
	for i := range r.ordered {
		names = append(names, r.ordered[i].Name)
	}
	return names
}

// CategoryGroup holds the scenario names of one category, sorted.
type CategoryGroup struct {
	Category string
	Names    []string
}

// ByCategory groups scenario names by category, preserving the order
// in which categories first appear.
func (r *Registry) ByCategory() []CategoryGroup {
	var order []string
	grouped := make(map[string][]string)
	for i := range r.ordered {
		sc := &r.ordered[i]
		if _, seen := grouped[sc.Category]; !seen {
			order = append(order, sc.Category)
		}
		grouped[sc.Category] = append(grouped[sc.Category], sc.Name)
	}
	groups := make([]CategoryGroup, 0, len(order))
	for _, cat := range order {
		names := grouped[cat]
		sort.Strings(names)
		groups = append(groups, CategoryGroup{Category: cat, Names: names})
	}
	return groups
}
