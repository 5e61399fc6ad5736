// File: registry.go
// Title: Immutable Domain Registry
// Description: Implements name-based dispatch over a fixed set of domains.
//              The registry is built once at startup and never mutated, so
//              lookups need no locking. Batched step calls fan out across
//              goroutines with results written by index, preserving input
//              order; a panicking domain poisons only its own entry.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial registry implementation

package domain

import (
	"sort"
	"sync"

	materror "github.com/msto63/mAT/pkg/core/error"
)

// Registry dispatches generate and step calls by domain name
type Registry struct {
	domains map[string]Domain
}

// NewRegistry builds the read-only registry from the given domains.
// Later entries with a duplicate name replace earlier ones.
func NewRegistry(domains ...Domain) *Registry {
	table := make(map[string]Domain, len(domains))
	for _, d := range domains {
		table[d.Name()] = d
	}
	return &Registry{domains: table}
}

// Get resolves a domain by name
func (r *Registry) Get(name string) (Domain, error) {
	d, ok := r.domains[name]
	if !ok {
		return nil, materror.Newf("unknown domain %q", name).
			WithCode(materror.CodeUnknownDomain).
			WithSeverity(materror.SeverityLow).
			WithDetail("domain", name)
	}
	return d, nil
}

// Names returns all registered domain names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.domains))
	for name := range r.domains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate dispatches a seeded generation to the named domain
func (r *Registry) Generate(name string, seed uint64) (string, error) {
	d, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return d.Generate(seed), nil
}

// Step enumerates legal actions for every state in the batch. Results
// keep the input order and are elementwise identical to sequential
// single-state calls; the states are processed in parallel since they
// share no data.
func (r *Registry) Step(name string, states []string) ([]StepResult, error) {
	d, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	results := make([]StepResult, len(states))
	var wg sync.WaitGroup
	for i, state := range states {
		wg.Add(1)
		go func(i int, state string) {
			defer wg.Done()
			results[i] = safeStep(d, state)
		}(i, state)
	}
	wg.Wait()

	return results, nil
}

// safeStep runs one step call and converts a panicking domain into an
// invalid per-state result so a defect never crosses the boundary
func safeStep(d Domain, state string) (result StepResult) {
	defer func() {
		if rec := recover(); rec != nil {
			result = StepResult{Valid: false}
		}
	}()

	actions, ok := d.Step(state)
	if !ok {
		return StepResult{Valid: false}
	}
	if actions == nil {
		actions = []Action{}
	}
	return StepResult{Valid: true, Actions: actions}
}
