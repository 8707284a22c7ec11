// Copyright (c) 2025, Okscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"fmt"

	"github.com/okscale/okscale/gamut"
)

// Registry owns a fixed set of hue families, the global step count, the
// preset table, and the gamut solver shared by all families. It is an
// explicitly owned store: callers create their own and pass it around,
// so tests and concurrent instances never share hidden state.
//
// A Registry confines all mutation to one goroutine; only the solver's
// cache is internally synchronized.
type Registry struct {
	families []*Family
	byName   map[string]*Family
	presets  map[string]Preset

	stepCount int
	solver    *gamut.Solver
}

// DefaultStepCount is the ramp length registries start with.
const DefaultStepCount = 12

// NewRegistry returns an empty registry with the given solver (nil for
// the default go-colorful-backed one) and [DefaultStepCount] steps.
// The family set is fixed after setup: add families once, then drive
// everything through generation, presets, and adjustments.
func NewRegistry(solver *gamut.Solver) *Registry {
	if solver == nil {
		solver = gamut.NewSolver(nil)
	}
	return &Registry{
		byName:    map[string]*Family{},
		presets:   map[string]Preset{},
		stepCount: DefaultStepCount,
		solver:    solver,
	}
}

// AddFamily registers a family. Duplicate names are a configuration error.
func (r *Registry) AddFamily(f *Family) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if _, ok := r.byName[f.Name]; ok {
		return fmt.Errorf("family %s already registered", f.Name)
	}
	r.families = append(r.families, f)
	r.byName[f.Name] = f
	return nil
}

// AddPreset adds a preset to the registry's table after validating it.
func (r *Registry) AddPreset(p Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.presets[p.Name] = p
	return nil
}

// Family returns the named family, or nil.
func (r *Registry) Family(name string) *Family {
	return r.byName[name]
}

// Families returns the families in registration order. The slice is
// shared; treat it as read-only.
func (r *Registry) Families() []*Family {
	return r.families
}

// PresetNames returns the names in the preset table, unordered.
func (r *Registry) PresetNames() []string {
	names := make([]string, 0, len(r.presets))
	for n := range r.presets {
		names = append(names, n)
	}
	return names
}

// StepCount returns the global step count.
func (r *Registry) StepCount() int {
	return r.stepCount
}

// Solver returns the registry's gamut solver, for collaborators that
// sample gamut boundaries directly.
func (r *Registry) Solver() *gamut.Solver {
	return r.solver
}

// Generate regenerates the named family's steps from its current
// parameters at the global step count.
func (r *Registry) Generate(name string) error {
	f := r.byName[name]
	if f == nil {
		return fmt.Errorf("unknown family %s", name)
	}
	return Generate(f, r.stepCount, r.solver)
}

// RegenerateAll regenerates every family. The first error stops the pass;
// families already regenerated keep their new steps, which is safe because
// regeneration is parameter-driven and repeatable.
func (r *Registry) RegenerateAll() error {
	for _, f := range r.families {
		if err := Generate(f, r.stepCount, r.solver); err != nil {
			return err
		}
	}
	return nil
}

// SetStepCount changes the global step count, clears the gamut cache, and
// regenerates every family. Rejects counts below 2 before mutating.
func (r *Registry) SetStepCount(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: step count %d must be at least 2", ErrInvalidCurve, n)
	}
	r.stepCount = n
	r.solver.Clear()
	return r.RegenerateAll()
}

// SetGamutAware toggles the named family's gamut policy, clears the gamut
// cache, and regenerates that family.
func (r *Registry) SetGamutAware(name string, aware bool) error {
	f := r.byName[name]
	if f == nil {
		return fmt.Errorf("unknown family %s", name)
	}
	f.GamutAware = aware
	r.solver.Clear()
	return Generate(f, r.stepCount, r.solver)
}

// ApplyPreset overwrites matching families' parameters from the named
// preset and regenerates all families. On [ErrUnknownPreset] or a
// validation failure, no family is touched: parameters and regeneration
// run against copies, which replace the registry's families only when
// every one succeeds. If the preset changes any family's gamut policy,
// the gamut cache is cleared, as with [Registry.SetGamutAware].
func (r *Registry) ApplyPreset(name string) error {
	p, ok := r.presets[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	policyChanged := false
	next := make([]Family, len(r.families))
	for i, f := range r.families {
		next[i] = *f
		if fp, ok := p.Families[f.Name]; ok {
			fp.apply(&next[i])
			if next[i].GamutAware != f.GamutAware {
				policyChanged = true
			}
		}
		if err := Generate(&next[i], r.stepCount, r.solver); err != nil {
			return err
		}
	}
	for i, f := range r.families {
		*f = next[i]
	}
	if policyChanged {
		r.solver.Clear()
	}
	return nil
}
