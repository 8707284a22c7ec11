// Copyright (c) 2025, Okscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned when applying a preset name that is not in
// the registry's preset table. The registry's state is left untouched.
var ErrUnknownPreset = errors.New("ramp: unknown preset")

// FamilyParams is the full parameter set a preset assigns to one family.
// Presets are immutable templates: applying one copies these values into
// the matching [Family] and regenerates it.
type FamilyParams struct {
	Hue        float32
	Lightness  LightnessCurve
	Chroma     ChromaCurve
	HueShift   HueBehavior
	GamutAware bool
}

// Validate checks the parameter set the same way [Family.Validate] would
// after assignment.
func (p FamilyParams) Validate() error {
	f := Family{Name: "preset", Hue: p.Hue, Lightness: p.Lightness,
		Chroma: p.Chroma, HueShift: p.HueShift}
	return f.Validate()
}

// Preset is a named mapping from family name to a full parameter set.
// Entries for families the target registry does not hold are ignored;
// families the preset does not name keep their current parameters.
type Preset struct {
	Name     string
	Families map[string]FamilyParams
}

// Validate checks every parameter set in the preset.
func (p Preset) Validate() error {
	for name, fp := range p.Families {
		if err := fp.Validate(); err != nil {
			return fmt.Errorf("preset %s, family %s: %w", p.Name, name, err)
		}
	}
	return nil
}

// apply copies the preset's parameters into f. Steps are not touched here;
// the caller regenerates.
func (p FamilyParams) apply(f *Family) {
	f.Hue = p.Hue
	f.Lightness = p.Lightness
	f.Chroma = p.Chroma
	f.HueShift = p.HueShift
	f.GamutAware = p.GamutAware
}
