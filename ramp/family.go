// Copyright (c) 2025, Okscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"fmt"

	"github.com/okscale/okscale/oklch"
)

// HueBehavior determines how a family's hue varies across its steps:
// either fixed at the family's base angle, or ramped along a [HueCurve].
// It is a closed two-variant type; see [FixedHue] and [RampedHue].
type HueBehavior interface {

	// hueValues returns the per-step hue angles for the family,
	// given its base hue.
	hueValues(base float32, stepCount int) []float32

	// validate checks the behavior's configuration.
	validate() error
}

// FixedHue keeps every step at the family's base hue angle.
type FixedHue struct{}

func (FixedHue) hueValues(base float32, stepCount int) []float32 {
	out := make([]float32, stepCount)
	for i := range out {
		out[i] = base
	}
	return out
}

func (FixedHue) validate() error { return nil }

// RampedHue varies hue across the ramp along Curve, the optical
// correction that keeps e.g. dark yellows from reading as green.
type RampedHue struct {
	Curve HueCurve
}

func (r RampedHue) hueValues(base float32, stepCount int) []float32 {
	return r.Curve.Values(stepCount)
}

func (r RampedHue) validate() error { return r.Curve.Validate() }

// Family is one hue family of a palette: a base hue angle with the shaping
// curves that generate its ramp. Steps is fully derived from the parameters
// by [Registry.Generate]; apart from the explicit bulk adjustments it is
// never edited step by step.
type Family struct {

	// Name identifies the family within its registry, e.g. "blue".
	Name string

	// Hue is the base hue angle in degrees, [0, 360).
	Hue float32

	// RefLightness and RefChroma are the informational reference values
	// for the family's key color, used when computing derived presets.
	RefLightness float32
	RefChroma    float32

	// Lightness and Chroma shape the ramp; HueShift selects fixed or
	// ramped hue behavior.
	Lightness LightnessCurve
	Chroma    ChromaCurve
	HueShift  HueBehavior

	// GamutAware clamps each step's chroma to the sRGB boundary during
	// generation. Strictly per-family; there is no global flag of record.
	GamutAware bool

	// Steps is the family's current generated ramp, light to dark.
	Steps []oklch.LCH
}

// Validate checks all of the family's curve parameters without touching
// its state.
func (f *Family) Validate() error {
	if f.Hue < 0 || f.Hue >= 360 {
		return fmt.Errorf("%w: base hue %g must be in [0, 360)", ErrInvalidCurve, f.Hue)
	}
	if err := f.Lightness.Validate(); err != nil {
		return fmt.Errorf("family %s: %w", f.Name, err)
	}
	if err := f.Chroma.Validate(); err != nil {
		return fmt.Errorf("family %s: %w", f.Name, err)
	}
	hb := f.HueShift
	if hb == nil {
		hb = FixedHue{}
	}
	if err := hb.validate(); err != nil {
		return fmt.Errorf("family %s: %w", f.Name, err)
	}
	return nil
}

// RefIndex is the index of the family's reference step, the middle of
// the ramp, which the bulk adjustments anchor on.
func (f *Family) RefIndex() int {
	return len(f.Steps) / 2
}

// StepLabels returns the conventional design-token weights for an
// n-step ramp, starting at 50 and stepping by 100. The common 10 and 11
// step ramps additionally end on the 850/950 half-weight; other lengths
// keep the plain 100-spaced terminal weight.
func StepLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		switch {
		case i == 0:
			out[i] = "50"
		case i == n-1 && (n == 10 || n == 11):
			out[i] = fmt.Sprintf("%d", (n-1)*100-50)
		default:
			out[i] = fmt.Sprintf("%d", i*100)
		}
	}
	return out
}
