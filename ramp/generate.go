// Copyright (c) 2025, Okscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"fmt"

	"github.com/okscale/okscale/gamut"
	"github.com/okscale/okscale/oklch"
)

// Step bounds applied to every generated step, regardless of what the
// curves produce. Lightness is kept off pure black and white so the
// extreme steps stay usable as backgrounds and text colors.
const (
	MinL = 0.05
	MaxL = 0.98
	MaxC = gamut.MaxChroma
)

// Generate evaluates the family's curves at stepCount positions and
// replaces its step sequence. Each step's lightness is clamped to
// [MinL, MaxL] and chroma to [0, MaxC]; when the family is gamut-aware,
// chroma is further limited to the sRGB boundary from solver.
//
// Fails fast on invalid configuration (stepCount < 2, bad curve
// parameters) without mutating the family: either the whole step
// sequence is replaced, or none of it is.
func Generate(f *Family, stepCount int, solver *gamut.Solver) error {
	if stepCount < 2 {
		return fmt.Errorf("%w: step count %d must be at least 2", ErrInvalidCurve, stepCount)
	}
	if err := f.Validate(); err != nil {
		return err
	}
	if f.GamutAware && solver == nil {
		return fmt.Errorf("family %s is gamut-aware but no solver was given", f.Name)
	}

	ls := f.Lightness.Values(stepCount)
	cs := f.Chroma.Values(stepCount)
	hb := f.HueShift
	if hb == nil {
		hb = FixedHue{}
	}
	hs := hb.hueValues(f.Hue, stepCount)

	steps := make([]oklch.LCH, stepCount)
	for i := range steps {
		l := clamp(ls[i], MinL, MaxL)
		c := clamp(cs[i], 0, MaxC)
		h := oklch.NormHue(hs[i])
		if f.GamutAware {
			maxC, err := solver.MaxChroma(l, h)
			if err != nil {
				return fmt.Errorf("family %s: %w", f.Name, err)
			}
			c = min(c, maxC)
		}
		steps[i] = oklch.LCH{L: l, C: c, H: h}
	}
	f.Steps = steps
	return nil
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
