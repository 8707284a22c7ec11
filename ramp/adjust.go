// Copyright (c) 2025, Okscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"fmt"

	"github.com/okscale/okscale/oklch"
)

// Bulk adjustments reposition an already-generated ramp without
// re-evaluating the curves, for quick interactive edits. None of them
// re-run gamut clamping: responsiveness is worth an occasional slightly
// out-of-gamut step, which the next full generation corrects.

// AdjustLightness shifts every step's lightness by the offset that moves
// the reference (middle) step to target, clamping each step to [0, 1].
// Step count and the curve's relative shape are preserved; chroma and hue
// are untouched.
func AdjustLightness(f *Family, target float32) error {
	if len(f.Steps) == 0 {
		return fmt.Errorf("family %s has no generated steps", f.Name)
	}
	offset := target - f.Steps[f.RefIndex()].L
	for i := range f.Steps {
		f.Steps[i].L = clamp(f.Steps[i].L+offset, 0, 1)
	}
	return nil
}

// AdjustChroma scales every step's chroma by the ratio that moves the
// reference step to target, clamping to [0, MaxC]. A reference chroma of
// zero leaves the ramp unchanged (ratio 1), since scaling cannot recover
// color from gray.
func AdjustChroma(f *Family, target float32) error {
	if len(f.Steps) == 0 {
		return fmt.Errorf("family %s has no generated steps", f.Name)
	}
	ratio := float32(1)
	if cur := f.Steps[f.RefIndex()].C; cur != 0 {
		ratio = target / cur
	}
	for i := range f.Steps {
		f.Steps[i].C = clamp(f.Steps[i].C*ratio, 0, MaxC)
	}
	return nil
}

// AdjustHue overwrites the family's base hue and every step's hue with a
// single angle, normalized to [0, 360). Any ramped hue behavior is
// discarded; regenerate with a [RampedHue] to restore it.
func AdjustHue(f *Family, hue float32) error {
	if len(f.Steps) == 0 {
		return fmt.Errorf("family %s has no generated steps", f.Name)
	}
	h := oklch.NormHue(hue)
	f.Hue = h
	f.HueShift = FixedHue{}
	for i := range f.Steps {
		f.Steps[i].H = h
	}
	return nil
}
