// Copyright (c) 2025, Okscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ramp generates perceptually-uniform OKLCH color ramps for
// design-system palettes. A ramp is described by a small set of shaping
// curves (lightness, chroma, optionally hue) per hue family; generation
// evaluates the curves at each step and, when a family is gamut-aware,
// clamps chroma to the sRGB boundary found by [gamut.Solver].
package ramp

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrInvalidCurve is wrapped by all curve and step-count configuration
// errors, which are reported before any family state is mutated.
var ErrInvalidCurve = errors.New("ramp: invalid curve configuration")

// CurveType selects the easing remap applied to the normalized step
// position for lightness and hue curves.
type CurveType int32

const (
	// Linear applies no remap.
	Linear CurveType = iota

	// EaseIn starts slow: t² .
	EaseIn

	// EaseOut ends slow: 1-(1-t)² .
	EaseOut

	// SCurve is slow at both ends, quadratic in and out.
	SCurve
)

var curveTypeNames = map[CurveType]string{
	Linear:  "linear",
	EaseIn:  "easeIn",
	EaseOut: "easeOut",
	SCurve:  "sCurve",
}

func (ct CurveType) String() string {
	if n, ok := curveTypeNames[ct]; ok {
		return n
	}
	return fmt.Sprintf("CurveType(%d)", int32(ct))
}

// MarshalText implements [encoding.TextMarshaler].
func (ct CurveType) MarshalText() ([]byte, error) {
	n, ok := curveTypeNames[ct]
	if !ok {
		return nil, fmt.Errorf("%w: unknown curve type %d", ErrInvalidCurve, int32(ct))
	}
	return []byte(n), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (ct *CurveType) UnmarshalText(text []byte) error {
	for v, n := range curveTypeNames {
		if n == string(text) {
			*ct = v
			return nil
		}
	}
	return fmt.Errorf("%w: unknown curve type %q", ErrInvalidCurve, text)
}

// ease remaps a normalized position t in [0, 1] per the curve type.
func ease(t float32, ct CurveType) float32 {
	switch ct {
	case EaseIn:
		return t * t
	case EaseOut:
		return 1 - (1-t)*(1-t)
	case SCurve:
		if t < 0.5 {
			return 2 * t * t
		}
		u := -2*t + 2
		return 1 - u*u/2
	default:
		return t
	}
}

// LightnessCurve maps the normalized step position to a lightness,
// easing from Start at the first step to End at the last.
type LightnessCurve struct {
	Start float32   `toml:"start"`
	End   float32   `toml:"end"`
	Type  CurveType `toml:"type"`
}

// Validate rejects endpoints outside [0, 1] or NaN.
func (lc LightnessCurve) Validate() error {
	if !inUnit(lc.Start) || !inUnit(lc.End) {
		return fmt.Errorf("%w: lightness endpoints (%g, %g) must be in [0, 1]",
			ErrInvalidCurve, lc.Start, lc.End)
	}
	return nil
}

// Values evaluates the curve at stepCount evenly spaced positions.
// Pure: identical inputs always yield identical sequences.
func (lc LightnessCurve) Values(stepCount int) []float32 {
	return easedValues(lc.Start, lc.End, lc.Type, stepCount)
}

// HueCurve maps the normalized step position to a hue angle in degrees,
// used by hue-ramped families to correct perceptual hue drift at the
// light and dark ends of a ramp.
type HueCurve struct {
	Start float32   `toml:"start"`
	End   float32   `toml:"end"`
	Type  CurveType `toml:"type"`
}

// Validate rejects NaN endpoints. Angles outside [0, 360) are allowed
// here so a curve can cross 0 (e.g. 350 to 370); step values are
// normalized at generation time.
func (hc HueCurve) Validate() error {
	if math32.IsNaN(hc.Start) || math32.IsNaN(hc.End) {
		return fmt.Errorf("%w: hue endpoints must not be NaN", ErrInvalidCurve)
	}
	return nil
}

// Values evaluates the curve at stepCount evenly spaced positions.
func (hc HueCurve) Values(stepCount int) []float32 {
	return easedValues(hc.Start, hc.End, hc.Type, stepCount)
}

func easedValues(start, end float32, ct CurveType, stepCount int) []float32 {
	out := make([]float32, stepCount)
	for i := range out {
		t := pos(i, stepCount)
		out[i] = start + (end-start)*ease(t, ct)
	}
	return out
}

// pos is the normalized position of step i: i/(stepCount-1),
// with a single step mapping to 0.
func pos(i, stepCount int) float32 {
	if stepCount <= 1 {
		return 0
	}
	return float32(i) / float32(stepCount-1)
}

// ChromaCurve is piecewise linear through three control points:
// (0, Start), (PeakPosition, Peak), (1, End). PeakPosition must lie
// strictly between 0 and 1; either endpoint would collapse one of the
// two segments.
type ChromaCurve struct {
	Start        float32 `toml:"start"`
	Peak         float32 `toml:"peak"`
	End          float32 `toml:"end"`
	PeakPosition float32 `toml:"peakPosition"`
}

// Validate rejects a peak position at or outside the curve endpoints and
// negative or NaN magnitudes. Violations are configuration errors, never
// silently clamped.
func (cc ChromaCurve) Validate() error {
	if !(cc.PeakPosition > 0 && cc.PeakPosition < 1) {
		return fmt.Errorf("%w: chroma peak position %g must be in (0, 1) exclusive",
			ErrInvalidCurve, cc.PeakPosition)
	}
	for _, v := range []float32{cc.Start, cc.Peak, cc.End} {
		if math32.IsNaN(v) || v < 0 {
			return fmt.Errorf("%w: chroma magnitudes (%g, %g, %g) must be >= 0",
				ErrInvalidCurve, cc.Start, cc.Peak, cc.End)
		}
	}
	return nil
}

// Values evaluates the curve at stepCount evenly spaced positions.
// The value at t = PeakPosition is exactly Peak.
func (cc ChromaCurve) Values(stepCount int) []float32 {
	out := make([]float32, stepCount)
	for i := range out {
		t := pos(i, stepCount)
		if t <= cc.PeakPosition {
			out[i] = cc.Start + (cc.Peak-cc.Start)*(t/cc.PeakPosition)
		} else {
			out[i] = cc.Peak + (cc.End-cc.Peak)*((t-cc.PeakPosition)/(1-cc.PeakPosition))
		}
	}
	return out
}

func inUnit(v float32) bool {
	return !math32.IsNaN(v) && v >= 0 && v <= 1
}
