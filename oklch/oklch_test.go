// Copyright (c) 2025, Okscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklch

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhiteBlack(t *testing.T) {
	r, g, b := LCH{L: 1, C: 0, H: 0}.SRGB()
	assert.InDelta(t, 1, r, 1e-3)
	assert.InDelta(t, 1, g, 1e-3)
	assert.InDelta(t, 1, b, 1e-3)

	r, g, b = LCH{L: 0, C: 0, H: 0}.SRGB()
	assert.InDelta(t, 0, r, 1e-3)
	assert.InDelta(t, 0, g, 1e-3)
	assert.InDelta(t, 0, b, 1e-3)
}

func TestFromSRGBPrimaries(t *testing.T) {
	// reference values from the CSS Color 4 OKLab definition
	red := FromSRGB(1, 0, 0)
	assert.InDelta(t, 0.628, red.L, 0.01)
	assert.InDelta(t, 0.258, red.C, 0.01)
	assert.InDelta(t, 29.23, red.H, 0.5)

	green := FromSRGB(0, 1, 0)
	assert.InDelta(t, 0.866, green.L, 0.01)
	assert.InDelta(t, 0.295, green.C, 0.01)
	assert.InDelta(t, 142.5, green.H, 0.5)

	blue := FromSRGB(0, 0, 1)
	assert.InDelta(t, 0.452, blue.L, 0.01)
	assert.InDelta(t, 0.313, blue.C, 0.01)
	assert.InDelta(t, 264.05, blue.H, 0.5)
}

func TestRoundTrip(t *testing.T) {
	for _, lch := range []LCH{
		{L: 0.62, C: 0.11, H: 25},
		{L: 0.5, C: 0.05, H: 180},
		{L: 0.9, C: 0.02, H: 300},
		{L: 0.3, C: 0, H: 0},
	} {
		r, g, b := lch.SRGB()
		back := FromSRGB(r, g, b)
		assert.InDelta(t, lch.L, back.L, 2e-3, "L for %v", lch)
		assert.InDelta(t, lch.C, back.C, 2e-3, "C for %v", lch)
		if lch.C > 0.01 {
			assert.InDelta(t, lch.H, back.H, 0.5, "H for %v", lch)
		}
	}
}

func TestNormHue(t *testing.T) {
	assert.InDelta(t, 10, NormHue(370), 1e-4)
	assert.InDelta(t, 350, NormHue(-10), 1e-4)
	assert.InDelta(t, 0, NormHue(360), 1e-4)
	assert.InDelta(t, 42, NormHue(42), 1e-4)

	// a tiny negative residue must fold to 0, never round up to 360
	for _, h := range []float32{-1e-5, -1e-7, 360 - 1e-7, 720 - 1e-7} {
		got := NormHue(h)
		assert.GreaterOrEqual(t, got, float32(0), "h=%g", h)
		assert.Less(t, got, float32(360), "h=%g", h)
	}
	assert.Zero(t, NormHue(-1e-5))
}

func TestTestersAgree(t *testing.T) {
	fb, cf := Fallback{}, Colorful{}
	disagree := 0
	for l := float32(0.1); l <= 0.95; l += 0.05 {
		for h := float32(0); h < 360; h += 15 {
			for c := float32(0); c <= 0.4; c += 0.01 {
				lch := LCH{L: l, C: c, H: h}
				if fb.InGamut(lch) != cf.InGamut(lch) {
					// tolerate disagreement only right at the boundary
					in := fb.InGamut(LCH{L: l, C: c - 0.002, H: h})
					out := fb.InGamut(LCH{L: l, C: c + 0.002, H: h})
					if in == out {
						disagree++
					}
				}
			}
		}
	}
	assert.Zero(t, disagree)
}

func TestAchromaticAlwaysInGamut(t *testing.T) {
	for _, tester := range []Tester{Fallback{}, Colorful{}} {
		for l := float32(0); l <= 1; l += 0.1 {
			assert.True(t, tester.InGamut(LCH{L: l, C: 0, H: 120}), "l=%g", l)
		}
	}
}

func TestColorInterface(t *testing.T) {
	var _ color.Color = LCH{}
	c := LCH{L: 0.62, C: 0.11, H: 25}.AsRGBA()
	assert.EqualValues(t, 255, c.A)
	assert.Greater(t, c.R, c.B)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ffffff", LCH{L: 1, C: 0, H: 0}.Hex())
	assert.Equal(t, "#000000", LCH{L: 0, C: 0, H: 0}.Hex())
}
