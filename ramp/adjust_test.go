// Copyright (c) 2025, Okscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okscale/okscale/gamut"
	"github.com/okscale/okscale/oklch"
)

func generated(t *testing.T) *Family {
	t.Helper()
	f := testFamily()
	require.NoError(t, Generate(f, 12, gamut.NewSolver(oklch.Fallback{})))
	return f
}

func TestAdjustLightness(t *testing.T) {
	f := generated(t)
	before := append([]oklch.LCH{}, f.Steps...)
	ref := f.RefIndex()
	target := f.Steps[ref].L - 0.1

	require.NoError(t, AdjustLightness(f, target))
	require.Len(t, f.Steps, len(before))
	assert.InDelta(t, target, f.Steps[ref].L, 1e-6)
	for i := range f.Steps {
		// uniform additive shift, chroma and hue untouched
		assert.InDelta(t, before[i].L-0.1, f.Steps[i].L, 1e-6, "step %d", i)
		assert.Equal(t, before[i].C, f.Steps[i].C, "step %d", i)
		assert.Equal(t, before[i].H, f.Steps[i].H, "step %d", i)
	}
}

func TestAdjustLightnessClamps(t *testing.T) {
	f := generated(t)
	require.NoError(t, AdjustLightness(f, 0.99))
	for i, s := range f.Steps {
		assert.GreaterOrEqual(t, s.L, float32(0), "step %d", i)
		assert.LessOrEqual(t, s.L, float32(1), "step %d", i)
	}
}

func TestAdjustChroma(t *testing.T) {
	f := generated(t)
	before := append([]oklch.LCH{}, f.Steps...)
	ref := f.RefIndex()
	target := f.Steps[ref].C * 0.5

	require.NoError(t, AdjustChroma(f, target))
	assert.InDelta(t, target, f.Steps[ref].C, 1e-6)
	for i := range f.Steps {
		// uniform multiplicative scale, lightness and hue untouched
		assert.InDelta(t, before[i].C*0.5, f.Steps[i].C, 1e-6, "step %d", i)
		assert.Equal(t, before[i].L, f.Steps[i].L, "step %d", i)
		assert.Equal(t, before[i].H, f.Steps[i].H, "step %d", i)
	}
}

func TestAdjustChromaZeroReference(t *testing.T) {
	f := generated(t)
	for i := range f.Steps {
		f.Steps[i].C = 0
	}
	f.Steps[0].C = 0.1
	require.NoError(t, AdjustChroma(f, 0.2))
	// reference chroma is 0: ratio pins to 1, nothing changes
	assert.Equal(t, float32(0.1), f.Steps[0].C)
	assert.Equal(t, float32(0), f.Steps[6].C)
}

func TestAdjustChromaClamps(t *testing.T) {
	f := generated(t)
	require.NoError(t, AdjustChroma(f, 3))
	for i, s := range f.Steps {
		assert.LessOrEqual(t, s.C, float32(MaxC), "step %d", i)
	}
}

func TestAdjustHue(t *testing.T) {
	solver := gamut.NewSolver(oklch.Fallback{})
	f := testFamily()
	f.HueShift = RampedHue{Curve: HueCurve{Start: 105, End: 78, Type: Linear}}
	require.NoError(t, Generate(f, 12, solver))

	require.NoError(t, AdjustHue(f, 370))
	assert.Equal(t, float32(10), f.Hue)
	assert.Equal(t, FixedHue{}, f.HueShift, "ramping is discarded")
	for i, s := range f.Steps {
		assert.Equal(t, float32(10), s.H, "step %d", i)
	}
}

func TestAdjustWithoutSteps(t *testing.T) {
	f := testFamily()
	assert.Error(t, AdjustLightness(f, 0.5))
	assert.Error(t, AdjustChroma(f, 0.1))
	assert.Error(t, AdjustHue(f, 100))
}
