// Copyright (c) 2025, Okscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklch

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Tester reports whether an OKLCH color can be represented in sRGB.
type Tester interface {

	// InGamut returns true iff the given color, converted to sRGB,
	// has all three channels within [0, 1].
	InGamut(lch LCH) bool
}

// Fallback is a self-contained [Tester] using this package's own conversion
// and transfer function. It has no dependency on an external color library
// and agrees with [Colorful] to within floating-point tolerance.
type Fallback struct{}

func (Fallback) InGamut(lch LCH) bool {
	lr, lg, lb := lch.LinearSRGB()
	return encodedInRange(lr) && encodedInRange(lg) && encodedInRange(lb)
}

func encodedInRange(lin float32) bool {
	// encoding is monotonic, so testing the linear value against the
	// linear ends of [0, 1] is equivalent and avoids two Pow calls
	v := snap(lin)
	return v >= 0 && v <= 1
}

// gamutEps absorbs float32 round-off at the channel extremes, where e.g.
// pure white lands a hair above 1 in linear RGB.
const gamutEps = 1e-5

func snap(v float32) float32 {
	if v > -gamutEps && v < 0 {
		return 0
	}
	if v > 1 && v < 1+gamutEps {
		return 1
	}
	return v
}

// Colorful is a [Tester] backed by github.com/lucasb-eyer/go-colorful,
// which implements the sRGB handling used by CSS Color 4. The OKLab
// step uses the same fixed Ottosson matrices in either case; go-colorful
// owns the linear-to-sRGB encoding and the channel validity test.
type Colorful struct{}

func (Colorful) InGamut(lch LCH) bool {
	lr, lg, lb := lch.LinearSRGB()
	c := colorful.LinearRgb(float64(snap(lr)), float64(snap(lg)), float64(snap(lb)))
	return c.IsValid()
}

// Hex returns the CSS hex string for the color, clamped into sRGB,
// formatted by go-colorful.
func (lch LCH) Hex() string {
	lr, lg, lb := lch.LinearSRGB()
	return colorful.LinearRgb(float64(lr), float64(lg), float64(lb)).Clamped().Hex()
}
