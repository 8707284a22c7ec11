// Copyright (c) 2025, Okscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklch implements conversion from the cylindrical OKLCH form of the
// OKLab perceptual color space to linear and gamma-encoded sRGB, along with
// sRGB gamut membership testing. The matrices are the fixed ones from
// Ottosson's OKLab definition, as used by CSS Color 4.
package oklch

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// LCH is an OKLCH color: perceptual lightness L (0-1), chroma C
// (colorfulness magnitude, 0 at gray, ~0.32 at the most saturated
// sRGB colors), and hue angle H in degrees (0-360).
type LCH struct {

	// L is the perceptual lightness, 0 = black, 1 = white.
	L float32

	// C is the chroma, the colorfulness magnitude. Unlike L and H it has no
	// fixed upper bound; the usable maximum depends on L and H.
	C float32

	// H is the hue angle in degrees, in [0, 360).
	H float32
}

// New returns an LCH with the hue angle normalized into [0, 360).
func New(l, c, h float32) LCH {
	return LCH{L: l, C: c, H: NormHue(h)}
}

// NormHue normalizes a hue angle in degrees into [0, 360).
func NormHue(h float32) float32 {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// adding 360 to a tiny negative residue rounds to exactly 360,
	// which is outside the half-open range; fold it back to 0
	if h >= 360 {
		h = 0
	}
	return h
}

// DegToRad converts a hue angle in degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math32.Pi
}

// Lab returns the rectangular OKLab a, b components for the color:
// a = C·cos(H), b = C·sin(H), with H converted to radians.
func (lch LCH) Lab() (a, b float32) {
	hr := DegToRad(lch.H)
	return lch.C * math32.Cos(hr), lch.C * math32.Sin(hr)
}

// LinearSRGB converts the color to linear (non-gamma-encoded) sRGB.
// Out-of-gamut colors produce components outside [0, 1]; they are
// not clamped here so that gamut tests see the raw values.
func (lch LCH) LinearSRGB() (r, g, b float32) {
	a, bb := lch.Lab()
	return labToLinearSRGB(lch.L, a, bb)
}

// SRGB converts the color to gamma-encoded sRGB with components
// clamped to [0, 1].
func (lch LCH) SRGB() (r, g, b float32) {
	lr, lg, lb := lch.LinearSRGB()
	r = SRGBFromLinear(clamp01(lr))
	g = SRGBFromLinear(clamp01(lg))
	b = SRGBFromLinear(clamp01(lb))
	return
}

// AsRGBA returns the color as a standard [color.RGBA], clamped into gamut.
func (lch LCH) AsRGBA() color.RGBA {
	r, g, b := lch.SRGB()
	return color.RGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: 255,
	}
}

// RGBA implements the [color.Color] interface.
func (lch LCH) RGBA() (r, g, b, a uint32) {
	rf, gf, bf := lch.SRGB()
	r = uint32(rf*65535 + 0.5)
	g = uint32(gf*65535 + 0.5)
	b = uint32(bf*65535 + 0.5)
	a = 65535
	return
}

func (lch LCH) String() string {
	return fmt.Sprintf("oklch(%g %g %g)", lch.L, lch.C, lch.H)
}

// SRGBFromLinear gamma-encodes one linear sRGB component, per the
// standard sRGB transfer function.
func SRGBFromLinear(v float32) float32 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math32.Pow(v, 1.0/2.4) - 0.055
}

// SRGBToLinear decodes one gamma-encoded sRGB component.
func SRGBToLinear(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// labToLinearSRGB maps OKLab coordinates to linear sRGB: inverse M2 to the
// LMS-like intermediate, cube each component, then inverse M1.
func labToLinearSRGB(l, a, b float32) (r, g, bl float32) {
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b

	lc := lp * lp * lp
	mc := mp * mp * mp
	sc := sp * sp * sp

	r = 4.0767416621*lc - 3.3077115913*mc + 0.2309699292*sc
	g = -1.2684380046*lc + 2.6097574011*mc - 0.3413193965*sc
	bl = -0.0041960863*lc - 0.7034186147*mc + 1.7076147010*sc
	return
}

// LinearSRGBToLab maps linear sRGB to OKLab coordinates: M1 to the LMS-like
// intermediate, cube root each component, then M2.
func LinearSRGBToLab(r, g, b float32) (l, a, bb float32) {
	lm := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	mm := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	sm := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math32.Cbrt(lm)
	mp := math32.Cbrt(mm)
	sp := math32.Cbrt(sm)

	l = 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	a = 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	bb = 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp
	return
}

// FromSRGB returns the OKLCH representation of a gamma-encoded sRGB color
// with components in [0, 1].
func FromSRGB(r, g, b float32) LCH {
	l, a, bb := LinearSRGBToLab(SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b))
	c := math32.Sqrt(a*a + bb*bb)
	h := RadToDeg(math32.Atan2(bb, a))
	return LCH{L: l, C: c, H: NormHue(h)}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
