// Copyright (c) 2025, Okscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"github.com/okscale/okscale/gamut"
)

// NewStandard returns a registry preloaded with the standard nine hue
// families plus a neutral gray, the built-in presets, and freshly
// generated steps. Yellow ships hue-ramped: dark yellows drift toward
// orange instead of reading as olive green.
func NewStandard(solver *gamut.Solver) (*Registry, error) {
	r := NewRegistry(solver)
	for _, f := range standardFamilies() {
		if err := r.AddFamily(f); err != nil {
			return nil, err
		}
	}
	for _, p := range builtinPresets() {
		if err := r.AddPreset(p); err != nil {
			return nil, err
		}
	}
	if err := r.RegenerateAll(); err != nil {
		return nil, err
	}
	return r, nil
}

func stdLightness() LightnessCurve {
	return LightnessCurve{Start: 0.96, End: 0.21, Type: Linear}
}

func standardFamilies() []*Family {
	chroma := func(start, peak, end float32) ChromaCurve {
		return ChromaCurve{Start: start, Peak: peak, End: end, PeakPosition: 0.36}
	}
	fams := []*Family{
		{Name: "red", Hue: 25, Chroma: chroma(0.05, 0.155, 0.05)},
		{Name: "orange", Hue: 55, Chroma: chroma(0.045, 0.14, 0.045)},
		{Name: "yellow", Hue: 96, Chroma: chroma(0.06, 0.114, 0.036),
			HueShift: yellowHueShift()},
		{Name: "lime", Hue: 125, Chroma: chroma(0.05, 0.15, 0.05)},
		{Name: "green", Hue: 150, Chroma: chroma(0.045, 0.135, 0.05)},
		{Name: "teal", Hue: 185, Chroma: chroma(0.04, 0.115, 0.04)},
		{Name: "blue", Hue: 255, Chroma: chroma(0.045, 0.14, 0.055)},
		{Name: "violet", Hue: 295, Chroma: chroma(0.05, 0.15, 0.055)},
		{Name: "pink", Hue: 345, Chroma: chroma(0.05, 0.145, 0.05)},
		{Name: "gray", Hue: 260, Chroma: chroma(0.005, 0.012, 0.008)},
	}
	for _, f := range fams {
		f.Lightness = stdLightness()
		f.RefLightness = 0.62
		f.RefChroma = f.Chroma.Peak
		f.GamutAware = true
		if f.HueShift == nil {
			f.HueShift = FixedHue{}
		}
	}
	return fams
}

// yellowHueShift drifts from a slightly green light yellow toward orange
// at the dark end of the ramp.
func yellowHueShift() HueBehavior {
	return RampedHue{Curve: HueCurve{Start: 105, End: 78, Type: EaseIn}}
}

// builtinPresets are the immutable named templates a standard registry
// starts with. Each maps the standard family names to a full parameter
// set, so applying one is a bulk overwrite followed by regeneration.
func builtinPresets() []Preset {
	mk := func(name string, mod func(name string, p *FamilyParams)) Preset {
		p := Preset{Name: name, Families: map[string]FamilyParams{}}
		for _, f := range standardFamilies() {
			fp := FamilyParams{
				Hue:        f.Hue,
				Lightness:  f.Lightness,
				Chroma:     f.Chroma,
				HueShift:   f.HueShift,
				GamutAware: f.GamutAware,
			}
			mod(f.Name, &fp)
			p.Families[f.Name] = fp
		}
		return p
	}

	vivid := mk("vivid", func(name string, p *FamilyParams) {
		if name == "gray" {
			return
		}
		p.Chroma.Peak *= 1.4
		p.Chroma.Start *= 1.2
		p.Chroma.End *= 1.2
	})
	pastel := mk("pastel", func(name string, p *FamilyParams) {
		p.Chroma.Start *= 0.6
		p.Chroma.Peak *= 0.55
		p.Chroma.End *= 0.6
		p.Lightness = LightnessCurve{Start: 0.97, End: 0.4, Type: EaseOut}
	})
	muted := mk("muted", func(name string, p *FamilyParams) {
		p.Chroma.Start *= 0.75
		p.Chroma.Peak *= 0.7
		p.Chroma.End *= 0.75
		// raw curve output only; no boundary search on generation
		p.GamutAware = false
	})
	warm := mk("warm", func(name string, p *FamilyParams) {
		p.Hue = warmShift(p.Hue)
	})
	return []Preset{vivid, pastel, muted, warm}
}

// warmShift nudges hue angles toward the red-yellow arc.
func warmShift(h float32) float32 {
	switch {
	case h >= 80 && h < 200:
		return h - 12
	case h >= 200 && h < 330:
		return h + 12
	default:
		return h
	}
}

// MaxSaturationPreset computes a preset that pushes each family's chroma
// peak to the sampled sRGB gamut boundary at the lightness the ramp
// reaches at the peak position, exercising the boundary search directly.
// Gray is left as configured.
func MaxSaturationPreset(r *Registry) (Preset, error) {
	p := Preset{Name: "max-saturation", Families: map[string]FamilyParams{}}
	for _, f := range r.Families() {
		fp := FamilyParams{
			Hue:        f.Hue,
			Lightness:  f.Lightness,
			Chroma:     f.Chroma,
			HueShift:   f.HueShift,
			GamutAware: f.GamutAware,
		}
		if f.Name != "gray" {
			pp := f.Chroma.PeakPosition
			l := f.Lightness.Start + (f.Lightness.End-f.Lightness.Start)*ease(pp, f.Lightness.Type)
			l = clamp(l, MinL, MaxL)
			maxC, err := r.Solver().MaxChroma(l, f.Hue)
			if err != nil {
				return Preset{}, err
			}
			if fp.Chroma.Peak > 0 {
				scale := maxC / fp.Chroma.Peak
				fp.Chroma.Start = clamp(fp.Chroma.Start*scale, 0, MaxC)
				fp.Chroma.End = clamp(fp.Chroma.End*scale, 0, MaxC)
			}
			fp.Chroma.Peak = maxC
		}
		p.Families[f.Name] = fp
	}
	return p, nil
}
