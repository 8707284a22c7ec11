// Copyright (c) 2025, Okscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// presetFile is the TOML wire form of a preset table. HueBehavior is a
// closed interface in memory, so the file form spells it as an optional
// hueRamp table: present means ramped, absent means fixed.
type presetFile struct {
	Preset []struct {
		Name     string                  `toml:"name"`
		Families map[string]familyParams `toml:"families"`
	} `toml:"preset"`
}

type familyParams struct {
	Hue        float32        `toml:"hue"`
	Lightness  LightnessCurve `toml:"lightness"`
	Chroma     ChromaCurve    `toml:"chroma"`
	HueRamp    *HueCurve      `toml:"hueRamp"`
	GamutAware bool           `toml:"gamutAware"`
}

// ReadPresets decodes a TOML preset table. Every decoded preset is
// validated; one bad parameter set rejects the whole read.
func ReadPresets(r io.Reader) ([]Preset, error) {
	var pf presetFile
	if err := toml.NewDecoder(r).Decode(&pf); err != nil {
		return nil, fmt.Errorf("decoding presets: %w", err)
	}
	out := make([]Preset, 0, len(pf.Preset))
	for _, pr := range pf.Preset {
		p := Preset{Name: pr.Name, Families: map[string]FamilyParams{}}
		for name, fp := range pr.Families {
			var hb HueBehavior = FixedHue{}
			if fp.HueRamp != nil {
				hb = RampedHue{Curve: *fp.HueRamp}
			}
			p.Families[name] = FamilyParams{
				Hue:        fp.Hue,
				Lightness:  fp.Lightness,
				Chroma:     fp.Chroma,
				HueShift:   hb,
				GamutAware: fp.GamutAware,
			}
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// OpenPresets reads a preset table from a TOML file.
func OpenPresets(path string) ([]Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ps, err := ReadPresets(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ps, nil
}
