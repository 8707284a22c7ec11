// Copyright (c) 2025, Okscale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gamut finds the maximum sRGB-representable chroma for a given
// OKLCH lightness and hue by binary search, memoizing results so that
// interactive editing and repeated ramp generation stay cheap.
package gamut

import (
	"errors"
	"fmt"
	"sync"

	"github.com/chewxy/math32"

	"github.com/okscale/okscale/oklch"
)

const (
	// MaxChroma is the upper bound of the search range. No sRGB color
	// exceeds this chroma in OKLCH, so the search invariant
	// "high is out of gamut" holds whenever the bound itself is out.
	MaxChroma = 0.4

	// Precision is the chroma resolution of the boundary search.
	// The search runs log2(MaxChroma/Precision), about 9, iterations.
	Precision = 0.001
)

// ErrOutOfRange is returned when a boundary query is made with a lightness
// outside [0, 1] or a hue outside [0, 360); the color math is undefined
// there and a chroma bound would be meaningless.
var ErrOutOfRange = errors.New("gamut: lightness or hue out of range")

// Solver answers maximum-chroma queries against a gamut [oklch.Tester],
// caching results under quantized (lightness, hue) keys. The cache is
// guarded by a mutex, so one Solver may be shared across goroutines.
type Solver struct {
	tester oklch.Tester

	mu    sync.Mutex
	cache map[key]float32
}

// key quantizes lightness to 3 decimal places and hue to 1, matching the
// rounding callers apply to step values, so that equal-looking queries
// actually share entries.
type key struct {
	l int32 // lightness * 1000
	h int32 // hue * 10
}

func quantize(l, h float32) key {
	return key{
		l: int32(math32.Floor(l*1000 + 0.5)),
		h: int32(math32.Floor(h*10 + 0.5)),
	}
}

// NewSolver returns a Solver using the given gamut tester.
// A nil tester selects [oklch.Colorful].
func NewSolver(tester oklch.Tester) *Solver {
	if tester == nil {
		tester = oklch.Colorful{}
	}
	return &Solver{
		tester: tester,
		cache:  map[key]float32{},
	}
}

// MaxChroma returns the largest chroma c such that (l, c, h) is inside the
// sRGB gamut, to within [Precision]. l must be in [0, 1] and h in [0, 360);
// anything else returns [ErrOutOfRange].
//
// Results are cached; a repeated query returns the stored value without
// re-running the search.
func (s *Solver) MaxChroma(l, h float32) (float32, error) {
	if l < 0 || l > 1 {
		return 0, fmt.Errorf("%w: lightness %g", ErrOutOfRange, l)
	}
	if h < 0 || h >= 360 {
		return 0, fmt.Errorf("%w: hue %g", ErrOutOfRange, h)
	}
	k := quantize(l, h)
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.cache[k]; ok {
		return c, nil
	}
	c := s.search(l, h)
	s.cache[k] = c
	return c, nil
}

// search binary-searches chroma in [0, MaxChroma] maintaining
// in-gamut(low) && !in-gamut(high). Zero chroma is achromatic and always
// in gamut; if even MaxChroma is in gamut the bound itself is the answer.
func (s *Solver) search(l, h float32) float32 {
	if s.tester.InGamut(oklch.LCH{L: l, C: MaxChroma, H: h}) {
		return MaxChroma
	}
	low, high := float32(0), float32(MaxChroma)
	for high-low > Precision {
		mid := (low + high) / 2
		if s.tester.InGamut(oklch.LCH{L: l, C: mid, H: h}) {
			low = mid
		} else {
			high = mid
		}
	}
	return low
}

// Clear invalidates all cached boundary values. Call after anything that
// changes how steps are produced, such as a step-count or gamut-policy
// change; entries are cheap to recompute.
func (s *Solver) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = map[key]float32{}
}

// Len reports the number of cached boundary entries.
func (s *Solver) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}
