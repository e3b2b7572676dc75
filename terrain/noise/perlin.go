// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "github.com/aquilax/go-perlin"

const (
	perlinAlpha = 1.5
	perlinBeta  = 2.0
	perlinN     = 3
)

// Perlin is a classic perlin field exposed on the formula surface alongside
// the simplex field. Unlike Simplex it is seeded once and never reshuffled.
type Perlin struct {
	noise *perlin.Perlin
}

func NewPerlin(seed int64) *Perlin {
	return &Perlin{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)}
}

func (p *Perlin) Sample(x, z float64) float64 {
	return p.noise.Noise2D(x, z)
}
