// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "math"

// Biome categorizes a column by its height.
type Biome uint8

const (
	Water Biome = iota
	Sand
	Grass
	Stone
	Snow
	Alien
	Lava
	BiomeCount
)

// Base ladder thresholds, applied to the truncated height.
const (
	sandLevel  = -2
	grassLevel = 2
	stoneLevel = 15
	snowLevel  = 40
)

// Override thresholds, applied to the raw height.
const (
	alienLevel = 60
	lavaLevel  = -30
)

// Classify maps a height to its biome. The base ladder buckets the
// truncated height while the alien/lava overrides compare the raw height
// and win over the ladder. The asymmetry is deliberate; do not unify the
// two without checking terrain near the 60 and -30 boundaries.
func Classify(height float64) Biome {
	h := math.Floor(height)

	var biome Biome
	switch {
	case h < sandLevel:
		biome = Water
	case h < grassLevel:
		biome = Sand
	case h < stoneLevel:
		biome = Grass
	case h < snowLevel:
		biome = Stone
	default:
		biome = Snow
	}

	if height > alienLevel {
		biome = Alien
	}
	if height < lavaLevel {
		biome = Lava
	}
	return biome
}

var biomeNames = [BiomeCount]string{
	Water: "water",
	Sand:  "sand",
	Grass: "grass",
	Stone: "stone",
	Snow:  "snow",
	Alien: "alien",
	Lava:  "lava",
}

func (b Biome) String() string {
	if b >= BiomeCount {
		return "unknown"
	}
	return biomeNames[b]
}

var (
	dirt = Color{R: 0.36, G: 0.25, B: 0.15}
	rock = Color{R: 0.42, G: 0.42, B: 0.45}

	biomeSurface = [BiomeCount]Color{
		Water: {R: 0.15, G: 0.38, B: 0.75},
		Sand:  {R: 0.86, G: 0.78, B: 0.52},
		Grass: {R: 0.30, G: 0.62, B: 0.25},
		Stone: {R: 0.52, G: 0.52, B: 0.55},
		Snow:  {R: 0.93, G: 0.95, B: 0.98},
		Alien: {R: 0.58, G: 0.24, B: 0.74},
		Lava:  {R: 0.91, G: 0.33, B: 0.07},
	}

	// Dirt sits under grass; everything else stacks on rock.
	biomeUnder = [BiomeCount]Color{
		Water: rock,
		Sand:  rock,
		Grass: dirt,
		Stone: rock,
		Snow:  rock,
		Alien: rock,
		Lava:  rock,
	}
)

// SurfaceColor is the color of a column's topmost voxel layer.
func (b Biome) SurfaceColor() Color {
	return biomeSurface[b]
}

// UnderColor is the base color of the layers below the surface, before the
// window applies its darkening factor.
func (b Biome) UnderColor() Color {
	return biomeUnder[b]
}
