// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "github.com/chewxy/math32"

// Color is an RGB triple with components in [0, 1].
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
}

// Scale multiplies all components, clamped to [0, 1].
func (c Color) Scale(factor float32) Color {
	return Color{
		R: clampUnit(c.R * factor),
		G: clampUnit(c.G * factor),
		B: clampUnit(c.B * factor),
	}
}

func clampUnit(v float32) float32 {
	return math32.Min(math32.Max(v, 0), 1)
}
