// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "math"

const (
	fnvBasis = 0x811c9dc5
	fnvPrime = 16777619
)

// Hash mixes two integer coordinates into a deterministic value in [0, 1).
// The mixing is integer-only, so it stays exact at coordinates far from the
// origin where float-based hashing runs out of mantissa.
func Hash(ix, iz int32) float64 {
	h := uint32(fnvBasis)
	h ^= uint32(ix)
	h *= fnvPrime
	h ^= h >> 13
	h ^= uint32(iz)
	h *= fnvPrime
	h ^= h >> 16
	return float64(h) / (1 << 32)
}

// ScalarAt samples the hash field at real coordinates with 0.01 resolution.
func ScalarAt(x, z float64) float64 {
	return Hash(quantize(x), quantize(z))
}

func quantize(v float64) int32 {
	return int32(math.Floor(v * 100))
}

// NormalAt draws a normally distributed value at (x, z) by running the
// Box-Muller transform over two independently offset hash samples.
func NormalAt(x, z, mean, stdev float64) float64 {
	u := ScalarAt(x*12.9898, z*78.233)
	v := ScalarAt(x*39.346, z*11.135)
	if u < 1e-9 {
		u = 1e-9
	}
	return math.Sqrt(-2*math.Log(u))*math.Cos(2*math.Pi*v)*stdev + mean
}
