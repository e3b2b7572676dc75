// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"math"
	"math/rand"
)

// Skew/unskew factors for 2D simplex space.
var (
	f2 = 0.5 * (math.Sqrt(3) - 1)
	g2 = (3 - math.Sqrt(3)) / 6
)

// 12 gradient directions (the 2D projection of the classic grad3 table).
var grad2 = [12][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {1, 0}, {-1, 0},
	{0, 1}, {0, -1}, {0, 1}, {0, -1},
}

// Simplex is a reseedable 2D gradient noise field.
type Simplex struct {
	perm [512]uint8
	rand *rand.Rand
}

func NewSimplex(seed int64) *Simplex {
	s := &Simplex{rand: rand.New(rand.NewSource(seed))}
	s.Reseed()
	return s
}

// Reseed draws a fresh permutation, changing the field everywhere.
// The 256-entry permutation is duplicated so corner lookups never wrap.
func (s *Simplex) Reseed() {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	s.rand.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	copy(s.perm[:256], p[:])
	copy(s.perm[256:], p[:])
}

func fastFloor(x float64) int {
	if x > 0 {
		return int(x)
	}
	return int(x) - 1
}

// Sample returns continuous noise at (x, z), roughly in [-1, 1].
func (s *Simplex) Sample(x, z float64) float64 {
	// Skew into simplex space to find the containing cell
	sk := (x + z) * f2
	i := fastFloor(x + sk)
	j := fastFloor(z + sk)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	z0 := z - (float64(j) - t)

	// Middle corner offsets pick the upper or lower triangle
	i1, j1 := 0, 1
	if x0 > z0 {
		i1, j1 = 1, 0
	}

	x1 := x0 - float64(i1) + g2
	z1 := z0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	z2 := z0 - 1 + 2*g2

	ii := i & 255
	jj := j & 255

	n := s.corner(x0, z0, s.perm[ii+int(s.perm[jj])])
	n += s.corner(x1, z1, s.perm[ii+i1+int(s.perm[jj+j1])])
	n += s.corner(x2, z2, s.perm[ii+1+int(s.perm[jj+1])])

	// Scale so typical output spans roughly [-1, 1]
	return 70 * n
}

func (s *Simplex) corner(x, z float64, hash uint8) float64 {
	t := 0.5 - x*x - z*z
	if t < 0 {
		return 0
	}
	t *= t
	g := &grad2[hash%12]
	return t * t * (g[0]*x + g[1]*z)
}

// Octaves sums count samples at doubling frequency and persistence-decaying
// amplitude, normalized by the total amplitude so the output envelope is
// independent of octave count.
func (s *Simplex) Octaves(x, z float64, count int, persistence float64) float64 {
	var total, totalAmplitude float64
	frequency := 1.0
	amplitude := 1.0

	for i := 0; i < count; i++ {
		total += s.Sample(x*frequency, z*frequency) * amplitude
		totalAmplitude += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	if totalAmplitude == 0 {
		return 0
	}
	return total / totalAmplitude
}
