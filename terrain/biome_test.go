// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		height   float64
		expected Biome
	}{
		{-3, Water},
		{0, Sand},
		{10, Grass},
		{20, Stone},
		{50, Snow},
		{65, Alien}, // override beats the snow ladder
		{-35, Lava}, // override beats water

		// Ladder boundaries (truncated height)
		{-2.5, Water}, // floor -3
		{-2, Sand},
		{1.9, Sand}, // floor 1
		{2, Grass},
		{14.99, Grass},
		{15, Stone},
		{39.5, Stone},
		{40, Snow},

		// Override boundaries (raw height)
		{60, Snow}, // not strictly above 60
		{60.01, Alien},
		{-30, Water}, // not strictly below -30
		{-30.01, Lava},
	}

	for _, test := range tests {
		if biome := Classify(test.height); biome != test.expected {
			t.Errorf("Classify(%v): expected %v, got %v", test.height, test.expected, biome)
		}
	}
}

func TestBiomeString(t *testing.T) {
	if Grass.String() != "grass" || Lava.String() != "lava" {
		t.Error("unexpected biome names")
	}
	if Biome(200).String() != "unknown" {
		t.Error("out of range biome should be unknown")
	}
}

func TestBiomeColors(t *testing.T) {
	for b := Water; b < BiomeCount; b++ {
		if b.SurfaceColor() == (Color{}) {
			t.Errorf("%v has no surface color", b)
		}
		if b.UnderColor() == (Color{}) {
			t.Errorf("%v has no under color", b)
		}
	}

	if Grass.UnderColor() == Stone.UnderColor() {
		t.Error("grass should sit on dirt, not rock")
	}
}

func TestColorScale(t *testing.T) {
	c := Color{R: 0.5, G: 1, B: 0.2}

	half := c.Scale(0.5)
	if half.R != 0.25 || half.G != 0.5 || half.B != 0.1 {
		t.Errorf("unexpected scaled color %+v", half)
	}

	// Clamped at both ends
	if over := c.Scale(10); over.G != 1 {
		t.Errorf("expected clamp to 1, got %v", over.G)
	}
	if under := c.Scale(-1); under.R != 0 {
		t.Errorf("expected clamp to 0, got %v", under.R)
	}
}
