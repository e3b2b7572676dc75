// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"math"
	"testing"
)

func TestHashDeterministic(t *testing.T) {
	pairs := [][2]int32{
		{0, 0},
		{1, -1},
		{-1, 1},
		{123456, -654321},
		{math.MaxInt32, math.MinInt32},
		{math.MinInt32, math.MaxInt32},
	}

	for _, pair := range pairs {
		first := Hash(pair[0], pair[1])
		for i := 0; i < 3; i++ {
			if v := Hash(pair[0], pair[1]); v != first {
				t.Errorf("Hash(%d, %d) not deterministic: %v != %v", pair[0], pair[1], v, first)
			}
		}
		if first < 0 || first >= 1 {
			t.Errorf("Hash(%d, %d) = %v out of [0, 1)", pair[0], pair[1], first)
		}
	}
}

func TestHashAsymmetric(t *testing.T) {
	// Argument order must matter
	if Hash(3, 7) == Hash(7, 3) {
		t.Error("expected Hash(3, 7) != Hash(7, 3)")
	}
}

func TestScalarAtQuantization(t *testing.T) {
	// 0.01 resolution: values in the same hundredth collapse
	if ScalarAt(1.0012, 2) != ScalarAt(1.0088, 2) {
		t.Error("expected same sample within one quantization cell")
	}
	if ScalarAt(1.0, 2) == ScalarAt(1.1, 2) {
		t.Error("expected different samples across quantization cells")
	}
}

func TestNormalAt(t *testing.T) {
	// Zero stdev collapses to the mean exactly
	if v := NormalAt(3.5, -2.5, 7, 0); v != 7 {
		t.Errorf("NormalAt with stdev 0: expected 7, got %v", v)
	}

	first := NormalAt(12.25, -8.75, 0, 2)
	if v := NormalAt(12.25, -8.75, 0, 2); v != first {
		t.Errorf("NormalAt not deterministic: %v != %v", v, first)
	}
	if math.IsNaN(first) || math.IsInf(first, 0) {
		t.Errorf("NormalAt returned non-finite %v", first)
	}
}

func BenchmarkHash(b *testing.B) {
	var acc float64
	for i := 0; i < b.N; i++ {
		acc += Hash(int32(i), int32(-i))
	}
	_ = acc
}
