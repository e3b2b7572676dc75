// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package expr

import (
	"math"
	"strings"
	"testing"

	"github.com/RealBatu20/mathfunctiongenerator/terrain/noise"
)

func testContext() *Context {
	return NewContext(noise.NewSimplex(1), noise.NewPerlin(2))
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCompileArithmetic(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		formula  string
		x, z     float64
		expected float64
	}{
		{"x + z", 2, 3, 5},
		{"x*z - 4", 2, 3, 2},
		{"(x + z)/2", 3, 1, 2},
		{"2 + 3 * 4", 0, 0, 14},
		{"2^3^2", 0, 0, 512}, // right-associative
		{"-2^2", 0, 0, -4},   // exponent binds tighter than negation
		{"2*3^2", 0, 0, 18},
		{"2^-1", 0, 0, 0.5},
		{"sqrt(16)", 0, 0, 4},
		{"abs(0 - 5)", 0, 0, 5},
		{"floor(3.7) + ceil(0.2)", 0, 0, 4},
		{"round(2.5)", 0, 0, 3},
		{"pow(2, 10)", 0, 0, 1024},
		{"min(3, z)", 0, 9, 3},
		{"max(x, 2)", 5, 0, 5},
		{"mod(-3, 5)", 0, 0, 2}, // corrected modulo: non-negative for positive divisor
		{"mod(7, 3)", 0, 0, 1},
		{"pi", 0, 0, math.Pi},
		{"e + phi", 0, 0, math.E + math.Phi},
		{"sin(0) + cos(0)", 0, 0, 1},
		{"tanh(0) + sinh(0) + cosh(0)", 0, 0, 1},
		{"log(e)", 0, 0, 1},
		{"log10(100)", 0, 0, 2},
		{"exp(0)", 0, 0, 1},
		{"floor(x/4)*4 + floor(z/4)*4", 9, 5, 12},
	}

	for _, test := range tests {
		compiled, err := Compile(test.formula, ctx)
		if err != nil {
			t.Errorf("Compile(%q): unexpected error %v", test.formula, err)
			continue
		}
		if v := compiled.Eval(test.x, test.z); !approx(v, test.expected) {
			t.Errorf("%q at (%v, %v): expected %v, got %v", test.formula, test.x, test.z, test.expected, v)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		formula string
		reason  string // substring of the error message
	}{
		{"x +", "unexpected end"},
		{"", "unexpected end"},
		{"(x", "parenthesis"},
		{"x @ z", "unexpected character"},
		{"y", "unknown name"},
		{"foo(1)", "unknown function"},
		{"min(1)", "argument"},
		{"octaves(x, z)", "argument"},
		{"1 2", "unexpected"},
		{"sin 3", "unknown name"}, // sin without a call is not a value
		{"1..2", "malformed number"},
	}

	for _, test := range tests {
		compiled, err := Compile(test.formula, ctx)
		if err == nil {
			t.Errorf("Compile(%q): expected error, got %v", test.formula, compiled.Eval(0, 0))
			continue
		}
		if _, ok := err.(*CompileError); !ok {
			t.Errorf("Compile(%q): expected *CompileError, got %T", test.formula, err)
		}
		if !strings.Contains(err.Error(), test.reason) {
			t.Errorf("Compile(%q): error %q does not mention %q", test.formula, err, test.reason)
		}
	}
}

func TestRandPerCoordinate(t *testing.T) {
	ctx := testContext()
	compiled, err := Compile("rand()", ctx)
	if err != nil {
		t.Fatal(err)
	}

	first := compiled.Eval(1.5, 2.5)
	if v := compiled.Eval(1.5, 2.5); v != first {
		t.Errorf("rand() not deterministic per coordinate: %v != %v", v, first)
	}
	if first < 0 || first >= 1 {
		t.Errorf("rand() = %v out of [0, 1)", first)
	}
	if v := compiled.Eval(100.5, -3.25); v == first {
		t.Error("rand() identical at distant coordinates")
	}
}

func TestRandNormalZeroStdev(t *testing.T) {
	ctx := testContext()
	compiled, err := Compile("randNormal(7, 0)", ctx)
	if err != nil {
		t.Fatal(err)
	}
	if v := compiled.Eval(3, -8); v != 7 {
		t.Errorf("randNormal(7, 0): expected 7, got %v", v)
	}
}

func TestNoiseAliases(t *testing.T) {
	ctx := testContext()
	a, err := Compile("noise(x*0.1, z*0.1)", ctx)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compile("simplex(x*0.1, z*0.1)", ctx)
	if err != nil {
		t.Fatal(err)
	}

	for x := -4.0; x < 4; x += 0.83 {
		if va, vb := a.Eval(x, -x), b.Eval(x, -x); va != vb {
			t.Fatalf("noise/simplex diverged at %v: %v != %v", x, va, vb)
		}
	}
}

func TestOctavesBuiltinMatchesField(t *testing.T) {
	simplex := noise.NewSimplex(5)
	ctx := NewContext(simplex, noise.NewPerlin(6))

	compiled, err := Compile("octaves(x, z, 3, 0.5)", ctx)
	if err != nil {
		t.Fatal(err)
	}
	for x := -2.0; x < 2; x += 0.47 {
		if v, want := compiled.Eval(x, x*0.3), simplex.Octaves(x, x*0.3, 3, 0.5); v != want {
			t.Fatalf("octaves builtin diverged at %v: %v != %v", x, v, want)
		}
	}
}

func TestPerlinBuiltin(t *testing.T) {
	ctx := testContext()
	compiled, err := Compile("perlin(x*0.1, z*0.1)*10", ctx)
	if err != nil {
		t.Fatal(err)
	}
	first := compiled.Eval(3, 4)
	if v := compiled.Eval(3, 4); v != first {
		t.Errorf("perlin not deterministic: %v != %v", v, first)
	}
}

func TestFinite(t *testing.T) {
	tests := []struct {
		height   float64
		expected float64
	}{
		{5, 5},
		{-12.5, -12.5},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, test := range tests {
		if v := Finite(test.height); v != test.expected {
			t.Errorf("Finite(%v): expected %v, got %v", test.height, test.expected, v)
		}
	}

	// Division by zero surfaces as a coercible infinity, not a panic
	compiled, err := Compile("1/0", testContext())
	if err != nil {
		t.Fatal(err)
	}
	if v := Finite(compiled.Eval(0, 0)); v != 0 {
		t.Errorf("1/0 should coerce to 0, got %v", v)
	}
}

func BenchmarkEval(b *testing.B) {
	compiled, err := Compile("octaves(x*0.02, z*0.02, 4, 0.5)*25 + sin(x*0.1)*3", testContext())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	var acc float64
	for i := 0; i < b.N; i++ {
		acc += compiled.Eval(float64(i), float64(-i))
	}
	_ = acc
}
