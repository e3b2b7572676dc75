// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package formula

import (
	"strings"
	"testing"

	"github.com/RealBatu20/mathfunctiongenerator/terrain/expr"
	"github.com/RealBatu20/mathfunctiongenerator/terrain/noise"
)

func testContext() *expr.Context {
	return expr.NewContext(noise.NewSimplex(1), noise.NewPerlin(2))
}

func TestCategoriesCompile(t *testing.T) {
	ctx := testContext()
	g := NewGenerator(99)

	for c := Hardcoded; c < CategoryCount; c++ {
		for i := 0; i < 50; i++ {
			text := g.Formula(c)
			if _, err := expr.Compile(text, ctx); err != nil {
				t.Fatalf("category %v produced uncompilable %q: %v", c, text, err)
			}
		}
	}
}

func TestThemesCompile(t *testing.T) {
	ctx := testContext()
	g := NewGenerator(7)

	names := ThemeNames()
	if len(names) < 6 {
		t.Fatalf("expected at least 6 themes, got %d", len(names))
	}

	for _, name := range names {
		for i := 0; i < 50; i++ {
			text, ok := g.Theme(name)
			if !ok {
				t.Fatalf("theme %q unknown to its own table", name)
			}
			if _, err := expr.Compile(text, ctx); err != nil {
				t.Fatalf("theme %q produced uncompilable %q: %v", name, text, err)
			}
		}
	}

	if _, ok := g.Theme("no such theme"); ok {
		t.Error("unknown theme should report !ok")
	}
}

func TestRandomTheme(t *testing.T) {
	g := NewGenerator(3)
	name, text := g.RandomTheme()
	if name == "" || text == "" {
		t.Fatal("RandomTheme returned empty output")
	}
	if _, err := expr.Compile(text, testContext()); err != nil {
		t.Fatalf("RandomTheme produced uncompilable %q: %v", text, err)
	}
}

func TestRealistic(t *testing.T) {
	ctx := testContext()
	g := NewGenerator(5)

	for i := 0; i < 50; i++ {
		text := g.Realistic()
		if !strings.Contains(text, "octaves(") {
			t.Fatalf("realistic formula %q has no octave term", text)
		}
		if _, err := expr.Compile(text, ctx); err != nil {
			t.Fatalf("realistic produced uncompilable %q: %v", text, err)
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(42)
	b := NewGenerator(42)

	for i := 0; i < 20; i++ {
		if fa, fb := a.Formula(Expert), b.Formula(Expert); fa != fb {
			t.Fatalf("same seed diverged: %q != %q", fa, fb)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name     string
		expected Category
	}{
		{"hardcoded", Hardcoded},
		{"expert", Expert},
		{"unreal", Unreal},
		{"longmath", LongMath},
		{"", Intermediate},
		{"bogus", Intermediate},
	}
	for _, test := range tests {
		if c := ParseCategory(test.name); c != test.expected {
			t.Errorf("ParseCategory(%q): expected %v, got %v", test.name, test.expected, c)
		}
	}
}
