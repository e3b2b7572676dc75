// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package formula synthesizes random height formula text. Every string it
// produces is valid input for expr.Compile by construction of the grammar
// fragments it emits; the generator has no failure path.
package formula

import (
	"fmt"
	"math/rand"
	"sort"
)

// Category selects how elaborate a generated formula gets. Higher
// categories feed a deeper budget to the recursive builder.
type Category uint8

const (
	Hardcoded Category = iota
	Intermediate
	Expert
	Unreal
	LongMath
	CategoryCount
)

var categoryNames = [CategoryCount]string{
	Hardcoded:    "hardcoded",
	Intermediate: "intermediate",
	Expert:       "expert",
	Unreal:       "unreal",
	LongMath:     "longmath",
}

func (c Category) String() string {
	if c >= CategoryCount {
		return "unknown"
	}
	return categoryNames[c]
}

// ParseCategory resolves a category name, defaulting to Intermediate.
func ParseCategory(name string) Category {
	for c, n := range categoryNames {
		if n == name {
			return Category(c)
		}
	}
	return Intermediate
}

type Generator struct {
	rand *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rand: rand.New(rand.NewSource(seed))}
}

var hardcoded = []string{
	"octaves(x*0.02, z*0.02, 4, 0.5)*25",
	"sin(x*0.2)*5 + cos(z*0.2)*5",
	"floor(x/4)*4 + floor(z/4)*4",
	"abs(x)*0.2 - abs(z)*0.2",
	"noise(x*0.05, z*0.05)*12 + 2",
}

// Formula emits a formula for the given category: a fixed pick for
// Hardcoded, otherwise a recursively built expression with a depth budget
// matching the category.
func (g *Generator) Formula(c Category) string {
	switch c {
	case Hardcoded:
		return hardcoded[g.rand.Intn(len(hardcoded))]
	case Expert:
		return g.expression(3)
	case Unreal:
		return g.expression(5)
	case LongMath:
		return g.expression(3) + " + " + g.expression(3)
	default:
		return g.expression(2)
	}
}

// Theme templates. Each wraps a recursively generated sub-expression and/or
// a fixed base noise term in a hand-written shape.
var themes = map[string]func(g *Generator) string{
	"directional": func(g *Generator) string {
		return fmt.Sprintf("(x + z)*%.2f + %s", 0.05+g.rand.Float64()*0.2, baseNoise)
	},
	"voxel": func(g *Generator) string {
		step := 3 + g.rand.Intn(6)
		return fmt.Sprintf("floor((%s)/%d)*%d + %s", g.expression(2), step, step, baseNoise)
	},
	"geometric": func(g *Generator) string {
		period := 10 + g.rand.Intn(14)
		return fmt.Sprintf("abs(mod(x, %d) - %d) + abs(mod(z, %d) - %d) - 6",
			period, period/2, period, period/2)
	},
	"organic": func(g *Generator) string {
		freq := 0.02 + g.rand.Float64()*0.03
		return fmt.Sprintf("octaves(x*%.3f, z*%.3f, 4, 0.5)*25 + %s", freq, freq, g.expression(1))
	},
	"maze": func(g *Generator) string {
		cell := 2 + g.rand.Intn(4)
		return fmt.Sprintf("(mod(floor(x/%d), 2) + mod(floor(z/%d), 2))*%d",
			cell, cell, 4+g.rand.Intn(6))
	},
	"abstract": func(g *Generator) string {
		return fmt.Sprintf("sin(x*z*%.4f)*%d + %s", 0.001+g.rand.Float64()*0.01,
			4+g.rand.Intn(10), g.expression(2))
	},
}

const baseNoise = "simplex(x*0.08, z*0.08)*3"

// Theme emits a formula for a named visual theme.
func (g *Generator) Theme(name string) (string, bool) {
	theme, ok := themes[name]
	if !ok {
		return "", false
	}
	return theme(g), true
}

// ThemeNames lists the known themes in stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RandomTheme emits a formula for a randomly picked theme.
func (g *Generator) RandomTheme() (name, text string) {
	names := ThemeNames()
	name = names[g.rand.Intn(len(names))]
	text, _ = g.Theme(name)
	return
}

// Realistic bypasses theme selection entirely: always an octave-noise term
// with randomized amplitude and frequency.
func (g *Generator) Realistic() string {
	amplitude := 10 + g.rand.Float64()*30
	frequency := 0.01 + g.rand.Float64()*0.04
	octaveCount := 3 + g.rand.Intn(4)
	return fmt.Sprintf("octaves(x*%.3f, z*%.3f, %d, 0.5)*%.1f",
		frequency, frequency, octaveCount, amplitude)
}

var (
	binaryOps = []string{"+", "-", "*"}
	unaryFns  = []string{"sin", "cos", "tanh", "abs", "sqrt"}
)

// expression builds a random sub-expression within a depth budget. Depth 0
// emits a scaled coordinate or a small literal; every recursion spends one
// depth, so the builder always terminates.
func (g *Generator) expression(depth int) string {
	if depth <= 0 {
		switch g.rand.Intn(3) {
		case 0:
			return fmt.Sprintf("x*%.2f", 0.05+g.rand.Float64()*0.4)
		case 1:
			return fmt.Sprintf("z*%.2f", 0.05+g.rand.Float64()*0.4)
		default:
			return fmt.Sprintf("%.1f", g.rand.Float64()*8)
		}
	}

	switch g.rand.Intn(3) {
	case 0:
		op := binaryOps[g.rand.Intn(len(binaryOps))]
		return fmt.Sprintf("(%s %s %s)", g.expression(depth-1), op, g.expression(depth-1))
	case 1:
		fn := unaryFns[g.rand.Intn(len(unaryFns))]
		return fmt.Sprintf("%s(%s)*%d", fn, g.expression(depth-1), 2+g.rand.Intn(8))
	default:
		freq := 0.02 + g.rand.Float64()*0.08
		return fmt.Sprintf("noise(x*%.3f, z*%.3f)*%d", freq, freq, 4+g.rand.Intn(12))
	}
}
