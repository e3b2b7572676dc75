// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package expr

import (
	"math"

	"github.com/RealBatu20/mathfunctiongenerator/terrain/noise"
)

// builtinFunc receives the coordinate being evaluated along with the call
// arguments, so coordinate-free builtins like rand() stay deterministic
// per column without ambient state.
type builtinFunc func(x, z float64, args []float64) float64

type builtin struct {
	name  string
	arity int
	fn    builtinFunc
}

// Context is the closed symbol table formulas compile against: constants,
// scalar functions and the noise bindings. Nothing outside it is reachable
// from formula text.
type Context struct {
	funcs  map[string]*builtin
	consts map[string]float64
}

// NewContext builds the standard table over the given noise fields.
func NewContext(simplex *noise.Simplex, classic *noise.Perlin) *Context {
	ctx := &Context{
		funcs: make(map[string]*builtin),
		consts: map[string]float64{
			"pi":  math.Pi,
			"e":   math.E,
			"phi": math.Phi,
		},
	}

	scalar := func(name string, fn func(float64) float64) {
		ctx.register(name, 1, func(x, z float64, args []float64) float64 {
			return fn(args[0])
		})
	}
	scalar2 := func(name string, fn func(a, b float64) float64) {
		ctx.register(name, 2, func(x, z float64, args []float64) float64 {
			return fn(args[0], args[1])
		})
	}

	scalar("sin", math.Sin)
	scalar("cos", math.Cos)
	scalar("tan", math.Tan)
	scalar("abs", math.Abs)
	scalar("floor", math.Floor)
	scalar("ceil", math.Ceil)
	scalar("round", math.Round)
	scalar("sqrt", math.Sqrt)
	scalar("exp", math.Exp)
	scalar("log", math.Log)
	scalar("log10", math.Log10)
	scalar("sinh", math.Sinh)
	scalar("cosh", math.Cosh)
	scalar("tanh", math.Tanh)

	scalar2("pow", math.Pow)
	scalar2("min", math.Min)
	scalar2("max", math.Max)
	scalar2("mod", modulo)

	// Simplex field under two names for convenience.
	sample := func(x, z float64, args []float64) float64 {
		return simplex.Sample(args[0], args[1])
	}
	ctx.register("noise", 2, sample)
	ctx.register("simplex", 2, sample)

	ctx.register("octaves", 4, func(x, z float64, args []float64) float64 {
		return simplex.Octaves(args[0], args[1], int(args[2]), args[3])
	})
	ctx.register("perlin", 2, func(x, z float64, args []float64) float64 {
		return classic.Sample(args[0], args[1])
	})

	// rand/randNormal take no coordinate arguments: they read the column
	// coordinate threaded through evaluation.
	ctx.register("rand", 0, func(x, z float64, args []float64) float64 {
		return noise.ScalarAt(x, z)
	})
	ctx.register("randNormal", 2, func(x, z float64, args []float64) float64 {
		return noise.NormalAt(x, z, args[0], args[1])
	})

	return ctx
}

func (ctx *Context) register(name string, arity int, fn builtinFunc) {
	ctx.funcs[name] = &builtin{name: name, arity: arity, fn: fn}
}

// modulo always returns a non-negative result for a positive divisor,
// unlike math.Mod which follows the sign of the dividend.
func modulo(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
