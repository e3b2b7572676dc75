// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package expr compiles user-typed height formulas into evaluable trees.
//
// Formula text is attacker-controlled input. It is parsed into an explicit
// AST over a closed node set and resolved against a Context's symbol table
// at compile time, so nothing outside that table is reachable at runtime.
package expr

import (
	"fmt"
	"math"
)

// CompileError reports why formula text was rejected. The caller keeps its
// previous compiled formula when compilation fails.
type CompileError struct {
	Pos    int
	Reason string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("formula error at position %d: %s", e.Pos, e.Reason)
}

// Compiled is an immutable height function over (x, z). It is bound to the
// Context it was compiled against and owns no mutable state besides
// per-node scratch, so it must not be evaluated concurrently.
type Compiled struct {
	root node
}

// Compile parses and resolves text against ctx, then runs one canary
// evaluation at the origin before accepting the formula.
func Compile(text string, ctx *Context) (*Compiled, error) {
	p := parser{scanner: scanner{src: text}, ctx: ctx}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}

	compiled := &Compiled{root: root}

	// Canary: one trial invocation before the formula is accepted. The
	// closed interpreter cannot throw, but a non-finite result everywhere
	// is still the caller's per-column problem, not a compile failure.
	compiled.Eval(0, 0)

	return compiled, nil
}

// Eval returns the formula height at (x, z).
// The caller is responsible for coercing non-finite results.
func (c *Compiled) Eval(x, z float64) float64 {
	return c.root.eval(x, z)
}

// Finite coerces a non-finite height to 0, the recovery every consumer of
// formula heights applies per column.
func Finite(height float64) float64 {
	if math.IsNaN(height) || math.IsInf(height, 0) {
		return 0
	}
	return height
}
