// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package expr

import "math"

// node is one element of a compiled formula tree. The node set is closed:
// literal, variable, negation, binary operator and builtin call.
type node interface {
	eval(x, z float64) float64
}

type literal float64

func (l literal) eval(x, z float64) float64 {
	return float64(l)
}

type variable uint8

const (
	varX variable = iota
	varZ
)

func (v variable) eval(x, z float64) float64 {
	if v == varX {
		return x
	}
	return z
}

type negate struct {
	operand node
}

func (n *negate) eval(x, z float64) float64 {
	return -n.operand.eval(x, z)
}

type binary struct {
	op          tokenKind
	left, right node
}

func (b *binary) eval(x, z float64) float64 {
	l := b.left.eval(x, z)
	r := b.right.eval(x, z)
	switch b.op {
	case tokenPlus:
		return l + r
	case tokenMinus:
		return l - r
	case tokenStar:
		return l * r
	case tokenSlash:
		return l / r
	default: // tokenCaret
		return math.Pow(l, r)
	}
}

type call struct {
	fn      *builtin
	args    []node
	scratch []float64 // reused across evaluations; evaluation is single-threaded
}

func (c *call) eval(x, z float64) float64 {
	for i, arg := range c.args {
		c.scratch[i] = arg.eval(x, z)
	}
	return c.fn.fn(x, z, c.scratch)
}
