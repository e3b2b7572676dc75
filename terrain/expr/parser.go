// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package expr

import (
	"fmt"
	"strconv"
)

// Grammar, lowest precedence first:
//
//	sum     = product { ("+" | "-") product }
//	product = unary { ("*" | "/") unary }
//	unary   = ("-" | "+") unary | power
//	power   = primary [ "^" unary ]          (right-associative)
//	primary = number | ident | ident "(" [ sum { "," sum } ] ")" | "(" sum ")"
type parser struct {
	scanner scanner
	ctx     *Context
	tok     token
}

func (p *parser) parse() (node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	root, err := p.sum()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return nil, p.errorf("unexpected %q", p.tok.text)
	}
	return root, nil
}

func (p *parser) advance() (err error) {
	p.tok, err = p.scanner.next()
	return
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &CompileError{Pos: p.tok.pos, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) sum() (node, error) {
	left, err := p.product()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokenPlus || p.tok.kind == tokenMinus {
		op := p.tok.kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.product()
		if err != nil {
			return nil, err
		}
		left = &binary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) product() (node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokenStar || p.tok.kind == tokenSlash {
		op := p.tok.kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &binary{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) unary() (node, error) {
	switch p.tok.kind {
	case tokenMinus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &negate{operand: operand}, nil
	case tokenPlus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.unary()
	}
	return p.power()
}

func (p *parser) power() (node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenCaret {
		return base, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	// Right-associative, and the exponent may carry a sign: 2^-3^2 == 2^(-(3^2))
	exponent, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &binary{op: tokenCaret, left: base, right: exponent}, nil
}

func (p *parser) primary() (node, error) {
	switch p.tok.kind {
	case tokenNumber:
		value := p.tok.value
		if err := p.advance(); err != nil {
			return nil, err
		}
		return literal(value), nil
	case tokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.sum()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokenRParen {
			return nil, p.errorf("missing closing parenthesis")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	case tokenIdent:
		return p.ident()
	case tokenEOF:
		return nil, p.errorf("unexpected end of formula")
	}
	return nil, p.errorf("unexpected %q", p.tok.text)
}

func (p *parser) ident() (node, error) {
	name := p.tok.text
	namePos := p.tok.pos
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.tok.kind != tokenLParen {
		switch name {
		case "x":
			return varX, nil
		case "z":
			return varZ, nil
		}
		if value, ok := p.ctx.consts[name]; ok {
			return literal(value), nil
		}
		return nil, &CompileError{Pos: namePos, Reason: "unknown name " + strconv.Quote(name)}
	}

	fn, ok := p.ctx.funcs[name]
	if !ok {
		return nil, &CompileError{Pos: namePos, Reason: "unknown function " + strconv.Quote(name)}
	}
	args, err := p.arguments()
	if err != nil {
		return nil, err
	}
	if len(args) != fn.arity {
		return nil, &CompileError{
			Pos:    namePos,
			Reason: fmt.Sprintf("%s takes %d argument(s), got %d", name, fn.arity, len(args)),
		}
	}
	return &call{fn: fn, args: args, scratch: make([]float64, len(args))}, nil
}

func (p *parser) arguments() ([]node, error) {
	// Caller has seen "("
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind == tokenRParen {
		return nil, p.advance()
	}

	var args []node
	for {
		arg, err := p.sum()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		switch p.tok.kind {
		case tokenComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokenRParen:
			return args, p.advance()
		default:
			return nil, p.errorf("expected ',' or ')' in argument list")
		}
	}
}
