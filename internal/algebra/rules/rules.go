// File: rules.go
// Title: Node-Level Rewrite Rules
// Description: Implements the rewrite rules that match a single subtree:
//              exact constant folding, combining like additive terms,
//              distribution of a factor over a sum, and commutation of
//              commutative operands toward canonical order. Every predicate
//              rejects applications that would divide by zero or leave the
//              supported grammar.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial node rule implementations

package rules

import (
	"fmt"
	"math/big"

	"github.com/msto63/mAT/internal/algebra/ast"
	"github.com/msto63/mAT/internal/algebra/rational"
)

// Rewrite describes one successful rule application at a node
type Rewrite struct {
	Repl   ast.Expr // Replacement subtree
	Formal string   // Machine-readable description
	Human  string   // Natural-language rationale
}

// NodeRule is a named local rewrite over a single subtree
type NodeRule struct {
	Name  string
	Apply func(e ast.Expr) (Rewrite, bool)
}

// nodeRules is the fixed node-level rule order. Engine determinism
// depends on this order never changing between calls.
var nodeRules = []NodeRule{
	{Name: "constant_fold", Apply: applyConstantFold},
	{Name: "combine_like_terms", Apply: applyCombineLikeTerms},
	{Name: "distribute", Apply: applyDistribute},
	{Name: "commute", Apply: applyCommute},
}

// maxFoldExponent bounds exact exponentiation during constant folding
const maxFoldExponent = 16

// applyConstantFold evaluates an operator whose operands are constants.
// It also merges stacked constant coefficients a*(b*X) into (a*b)*X so
// scrambled products collapse back to a single coefficient.
func applyConstantFold(e ast.Expr) (Rewrite, bool) {
	switch n := e.(type) {
	case *ast.Unary:
		if n.Op != ast.OpNeg {
			return Rewrite{}, false
		}
		c, ok := n.Child.(*ast.Const)
		if !ok {
			return Rewrite{}, false
		}
		return foldRewrite(e, ast.NewConst(c.Val.Neg())), true

	case *ast.Binary:
		lc, lok := n.Left.(*ast.Const)
		rc, rok := n.Right.(*ast.Const)
		if lok && rok {
			v, ok := foldConsts(n.Op, lc.Val, rc.Val)
			if !ok {
				return Rewrite{}, false
			}
			return foldRewrite(e, ast.NewConst(v)), true
		}
		if lok && n.Op == ast.OpMul {
			if inner, ok := n.Right.(*ast.Binary); ok && inner.Op == ast.OpMul {
				if ic, ok := inner.Left.(*ast.Const); ok {
					return foldRewrite(e, buildTerm(lc.Val.Mul(ic.Val), inner.Right)), true
				}
			}
		}
	}
	return Rewrite{}, false
}

func foldRewrite(matched ast.Expr, repl ast.Expr) Rewrite {
	return Rewrite{
		Repl:   repl,
		Formal: fmt.Sprintf("constant_fold(%s)", ast.Format(matched)),
		Human:  fmt.Sprintf("evaluate %s", ast.Format(matched)),
	}
}

// foldConsts evaluates a binary operator on two exact constants. Division
// by zero and oversized or fractional exponents are rejected.
func foldConsts(op ast.Op, a, b rational.Rational) (rational.Rational, bool) {
	switch op {
	case ast.OpAdd:
		return a.Add(b), true
	case ast.OpSub:
		return a.Sub(b), true
	case ast.OpMul:
		return a.Mul(b), true
	case ast.OpDiv:
		q, err := a.Div(b)
		if err != nil {
			return rational.Rational{}, false
		}
		return q, true
	case ast.OpPow:
		return ratPow(a, b)
	}
	return rational.Rational{}, false
}

// ratPow computes base^exp exactly for bounded integer exponents
func ratPow(base, exp rational.Rational) (rational.Rational, bool) {
	if !exp.IsInt() {
		return rational.Rational{}, false
	}
	num := exp.Num()
	if num.CmpAbs(big.NewInt(maxFoldExponent)) > 0 {
		return rational.Rational{}, false
	}
	e := num.Int64()
	if e < 0 {
		inv, err := rational.FromInt(1).Div(base)
		if err != nil {
			return rational.Rational{}, false
		}
		base = inv
		e = -e
	}
	out := rational.FromInt(1)
	for i := int64(0); i < e; i++ {
		out = out.Mul(base)
	}
	return out, true
}

// applyCombineLikeTerms merges two additive terms over the same atom by
// summing their coefficients. Matches directly (aX ± bX) and at a chain
// tail ((A ± B) ± C with B, C alike) so left-associative sums shrink
// without restructuring.
func applyCombineLikeTerms(e ast.Expr) (Rewrite, bool) {
	b, ok := e.(*ast.Binary)
	if !ok || (b.Op != ast.OpAdd && b.Op != ast.OpSub) {
		return Rewrite{}, false
	}

	lc, latom := splitTerm(b.Left)
	rc, ratom := splitTerm(b.Right)
	if latom != nil && ratom != nil && latom.Equal(ratom) {
		if b.Op == ast.OpSub {
			rc = rc.Neg()
		}
		return combineRewrite(e, buildTerm(lc.Add(rc), latom)), true
	}

	inner, ok := b.Left.(*ast.Binary)
	if !ok || (inner.Op != ast.OpAdd && inner.Op != ast.OpSub) {
		return Rewrite{}, false
	}
	bc, batom := splitTerm(inner.Right)
	cc, catom := splitTerm(b.Right)
	if !sameAtom(batom, catom) {
		return Rewrite{}, false
	}
	if inner.Op == ast.OpSub {
		bc = bc.Neg()
	}
	if b.Op == ast.OpSub {
		cc = cc.Neg()
	}
	return combineRewrite(e, appendTerm(inner.Left, bc.Add(cc), batom)), true
}

func combineRewrite(matched ast.Expr, repl ast.Expr) Rewrite {
	return Rewrite{
		Repl:   repl,
		Formal: fmt.Sprintf("combine_like_terms(%s)", ast.Format(matched)),
		Human:  fmt.Sprintf("combine like terms in %s", ast.Format(matched)),
	}
}

// splitTerm decomposes e into coefficient*atom. A nil atom means the
// term is a pure constant.
func splitTerm(e ast.Expr) (rational.Rational, ast.Expr) {
	switch n := e.(type) {
	case *ast.Const:
		return n.Val, nil
	case *ast.Var:
		return rational.FromInt(1), n
	case *ast.Unary:
		if n.Op == ast.OpNeg {
			c, atom := splitTerm(n.Child)
			return c.Neg(), atom
		}
	case *ast.Binary:
		if n.Op == ast.OpMul {
			if c, ok := n.Left.(*ast.Const); ok {
				return c.Val, n.Right
			}
		}
	}
	return rational.FromInt(1), e
}

// buildTerm reassembles coefficient*atom in canonical shape
func buildTerm(coef rational.Rational, atom ast.Expr) ast.Expr {
	if atom == nil {
		return ast.NewConst(coef)
	}
	if coef.IsZero() {
		return ast.Int(0)
	}
	if coef.IsOne() {
		return atom
	}
	if coef.Equal(rational.FromInt(-1)) {
		return ast.NewNeg(atom)
	}
	return ast.NewBinary(ast.OpMul, ast.NewConst(coef), atom)
}

// appendTerm attaches coefficient*atom to a sum, choosing + or - by sign
// and dropping the term entirely when the coefficient is zero
func appendTerm(base ast.Expr, coef rational.Rational, atom ast.Expr) ast.Expr {
	if coef.IsZero() {
		return base
	}
	if coef.Sign() < 0 {
		return ast.NewBinary(ast.OpSub, base, buildTerm(coef.Neg(), atom))
	}
	return ast.NewBinary(ast.OpAdd, base, buildTerm(coef, atom))
}

func sameAtom(a, b ast.Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// applyDistribute expands a factor over an adjacent sum or difference,
// in both product orientations and for constant divisors
func applyDistribute(e ast.Expr) (Rewrite, bool) {
	b, ok := e.(*ast.Binary)
	if !ok {
		return Rewrite{}, false
	}

	switch b.Op {
	case ast.OpMul:
		if sum, ok := asSum(b.Right); ok {
			repl := ast.NewBinary(sum.Op,
				ast.NewBinary(ast.OpMul, b.Left, sum.Left),
				ast.NewBinary(ast.OpMul, b.Left, sum.Right))
			return distributeRewrite(e, b.Left, b.Right, repl), true
		}
		if sum, ok := asSum(b.Left); ok {
			repl := ast.NewBinary(sum.Op,
				ast.NewBinary(ast.OpMul, sum.Left, b.Right),
				ast.NewBinary(ast.OpMul, sum.Right, b.Right))
			return distributeRewrite(e, b.Right, b.Left, repl), true
		}

	case ast.OpDiv:
		sum, ok := asSum(b.Left)
		if !ok {
			return Rewrite{}, false
		}
		d, ok := b.Right.(*ast.Const)
		if !ok || d.Val.IsZero() {
			return Rewrite{}, false
		}
		repl := ast.NewBinary(sum.Op,
			ast.NewBinary(ast.OpDiv, sum.Left, d),
			ast.NewBinary(ast.OpDiv, sum.Right, d))
		return distributeRewrite(e, b.Right, b.Left, repl), true
	}
	return Rewrite{}, false
}

func asSum(e ast.Expr) (*ast.Binary, bool) {
	b, ok := e.(*ast.Binary)
	if !ok || (b.Op != ast.OpAdd && b.Op != ast.OpSub) {
		return nil, false
	}
	return b, true
}

func distributeRewrite(matched, factor, sum ast.Expr, repl ast.Expr) Rewrite {
	return Rewrite{
		Repl:   repl,
		Formal: fmt.Sprintf("distribute(%s)", ast.Format(matched)),
		Human:  fmt.Sprintf("distribute %s over %s", ast.Format(factor), ast.Format(sum)),
	}
}

// applyCommute swaps the operands of a commutative operator, but only
// when the swap moves toward canonical order. One-directional matching
// keeps the engine free of commute/commute oscillation.
func applyCommute(e ast.Expr) (Rewrite, bool) {
	b, ok := e.(*ast.Binary)
	if !ok || !b.Op.IsCommutative() {
		return Rewrite{}, false
	}
	if inCanonicalOrder(b.Op, b.Left, b.Right) {
		return Rewrite{}, false
	}
	return Rewrite{
		Repl:   ast.NewBinary(b.Op, b.Right, b.Left),
		Formal: fmt.Sprintf("commute(%s)", ast.Format(e)),
		Human:  fmt.Sprintf("reorder %s", ast.Format(e)),
	}, true
}

// inCanonicalOrder reports whether l, r already follow canonical operand
// order: variable terms before constants in a sum, constant coefficients
// first in a product, variables lexicographic by first name.
func inCanonicalOrder(op ast.Op, l, r ast.Expr) bool {
	lv, rv := ast.ContainsVar(l), ast.ContainsVar(r)
	switch {
	case lv != rv:
		if op == ast.OpAdd {
			return lv
		}
		return rv
	case lv && rv:
		ln, _ := ast.FirstVar(l)
		rn, _ := ast.FirstVar(r)
		return ln <= rn
	default:
		return true
	}
}
