// File: equation_rules.go
// Title: Equation-Level Rewrite Rules
// Description: Implements the rules that rewrite both sides of an equation
//              at once: moving an additive term across the equals sign,
//              scaling both sides to clear a coefficient or divisor,
//              swapping sides, and negating both sides to isolate the
//              variable. These match only at the equals node and are
//              enumerated before any node-level rule.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial equation rule implementations

package rules

import (
	"fmt"

	"github.com/msto63/mAT/internal/algebra/ast"
	"github.com/msto63/mAT/internal/algebra/rational"
)

// EquationRewrite describes one successful equation-level application
type EquationRewrite struct {
	Next   ast.Equation // Resulting equation
	Formal string       // Machine-readable description
	Human  string       // Natural-language rationale
}

// EquationRule matches at the equals node and may offer several
// alternative rewrites, one per movable term
type EquationRule struct {
	Name  string
	Apply func(eq ast.Equation) []EquationRewrite
}

// equationRules is the fixed equation-level rule order
var equationRules = []EquationRule{
	{Name: "move_term", Apply: applyMoveTerm},
	{Name: "scale", Apply: applyScale},
	{Name: "swap_sides", Apply: applySwapSides},
	{Name: "isolate_variable", Apply: applyIsolateVariable},
}

// addend is one top-level summand with its sign in the chain
type addend struct {
	expr     ast.Expr
	negative bool
}

// flattenSum splits a left-associative +/- chain into signed addends
func flattenSum(e ast.Expr) []addend {
	if b, ok := e.(*ast.Binary); ok && (b.Op == ast.OpAdd || b.Op == ast.OpSub) {
		return append(flattenSum(b.Left), addend{expr: b.Right, negative: b.Op == ast.OpSub})
	}
	if u, ok := e.(*ast.Unary); ok && u.Op == ast.OpNeg {
		return []addend{{expr: u.Child, negative: true}}
	}
	return []addend{{expr: e}}
}

// rebuildSum reassembles signed addends into a left-associative chain.
// An empty list becomes the constant zero.
func rebuildSum(addends []addend) ast.Expr {
	if len(addends) == 0 {
		return ast.Int(0)
	}
	var out ast.Expr
	first := addends[0]
	switch {
	case !first.negative:
		out = first.expr
	default:
		if c, ok := first.expr.(*ast.Const); ok {
			out = ast.NewConst(c.Val.Neg())
		} else {
			out = ast.NewNeg(first.expr)
		}
	}
	for _, a := range addends[1:] {
		if a.negative {
			out = ast.NewBinary(ast.OpSub, out, a.expr)
		} else {
			out = ast.NewBinary(ast.OpAdd, out, a.expr)
		}
	}
	return out
}

// applyMoveTerm moves one additive term across the equals sign by adding
// or subtracting it on both sides. Constant terms may leave whichever
// side still carries the variable; variable terms may leave the right
// side once both sides carry the variable.
func applyMoveTerm(eq ast.Equation) []EquationRewrite {
	var out []EquationRewrite

	sides := [2]ast.Expr{eq.Left, eq.Right}
	for s, side := range sides {
		if !ast.ContainsVar(side) {
			continue
		}
		terms := flattenSum(side)
		if len(terms) < 2 {
			continue
		}
		for i, term := range terms {
			if ast.ContainsVar(term.expr) {
				continue
			}
			out = append(out, moveRewrite(eq, s, terms, i))
		}
	}

	if ast.ContainsVar(eq.Left) && ast.ContainsVar(eq.Right) {
		terms := flattenSum(eq.Right)
		for i, term := range terms {
			if !ast.ContainsVar(term.expr) {
				continue
			}
			out = append(out, moveRewrite(eq, 1, terms, i))
		}
	}
	return out
}

// moveRewrite materializes moving terms[i] off the given side
func moveRewrite(eq ast.Equation, side int, terms []addend, i int) EquationRewrite {
	moved := terms[i]
	remaining := make([]addend, 0, len(terms)-1)
	remaining = append(remaining, terms[:i]...)
	remaining = append(remaining, terms[i+1:]...)
	newSide := rebuildSum(remaining)

	other := eq.Right
	if side == 1 {
		other = eq.Left
	}

	var newOther ast.Expr
	var formal, human string
	arg := ast.Format(moved.expr)
	if moved.negative {
		newOther = addExpr(other, moved.expr)
		formal = fmt.Sprintf("add_both_sides(%s)", arg)
		human = fmt.Sprintf("add %s to both sides", arg)
	} else {
		newOther = subExpr(other, moved.expr)
		formal = fmt.Sprintf("subtract_both_sides(%s)", arg)
		human = fmt.Sprintf("subtract %s from both sides", arg)
	}

	next := ast.NewEquation(newSide, newOther)
	if side == 1 {
		next = ast.NewEquation(newOther, newSide)
	}
	return EquationRewrite{Next: next, Formal: formal, Human: human}
}

// addExpr builds other + t, folding two constants eagerly so moving a
// constant off a solved-for side lands directly on a single number
func addExpr(other, t ast.Expr) ast.Expr {
	oc, ok1 := other.(*ast.Const)
	tc, ok2 := t.(*ast.Const)
	if ok1 && ok2 {
		return ast.NewConst(oc.Val.Add(tc.Val))
	}
	return ast.NewBinary(ast.OpAdd, other, t)
}

// subExpr builds other - t, folding two constants eagerly
func subExpr(other, t ast.Expr) ast.Expr {
	oc, ok1 := other.(*ast.Const)
	tc, ok2 := t.(*ast.Const)
	if ok1 && ok2 {
		return ast.NewConst(oc.Val.Sub(tc.Val))
	}
	return ast.NewBinary(ast.OpSub, other, t)
}

// applyScale clears a constant coefficient or divisor from a side that
// carries the variable by dividing or multiplying both sides. Scaling by
// zero is never offered; scaling by one is pointless and skipped.
func applyScale(eq ast.Equation) []EquationRewrite {
	var out []EquationRewrite
	for s := 0; s < 2; s++ {
		side, other := eq.Left, eq.Right
		if s == 1 {
			side, other = eq.Right, eq.Left
		}

		b, ok := side.(*ast.Binary)
		if !ok {
			continue
		}
		switch b.Op {
		case ast.OpMul:
			c, ok := b.Left.(*ast.Const)
			if !ok || c.Val.IsZero() || c.Val.IsOne() || !ast.ContainsVar(b.Right) {
				continue
			}
			arg := c.Val.String()
			out = append(out, EquationRewrite{
				Next:   sideReplace(eq, s, b.Right, divExpr(other, c.Val)),
				Formal: fmt.Sprintf("divide_both_sides(%s)", arg),
				Human:  fmt.Sprintf("divide both sides by %s", arg),
			})
		case ast.OpDiv:
			c, ok := b.Right.(*ast.Const)
			if !ok || c.Val.IsZero() || c.Val.IsOne() || !ast.ContainsVar(b.Left) {
				continue
			}
			arg := c.Val.String()
			out = append(out, EquationRewrite{
				Next:   sideReplace(eq, s, b.Left, mulExpr(other, c.Val)),
				Formal: fmt.Sprintf("multiply_both_sides(%s)", arg),
				Human:  fmt.Sprintf("multiply both sides by %s", arg),
			})
		}
	}
	return out
}

// sideReplace rebuilds the equation with newSide on the given side and
// newOther opposite
func sideReplace(eq ast.Equation, side int, newSide, newOther ast.Expr) ast.Equation {
	if side == 0 {
		return ast.NewEquation(newSide, newOther)
	}
	return ast.NewEquation(newOther, newSide)
}

// divExpr builds other / c, folding when the operand is a constant.
// The caller guarantees c is nonzero.
func divExpr(other ast.Expr, c rational.Rational) ast.Expr {
	if oc, ok := other.(*ast.Const); ok {
		if q, err := oc.Val.Div(c); err == nil {
			return ast.NewConst(q)
		}
	}
	return ast.NewBinary(ast.OpDiv, other, ast.NewConst(c))
}

// mulExpr builds c * other with the constant first, folding when the
// operand is a constant
func mulExpr(other ast.Expr, c rational.Rational) ast.Expr {
	if oc, ok := other.(*ast.Const); ok {
		return ast.NewConst(c.Mul(oc.Val))
	}
	return ast.NewBinary(ast.OpMul, ast.NewConst(c), other)
}

// applySwapSides flips an equation whose variable sits only on the right
func applySwapSides(eq ast.Equation) []EquationRewrite {
	if ast.ContainsVar(eq.Left) || !ast.ContainsVar(eq.Right) {
		return nil
	}
	return []EquationRewrite{{
		Next:   ast.NewEquation(eq.Right, eq.Left),
		Formal: "swap_sides",
		Human:  "swap the two sides",
	}}
}

// applyIsolateVariable removes a top-level negation from the side that
// carries the variable by negating both sides
func applyIsolateVariable(eq ast.Equation) []EquationRewrite {
	var out []EquationRewrite
	for s := 0; s < 2; s++ {
		side, other := eq.Left, eq.Right
		if s == 1 {
			side, other = eq.Right, eq.Left
		}
		u, ok := side.(*ast.Unary)
		if !ok || u.Op != ast.OpNeg || !ast.ContainsVar(u.Child) {
			continue
		}
		out = append(out, EquationRewrite{
			Next:   sideReplace(eq, s, u.Child, negExpr(other)),
			Formal: "isolate_variable",
			Human:  "negate both sides",
		})
	}
	return out
}

// negExpr negates an expression, cancelling a double negation and
// folding a constant directly
func negExpr(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.Const:
		return ast.NewConst(n.Val.Neg())
	case *ast.Unary:
		if n.Op == ast.OpNeg {
			return n.Child
		}
	}
	return ast.NewNeg(e)
}
