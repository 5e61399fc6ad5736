// File: generator.go
// Title: Seeded Equation Scrambler
// Description: Implements deterministic problem generation: a solved
//              equation is complicated by inverse rewrite steps whose
//              forward counterparts the rewrite engine offers, keeping the
//              variable side in a shape the canonical serializer and parser
//              reproduce exactly.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial implementation

package generator

import (
	"math/rand"

	"github.com/msto63/mAT/internal/algebra/ast"
	"github.com/msto63/mAT/internal/algebra/rational"
)

const (
	// defaultVariable is the unknown every generated problem solves for
	defaultVariable = "x"

	// minSteps and maxSteps bound the number of inverse scramble steps
	minSteps = 2
	maxSteps = 5

	// maxRetries bounds redraws of degenerate step candidates before the
	// generator falls back to the known-safe scramble
	maxRetries = 8

	// maxRightMagnitude keeps the constant side within a range suitable
	// for mental arithmetic
	maxRightMagnitude = 200

	// maxCoefMagnitude keeps merged coefficients small
	maxCoefMagnitude = 48
)

// Generate produces a solvable equation for the seed. Identical seeds
// always yield byte-identical text.
func Generate(seed uint64) string {
	rng := rand.New(rand.NewSource(int64(seed)))
	return scramble(rng).String()
}

// scramble runs the inverse-rule walk from a solved equation
func scramble(rng *rand.Rand) ast.Equation {
	solution := int64(rng.Intn(25) - 12)
	left := ast.Expr(ast.NewVar(defaultVariable))
	right := rational.FromInt(solution)

	steps := minSteps + rng.Intn(maxSteps-minSteps+1)
	retries := 0
	for step := 0; step < steps; {
		var (
			newLeft  ast.Expr
			newRight rational.Rational
			ok       bool
		)
		if rng.Intn(2) == 0 {
			newLeft, newRight, ok = addConstStep(rng, left, right)
		} else {
			newLeft, newRight, ok = mulConstStep(rng, left, right)
		}
		if !ok {
			retries++
			if retries > maxRetries {
				return fallbackScramble(solution)
			}
			continue
		}
		left, right = newLeft, newRight
		step++
	}

	return ast.NewEquation(left, ast.NewConst(right))
}

// addConstStep adds a nonzero constant to both sides. The inverse is the
// engine's move_term rule. A negative draw is written as a subtraction
// so the output stays in canonical form.
func addConstStep(rng *rand.Rand, left ast.Expr, right rational.Rational) (ast.Expr, rational.Rational, bool) {
	t := int64(rng.Intn(19) - 9)
	if t == 0 {
		return nil, rational.Rational{}, false
	}
	newRight := right.Add(rational.FromInt(t))
	if outOfRange(newRight) {
		return nil, rational.Rational{}, false
	}
	if t < 0 {
		return ast.NewBinary(ast.OpSub, left, ast.Int(-t)), newRight, true
	}
	return ast.NewBinary(ast.OpAdd, left, ast.Int(t)), newRight, true
}

// mulConstStep multiplies both sides by a constant outside {-1, 0, 1}.
// The inverse is the engine's scale rule. An existing coefficient is
// merged instead of stacked so the variable side never nests products.
func mulConstStep(rng *rand.Rand, left ast.Expr, right rational.Rational) (ast.Expr, rational.Rational, bool) {
	c := int64(rng.Intn(9) - 4)
	if c >= -1 && c <= 1 {
		return nil, rational.Rational{}, false
	}
	factor := rational.FromInt(c)
	newRight := right.Mul(factor)
	if outOfRange(newRight) {
		return nil, rational.Rational{}, false
	}

	switch n := left.(type) {
	case *ast.Var:
		return ast.NewBinary(ast.OpMul, ast.NewConst(factor), n), newRight, true

	case *ast.Binary:
		if n.Op == ast.OpMul {
			coef, ok := n.Left.(*ast.Const)
			if !ok {
				return nil, rational.Rational{}, false
			}
			merged := coef.Val.Mul(factor)
			if merged.Abs().Cmp(rational.FromInt(maxCoefMagnitude)) > 0 {
				return nil, rational.Rational{}, false
			}
			return ast.NewBinary(ast.OpMul, ast.NewConst(merged), n.Right), newRight, true
		}
		if n.Op == ast.OpAdd || n.Op == ast.OpSub {
			return ast.NewBinary(ast.OpMul, ast.NewConst(factor), n), newRight, true
		}
	}
	return nil, rational.Rational{}, false
}

// fallbackScramble is the guaranteed-safe two-step scramble used once
// the retry budget is exhausted
func fallbackScramble(solution int64) ast.Equation {
	left := ast.NewBinary(ast.OpMul, ast.Int(2),
		ast.NewBinary(ast.OpAdd, ast.NewVar(defaultVariable), ast.Int(2)))
	return ast.NewEquation(left, ast.Int(2*(solution+2)))
}

// outOfRange reports whether a constant side grew beyond the bound
func outOfRange(r rational.Rational) bool {
	return r.Abs().Cmp(rational.FromInt(maxRightMagnitude)) > 0
}
