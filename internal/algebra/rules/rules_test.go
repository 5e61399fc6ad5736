// File: rules_test.go
// Title: Rule Unit Tests
// Description: Tests for the individual node-level rules: exact constant
//              folding with its guard conditions, like-term combination,
//              distribution, and one-directional commutation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03

package rules

import (
	"testing"

	"github.com/msto63/mAT/internal/algebra/ast"
	"github.com/msto63/mAT/internal/algebra/rational"
)

func TestApplyConstantFold(t *testing.T) {
	x := ast.NewVar("x")

	tests := []struct {
		name      string
		expr      ast.Expr
		wantMatch bool
		wantRepl  ast.Expr
	}{
		{
			name:      "Addition",
			expr:      ast.NewBinary(ast.OpAdd, ast.Int(4), ast.Int(2)),
			wantMatch: true,
			wantRepl:  ast.Int(6),
		},
		{
			name:      "Exact division",
			expr:      ast.NewBinary(ast.OpDiv, ast.Int(1), ast.Int(3)),
			wantMatch: true,
			wantRepl:  ast.NewConst(mustRational(t, 1, 3)),
		},
		{
			name:      "Division by zero is rejected",
			expr:      ast.NewBinary(ast.OpDiv, ast.Int(4), ast.Int(0)),
			wantMatch: false,
		},
		{
			name:      "Integer power",
			expr:      ast.NewBinary(ast.OpPow, ast.Int(2), ast.Int(3)),
			wantMatch: true,
			wantRepl:  ast.Int(8),
		},
		{
			name:      "Negative power inverts",
			expr:      ast.NewBinary(ast.OpPow, ast.Int(2), ast.Int(-2)),
			wantMatch: true,
			wantRepl:  ast.NewConst(mustRational(t, 1, 4)),
		},
		{
			name:      "Zero base with negative power is rejected",
			expr:      ast.NewBinary(ast.OpPow, ast.Int(0), ast.Int(-1)),
			wantMatch: false,
		},
		{
			name:      "Oversized exponent is rejected",
			expr:      ast.NewBinary(ast.OpPow, ast.Int(2), ast.Int(64)),
			wantMatch: false,
		},
		{
			name:      "Fractional exponent is rejected",
			expr:      ast.NewBinary(ast.OpPow, ast.Int(4), ast.NewConst(mustRational(t, 1, 2))),
			wantMatch: false,
		},
		{
			name:      "Negated constant",
			expr:      ast.NewNeg(ast.Int(3)),
			wantMatch: true,
			wantRepl:  ast.Int(-3),
		},
		{
			name:      "Stacked coefficients merge",
			expr:      ast.NewBinary(ast.OpMul, ast.Int(2), ast.NewBinary(ast.OpMul, ast.Int(3), x)),
			wantMatch: true,
			wantRepl:  ast.NewBinary(ast.OpMul, ast.Int(6), x),
		},
		{
			name:      "Variable operand does not fold",
			expr:      ast.NewBinary(ast.OpAdd, x, ast.Int(2)),
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw, ok := applyConstantFold(tt.expr)
			if ok != tt.wantMatch {
				t.Fatalf("match = %v, want %v", ok, tt.wantMatch)
			}
			if ok && !rw.Repl.Equal(tt.wantRepl) {
				t.Errorf("Repl = %s, want %s", ast.Format(rw.Repl), ast.Format(tt.wantRepl))
			}
		})
	}
}

func TestApplyCombineLikeTerms(t *testing.T) {
	x := ast.NewVar("x")
	y := ast.NewVar("y")

	tests := []struct {
		name      string
		expr      ast.Expr
		wantMatch bool
		wantRepl  ast.Expr
	}{
		{
			name:      "Coefficients sum",
			expr:      ast.NewBinary(ast.OpAdd, ast.NewBinary(ast.OpMul, ast.Int(2), x), ast.NewBinary(ast.OpMul, ast.Int(3), x)),
			wantMatch: true,
			wantRepl:  ast.NewBinary(ast.OpMul, ast.Int(5), x),
		},
		{
			name:      "Subtraction negates the right coefficient",
			expr:      ast.NewBinary(ast.OpSub, ast.NewBinary(ast.OpMul, ast.Int(2), x), x),
			wantMatch: true,
			wantRepl:  x,
		},
		{
			name:      "Cancellation collapses to zero",
			expr:      ast.NewBinary(ast.OpSub, x, x),
			wantMatch: true,
			wantRepl:  ast.Int(0),
		},
		{
			name:      "Different atoms do not combine",
			expr:      ast.NewBinary(ast.OpAdd, x, y),
			wantMatch: false,
		},
		{
			name:      "Constant pair is left to folding",
			expr:      ast.NewBinary(ast.OpAdd, ast.Int(2), ast.Int(3)),
			wantMatch: false,
		},
		{
			name: "Chain tail merges constants",
			expr: ast.NewBinary(ast.OpAdd,
				ast.NewBinary(ast.OpAdd, ast.NewBinary(ast.OpMul, ast.Int(4), x), ast.Int(2)),
				ast.Int(3)),
			wantMatch: true,
			wantRepl:  ast.NewBinary(ast.OpAdd, ast.NewBinary(ast.OpMul, ast.Int(4), x), ast.Int(5)),
		},
		{
			name: "Chain tail cancels completely",
			expr: ast.NewBinary(ast.OpSub,
				ast.NewBinary(ast.OpAdd, x, ast.Int(2)),
				ast.Int(2)),
			wantMatch: true,
			wantRepl:  x,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw, ok := applyCombineLikeTerms(tt.expr)
			if ok != tt.wantMatch {
				t.Fatalf("match = %v, want %v", ok, tt.wantMatch)
			}
			if ok && !rw.Repl.Equal(tt.wantRepl) {
				t.Errorf("Repl = %s, want %s", ast.Format(rw.Repl), ast.Format(tt.wantRepl))
			}
		})
	}
}

func TestApplyDistribute(t *testing.T) {
	x := ast.NewVar("x")
	sum := ast.NewBinary(ast.OpAdd, x, ast.Int(3))

	rw, ok := applyDistribute(ast.NewBinary(ast.OpMul, ast.Int(2), sum))
	if !ok {
		t.Fatal("distribute should match 2(x + 3)")
	}
	want := ast.NewBinary(ast.OpAdd,
		ast.NewBinary(ast.OpMul, ast.Int(2), x),
		ast.NewBinary(ast.OpMul, ast.Int(2), ast.Int(3)))
	if !rw.Repl.Equal(want) {
		t.Errorf("Repl = %s, want %s", ast.Format(rw.Repl), ast.Format(want))
	}

	if _, ok := applyDistribute(ast.NewBinary(ast.OpDiv, sum, ast.Int(0))); ok {
		t.Error("distribute must not divide by zero")
	}

	if _, ok := applyDistribute(ast.NewBinary(ast.OpMul, ast.Int(2), x)); ok {
		t.Error("distribute must not match a product without a sum")
	}
}

func TestApplyCommute(t *testing.T) {
	x := ast.NewVar("x")
	fourX := ast.NewBinary(ast.OpMul, ast.Int(4), x)

	tests := []struct {
		name      string
		expr      ast.Expr
		wantMatch bool
	}{
		{name: "Constant-first sum fires", expr: ast.NewBinary(ast.OpAdd, ast.Int(2), fourX), wantMatch: true},
		{name: "Canonical sum stays", expr: ast.NewBinary(ast.OpAdd, fourX, ast.Int(2)), wantMatch: false},
		{name: "Variable-first product fires", expr: ast.NewBinary(ast.OpMul, x, ast.Int(4)), wantMatch: true},
		{name: "Canonical product stays", expr: fourX, wantMatch: false},
		{name: "Unordered variables fire", expr: ast.NewBinary(ast.OpAdd, ast.NewVar("y"), x), wantMatch: true},
		{name: "Ordered variables stay", expr: ast.NewBinary(ast.OpAdd, x, ast.NewVar("y")), wantMatch: false},
		{name: "Subtraction never commutes", expr: ast.NewBinary(ast.OpSub, ast.Int(2), fourX), wantMatch: false},
		{name: "Constant pair stays", expr: ast.NewBinary(ast.OpAdd, ast.Int(2), ast.Int(3)), wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw, ok := applyCommute(tt.expr)
			if ok != tt.wantMatch {
				t.Fatalf("match = %v, want %v", ok, tt.wantMatch)
			}
			if !ok {
				return
			}
			// A second application on the result must never fire.
			if _, again := applyCommute(rw.Repl); again {
				t.Errorf("commute oscillates on %s", ast.Format(rw.Repl))
			}
		})
	}
}

func mustRational(t *testing.T, p, q int64) rational.Rational {
	t.Helper()
	r, err := rational.New(p, q)
	if err != nil {
		t.Fatalf("rational.New(%d, %d): %v", p, q, err)
	}
	return r
}
