// File: ast_test.go
// Title: AST Unit Tests
// Description: Tests for structural equality, path addressing, persistent
//              replacement (ancestor copy, sibling sharing), and variable
//              lookup helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03

package ast

import (
	"testing"

	"github.com/msto63/mAT/internal/algebra/rational"
)

// sampleEquation builds 4x + 2 = 14
func sampleEquation() Equation {
	left := NewBinary(OpAdd, NewBinary(OpMul, Int(4), NewVar("x")), Int(2))
	return NewEquation(left, Int(14))
}

func TestStructuralEquality(t *testing.T) {
	tests := []struct {
		name string
		a    Expr
		b    Expr
		want bool
	}{
		{
			name: "Identical constants",
			a:    Int(3),
			b:    Int(3),
			want: true,
		},
		{
			name: "Normalized rational equals integer",
			a:    NewConst(mustRat(t, 6, 2)),
			b:    Int(3),
			want: true,
		},
		{
			name: "Different constants",
			a:    Int(3),
			b:    Int(4),
			want: false,
		},
		{
			name: "Same variable",
			a:    NewVar("x"),
			b:    NewVar("x"),
			want: true,
		},
		{
			name: "Different variables",
			a:    NewVar("x"),
			b:    NewVar("y"),
			want: false,
		},
		{
			name: "Commuted operands are not structurally equal",
			a:    NewBinary(OpAdd, NewVar("a"), NewVar("b")),
			b:    NewBinary(OpAdd, NewVar("b"), NewVar("a")),
			want: false,
		},
		{
			name: "Same binary tree",
			a:    NewBinary(OpMul, Int(4), NewVar("x")),
			b:    NewBinary(OpMul, Int(4), NewVar("x")),
			want: true,
		},
		{
			name: "Different operators",
			a:    NewBinary(OpAdd, Int(1), Int(2)),
			b:    NewBinary(OpSub, Int(1), Int(2)),
			want: false,
		},
		{
			name: "Negation",
			a:    NewNeg(NewVar("x")),
			b:    NewNeg(NewVar("x")),
			want: true,
		},
		{
			name: "Negation against variable",
			a:    NewNeg(NewVar("x")),
			b:    NewVar("x"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathAt(t *testing.T) {
	eq := sampleEquation()

	tests := []struct {
		name    string
		path    Path
		want    string
		wantErr bool
	}{
		{name: "Left side", path: Path{0}, want: "4x + 2"},
		{name: "Right side", path: Path{1}, want: "14"},
		{name: "Coefficient term", path: Path{0, 0}, want: "4x"},
		{name: "Coefficient", path: Path{0, 0, 0}, want: "4"},
		{name: "Variable", path: Path{0, 0, 1}, want: "x"},
		{name: "Constant term", path: Path{0, 1}, want: "2"},
		{name: "Empty path", path: Path{}, wantErr: true},
		{name: "Bad side", path: Path{2}, wantErr: true},
		{name: "Out of range child", path: Path{1, 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eq.At(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("At(%v) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err == nil && Format(got) != tt.want {
				t.Errorf("At(%v) = %q, want %q", tt.path, Format(got), tt.want)
			}
		})
	}
}

func TestReplace(t *testing.T) {
	eq := sampleEquation()

	got, err := eq.Replace(Path{0, 1}, Int(5))
	if err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	if got.String() != "4x + 5 = 14" {
		t.Errorf("Replace result = %q, want %q", got.String(), "4x + 5 = 14")
	}
	// The input equation must be untouched
	if eq.String() != "4x + 2 = 14" {
		t.Errorf("input equation mutated: %q", eq.String())
	}
}

func TestReplaceSharesSiblings(t *testing.T) {
	eq := sampleEquation()

	got, err := eq.Replace(Path{0, 1}, Int(5))
	if err != nil {
		t.Fatalf("Replace error: %v", err)
	}

	// The untouched sibling subtree (4x) and the whole right side must be
	// the identical nodes, not copies
	origTerm, _ := eq.At(Path{0, 0})
	newTerm, _ := got.At(Path{0, 0})
	if origTerm != newTerm {
		t.Error("untouched sibling was copied instead of shared")
	}
	if eq.Right != got.Right {
		t.Error("untouched right side was copied instead of shared")
	}
}

func TestPathsOrder(t *testing.T) {
	eq := sampleEquation()

	want := []string{"l", "l.0", "l.0.0", "l.0.1", "l.1", "r"}
	paths := eq.Paths()
	if len(paths) != len(want) {
		t.Fatalf("Paths() returned %d paths, want %d", len(paths), len(want))
	}
	for i, p := range paths {
		if p.String() != want[i] {
			t.Errorf("Paths()[%d] = %q, want %q", i, p.String(), want[i])
		}
	}
}

func TestContainsVar(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want bool
	}{
		{name: "Bare variable", expr: NewVar("x"), want: true},
		{name: "Constant", expr: Int(7), want: false},
		{name: "Nested variable", expr: NewBinary(OpMul, Int(2), NewBinary(OpAdd, NewVar("x"), Int(1))), want: true},
		{name: "Constant tree", expr: NewBinary(OpAdd, Int(1), Int(2)), want: false},
		{name: "Negated variable", expr: NewNeg(NewVar("x")), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsVar(tt.expr); got != tt.want {
				t.Errorf("ContainsVar() = %v, want %v", got, tt.want)
			}
		})
	}
}

func mustRat(t *testing.T, p, q int64) rational.Rational {
	t.Helper()
	r, err := rational.New(p, q)
	if err != nil {
		t.Fatal(err)
	}
	return r
}
