// File: nodes.go
// Title: AST Node Definitions
// Description: Defines all expression node types for representing single
//              variable equations: exact-rational constants, variables,
//              binary operators (+ - * / ^), and unary negation. Includes
//              structural equality and the Equation pair type.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial AST node definitions

package ast

import (
	"github.com/msto63/mAT/internal/algebra/rational"
)

// Op identifies an operator
type Op string

// Operator set of the supported grammar
const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpPow Op = "^"
	OpNeg Op = "neg"
)

// IsCommutative reports whether operand order is semantically irrelevant
func (op Op) IsCommutative() bool {
	return op == OpAdd || op == OpMul
}

// Expr represents the base interface for all expression nodes.
// Implementations are immutable after construction.
type Expr interface {
	// Equal reports structural equality (same shape, same values)
	Equal(other Expr) bool

	// Children returns the direct child expressions in fixed order
	Children() []Expr

	// withChildren builds a copy of the node with replaced children
	withChildren(children []Expr) Expr

	// exprNode is the marker method restricting the variant set
	exprNode()
}

// Const represents an exact rational constant
type Const struct {
	Val rational.Rational
}

// NewConst creates a constant node from a rational value
func NewConst(val rational.Rational) *Const {
	return &Const{Val: val}
}

// Int creates an integer constant node
func Int(n int64) *Const {
	return &Const{Val: rational.FromInt(n)}
}

func (c *Const) Equal(other Expr) bool {
	o, ok := other.(*Const)
	return ok && c.Val.Equal(o.Val)
}

func (c *Const) Children() []Expr              { return nil }
func (c *Const) withChildren(children []Expr) Expr { return c }
func (c *Const) exprNode()                     {}

// Var represents a variable by name
type Var struct {
	Name string
}

// NewVar creates a variable node
func NewVar(name string) *Var {
	return &Var{Name: name}
}

func (v *Var) Equal(other Expr) bool {
	o, ok := other.(*Var)
	return ok && v.Name == o.Name
}

func (v *Var) Children() []Expr              { return nil }
func (v *Var) withChildren(children []Expr) Expr { return v }
func (v *Var) exprNode()                     {}

// Binary represents a binary operator application
type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
}

// NewBinary creates a binary operator node
func NewBinary(op Op, left, right Expr) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

func (b *Binary) Equal(other Expr) bool {
	o, ok := other.(*Binary)
	return ok && b.Op == o.Op && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

func (b *Binary) Children() []Expr { return []Expr{b.Left, b.Right} }

func (b *Binary) withChildren(children []Expr) Expr {
	return &Binary{Op: b.Op, Left: children[0], Right: children[1]}
}

func (b *Binary) exprNode() {}

// Unary represents a unary operator application (negation only)
type Unary struct {
	Op    Op
	Child Expr
}

// NewNeg creates a negation node
func NewNeg(child Expr) *Unary {
	return &Unary{Op: OpNeg, Child: child}
}

func (u *Unary) Equal(other Expr) bool {
	o, ok := other.(*Unary)
	return ok && u.Op == o.Op && u.Child.Equal(o.Child)
}

func (u *Unary) Children() []Expr { return []Expr{u.Child} }

func (u *Unary) withChildren(children []Expr) Expr {
	return &Unary{Op: u.Op, Child: children[0]}
}

func (u *Unary) exprNode() {}

// Equation represents left = right
type Equation struct {
	Left  Expr
	Right Expr
}

// NewEquation creates an equation from two expression trees
func NewEquation(left, right Expr) Equation {
	return Equation{Left: left, Right: right}
}

// Equal reports structural equality of both sides
func (eq Equation) Equal(other Equation) bool {
	return eq.Left.Equal(other.Left) && eq.Right.Equal(other.Right)
}

// ContainsVar reports whether any variable occurs in the expression
func ContainsVar(e Expr) bool {
	switch n := e.(type) {
	case *Var:
		return true
	case *Const:
		return false
	default:
		for _, c := range n.Children() {
			if ContainsVar(c) {
				return true
			}
		}
		return false
	}
}

// FirstVar returns the name of the first variable in pre-order, if any
func FirstVar(e Expr) (string, bool) {
	switch n := e.(type) {
	case *Var:
		return n.Name, true
	case *Const:
		return "", false
	default:
		for _, c := range n.Children() {
			if name, ok := FirstVar(c); ok {
				return name, true
			}
		}
		return "", false
	}
}
