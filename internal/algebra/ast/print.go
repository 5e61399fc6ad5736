// File: print.go
// Title: Canonical Serializer
// Description: Renders expression trees and equations into their unique
//              canonical text. The output is the exact inverse of the
//              parser: parse(Format(T)) is structurally equal to T for every
//              tree reachable through parsing or rewriting. Parenthesization
//              is minimal under the fixed precedence table; integer
//              coefficients print juxtaposed ("4x", "2(x + 3)").
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial implementation

package ast

// Operator precedence levels used for minimal parenthesization
const (
	precAdd  = 1 // + and binary -
	precMul  = 2 // * and /
	precNeg  = 3 // unary minus
	precPow  = 4 // ^
	precAtom = 5 // constants and variables
)

// String renders the equation in canonical form
func (eq Equation) String() string {
	return Format(eq.Left) + " = " + Format(eq.Right)
}

// Format renders an expression tree in canonical form
func Format(e Expr) string {
	return render(e)
}

func precedence(e Expr) int {
	switch n := e.(type) {
	case *Const, *Var:
		return precAtom
	case *Unary:
		return precNeg
	case *Binary:
		switch n.Op {
		case OpPow:
			return precPow
		case OpMul, OpDiv:
			return precMul
		default:
			return precAdd
		}
	default:
		return precAtom
	}
}

func render(e Expr) string {
	switch n := e.(type) {
	case *Const:
		return n.Val.String()

	case *Var:
		return n.Name

	case *Unary:
		child := render(n.Child)
		// A negated constant must not re-fold into a plain literal on reparse
		if _, isConst := n.Child.(*Const); isConst || precedence(n.Child) < precNeg {
			return "-(" + child + ")"
		}
		return "-" + child

	case *Binary:
		return renderBinary(n)

	default:
		return ""
	}
}

func renderBinary(b *Binary) string {
	opPrec := precedence(b)
	left := render(b.Left)
	right := render(b.Right)

	if needsLeftParens(b, opPrec) {
		left = "(" + left + ")"
	}
	if needsRightParens(b, opPrec, right) {
		right = "(" + right + ")"
	}

	switch b.Op {
	case OpAdd:
		return left + " + " + right
	case OpSub:
		return left + " - " + right
	case OpMul:
		if implicitMul(b.Left, right) {
			return left + right
		}
		return left + "*" + right
	case OpDiv:
		return left + "/" + right
	default: // OpPow
		return left + "^" + right
	}
}

// needsLeftParens wraps the left operand when it binds looser than the
// operator, or on the left of the right-associative power operator.
func needsLeftParens(b *Binary, opPrec int) bool {
	leftPrec := precedence(b.Left)
	if leftPrec < opPrec {
		return true
	}
	if b.Op == OpPow {
		if inner, ok := b.Left.(*Binary); ok && inner.Op == OpPow {
			return true
		}
	}
	return false
}

// needsRightParens wraps the right operand when it binds looser, when the
// grammar's left associativity would regroup an equal-precedence operand,
// when it starts with a minus sign, or when a constant right operand of a
// division would merge with the numerator into a rational literal.
func needsRightParens(b *Binary, opPrec int, rendered string) bool {
	rightPrec := precedence(b.Right)
	if rightPrec < opPrec {
		return true
	}
	if rightPrec == opPrec && b.Op != OpPow {
		return true
	}
	if len(rendered) > 0 && rendered[0] == '-' {
		return true
	}
	if b.Op == OpDiv && len(rendered) > 0 && rendered[0] >= '0' && rendered[0] <= '9' {
		return true
	}
	return false
}

// implicitMul reports whether the product prints without an explicit star:
// an integer constant directly in front of a variable or a parenthesized
// group ("4x", "-2(x + 3)").
func implicitMul(left Expr, renderedRight string) bool {
	c, ok := left.(*Const)
	if !ok || !c.Val.IsInt() {
		return false
	}
	if len(renderedRight) == 0 {
		return false
	}
	first := renderedRight[0]
	return first == '(' || (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')
}
