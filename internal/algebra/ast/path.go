// File: path.go
// Title: Path Addressing and Persistent Replacement
// Description: Implements subtree addressing by path and path-addressed
//              replacement. A path's first index selects the equation side
//              (0 = left, 1 = right); the remaining indices select children.
//              Replace rebuilds only the ancestors along the path and shares
//              every other subtree with the input equation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial implementation

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Path locates a subtree within an Equation
type Path []int

// String renders the path as "l", "r", "l.0.1" and so on
func (p Path) String() string {
	if len(p) == 0 {
		return "="
	}
	var sb strings.Builder
	if p[0] == 0 {
		sb.WriteByte('l')
	} else {
		sb.WriteByte('r')
	}
	for _, idx := range p[1:] {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(idx))
	}
	return sb.String()
}

// At resolves the subtree addressed by the path
func (eq Equation) At(p Path) (Expr, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("ast: empty path addresses the equation itself")
	}
	var cur Expr
	switch p[0] {
	case 0:
		cur = eq.Left
	case 1:
		cur = eq.Right
	default:
		return nil, fmt.Errorf("ast: invalid side selector %d", p[0])
	}
	for depth, idx := range p[1:] {
		children := cur.Children()
		if idx < 0 || idx >= len(children) {
			return nil, fmt.Errorf("ast: child index %d out of range at depth %d", idx, depth+1)
		}
		cur = children[idx]
	}
	return cur, nil
}

// Replace returns a new equation with the subtree at the path replaced.
// Ancestors along the path are copied; all other subtrees are shared.
func (eq Equation) Replace(p Path, repl Expr) (Equation, error) {
	if len(p) == 0 {
		return Equation{}, fmt.Errorf("ast: empty path addresses the equation itself")
	}
	switch p[0] {
	case 0:
		left, err := replaceExpr(eq.Left, p[1:], repl)
		if err != nil {
			return Equation{}, err
		}
		return Equation{Left: left, Right: eq.Right}, nil
	case 1:
		right, err := replaceExpr(eq.Right, p[1:], repl)
		if err != nil {
			return Equation{}, err
		}
		return Equation{Left: eq.Left, Right: right}, nil
	default:
		return Equation{}, fmt.Errorf("ast: invalid side selector %d", p[0])
	}
}

// replaceExpr rebuilds the spine from the addressed node up to the root
func replaceExpr(e Expr, p []int, repl Expr) (Expr, error) {
	if len(p) == 0 {
		return repl, nil
	}
	children := e.Children()
	idx := p[0]
	if idx < 0 || idx >= len(children) {
		return nil, fmt.Errorf("ast: child index %d out of range", idx)
	}
	newChild, err := replaceExpr(children[idx], p[1:], repl)
	if err != nil {
		return nil, err
	}
	newChildren := make([]Expr, len(children))
	copy(newChildren, children)
	newChildren[idx] = newChild
	return e.withChildren(newChildren), nil
}

// Paths enumerates every subtree position of the equation in the fixed
// engine order: left side then right side, each pre-order, children
// left to right.
func (eq Equation) Paths() []Path {
	var out []Path
	collectPaths(eq.Left, Path{0}, &out)
	collectPaths(eq.Right, Path{1}, &out)
	return out
}

func collectPaths(e Expr, prefix Path, out *[]Path) {
	own := make(Path, len(prefix))
	copy(own, prefix)
	*out = append(*out, own)
	for i, c := range e.Children() {
		collectPaths(c, append(own, i), out)
	}
}
