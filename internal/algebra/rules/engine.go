// File: engine.go
// Title: Deterministic Rewrite Enumeration Engine
// Description: Enumerates every legal rewrite of an equation in a fixed
//              order: equation-level rules at the equals node first, then
//              node-level rules at every subtree position (left side before
//              right side, pre-order, children left to right), each rule
//              tested in catalogue order. The resulting action list is
//              byte-identical across repeated calls on the same state.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial engine implementation

package rules

import (
	"github.com/msto63/mAT/internal/algebra/ast"
	materror "github.com/msto63/mAT/pkg/core/error"
)

// Action is one legal rewrite transition away from a state
type Action struct {
	Next   string // Canonical text of the resulting equation
	Formal string // Machine-readable description, e.g. "subtract_both_sides(2)"
	Human  string // Natural-language rationale
}

// Enumerate lists every legal action for the equation. An empty list
// means the state is terminal (solved or irreducible). Errors indicate a
// broken engine invariant, never a property of the input.
func Enumerate(eq ast.Equation) ([]Action, error) {
	actions := []Action{}

	for _, rule := range equationRules {
		for _, rw := range rule.Apply(eq) {
			actions = append(actions, Action{
				Next:   rw.Next.String(),
				Formal: rw.Formal,
				Human:  rw.Human,
			})
		}
	}

	for _, path := range eq.Paths() {
		node, err := eq.At(path)
		if err != nil {
			return nil, materror.Wrap(err, "path enumeration out of sync").
				WithCode(materror.CodeInvariantViolation).
				WithSeverity(materror.SeverityHigh).
				WithDetail("path", path.String())
		}
		for _, rule := range nodeRules {
			rw, ok := rule.Apply(node)
			if !ok {
				continue
			}
			next, err := eq.Replace(path, rw.Repl)
			if err != nil {
				return nil, materror.Wrap(err, "rule produced an unplaceable subtree").
					WithCode(materror.CodeInvariantViolation).
					WithSeverity(materror.SeverityHigh).
					WithDetail("rule", rule.Name).
					WithDetail("path", path.String())
			}
			actions = append(actions, Action{
				Next:   next.String(),
				Formal: rw.Formal,
				Human:  rw.Human,
			})
		}
	}

	return actions, nil
}
