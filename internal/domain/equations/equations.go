// File: equations.go
// Title: Linear Equation Domain
// Description: Implements the "equations-ct" domain: seeded generation of
//              solvable single-variable equations and enumeration of legal
//              rewrite actions on equation states, wired from the algebra
//              parser, rule engine, and generator.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial domain implementation

package equations

import (
	"github.com/msto63/mAT/internal/algebra/generator"
	"github.com/msto63/mAT/internal/algebra/parser"
	"github.com/msto63/mAT/internal/algebra/rules"
	"github.com/msto63/mAT/internal/domain"
)

// Name is the stable registry name of this domain
const Name = "equations-ct"

// Domain is the stateless linear-equation problem family
type Domain struct{}

// New creates the equations domain
func New() *Domain {
	return &Domain{}
}

// Name returns the registry name
func (d *Domain) Name() string {
	return Name
}

// Generate produces a solvable equation for the seed
func (d *Domain) Generate(seed uint64) string {
	return generator.Generate(seed)
}

// Step enumerates every legal rewrite of the state in the fixed engine
// order. Unparseable states report false; engine invariant violations
// degrade to the same per-state failure instead of propagating.
func (d *Domain) Step(state string) ([]domain.Action, bool) {
	eq, err := parser.Parse(state)
	if err != nil {
		return nil, false
	}

	actions, err := rules.Enumerate(eq)
	if err != nil {
		return nil, false
	}

	out := make([]domain.Action, len(actions))
	for i, a := range actions {
		out[i] = domain.Action{Next: a.Next, Formal: a.Formal, Human: a.Human}
	}
	return out, true
}
