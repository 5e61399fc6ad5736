// File: domain.go
// Title: Domain Contract
// Description: Defines the Domain interface implemented by every problem
//              family and the Action and StepResult value types exchanged
//              with callers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial contract definition

package domain

// Action is one legal transition away from a state
type Action struct {
	Next   string `json:"next_state"`         // Canonical text of the resulting state
	Formal string `json:"formal_description"` // Machine-readable rule application
	Human  string `json:"human_description"`  // Natural-language rationale
}

// StepResult is the per-state outcome within a batched step call.
// An invalid result marks a state the domain could not parse; a valid
// result with no actions marks a terminal state.
type StepResult struct {
	Valid   bool     `json:"valid"`
	Actions []Action `json:"actions"`
}

// Domain generates problems and enumerates legal moves for one problem
// family. Implementations must be stateless: identical inputs yield
// identical outputs, and concurrent calls are safe.
type Domain interface {
	// Name returns the stable registry name of the domain
	Name() string

	// Generate produces a solvable problem for the seed, deterministically
	Generate(seed uint64) string

	// Step enumerates every legal action for the state in a fixed order.
	// The boolean is false when the state cannot be parsed; an empty
	// action list with true marks a terminal state.
	Step(state string) ([]Action, bool)
}
