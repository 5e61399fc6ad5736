// File: engine_test.go
// Title: Rewrite Engine Tests
// Description: Tests for deterministic action enumeration: the fixed
//              ordering guarantees, equation-level rule behavior, terminal
//              states, and the guarantee that greedy forward application
//              reaches a solved form on standard problems.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03

package rules

import (
	"reflect"
	"testing"

	"github.com/msto63/mAT/internal/algebra/ast"
	"github.com/msto63/mAT/internal/algebra/parser"
)

func mustParse(t *testing.T, input string) ast.Equation {
	t.Helper()
	eq, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return eq
}

func mustEnumerate(t *testing.T, input string) []Action {
	t.Helper()
	actions, err := Enumerate(mustParse(t, input))
	if err != nil {
		t.Fatalf("Enumerate(%q): %v", input, err)
	}
	return actions
}

// TestEnumerate_SubtractBothSides pins the exact move list: the one
// legal move on "4x + 2 = 14" is subtracting 2 from both sides.
func TestEnumerate_SubtractBothSides(t *testing.T) {
	actions := mustEnumerate(t, "4x + 2 = 14")

	want := []Action{{
		Next:   "4x = 12",
		Formal: "subtract_both_sides(2)",
		Human:  "subtract 2 from both sides",
	}}
	if !reflect.DeepEqual(actions, want) {
		t.Errorf("actions = %+v, want %+v", actions, want)
	}
}

func TestEnumerate_Actions(t *testing.T) {
	tests := []struct {
		name  string
		state string
		want  Action
	}{
		{
			name:  "Clear a coefficient",
			state: "4x = 12",
			want:  Action{Next: "x = 3", Formal: "divide_both_sides(4)", Human: "divide both sides by 4"},
		},
		{
			name:  "Negative coefficient divides through",
			state: "-4x = 12",
			want:  Action{Next: "x = -3", Formal: "divide_both_sides(-4)", Human: "divide both sides by -4"},
		},
		{
			name:  "Rational coefficient divides through",
			state: "1/2*x = 3",
			want:  Action{Next: "x = 6", Formal: "divide_both_sides(1/2)", Human: "divide both sides by 1/2"},
		},
		{
			name:  "Clear a divisor",
			state: "x/(2) = 5",
			want:  Action{Next: "x = 10", Formal: "multiply_both_sides(2)", Human: "multiply both sides by 2"},
		},
		{
			name:  "Add a subtracted term back",
			state: "x - 3 = 7",
			want:  Action{Next: "x = 10", Formal: "add_both_sides(3)", Human: "add 3 to both sides"},
		},
		{
			name:  "Move a constant off the right side",
			state: "14 = 4x + 2",
			want:  Action{Next: "12 = 4x", Formal: "subtract_both_sides(2)", Human: "subtract 2 from both sides"},
		},
		{
			name:  "Swap a reversed equation",
			state: "12 = 4x",
			want:  Action{Next: "4x = 12", Formal: "swap_sides", Human: "swap the two sides"},
		},
		{
			name:  "Move a variable term off the right side",
			state: "2x = x + 5",
			want:  Action{Next: "2x - x = 5", Formal: "subtract_both_sides(x)", Human: "subtract x from both sides"},
		},
		{
			name:  "Negate both sides",
			state: "-x = 5",
			want:  Action{Next: "x = -5", Formal: "isolate_variable", Human: "negate both sides"},
		},
		{
			name:  "Divide out a factored group",
			state: "2(x + 3) = 10",
			want:  Action{Next: "x + 3 = 5", Formal: "divide_both_sides(2)", Human: "divide both sides by 2"},
		},
		{
			name:  "Distribute over a group",
			state: "2(x + 3) = 10",
			want:  Action{Next: "2x + 2*3 = 10", Formal: "distribute(2(x + 3))", Human: "distribute 2 over x + 3"},
		},
		{
			name:  "Combine like terms",
			state: "2x + 3x = 10",
			want:  Action{Next: "5x = 10", Formal: "combine_like_terms(2x + 3x)", Human: "combine like terms in 2x + 3x"},
		},
		{
			name:  "Reorder toward canonical form",
			state: "2 + 4x = 14",
			want:  Action{Next: "4x + 2 = 14", Formal: "commute(2 + 4x)", Human: "reorder 2 + 4x"},
		},
		{
			name:  "Fold a constant subtree",
			state: "x = 4 - 6",
			want:  Action{Next: "x = -2", Formal: "constant_fold(4 - 6)", Human: "evaluate 4 - 6"},
		},
		{
			name:  "Fold an integer power",
			state: "x = 2^3",
			want:  Action{Next: "x = 8", Formal: "constant_fold(2^3)", Human: "evaluate 2^3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions := mustEnumerate(t, tt.state)
			for _, a := range actions {
				if a == tt.want {
					return
				}
			}
			t.Errorf("Enumerate(%q) = %+v, missing %+v", tt.state, actions, tt.want)
		})
	}
}

func TestEnumerate_Terminal(t *testing.T) {
	tests := []struct {
		name  string
		state string
	}{
		{name: "Solved form", state: "x = 3"},
		{name: "Negative solution", state: "x = -3"},
		{name: "Rational solution", state: "x = 1/2"},
		{name: "Irreducible power", state: "x^2 = 9"},
		{name: "Guarded zero divisor", state: "x = 4/(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions := mustEnumerate(t, tt.state)
			if actions == nil {
				t.Fatal("terminal states must return an empty list, not nil")
			}
			if len(actions) != 0 {
				t.Errorf("Enumerate(%q) = %+v, want no actions", tt.state, actions)
			}
		})
	}
}

// TestEnumerate_Deterministic checks that repeated enumeration of the
// same state yields the identical list in the identical order.
func TestEnumerate_Deterministic(t *testing.T) {
	states := []string{"4x + 2 = 14", "2(x + 3) = 10", "2 + 4x = 14", "14 = 4x + 2"}

	for _, state := range states {
		first := mustEnumerate(t, state)
		for i := 0; i < 5; i++ {
			if again := mustEnumerate(t, state); !reflect.DeepEqual(first, again) {
				t.Errorf("Enumerate(%q) varied between calls:\n%+v\n%+v", state, first, again)
			}
		}
	}
}

// TestEnumerate_EquationRulesFirst checks the enumeration order:
// equation-level matches precede node-level matches.
func TestEnumerate_EquationRulesFirst(t *testing.T) {
	actions := mustEnumerate(t, "2 + 4x = 14")
	if len(actions) < 2 {
		t.Fatalf("expected at least two actions, got %+v", actions)
	}
	if actions[0].Formal != "subtract_both_sides(2)" {
		t.Errorf("first action = %+v, want the term move", actions[0])
	}
}

// TestEnumerate_GreedySolve follows the first offered action from each
// start state and must reach a terminal solved form within a small
// number of steps.
func TestEnumerate_GreedySolve(t *testing.T) {
	tests := []struct {
		state string
		want  string
	}{
		{state: "4x + 2 = 14", want: "x = 3"},
		{state: "14 = 4x + 2", want: "x = 3"},
		{state: "2(x + 3) = 10", want: "x = 2"},
		{state: "x - 3 = 7", want: "x = 10"},
		{state: "-x = 5", want: "x = -5"},
		{state: "x/(2) = 5", want: "x = 10"},
		{state: "2 + 4x = 14", want: "x = 3"},
	}

	const maxSteps = 20
	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			state := tt.state
			for step := 0; step < maxSteps; step++ {
				actions := mustEnumerate(t, state)
				if len(actions) == 0 {
					if state != tt.want {
						t.Fatalf("terminal at %q, want %q", state, tt.want)
					}
					return
				}
				state = actions[0].Next
			}
			t.Fatalf("no terminal state within %d steps, stuck at %q", maxSteps, state)
		})
	}
}
