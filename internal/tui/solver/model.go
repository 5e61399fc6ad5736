// ============================================================================
// meinALGEBRATRAINER (mAT) - Lokaler Algebra-Trainer
// ============================================================================
//
// Package:     solver
// Description: Main Bubbletea model for the interactive equation solver
// Author:      Mike Stoffels
// Created:     2025-11-03
// License:     MIT
// ============================================================================

package solver

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/mAT/internal/bank"
	"github.com/msto63/mAT/internal/domain"
)

// Config holds solver TUI configuration
type Config struct {
	Domain domain.Domain    // Problem family to train on
	Bank   bank.ProblemBank // Optional trajectory recording, may be nil
	Seed   uint64           // Seed for the first problem
}

// Model is the main Bubbletea model for the solver
type Model struct {
	// State
	width   int
	height  int
	editing bool
	solved  bool
	err     error

	// Problem state
	dom       domain.Domain
	seed      uint64
	state     string
	actions   []domain.Action
	selected  int
	stepCount int

	// Trajectory recording
	bank      bank.ProblemBank
	problemID string

	// Components
	input textinput.Model
}

// New creates the solver model with a freshly generated problem
func New(cfg Config) Model {
	input := textinput.New()
	input.Placeholder = "z.B. 4x + 2 = 14"
	input.CharLimit = 120
	input.Width = 40

	m := Model{
		dom:   cfg.Domain,
		bank:  cfg.Bank,
		seed:  cfg.Seed,
		input: input,
	}
	m.loadProblem(cfg.Domain.Generate(cfg.Seed), cfg.Seed)
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// loadProblem resets the model to a new starting state
func (m *Model) loadProblem(state string, seed uint64) {
	m.state = state
	m.seed = seed
	m.selected = 0
	m.stepCount = 0
	m.solved = false
	m.err = nil
	m.problemID = ""
	m.refreshActions()

	if m.bank != nil {
		p := &bank.Problem{Domain: m.dom.Name(), Seed: seed, State: state}
		if err := m.bank.SaveProblem(context.Background(), p); err == nil {
			m.problemID = p.ID
		}
	}
}

// refreshActions recomputes the legal moves for the current state
func (m *Model) refreshActions() {
	actions, ok := m.dom.Step(m.state)
	if !ok {
		m.err = fmt.Errorf("Gleichung %q konnte nicht gelesen werden", m.state)
		m.actions = nil
		return
	}
	m.actions = actions
	m.solved = len(actions) == 0
	if m.selected >= len(actions) {
		m.selected = 0
	}
}

// applySelected performs the highlighted action and records it
func (m *Model) applySelected() {
	if m.solved || m.selected >= len(m.actions) {
		return
	}
	action := m.actions[m.selected]
	m.state = action.Next
	m.stepCount++
	m.selected = 0
	m.refreshActions()

	if m.bank != nil && m.problemID != "" {
		step := &bank.TrajectoryStep{
			ProblemID: m.problemID,
			StepIndex: m.stepCount - 1,
			State:     action.Next,
			Formal:    action.Formal,
			Human:     action.Human,
		}
		m.bank.AddStep(context.Background(), step)
		if m.solved {
			m.bank.MarkSolved(context.Background(), m.problemID)
		}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.actions)-1 {
				m.selected++
			}
		case "enter", " ":
			m.applySelected()
		case "n":
			m.loadProblem(m.dom.Generate(m.seed+1), m.seed+1)
		case "e":
			m.editing = true
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

// updateEditing handles key input while entering a custom equation
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	case "enter":
		candidate := strings.TrimSpace(m.input.Value())
		if _, ok := m.dom.Step(candidate); !ok {
			m.err = fmt.Errorf("Gleichung %q konnte nicht gelesen werden", candidate)
			return m, nil
		}
		m.editing = false
		m.input.Blur()
		m.loadProblem(candidate, m.seed)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(LogoStyle.Render("meinALGEBRATRAINER"))
	b.WriteString("  ")
	b.WriteString(HeaderStyle.Render(m.dom.Name()))
	b.WriteString("\n")

	b.WriteString(EquationStyle.Render(m.state))
	b.WriteString("\n")

	if m.editing {
		b.WriteString("Eigene Gleichung eingeben (Enter übernimmt, Esc bricht ab):\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else if m.solved {
		b.WriteString(SolvedStyle.Render(fmt.Sprintf("Gelöst in %d Schritten!", m.stepCount)))
		b.WriteString("\n")
	} else {
		for i, action := range m.actions {
			line := fmt.Sprintf("%s  %s", action.Human, ActionFormalStyle.Render(action.Formal))
			if i == m.selected {
				b.WriteString(ActionSelectedStyle.Render("> " + line))
			} else {
				b.WriteString(ActionStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑/↓ wählen · Enter anwenden · n neue Aufgabe · e eigene Gleichung · q beenden"))
	b.WriteString("\n")

	return b.String()
}
