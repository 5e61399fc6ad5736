package bank

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryBank is an in-memory ProblemBank implementation for testing
type MemoryBank struct {
	mu       sync.RWMutex
	problems map[string]*Problem
	steps    map[string][]*TrajectoryStep // problemID -> steps
}

// NewMemoryBank creates a new in-memory problem bank
func NewMemoryBank() *MemoryBank {
	return &MemoryBank{
		problems: make(map[string]*Problem),
		steps:    make(map[string][]*TrajectoryStep),
	}
}

// SaveProblem stores a new problem, assigning an ID when missing
func (s *MemoryBank) SaveProblem(ctx context.Context, p *Problem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Domain == "" {
		return fmt.Errorf("problem domain is required")
	}
	if p.State == "" {
		return fmt.Errorf("problem state is required")
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	s.problems[p.ID] = p
	s.steps[p.ID] = []*TrajectoryStep{}
	return nil
}

// GetProblem retrieves a problem by ID
func (s *MemoryBank) GetProblem(ctx context.Context, id string) (*Problem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.problems[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

// MarkSolved flags a problem as solved
func (s *MemoryBank) MarkSolved(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.problems[id]
	if !ok {
		return fmt.Errorf("problem not found: %s", id)
	}
	p.Solved = true
	p.UpdatedAt = time.Now()
	return nil
}

// ListProblems returns problems for a domain ordered by last update
func (s *MemoryBank) ListProblems(ctx context.Context, domain string, limit, offset int) ([]*Problem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	var all []*Problem
	for _, p := range s.problems {
		if domain == "" || p.Domain == domain {
			all = append(all, p)
		}
	}

	for i := 0; i < len(all)-1; i++ {
		for j := i + 1; j < len(all); j++ {
			if all[j].UpdatedAt.After(all[i].UpdatedAt) {
				all[i], all[j] = all[j], all[i]
			}
		}
	}

	if offset >= len(all) {
		return []*Problem{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	return all[offset:end], nil
}

// DeleteProblem deletes a problem and its trajectory
func (s *MemoryBank) DeleteProblem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.problems, id)
	delete(s.steps, id)
	return nil
}

// AddStep records one trajectory step
func (s *MemoryBank) AddStep(ctx context.Context, step *TrajectoryStep) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if step.ID == "" {
		step.ID = uuid.NewString()
	}
	p, ok := s.problems[step.ProblemID]
	if !ok {
		return fmt.Errorf("problem not found: %s", step.ProblemID)
	}

	if step.CreatedAt.IsZero() {
		step.CreatedAt = time.Now()
	}

	s.steps[step.ProblemID] = append(s.steps[step.ProblemID], step)
	p.UpdatedAt = time.Now()
	return nil
}

// GetTrajectory retrieves all steps of a problem in step order
func (s *MemoryBank) GetTrajectory(ctx context.Context, problemID string) ([]*TrajectoryStep, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	steps, ok := s.steps[problemID]
	if !ok {
		return []*TrajectoryStep{}, nil
	}
	return steps, nil
}

// Close is a no-op for the memory bank
func (s *MemoryBank) Close() error {
	return nil
}

// Statistics returns bank statistics
func (s *MemoryBank) Statistics(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var totalSteps int
	for _, steps := range s.steps {
		totalSteps += len(steps)
	}
	var solved int
	for _, p := range s.problems {
		if p.Solved {
			solved++
		}
	}

	return map[string]interface{}{
		"total_problems":  len(s.problems),
		"solved_problems": solved,
		"total_steps":     totalSteps,
	}, nil
}
