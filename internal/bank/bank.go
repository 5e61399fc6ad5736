package bank

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Problem represents a generated practice problem
type Problem struct {
	ID        string    `json:"id"`
	Domain    string    `json:"domain"`
	Seed      uint64    `json:"seed"`
	State     string    `json:"state"`
	Solved    bool      `json:"solved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TrajectoryStep represents one recorded move while working a problem
type TrajectoryStep struct {
	ID        string    `json:"id"`
	ProblemID string    `json:"problem_id"`
	StepIndex int       `json:"step_index"`
	State     string    `json:"state"`
	Formal    string    `json:"formal_description"`
	Human     string    `json:"human_description"`
	CreatedAt time.Time `json:"created_at"`
}

// ProblemBank defines the interface for problem persistence
type ProblemBank interface {
	// Problem operations
	SaveProblem(ctx context.Context, p *Problem) error
	GetProblem(ctx context.Context, id string) (*Problem, error)
	MarkSolved(ctx context.Context, id string) error
	ListProblems(ctx context.Context, domain string, limit, offset int) ([]*Problem, error)
	DeleteProblem(ctx context.Context, id string) error

	// Trajectory operations
	AddStep(ctx context.Context, step *TrajectoryStep) error
	GetTrajectory(ctx context.Context, problemID string) ([]*TrajectoryStep, error)

	// Utility
	Close() error
	Statistics(ctx context.Context) (map[string]interface{}, error)
}

// SQLiteBank implements ProblemBank using SQLite
type SQLiteBank struct {
	db *sql.DB
	mu sync.RWMutex
}

// Config holds configuration for the SQLite bank
type Config struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Path: "./data/bank.db",
	}
}

// NewSQLiteBank creates a new SQLite-based problem bank
func NewSQLiteBank(cfg Config) (*SQLiteBank, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	bank := &SQLiteBank{db: db}

	if err := bank.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return bank, nil
}

// initSchema creates the necessary tables
func (s *SQLiteBank) initSchema() error {
	schema := `
	-- Problems table
	CREATE TABLE IF NOT EXISTS problems (
		id TEXT PRIMARY KEY,
		domain TEXT NOT NULL,
		seed INTEGER NOT NULL,
		state TEXT NOT NULL,
		solved INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Trajectory steps table
	CREATE TABLE IF NOT EXISTS trajectory_steps (
		id TEXT PRIMARY KEY,
		problem_id TEXT NOT NULL,
		step_index INTEGER NOT NULL,
		state TEXT NOT NULL,
		formal TEXT NOT NULL,
		human TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (problem_id) REFERENCES problems(id) ON DELETE CASCADE
	);

	-- Indices
	CREATE INDEX IF NOT EXISTS idx_steps_problem ON trajectory_steps(problem_id, step_index);
	CREATE INDEX IF NOT EXISTS idx_problems_domain ON problems(domain);
	CREATE INDEX IF NOT EXISTS idx_problems_updated ON problems(updated_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveProblem stores a new problem, assigning an ID when missing
func (s *SQLiteBank) SaveProblem(ctx context.Context, p *Problem) error {
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

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO problems (id, domain, seed, state, solved, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Domain, int64(p.Seed), p.State, p.Solved, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to save problem: %w", err)
	}

	return nil
}

// GetProblem retrieves a problem by ID
func (s *SQLiteBank) GetProblem(ctx context.Context, id string) (*Problem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, domain, seed, state, solved, created_at, updated_at
		FROM problems WHERE id = ?
	`, id)

	var p Problem
	var seed int64

	err := row.Scan(&p.ID, &p.Domain, &seed, &p.State, &p.Solved, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	p.Seed = uint64(seed)

	return &p, nil
}

// MarkSolved flags a problem as solved
func (s *SQLiteBank) MarkSolved(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `
		UPDATE problems SET solved = 1, updated_at = ? WHERE id = ?
	`, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to mark problem solved: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("problem not found: %s", id)
	}

	return nil
}

// ListProblems returns problems for a domain ordered by last update.
// An empty domain lists across all domains.
func (s *SQLiteBank) ListProblems(ctx context.Context, domain string, limit, offset int) ([]*Problem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	var rows *sql.Rows
	var err error
	if domain != "" {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, domain, seed, state, solved, created_at, updated_at
			FROM problems
			WHERE domain = ?
			ORDER BY updated_at DESC
			LIMIT ? OFFSET ?
		`, domain, limit, offset)
	} else {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, domain, seed, state, solved, created_at, updated_at
			FROM problems
			ORDER BY updated_at DESC
			LIMIT ? OFFSET ?
		`, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	defer rows.Close()

	var problems []*Problem
	for rows.Next() {
		var p Problem
		var seed int64
		if err := rows.Scan(&p.ID, &p.Domain, &seed, &p.State, &p.Solved, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan problem: %w", err)
		}
		p.Seed = uint64(seed)
		problems = append(problems, &p)
	}

	return problems, nil
}

// DeleteProblem deletes a problem and its trajectory
func (s *SQLiteBank) DeleteProblem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trajectory_steps WHERE problem_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete trajectory: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM problems WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete problem: %w", err)
	}

	return tx.Commit()
}

// AddStep records one trajectory step and refreshes the problem timestamp
func (s *SQLiteBank) AddStep(ctx context.Context, step *TrajectoryStep) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if step.ID == "" {
		step.ID = uuid.NewString()
	}
	if step.ProblemID == "" {
		return fmt.Errorf("problem ID is required")
	}

	if step.CreatedAt.IsZero() {
		step.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Insert step
	_, err = tx.ExecContext(ctx, `
		INSERT INTO trajectory_steps (id, problem_id, step_index, state, formal, human, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, step.ID, step.ProblemID, step.StepIndex, step.State, step.Formal, step.Human, step.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add step: %w", err)
	}

	// Update problem timestamp
	_, err = tx.ExecContext(ctx, `
		UPDATE problems SET updated_at = ? WHERE id = ?
	`, time.Now(), step.ProblemID)
	if err != nil {
		return fmt.Errorf("failed to update problem timestamp: %w", err)
	}

	return tx.Commit()
}

// GetTrajectory retrieves all steps of a problem in step order
func (s *SQLiteBank) GetTrajectory(ctx context.Context, problemID string) ([]*TrajectoryStep, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, problem_id, step_index, state, formal, human, created_at
		FROM trajectory_steps
		WHERE problem_id = ?
		ORDER BY step_index ASC
	`, problemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trajectory: %w", err)
	}
	defer rows.Close()

	var steps []*TrajectoryStep
	for rows.Next() {
		var step TrajectoryStep
		if err := rows.Scan(&step.ID, &step.ProblemID, &step.StepIndex, &step.State, &step.Formal, &step.Human, &step.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		steps = append(steps, &step)
	}

	return steps, nil
}

// Close closes the database connection
func (s *SQLiteBank) Close() error {
	return s.db.Close()
}

// Statistics returns bank statistics
func (s *SQLiteBank) Statistics(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]interface{})

	var totalProblems int64
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM problems`).Scan(&totalProblems)
	stats["total_problems"] = totalProblems

	var solvedProblems int64
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM problems WHERE solved = 1`).Scan(&solvedProblems)
	stats["solved_problems"] = solvedProblems

	var totalSteps int64
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trajectory_steps`).Scan(&totalSteps)
	stats["total_steps"] = totalSteps

	if totalProblems > 0 {
		stats["avg_steps_per_problem"] = float64(totalSteps) / float64(totalProblems)
	}

	return stats, nil
}
