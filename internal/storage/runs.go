package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one recorded solve attempt.
type Run struct {
	RunID         string
	CreatedAt     time.Time
	SetName       string
	DirectionSets int
	Solved        bool
	Message       *string
	Placements    []Placement
}

// Placement is one stored cube row of a run. Face values are nil when
// the cube could not be oriented; Error then carries the reason.
type Placement struct {
	CubeIdx int
	Front   *int
	Back    *int
	Left    *int
	Right   *int
	Top     *int
	Bottom  *int
	Error   *string
}

// RunRepository provides CRUD operations for solve runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Save stores a run and its placements atomically and returns the
// generated run ID.
func (r *RunRepository) Save(run Run) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	err := r.db.Transaction(func(tx *sql.Tx) error {
		solved := 0
		if run.Solved {
			solved = 1
		}
		_, err := tx.Exec(`
			INSERT INTO runs (run_id, created_at, set_name, direction_sets, solved, message)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, createdAt.Format(time.RFC3339), run.SetName, run.DirectionSets, solved, run.Message)
		if err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}

		for _, p := range run.Placements {
			_, err := tx.Exec(`
				INSERT INTO placements (run_id, cube_idx, face_front, face_back, face_left, face_right, face_top, face_bottom, error)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, id, p.CubeIdx, p.Front, p.Back, p.Left, p.Right, p.Top, p.Bottom, p.Error)
			if err != nil {
				return fmt.Errorf("failed to insert placement %d: %w", p.CubeIdx, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Get retrieves a run with its placements. Returns nil when no run
// has the given ID.
func (r *RunRepository) Get(runID string) (*Run, error) {
	var run Run
	var createdAtStr string
	var solved int

	err := r.db.QueryRow(`
		SELECT run_id, created_at, set_name, direction_sets, solved, message
		FROM runs
		WHERE run_id = ?
	`, runID).Scan(&run.RunID, &createdAtStr, &run.SetName, &run.DirectionSets, &solved, &run.Message)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	run.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	run.Solved = solved != 0

	rows, err := r.db.Query(`
		SELECT cube_idx, face_front, face_back, face_left, face_right, face_top, face_bottom, error
		FROM placements
		WHERE run_id = ?
		ORDER BY cube_idx
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get placements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p Placement
		if err := rows.Scan(&p.CubeIdx, &p.Front, &p.Back, &p.Left, &p.Right, &p.Top, &p.Bottom, &p.Error); err != nil {
			return nil, fmt.Errorf("failed to scan placement: %w", err)
		}
		run.Placements = append(run.Placements, p)
	}

	return &run, nil
}

// GetLast retrieves the most recent run.
func (r *RunRepository) GetLast() (*Run, error) {
	var runID string
	err := r.db.QueryRow(`
		SELECT run_id FROM runs
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&runID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last run: %w", err)
	}

	return r.Get(runID)
}

// List retrieves recent runs, newest first, without placements.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT run_id, created_at, set_name, direction_sets, solved, message
		FROM runs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAtStr string
		var solved int

		err := rows.Scan(&run.RunID, &createdAtStr, &run.SetName, &run.DirectionSets, &solved, &run.Message)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		run.Solved = solved != 0
		runs = append(runs, run)
	}

	return runs, nil
}

// Delete deletes a run and its placements (cascading).
func (r *RunRepository) Delete(runID string) error {
	_, err := r.db.Exec("DELETE FROM runs WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}
