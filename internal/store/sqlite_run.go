package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// RecordRun stores a finished run with its entries and statements in a
// single transaction, returning the new run id.
func (s *Store) RecordRun(run Run, entries []Entry, statements []Statement) (int64, error) {
	var runID int64

	err := s.ExecTx(func(r Repository) error {
		id, err := r.CreateRun(run)
		if err != nil {
			return err
		}
		runID = id

		for _, e := range entries {
			e.RunID = id
			if err := r.AddEntry(e); err != nil {
				return err
			}
		}
		for _, st := range statements {
			st.RunID = id
			if err := r.AddStatement(st); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return runID, nil
}

func (s *Store) CreateRun(run Run) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO runs (source, policy, started_at, finished_at, records_read, records_applied, records_skipped)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare run insert: %w", err)
	}
	defer stmt.Close()

	var newID int64
	err = stmt.QueryRow(
		run.Source, run.Policy, run.StartedAt, run.FinishedAt,
		run.Read, run.Applied, run.Skipped,
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	return newID, nil
}

func (s *Store) GetRun(id int64) (*Run, error) {
	row := s.db.QueryRow(`
		SELECT id, source, policy, started_at, finished_at, records_read, records_applied, records_skipped
		FROM runs
		WHERE id = ?
	`, id)

	run := &Run{}
	err := row.Scan(
		&run.ID, &run.Source, &run.Policy, &run.StartedAt,
		&run.FinishedAt, &run.Read, &run.Applied, &run.Skipped,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run %d: %w", id, ErrRunNotFound)
		}
		return nil, fmt.Errorf("failed to query run %d: %w", id, err)
	}

	return run, nil
}

func (s *Store) LatestRunID() (int64, error) {
	var id sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(id) FROM runs`).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to query latest run: %w", err)
	}
	if !id.Valid {
		return 0, ErrNoRuns
	}
	return id.Int64, nil
}

func (s *Store) ListRuns(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, source, policy, started_at, finished_at, records_read, records_applied, records_skipped
		FROM runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run := &Run{}
		err := rows.Scan(
			&run.ID, &run.Source, &run.Policy, &run.StartedAt,
			&run.FinishedAt, &run.Read, &run.Applied, &run.Skipped,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
