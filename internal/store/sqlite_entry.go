package store

import (
	"database/sql"
	"fmt"
)

func (s *Store) AddEntry(e Entry) error {
	_, err := s.db.Exec(`
		INSERT INTO entries (run_id, tx_id, kind, client_id, amount, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.RunID, e.TxID, e.Kind, e.Client, e.Amount, e.Status)
	if err != nil {
		return fmt.Errorf("failed to insert entry %d: %w", e.TxID, err)
	}
	return nil
}

func (s *Store) EntriesForRun(runID int64) ([]*Entry, error) {
	rows, err := s.db.Query(`
		SELECT run_id, tx_id, kind, client_id, amount, status
		FROM entries
		WHERE run_id = ?
		ORDER BY tx_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (s *Store) EntriesForClient(runID, client int64) ([]*Entry, error) {
	rows, err := s.db.Query(`
		SELECT run_id, tx_id, kind, client_id, amount, status
		FROM entries
		WHERE run_id = ? AND client_id = ?
		ORDER BY tx_id
	`, runID, client)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for client %d: %w", client, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		err := rows.Scan(&e.RunID, &e.TxID, &e.Kind, &e.Client, &e.Amount, &e.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
