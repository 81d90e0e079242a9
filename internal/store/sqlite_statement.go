package store

import "fmt"

func (s *Store) AddStatement(st Statement) error {
	_, err := s.db.Exec(`
		INSERT INTO statements (run_id, client_id, available, held, total, locked)
		VALUES (?, ?, ?, ?, ?, ?)
	`, st.RunID, st.Client, st.Available, st.Held, st.Total, st.Locked)
	if err != nil {
		return fmt.Errorf("failed to insert statement for client %d: %w", st.Client, err)
	}
	return nil
}

func (s *Store) StatementsForRun(runID int64) ([]*Statement, error) {
	rows, err := s.db.Query(`
		SELECT run_id, client_id, available, held, total, locked
		FROM statements
		WHERE run_id = ?
		ORDER BY client_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query statements: %w", err)
	}
	defer rows.Close()

	var statements []*Statement
	for rows.Next() {
		st := &Statement{}
		err := rows.Scan(&st.RunID, &st.Client, &st.Available, &st.Held, &st.Total, &st.Locked)
		if err != nil {
			return nil, fmt.Errorf("failed to scan statement: %w", err)
		}
		statements = append(statements, st)
	}

	return statements, rows.Err()
}
