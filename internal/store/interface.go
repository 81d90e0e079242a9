package store

type Repository interface {
	// Run operations
	CreateRun(run Run) (int64, error)
	GetRun(id int64) (*Run, error)
	LatestRunID() (int64, error)
	ListRuns(limit int) ([]*Run, error)

	// Entry operations
	AddEntry(e Entry) error
	EntriesForRun(runID int64) ([]*Entry, error)
	EntriesForClient(runID, client int64) ([]*Entry, error)

	// Statement operations
	AddStatement(st Statement) error
	StatementsForRun(runID int64) ([]*Statement, error)

	Close() error
}
