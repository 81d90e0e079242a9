package store

// Run is one recorded invocation of the settlement engine.
type Run struct {
	ID         int64
	Source     string
	Policy     string
	StartedAt  int64
	FinishedAt int64
	Read       int64
	Applied    int64
	Skipped    int64
}

// Entry is an accepted deposit or withdrawal, with the dispute status it
// ended the run in.
type Entry struct {
	RunID  int64
	TxID   int64
	Kind   string
	Client int64
	Amount int64
	Status string
}

// Statement is one client's closing balances for a run. Amounts are
// counts of 1/10,000 currency units.
type Statement struct {
	RunID     int64
	Client    int64
	Available int64
	Held      int64
	Total     int64
	Locked    bool
}
