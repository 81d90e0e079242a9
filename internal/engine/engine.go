package engine

import (
	"errors"
	"fmt"
	"io"
)

// Policy selects what happens when a record cannot be applied.
type Policy string

const (
	// PolicyAbort ends the run at the first record that fails.
	PolicyAbort Policy = "abort"
	// PolicySkip drops the failing record, reports it, and keeps going.
	// Skipping changes final balances, so it is never the default.
	PolicySkip Policy = "skip"
)

// ParsePolicy validates a policy name from configuration or a flag.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyAbort, PolicySkip:
		return p, nil
	default:
		return "", fmt.Errorf("unknown error policy %q (want %q or %q)", s, PolicyAbort, PolicySkip)
	}
}

// Source yields validated mutations in their original order and returns
// io.EOF once drained.
type Source interface {
	Next() (Mutation, error)
}

// Stats summarizes one run.
type Stats struct {
	Read    int
	Applied int
	Skipped int
}

// Engine drives an ordered mutation stream through the account registry
// and the ledger. Processing is strictly sequential: balances are
// path-dependent and dispute records lean on the status left behind by
// earlier ones, so order is part of the semantics.
type Engine struct {
	accounts *Accounts
	ledger   *Ledger
	policy   Policy
	onSkip   func(m Mutation, err error)
}

// New returns an engine applying the given error policy. onSkip is
// invoked for every record dropped under PolicySkip and may be nil.
func New(policy Policy, onSkip func(Mutation, error)) *Engine {
	return &Engine{
		accounts: NewAccounts(),
		ledger:   NewLedger(),
		policy:   policy,
		onSkip:   onSkip,
	}
}

// Apply runs a single mutation against the account it names.
func (e *Engine) Apply(m Mutation) error {
	return e.accounts.ForClient(m.Client).Mutate(m, e.ledger)
}

// Run drains src in order. Under PolicyAbort the first failing record
// stops the run with its error; under PolicySkip failing records are
// counted and dropped. Errors from the source itself always stop the
// run.
func (e *Engine) Run(src Source) (Stats, error) {
	var stats Stats
	for {
		m, err := src.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}

		stats.Read++
		if err := e.Apply(m); err != nil {
			if e.policy == PolicySkip {
				stats.Skipped++
				if e.onSkip != nil {
					e.onSkip(m, err)
				}
				continue
			}
			return stats, err
		}
		stats.Applied++
	}
}

// Accounts returns every account touched during the run, ordered by
// client id.
func (e *Engine) Accounts() []*Account { return e.accounts.All() }

// Entries returns the accepted ledger entries, ordered by transaction
// id.
func (e *Engine) Entries() []*Entry { return e.ledger.Entries() }
