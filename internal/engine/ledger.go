package engine

import (
	"sort"

	"github.com/hollis7/weka/internal/currency"
)

// Entry is a deposit or withdrawal accepted by the engine, kept so
// later dispute-family records can be resolved against it. Amount never
// changes after insertion; only Status advances.
type Entry struct {
	ID     uint32
	Kind   Kind
	Client uint16
	Amount currency.Amount
	Status Status
}

// Ledger indexes every accepted deposit and withdrawal by transaction
// id. Nothing is evicted for the lifetime of a run: any future dispute
// may reference any past id.
type Ledger struct {
	entries map[uint32]*Entry
}

func NewLedger() *Ledger {
	return &Ledger{entries: make(map[uint32]*Entry)}
}

// Insert records a freshly accepted transaction with status ok. A
// transaction id may be deposited or withdrawn at most once; reusing
// one is rejected so the earlier entry cannot be clobbered.
func (l *Ledger) Insert(e Entry) error {
	if _, ok := l.entries[e.ID]; ok {
		return ErrDuplicateTransaction
	}
	e.Status = StatusOk
	l.entries[e.ID] = &e
	return nil
}

// Find returns a mutable reference to the entry recorded under id.
func (l *Ledger) Find(id uint32) (*Entry, bool) {
	e, ok := l.entries[id]
	return e, ok
}

// Has reports whether id is already recorded.
func (l *Ledger) Has(id uint32) bool {
	_, ok := l.entries[id]
	return ok
}

// Len returns the number of recorded entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Entries returns every recorded entry ordered by transaction id.
func (l *Ledger) Entries() []*Entry {
	out := make([]*Entry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
