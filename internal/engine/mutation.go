package engine

import "github.com/hollis7/weka/internal/currency"

// Kind identifies one of the five record types the engine accepts.
type Kind string

const (
	Deposit    Kind = "deposit"
	Withdrawal Kind = "withdrawal"
	Dispute    Kind = "dispute"
	Resolve    Kind = "resolve"
	Chargeback Kind = "chargeback"
)

// Valid reports whether k is one of the five known kinds.
func (k Kind) Valid() bool {
	switch k {
	case Deposit, Withdrawal, Dispute, Resolve, Chargeback:
		return true
	}
	return false
}

// RequiresAmount reports whether records of this kind carry their own
// amount. Dispute-family records reference a prior transaction instead
// and must not carry one.
func (k Kind) RequiresAmount() bool {
	return k == Deposit || k == Withdrawal
}

// Mutation is a single validated instruction applied to one account.
// Amount is non-nil exactly when the kind requires it; the input layer
// enforces this before a mutation reaches the engine.
type Mutation struct {
	ID     uint32
	Kind   Kind
	Client uint16
	Amount *currency.Amount
}

// Status tracks a ledger entry through the dispute lifecycle. The
// machine is strictly linear: ok → disputed → resolved → refunded.
// Out-of-sequence dispute-family records are ignored, never applied.
type Status string

const (
	StatusOk       Status = "ok"
	StatusDisputed Status = "disputed"
	StatusResolved Status = "resolved"
	StatusRefunded Status = "refunded"
)
