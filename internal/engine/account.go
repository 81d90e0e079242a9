package engine

import "github.com/hollis7/weka/internal/currency"

// Account holds one client's balances and applies the dispute state
// machine one mutation at a time. Total == Available + Held after every
// applied mutation.
type Account struct {
	Client    uint16
	Available currency.Amount
	Held      currency.Amount
	Total     currency.Amount
	Locked    bool
}

// Mutate applies a single record, consulting the ledger for dispute
// lookups and recording accepted deposits and withdrawals in it. A
// locked account rejects everything. Failures leave the account and the
// ledger untouched.
func (a *Account) Mutate(m Mutation, ledger *Ledger) error {
	if a.Locked {
		return newMutationError(m, m.Amount, ErrAccountLocked)
	}

	switch m.Kind {
	case Deposit:
		return a.deposit(m, ledger)
	case Withdrawal:
		return a.withdraw(m, ledger)
	case Dispute:
		return a.dispute(m, ledger)
	case Resolve:
		return a.resolve(m, ledger)
	case Chargeback:
		return a.chargeback(m, ledger)
	default:
		return newMutationError(m, m.Amount, ErrUnknownKind)
	}
}

func (a *Account) deposit(m Mutation, ledger *Ledger) error {
	if m.Amount == nil {
		return newMutationError(m, nil, ErrMissingAmount)
	}
	amt := *m.Amount

	available, ok := a.Available.CheckedAdd(amt)
	if !ok {
		return newMutationError(m, m.Amount, ErrAmountOverflow)
	}
	total, ok := a.Total.CheckedAdd(amt)
	if !ok {
		return newMutationError(m, m.Amount, ErrAmountOverflow)
	}

	// Balances commit only once the ledger accepts the entry, so a
	// duplicate transaction id changes nothing.
	err := ledger.Insert(Entry{ID: m.ID, Kind: Deposit, Client: m.Client, Amount: amt})
	if err != nil {
		return newMutationError(m, m.Amount, err)
	}
	a.Available, a.Total = available, total
	return nil
}

func (a *Account) withdraw(m Mutation, ledger *Ledger) error {
	if m.Amount == nil {
		return newMutationError(m, nil, ErrMissingAmount)
	}
	amt := *m.Amount

	// Available and total move as a pair: either both are debited or
	// neither changes.
	available, ok := a.Available.CheckedSub(amt)
	if !ok {
		return newMutationError(m, m.Amount, ErrInsufficientFunds)
	}
	total, ok := a.Total.CheckedSub(amt)
	if !ok {
		return newMutationError(m, m.Amount, ErrInsufficientFunds)
	}

	// Recorded only after the debit succeeds; failed withdrawals leave
	// no ledger trace.
	err := ledger.Insert(Entry{ID: m.ID, Kind: Withdrawal, Client: m.Client, Amount: amt})
	if err != nil {
		return newMutationError(m, m.Amount, err)
	}
	a.Available, a.Total = available, total
	return nil
}

func (a *Account) dispute(m Mutation, ledger *Ledger) error {
	e, ok := ledger.Find(m.ID)
	if !ok {
		// Unknown ids are counterparty noise, not errors.
		return nil
	}
	if e.Kind == Withdrawal {
		// An id that exists but names a withdrawal is a harder failure
		// than one that never existed.
		return newMutationError(m, amountRef(e.Amount), ErrOnlyDepositsDisputable)
	}
	if e.Status != StatusOk {
		return nil
	}

	available, ok := a.Available.CheckedSub(e.Amount)
	if !ok {
		// The disputed funds were already spent; freezing them would
		// go below zero, so this cannot be silently accepted.
		return newMutationError(m, amountRef(e.Amount), ErrAmountUnderflow)
	}
	held, ok := a.Held.CheckedAdd(e.Amount)
	if !ok {
		return newMutationError(m, amountRef(e.Amount), ErrAmountOverflow)
	}

	a.Available, a.Held = available, held
	e.Status = StatusDisputed
	return nil
}

func (a *Account) resolve(m Mutation, ledger *Ledger) error {
	e, ok := ledger.Find(m.ID)
	if !ok || e.Status != StatusDisputed {
		// Covers duplicate and out-of-order resolves.
		return nil
	}

	available, ok := a.Available.CheckedAdd(e.Amount)
	if !ok {
		return newMutationError(m, amountRef(e.Amount), ErrAmountOverflow)
	}
	held, ok := a.Held.CheckedSub(e.Amount)
	if !ok {
		// Held funds below the disputed amount means the books are
		// inconsistent.
		return newMutationError(m, amountRef(e.Amount), ErrAmountUnderflow)
	}

	a.Available, a.Held = available, held
	e.Status = StatusResolved
	return nil
}

func (a *Account) chargeback(m Mutation, ledger *Ledger) error {
	e, ok := ledger.Find(m.ID)
	if !ok || e.Status != StatusResolved {
		return nil
	}

	available, ok := a.Available.CheckedSub(e.Amount)
	if !ok {
		return newMutationError(m, amountRef(e.Amount), ErrAmountUnderflow)
	}
	total, ok := a.Total.CheckedSub(e.Amount)
	if !ok {
		return newMutationError(m, amountRef(e.Amount), ErrAmountUnderflow)
	}

	a.Available, a.Total = available, total
	e.Status = StatusRefunded
	a.Locked = true
	return nil
}
