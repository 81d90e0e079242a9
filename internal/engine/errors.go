package engine

import (
	"errors"
	"fmt"

	"github.com/hollis7/weka/internal/currency"
)

var (
	ErrAccountLocked          = errors.New("account is locked")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrOnlyDepositsDisputable = errors.New("only deposits can be disputed")
	ErrDuplicateTransaction   = errors.New("transaction id already recorded")
	ErrMissingAmount          = errors.New("record carries no amount")
	ErrAmountOverflow         = errors.New("amount overflows the balance")
	ErrAmountUnderflow        = errors.New("amount underflows the balance")
	ErrUnknownKind            = errors.New("unknown record kind")
)

// MutationError reports why a single record could not be applied. It
// wraps one of the sentinel errors above and carries enough context to
// name the offending transaction in diagnostics.
type MutationError struct {
	Tx     uint32
	Kind   Kind
	Client uint16
	Amount *currency.Amount
	Err    error
}

func (e *MutationError) Error() string {
	if e.Amount != nil {
		return fmt.Sprintf("transaction %d: %v (%s of %s for client %d)",
			e.Tx, e.Err, e.Kind, e.Amount, e.Client)
	}
	return fmt.Sprintf("transaction %d: %v (%s for client %d)",
		e.Tx, e.Err, e.Kind, e.Client)
}

func (e *MutationError) Unwrap() error { return e.Err }

func newMutationError(m Mutation, amount *currency.Amount, err error) *MutationError {
	return &MutationError{
		Tx:     m.ID,
		Kind:   m.Kind,
		Client: m.Client,
		Amount: amount,
		Err:    err,
	}
}

func amountRef(a currency.Amount) *currency.Amount { return &a }
