package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollis7/weka/internal/currency"
)

func TestLedgerInsertAndFind(t *testing.T) {
	l := NewLedger()

	require.NoError(t, l.Insert(Entry{ID: 1, Kind: Deposit, Client: 1, Amount: currency.MustParse("5.0")}))
	require.Equal(t, 1, l.Len())

	e, ok := l.Find(1)
	require.True(t, ok)
	assert.Equal(t, StatusOk, e.Status, "insert always records entries as ok")

	// Find hands out a mutable reference: status changes stick.
	e.Status = StatusDisputed
	again, _ := l.Find(1)
	assert.Equal(t, StatusDisputed, again.Status)
}

func TestLedgerRejectsDuplicateIDs(t *testing.T) {
	l := NewLedger()

	require.NoError(t, l.Insert(Entry{ID: 7, Kind: Deposit, Client: 1, Amount: 100}))
	err := l.Insert(Entry{ID: 7, Kind: Withdrawal, Client: 2, Amount: 200})
	require.ErrorIs(t, err, ErrDuplicateTransaction)

	e, _ := l.Find(7)
	assert.Equal(t, Deposit, e.Kind, "first entry wins")
	assert.Equal(t, currency.Amount(100), e.Amount)
}

func TestLedgerFindUnknown(t *testing.T) {
	l := NewLedger()
	_, ok := l.Find(99)
	assert.False(t, ok)
	assert.False(t, l.Has(99))
}

func TestLedgerEntriesOrdered(t *testing.T) {
	l := NewLedger()
	for _, id := range []uint32{5, 1, 9, 3} {
		require.NoError(t, l.Insert(Entry{ID: id, Kind: Deposit, Client: 1, Amount: 1}))
	}

	var ids []uint32
	for _, e := range l.Entries() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []uint32{1, 3, 5, 9}, ids)
}
