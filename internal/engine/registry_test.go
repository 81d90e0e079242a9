package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountsLazyCreation(t *testing.T) {
	reg := NewAccounts()
	require.Equal(t, 0, reg.Len())

	acc := reg.ForClient(7)
	require.NotNil(t, acc)
	assert.Equal(t, uint16(7), acc.Client)
	assert.Zero(t, acc.Available)
	assert.Zero(t, acc.Held)
	assert.Zero(t, acc.Total)
	assert.False(t, acc.Locked)
	assert.Equal(t, 1, reg.Len())
}

func TestAccountsReturnsSameInstance(t *testing.T) {
	reg := NewAccounts()
	first := reg.ForClient(1)
	first.Available = 100

	again := reg.ForClient(1)
	assert.Same(t, first, again)
	assert.Equal(t, 1, reg.Len())
}

func TestAccountsAllSortedByClient(t *testing.T) {
	reg := NewAccounts()
	for _, id := range []uint16{40, 2, 17, 9} {
		reg.ForClient(id)
	}

	var ids []uint16
	for _, acc := range reg.All() {
		ids = append(ids, acc.Client)
	}
	assert.Equal(t, []uint16{2, 9, 17, 40}, ids)
}
