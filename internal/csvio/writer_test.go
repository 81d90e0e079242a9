package csvio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollis7/weka/internal/currency"
	"github.com/hollis7/weka/internal/engine"
)

func TestWriteAccounts(t *testing.T) {
	accounts := []*engine.Account{
		{Client: 1, Available: currency.MustParse("1.5"), Held: 0, Total: currency.MustParse("1.5")},
		{Client: 2, Available: 0, Held: currency.MustParse("2.0"), Total: currency.MustParse("2.0")},
		{Client: 3, Locked: true},
	}

	var sb strings.Builder
	require.NoError(t, WriteAccounts(&sb, accounts))

	want := strings.Join([]string{
		"client,available,held,total,locked",
		"1,1.5000,0.0000,1.5000,false",
		"2,0.0000,2.0000,2.0000,false",
		"3,0.0000,0.0000,0.0000,true",
	}, "\n") + "\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteAccountsEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteAccounts(&sb, nil))
	assert.Equal(t, "client,available,held,total,locked\n", sb.String())
}
