package csvio

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollis7/weka/internal/currency"
	"github.com/hollis7/weka/internal/engine"
)

func readAll(t *testing.T, r *Reader) []engine.Mutation {
	t.Helper()
	var out []engine.Mutation
	for {
		m, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, m)
	}
}

func TestReaderHappyPath(t *testing.T) {
	in := strings.Join([]string{
		"type,client,tx,amount",
		"deposit,1,1,5.0",
		"withdrawal,1,2,1.5",
		"dispute,1,1,",
		"resolve,1,1,",
		"chargeback,1,1,",
	}, "\n")

	muts := readAll(t, NewReader(strings.NewReader(in)))
	require.Len(t, muts, 5)

	assert.Equal(t, engine.Deposit, muts[0].Kind)
	assert.Equal(t, uint16(1), muts[0].Client)
	assert.Equal(t, uint32(1), muts[0].ID)
	require.NotNil(t, muts[0].Amount)
	assert.Equal(t, currency.MustParse("5.0"), *muts[0].Amount)

	assert.Equal(t, engine.Withdrawal, muts[1].Kind)
	assert.Equal(t, currency.MustParse("1.5"), *muts[1].Amount)

	for _, m := range muts[2:] {
		assert.Nil(t, m.Amount, "%s rows carry no amount", m.Kind)
	}
}

func TestReaderTrimsWhitespace(t *testing.T) {
	in := "type, client, tx, amount\n" +
		" deposit , 1 ,\t1 , 2.5 \n" +
		"dispute,  1,  1,\n"

	muts := readAll(t, NewReader(strings.NewReader(in)))
	require.Len(t, muts, 2)
	assert.Equal(t, engine.Deposit, muts[0].Kind)
	assert.Equal(t, currency.MustParse("2.5"), *muts[0].Amount)
	assert.Equal(t, engine.Dispute, muts[1].Kind)
}

func TestReaderLocatesColumnsByName(t *testing.T) {
	in := "tx,amount,client,type\n" +
		"7,3.0,2,deposit\n"

	muts := readAll(t, NewReader(strings.NewReader(in)))
	require.Len(t, muts, 1)
	assert.Equal(t, uint32(7), muts[0].ID)
	assert.Equal(t, uint16(2), muts[0].Client)
	assert.Equal(t, engine.Deposit, muts[0].Kind)
	assert.Equal(t, currency.MustParse("3.0"), *muts[0].Amount)
}

func TestReaderShortDisputeRow(t *testing.T) {
	// Only three fields: the amount column is absent, not just empty.
	in := "type,client,tx,amount\n" +
		"deposit,1,1,5.0\n" +
		"dispute,1,1\n"

	muts := readAll(t, NewReader(strings.NewReader(in)))
	require.Len(t, muts, 2)
	assert.Equal(t, engine.Dispute, muts[1].Kind)
	assert.Nil(t, muts[1].Amount)
}

func TestReaderEmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderMissingHeader(t *testing.T) {
	r := NewReader(strings.NewReader("deposit,1,1,5.0\n"))
	_, err := r.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column")
}

func TestReaderRejectsBadRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{name: "deposit without amount", row: "deposit,1,1,", want: "must carry an amount"},
		{name: "withdrawal without amount", row: "withdrawal,1,2,", want: "must carry an amount"},
		{name: "dispute with amount", row: "dispute,1,1,5.0", want: "must not carry an amount"},
		{name: "resolve with amount", row: "resolve,1,1,1.0", want: "must not carry an amount"},
		{name: "chargeback with amount", row: "chargeback,1,1,0.5", want: "must not carry an amount"},
		{name: "unknown type", row: "transfer,1,1,5.0", want: "unknown transaction type"},
		{name: "uppercase type", row: "Deposit,1,1,5.0", want: "unknown transaction type"},
		{name: "client above uint16", row: "deposit,70000,1,5.0", want: "invalid client id"},
		{name: "negative client", row: "deposit,-1,1,5.0", want: "invalid client id"},
		{name: "tx above uint32", row: "deposit,1,4294967296,5.0", want: "invalid transaction id"},
		{name: "amount not a number", row: "deposit,1,1,abc", want: "invalid amount"},
		{name: "negative amount", row: "deposit,1,1,-5.0", want: "negative amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := "type,client,tx,amount\n" + tt.row + "\n"
			_, err := NewReader(strings.NewReader(in)).Next()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "row 2", "errors name the offending line")
		})
	}
}

func TestReaderLenientMode(t *testing.T) {
	in := strings.Join([]string{
		"type,client,tx,amount",
		"deposit,1,1,5.0",
		"deposit,1,2,",      // malformed
		"transfer,1,3,1.0",  // malformed
		"withdrawal,1,4,1.0",
	}, "\n")

	r := NewReader(strings.NewReader(in))
	var badLines []int
	r.OnBadRow = func(line int, err error) {
		badLines = append(badLines, line)
		assert.Error(t, err)
	}

	muts := readAll(t, r)
	require.Len(t, muts, 2)
	assert.Equal(t, uint32(1), muts[0].ID)
	assert.Equal(t, uint32(4), muts[1].ID)
	assert.Equal(t, []int{3, 4}, badLines)
}
