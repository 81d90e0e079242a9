package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  Amount
		isErr bool
	}{
		{name: "integer", in: "5", want: 50000},
		{name: "full precision", in: "1.2345", want: 12345},
		{name: "short fraction", in: "1.5", want: 15000},
		{name: "trailing zeros", in: "2.50", want: 25000},
		{name: "smallest unit", in: "0.0001", want: 1},
		{name: "zero", in: "0", want: 0},
		{name: "zero with fraction", in: "0.0000", want: 0},
		{name: "excess digits truncate", in: "1.23456789", want: 12345},
		{name: "truncates not rounds", in: "0.99999", want: 9999},
		{name: "leading zeros", in: "007.25", want: 72500},
		{name: "max uint64", in: "1844674407370955.1615", want: 18446744073709551615},
		{name: "beyond uint64", in: "1844674407370955.1616", isErr: true},
		{name: "negative", in: "-1.0", isErr: true},
		{name: "negative zero fraction", in: "-0.5", isErr: true},
		{name: "empty", in: "", isErr: true},
		{name: "not a number", in: "ten", isErr: true},
		{name: "two dots", in: "1.2.3", isErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.in)
			if tt.isErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   Amount
		want string
	}{
		{name: "zero", in: 0, want: "0.0000"},
		{name: "sub-unit", in: 1, want: "0.0001"},
		{name: "padding", in: 102, want: "0.0102"},
		{name: "whole units", in: 50000, want: "5.0000"},
		{name: "mixed", in: 12345, want: "1.2345"},
		{name: "large", in: 98765432101, want: "9876543.2101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestCheckedAdd(t *testing.T) {
	t.Run("adds", func(t *testing.T) {
		got, ok := Amount(30000).CheckedAdd(12345)
		require.True(t, ok)
		assert.Equal(t, Amount(42345), got)
	})

	t.Run("overflow reported", func(t *testing.T) {
		_, ok := Amount(1<<64 - 1).CheckedAdd(1)
		assert.False(t, ok)
	})

	t.Run("max plus zero", func(t *testing.T) {
		got, ok := Amount(1<<64 - 1).CheckedAdd(0)
		require.True(t, ok)
		assert.Equal(t, Amount(1<<64-1), got)
	})
}

func TestCheckedSub(t *testing.T) {
	t.Run("subtracts", func(t *testing.T) {
		got, ok := Amount(50000).CheckedSub(12345)
		require.True(t, ok)
		assert.Equal(t, Amount(37655), got)
	})

	t.Run("to zero", func(t *testing.T) {
		got, ok := Amount(42).CheckedSub(42)
		require.True(t, ok)
		assert.Equal(t, Amount(0), got)
	})

	t.Run("underflow reported", func(t *testing.T) {
		_, ok := Amount(1).CheckedSub(2)
		assert.False(t, ok)
	})
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, Amount(15000), MustParse("1.5"))
	assert.Panics(t, func() { MustParse("nope") })
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, s := range []string{"0.0000", "0.0001", "1.5000", "12345.6789"} {
		got, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, got.String())
	}
}
