package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of decimal digits an Amount carries.
const Scale = 4

// Amount is a monetary value counted in 1/10,000ths of a currency unit.
// Stored state is always an unsigned integer count; conversion from text
// goes through decimal arithmetic, never floating point.
type Amount uint64

var unitFactor = decimal.New(1, Scale)

// Parse converts free-form decimal text into an Amount. Digits beyond the
// fourth decimal place are truncated, not rounded.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("negative amount %q", s)
	}
	units := d.Mul(unitFactor).Truncate(0).BigInt()
	if !units.IsUint64() {
		return 0, fmt.Errorf("amount %q out of range", s)
	}
	return Amount(units.Uint64()), nil
}

// MustParse is Parse for constants known to be valid. It panics on error.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// CheckedAdd returns a+b, reporting false instead of wrapping around.
func (a Amount) CheckedAdd(b Amount) (Amount, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// CheckedSub returns a-b, reporting false when b exceeds a.
func (a Amount) CheckedSub(b Amount) (Amount, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

// String renders the amount with exactly four decimal places.
func (a Amount) String() string {
	return fmt.Sprintf("%d.%04d", uint64(a)/10000, uint64(a)%10000)
}
