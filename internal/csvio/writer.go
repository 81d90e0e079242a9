package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/hollis7/weka/internal/engine"
)

// WriteAccounts renders the closing balance report as CSV. Amounts are
// printed with exactly four decimal places; rows keep the order the
// accounts are given in.
func WriteAccounts(w io.Writer, accounts []*engine.Account) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, a := range accounts {
		rec := []string{
			strconv.FormatUint(uint64(a.Client), 10),
			a.Available.String(),
			a.Held.String(),
			a.Total.String(),
			strconv.FormatBool(a.Locked),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
