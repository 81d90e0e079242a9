package views

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/hollis7/weka/internal/currency"
	"github.com/hollis7/weka/internal/store"
)

type BalancesView struct{}

func NewBalancesView() *BalancesView {
	return &BalancesView{}
}

func (v *BalancesView) Render(statements []*store.Statement) error {
	headers := []string{"Client", "Available", "Held", "Total", "Locked"}
	tableData := pterm.TableData{headers}

	for _, st := range statements {
		locked := "no"
		if st.Locked {
			locked = pterm.Red("locked")
		}

		tableData = append(tableData, []string{
			strconv.FormatInt(st.Client, 10),
			currency.Amount(st.Available).String(),
			currency.Amount(st.Held).String(),
			currency.Amount(st.Total).String(),
			locked,
		})
	}

	pterm.DefaultSection.Printf("Closing Balances")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(statements))

	return nil
}
