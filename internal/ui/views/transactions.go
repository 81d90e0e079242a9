package views

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/hollis7/weka/internal/currency"
	"github.com/hollis7/weka/internal/store"
)

type TransactionsView struct{}

func NewTransactionsView() *TransactionsView {
	return &TransactionsView{}
}

func (v *TransactionsView) Render(entries []*store.Entry) error {
	headers := []string{"Tx", "Kind", "Client", "Amount", "Status"}
	tableData := pterm.TableData{headers}

	for _, e := range entries {
		var coloredStatus string
		switch e.Status {
		case "disputed":
			coloredStatus = pterm.Yellow(e.Status)
		case "resolved":
			coloredStatus = pterm.Cyan(e.Status)
		case "refunded":
			coloredStatus = pterm.Red(e.Status)
		default:
			coloredStatus = e.Status
		}

		tableData = append(tableData, []string{
			strconv.FormatInt(e.TxID, 10),
			e.Kind,
			strconv.FormatInt(e.Client, 10),
			currency.Amount(e.Amount).String(),
			coloredStatus,
		})
	}

	pterm.DefaultSection.Printf("Accepted Transactions")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d transactions\n", len(entries))

	return nil
}
