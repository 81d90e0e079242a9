package report

import (
	"fmt"

	"github.com/hollis7/weka/internal/app"
	"github.com/hollis7/weka/internal/engine"
	"github.com/hollis7/weka/internal/store"
	"github.com/hollis7/weka/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type transactionsFlags struct {
	Client uint16
	Status string
}

type transactionsRunner struct {
	app      *app.App
	flags    *transactionsFlags
	byClient bool
}

func NewTransactionsCmd(a *app.App) *cobra.Command {
	flags := &transactionsFlags{}

	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx", "t"},
		Short:   "List the accepted transactions a run recorded",
		Long: `List the deposits and withdrawals a run accepted, with the dispute
status each one ended the run in. Dispute, resolve and chargeback
records reference these transactions and are not listed themselves.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &transactionsRunner{
				app:      a,
				flags:    flags,
				byClient: cmd.Flags().Changed("client"),
			}
			return runner.Run()
		},
	}

	cmd.Flags().Uint16Var(&flags.Client, "client", 0, "Only show transactions of this client id")
	cmd.Flags().StringVar(&flags.Status, "status", "", "Only show transactions with this status (ok, disputed, resolved, refunded)")

	return cmd
}

func (r *transactionsRunner) Run() error {
	switch engine.Status(r.flags.Status) {
	case "", engine.StatusOk, engine.StatusDisputed, engine.StatusResolved, engine.StatusRefunded:
	default:
		return fmt.Errorf("unknown status %q (want ok, disputed, resolved or refunded)", r.flags.Status)
	}

	st, cleanup, run, err := openRun(r.app)
	if err != nil {
		return err
	}
	defer cleanup()

	var entries []*store.Entry
	if r.byClient {
		entries, err = st.EntriesForClient(run.ID, int64(r.flags.Client))
	} else {
		entries, err = st.EntriesForRun(run.ID)
	}
	if err != nil {
		return err
	}

	if r.flags.Status != "" {
		var filtered []*store.Entry
		for _, e := range entries {
			if e.Status == r.flags.Status {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	pterm.Info.Printf("Run #%d: %s (policy %s, %d records)\n", run.ID, run.Source, run.Policy, run.Read)

	return views.NewTransactionsView().Render(entries)
}
