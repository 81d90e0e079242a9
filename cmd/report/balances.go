package report

import (
	"github.com/hollis7/weka/internal/app"
	"github.com/hollis7/weka/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type balancesRunner struct {
	app *app.App
}

func NewBalancesCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "balances",
		Aliases: []string{"bal", "b"},
		Short:   "Show the closing balances a run recorded",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &balancesRunner{
				app: a,
			}
			return runner.Run()
		},
	}
}

func (r *balancesRunner) Run() error {
	st, cleanup, run, err := openRun(r.app)
	if err != nil {
		return err
	}
	defer cleanup()

	statements, err := st.StatementsForRun(run.ID)
	if err != nil {
		return err
	}

	pterm.Info.Printf("Run #%d: %s (policy %s, %d records)\n", run.ID, run.Source, run.Policy, run.Read)

	return views.NewBalancesView().Render(statements)
}
