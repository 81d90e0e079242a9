package report

import (
	"fmt"
	"os"

	"github.com/hollis7/weka/internal/app"
	"github.com/hollis7/weka/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath string
	runID  int64
)

func NewReportCmd(a *app.App) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Query runs recorded in the audit database",
		Long: `Query runs recorded in the audit database.

Every run processed with auditing enabled stores its accepted
transactions and closing balances. report reads them back without
reprocessing anything.`,
	}

	reportCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Audit database path (defaults to the configured one)")
	reportCmd.PersistentFlags().Int64Var(&runID, "run", 0, "Run id to report on (0 means the latest run)")

	reportCmd.AddCommand(NewBalancesCmd(a))
	reportCmd.AddCommand(NewTransactionsCmd(a))

	return reportCmd
}

// openRun opens the audit store and resolves which recorded run the
// report is about. The caller owns the returned cleanup.
func openRun(a *app.App) (*store.Store, func(), *store.Run, error) {
	path, err := a.AuditPath(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if path == "" {
		return nil, nil, nil, fmt.Errorf("no audit database configured: set audit.path or pass --db")
	}
	// Reporting must not create an empty database as a side effect.
	if _, err := os.Stat(path); err != nil {
		return nil, nil, nil, fmt.Errorf("audit database %s does not exist", path)
	}

	st, cleanup, err := a.OpenAudit(path)
	if err != nil {
		return nil, nil, nil, err
	}

	id := runID
	if id == 0 {
		id, err = st.LatestRunID()
		if err != nil {
			cleanup()
			return nil, nil, nil, err
		}
	}

	run, err := st.GetRun(id)
	if err != nil {
		cleanup()
		return nil, nil, nil, fmt.Errorf("run %d: %w", id, err)
	}

	return st, cleanup, run, nil
}
