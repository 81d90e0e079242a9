package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hollis7/weka/internal/app"
	"github.com/hollis7/weka/internal/csvio"
	"github.com/hollis7/weka/internal/engine"
	"github.com/hollis7/weka/internal/store"
	"github.com/hollis7/weka/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type processFlags struct {
	Output  string
	Pretty  bool
	OnError string
	AuditDB string
}

type processRunner struct {
	app       *app.App
	flags     *processFlags
	prettySet bool
}

func NewProcessCmd(a *app.App) *cobra.Command {
	flags := &processFlags{}

	cmd := &cobra.Command{
		Use:     "process <transactions.csv>",
		Aliases: []string{"run", "p"},
		Short:   "Settle a transaction stream and report closing balances",
		Long: `Settle a transaction stream and report each client's closing balances.

Records are applied strictly in file order. The report is CSV on stdout
by default so runs compose with pipes; --pretty renders a table instead
and --output writes the CSV to a file. Pass "-" to read from stdin.

A record that cannot be applied aborts the run unless --on-error=skip
drops it and keeps going. Skipping changes the final balances, so every
dropped record is reported on stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &processRunner{
				app:       a,
				flags:     flags,
				prettySet: cmd.Flags().Changed("pretty"),
			}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write the CSV report to a file instead of stdout")
	cmd.Flags().BoolVar(&flags.Pretty, "pretty", false, "Render the report as a table instead of CSV")
	cmd.Flags().StringVar(&flags.OnError, "on-error", "", "What a failing record does to the run: abort or skip")
	cmd.Flags().StringVar(&flags.AuditDB, "audit-db", "", "Record the run in this audit database")

	return cmd
}

func (r *processRunner) Run(source string) error {
	mode := r.flags.OnError
	if mode == "" {
		mode = r.app.Config.Engine.OnError
	}
	policy, err := engine.ParsePolicy(mode)
	if err != nil {
		return err
	}

	pretty := r.flags.Pretty
	if !r.prettySet {
		pretty = r.app.Config.Output.Pretty
	}

	in, name, err := openSource(source)
	if err != nil {
		return err
	}
	defer in.Close()

	reader := csvio.NewReader(in)
	malformed := 0
	if policy == engine.PolicySkip {
		reader.OnBadRow = func(line int, err error) {
			malformed++
			pterm.Warning.Printf("Skipping row %d: %v\n", line, err)
		}
	}

	eng := engine.New(policy, func(m engine.Mutation, err error) {
		pterm.Warning.Printf("Skipping: %v\n", err)
	})

	started := time.Now()
	stats, err := eng.Run(reader)
	if err != nil {
		return fmt.Errorf("processing %s: %w", name, err)
	}
	finished := time.Now()

	accounts := eng.Accounts()
	statements := statementRows(accounts)

	if pretty {
		rows := make([]*store.Statement, len(statements))
		for i := range statements {
			rows[i] = &statements[i]
		}
		if err := views.NewBalancesView().Render(rows); err != nil {
			return err
		}
	}

	if r.flags.Output != "" {
		path, err := app.ExpandPath(r.flags.Output)
		if err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := csvio.WriteAccounts(f, accounts); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	} else if !pretty {
		if err := csvio.WriteAccounts(os.Stdout, accounts); err != nil {
			return err
		}
	}

	auditPath, err := r.app.AuditPath(r.flags.AuditDB)
	if err != nil {
		return err
	}
	if auditPath != "" {
		st, cleanup, err := r.app.OpenAudit(auditPath)
		if err != nil {
			return err
		}
		defer cleanup()

		run := store.Run{
			Source:     name,
			Policy:     string(policy),
			StartedAt:  started.Unix(),
			FinishedAt: finished.Unix(),
			Read:       int64(stats.Read),
			Applied:    int64(stats.Applied),
			Skipped:    int64(stats.Skipped),
		}
		runID, err := st.RecordRun(run, entryRows(eng.Entries()), statements)
		if err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
		pterm.Success.WithWriter(os.Stderr).Printf("Run #%d recorded in %s\n", runID, auditPath)
	}

	summary := fmt.Sprintf("Processed %d records: %d applied, %d skipped", stats.Read, stats.Applied, stats.Skipped)
	if malformed > 0 {
		summary += fmt.Sprintf(", %d malformed rows dropped", malformed)
	}
	pterm.Info.WithWriter(os.Stderr).Println(summary)

	return nil
}

func openSource(arg string) (io.ReadCloser, string, error) {
	if arg == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", arg, err)
	}
	return f, arg, nil
}

func statementRows(accounts []*engine.Account) []store.Statement {
	rows := make([]store.Statement, 0, len(accounts))
	for _, acc := range accounts {
		rows = append(rows, store.Statement{
			Client:    int64(acc.Client),
			Available: int64(acc.Available),
			Held:      int64(acc.Held),
			Total:     int64(acc.Total),
			Locked:    acc.Locked,
		})
	}
	return rows
}

func entryRows(entries []*engine.Entry) []store.Entry {
	rows := make([]store.Entry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, store.Entry{
			TxID:   int64(e.ID),
			Kind:   string(e.Kind),
			Client: int64(e.Client),
			Amount: int64(e.Amount),
			Status: string(e.Status),
		})
	}
	return rows
}
