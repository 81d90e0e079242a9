package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/hollis7/weka/internal/csvio"
	"github.com/hollis7/weka/internal/engine"
	"github.com/hollis7/weka/internal/ui/views"
	"github.com/spf13/cobra"
)

// maxProblemsShown caps the per-row problems listed by check; the rest
// are summarized as a count.
const maxProblemsShown = 10

type checkRunner struct{}

func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "check <transactions.csv>",
		Aliases: []string{"lint"},
		Short:   "Validate a transaction log without applying it",
		Long: `Validate a transaction log without touching any account.

Every row is parsed and checked against the record rules (known type,
numeric ids, amount present exactly when the type calls for one), and
the result is summarized per record type. Balances are not computed;
use process for that. Exits non-zero when any row is malformed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &checkRunner{}
			return runner.Run(args[0])
		},
	}
}

func (r *checkRunner) Run(source string) error {
	in, name, err := openSource(source)
	if err != nil {
		return err
	}
	defer in.Close()

	report := views.CheckReport{Source: name}
	counts := make(map[engine.Kind]int)

	reader := csvio.NewReader(in)
	reader.OnBadRow = func(line int, err error) {
		report.Records++
		report.Malformed++
		if len(report.Problems) < maxProblemsShown {
			report.Problems = append(report.Problems, views.Problem{Line: line, Message: err.Error()})
		} else {
			report.Truncated++
		}
	}

	for {
		m, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A broken header or unreadable input is a failure of the
			// whole file, not of a row.
			return fmt.Errorf("checking %s: %w", name, err)
		}
		report.Records++
		report.Valid++
		counts[m.Kind]++
	}

	for _, kind := range []engine.Kind{engine.Deposit, engine.Withdrawal, engine.Dispute, engine.Resolve, engine.Chargeback} {
		if counts[kind] > 0 {
			report.Kinds = append(report.Kinds, views.KindCount{Kind: string(kind), Count: counts[kind]})
		}
	}

	if err := views.RenderCheckReport(report); err != nil {
		return err
	}

	if report.Malformed > 0 {
		return fmt.Errorf("%s has %d malformed rows", name, report.Malformed)
	}
	return nil
}
