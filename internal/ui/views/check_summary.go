package views

import (
	"strconv"

	"github.com/pterm/pterm"
)

type KindCount struct {
	Kind  string
	Count int
}

type Problem struct {
	Line    int
	Message string
}

// CheckReport summarizes a parse-only validation pass over a
// transaction log.
type CheckReport struct {
	Source    string
	Records   int
	Valid     int
	Malformed int
	Kinds     []KindCount
	Problems  []Problem
	Truncated int // problems beyond the ones listed
}

func RenderCheckReport(report CheckReport) error {
	pterm.DefaultSection.Printf("Check %s", report.Source)

	tableData := pterm.TableData{{"Kind", "Count"}}
	for _, kc := range report.Kinds {
		tableData = append(tableData, []string{kc.Kind, strconv.Itoa(kc.Count)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	for _, p := range report.Problems {
		pterm.Warning.Printf("line %d: %s\n", p.Line, p.Message)
	}
	if report.Truncated > 0 {
		pterm.Warning.Printf("... and %d more\n", report.Truncated)
	}

	if report.Malformed > 0 {
		pterm.Info.Printf("%d records: %d valid, %d malformed\n", report.Records, report.Valid, report.Malformed)
	} else {
		pterm.Success.Printf("%d records, all valid\n", report.Records)
	}

	return nil
}
