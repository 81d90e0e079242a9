package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// InitSettings carries the answers of the first-run wizard.
type InitSettings struct {
	OnError   string
	Pretty    bool
	AuditPath string
}

// PromptInitSettings walks through the configurable defaults, seeded
// with the current values.
func PromptInitSettings(current InitSettings) (InitSettings, error) {
	settings := current
	if settings.OnError == "" {
		settings.OnError = "abort"
	}

	err := huh.NewSelect[string]().
		Title("What should a record that cannot be applied do to a run?").
		Description("abort is the strict default; skip drops the record, reports it and keeps going (final balances change).").
		Options(
			huh.NewOption("abort - stop at the first failing record", "abort"),
			huh.NewOption("skip - drop failing records and continue", "skip"),
		).
		Value(&settings.OnError).
		Run()
	if err != nil {
		return InitSettings{}, err
	}

	err = huh.NewConfirm().
		Title("Render balances as a table by default?").
		Description("Table output is for humans; CSV (the default) is for pipes. Either can be overridden per run.").
		Affirmative("Table").
		Negative("CSV").
		Value(&settings.Pretty).
		Run()
	if err != nil {
		return InitSettings{}, err
	}

	var auditPath string
	err = huh.NewInput().
		Title("Audit database path (leave empty to disable):").
		Description("When set, every run records its accepted transactions and closing balances there.").
		Placeholder(settings.AuditPath).
		Value(&auditPath).
		Run()
	if err != nil {
		return InitSettings{}, err
	}
	if trimmed := strings.TrimSpace(auditPath); trimmed != "" {
		settings.AuditPath = trimmed
	}

	return settings, nil
}
