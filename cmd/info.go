package cmd

import (
	"os"

	"github.com/hollis7/weka/internal/app"
	"github.com/hollis7/weka/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, audit database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: a,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	auditPath, err := r.app.AuditPath("")
	if err != nil {
		return err
	}

	auditExists := false
	if auditPath != "" {
		if _, err := os.Stat(auditPath); err == nil {
			auditExists = true
		}
	}

	items := views.SystemInfoItem{
		ConfigPath:    r.app.Config.ConfigPath,
		AuditDBPath:   auditPath,
		AuditDBExists: auditExists,
		OnError:       r.app.Config.Engine.OnError,
		Pretty:        r.app.Config.Output.Pretty,
		AppDataDir:    appDataDirOrUnknown(),
	}

	if err := views.RenderSystemInfo(items); err != nil {
		return err
	}
	return nil
}

func appDataDirOrUnknown() string {
	dir, err := app.DataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
