package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hollis7/weka/internal/app"
	"github.com/hollis7/weka/internal/errhandler"
	"github.com/hollis7/weka/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type initRunner struct {
	app *app.App
}

func NewInitCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or update the config file interactively",
		Long: `Walk through weka's defaults and save them to the config file.

Nothing requires a config file: every setting has a built-in default
and can be overridden per run with flags or WEKA_* environment
variables. init exists for the settings you want to stop repeating.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &initRunner{app: a}
			return runner.Run()
		},
	}
}

func (r *initRunner) Run() error {
	defaults := prompts.InitSettings{
		OnError:   r.app.Config.Engine.OnError,
		Pretty:    r.app.Config.Output.Pretty,
		AuditPath: r.app.Config.Audit.Path,
	}

	settings, err := prompts.PromptInitSettings(defaults)
	if err != nil {
		errhandler.HandleInterrupt(err)
		return err
	}

	viper.Set("engine.on_error", settings.OnError)
	viper.Set("output.pretty", settings.Pretty)
	viper.Set("audit.path", settings.AuditPath)

	path := r.app.Config.ConfigPath
	if path == "" {
		appDir, err := app.DataDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(appDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		path = filepath.Join(appDir, "config.yaml")
	}

	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved to %s\n", path)
	return nil
}
