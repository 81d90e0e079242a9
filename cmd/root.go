package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/hollis7/weka/cmd/report"
	"github.com/hollis7/weka/internal/app"
	"github.com/hollis7/weka/internal/config"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// stdout carries the balance report and nothing else, so every
	// diagnostic printer writes to stderr.
	pterm.Error.Writer = os.Stderr
	pterm.Warning.Writer = os.Stderr

	application := app.NewApp(config.NewDefault(), migrations)

	cobra.OnInitialize(func() {
		if err := initConfig(); err != nil {
			pterm.Error.Println(capitalize(err.Error()))
			os.Exit(1)
		}
		application.Config = cfg
	})

	rootCmd := &cobra.Command{
		Use:           "weka",
		Short:         "weka settles ordered transaction streams into client account balances",
		Long: `weka reads an ordered stream of deposits, withdrawals, disputes,
resolves and chargebacks, applies them to client accounts, and reports
each account's closing balances.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewProcessCmd(application))
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewInitCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))
	rootCmd.AddCommand(report.NewReportCmd(application))

	if err := rootCmd.Execute(); err != nil {
		errMsg := err.Error()
		displayMsg := capitalize(errMsg)

		pterm.Error.Println(displayMsg)
		os.Exit(1)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.DataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("WEKA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		// Running without a config file is the normal case; weka init
		// creates one on request.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
