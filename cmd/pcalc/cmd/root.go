package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/msto63/pascal/pkg/core/config"
	"github.com/msto63/pascal/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// errAlertShown marks a failure whose alert was already printed
var errAlertShown = errors.New("alert shown")

var rootCmd = &cobra.Command{
	Use:   "pcalc",
	Short: "Pascal - Taschenrechner mit zwei Operanden",
	Long: `pcalc rechnet eine Operation mit zwei Operanden aus.

Operatoren: + - * /

Das Ergebnis wird lokal berechnet oder mit --remote an einen
laufenden Pascal-Service gesendet.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logging.Configure(level, "text", os.Stderr)
	},
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errAlertShown) {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %v\n", err)
}
