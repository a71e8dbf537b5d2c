package cmd

import (
	"context"
	"fmt"

	"github.com/msto63/pascal/internal/pascal/client"
	"github.com/msto63/pascal/internal/pascal/service"
	"github.com/spf13/cobra"
)

var evalRemote string

var evalCmd = &cobra.Command{
	Use:   "eval <erster> <operator> <zweiter>",
	Short: "Berechnet eine Operation",
	Long: `Berechnet <erster> <operator> <zweiter> und gibt das Ergebnis aus.

Bei einem Fehler wird "Titel: Meldung" auf stderr ausgegeben und pcalc
beendet sich mit Exit-Code 1.

Beispiele:
  pcalc eval 6 / 3
  pcalc eval 1 / 3                       # 0.3333333333...
  pcalc eval 2.5 '*' 4
  pcalc eval -- -3 + 2                   # negative Operanden nach --
  pcalc eval --remote localhost:9160 6 - 1`,
	Args: cobra.ExactArgs(3),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVar(&evalRemote, "remote", "", "Adresse eines Pascal-Service (host:port)")
}

func runEval(cmd *cobra.Command, args []string) error {
	first, operator, second := args[0], args[1], args[2]

	resp, err := evaluate(cmd.Context(), first, second, operator)
	if err != nil {
		return err
	}

	if !resp.OK {
		fmt.Fprintln(cmd.ErrOrStderr(), resp.Alert())
		return errAlertShown
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.Display)
	return nil
}

func evaluate(ctx context.Context, first, second, operator string) (*service.EvaluateResponse, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if evalRemote == "" {
		svc, err := service.NewService(service.Config{})
		if err != nil {
			return nil, err
		}
		return svc.Evaluate(ctx, &service.EvaluateRequest{
			First:    first,
			Second:   second,
			Operator: operator,
		})
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("konfiguration laden: %w", err)
	}

	clientCfg := client.DefaultConfig()
	clientCfg.Address = evalRemote
	if cfg.Client.Timeout.Duration > 0 {
		clientCfg.Timeout = cfg.Client.Timeout.Duration
	}

	c, err := client.New(clientCfg)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	remote, err := c.Evaluate(ctx, first, second, operator)
	if err != nil {
		return nil, err
	}
	return &service.EvaluateResponse{
		OK:        remote.OK,
		Display:   remote.Display,
		Value:     remote.Value,
		ErrorKind: remote.ErrorKind,
		Title:     remote.Title,
		Message:   remote.Message,
	}, nil
}
