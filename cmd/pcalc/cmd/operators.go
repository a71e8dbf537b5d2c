package cmd

import (
	"fmt"

	"github.com/msto63/pascal/internal/pascal/calculator"
	"github.com/spf13/cobra"
)

var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "Listet die verfügbaren Operatoren",
	Run: func(cmd *cobra.Command, args []string) {
		for _, op := range calculator.Operators() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s\n", op.Symbol(), op.Name())
		}
	},
}

func init() {
	rootCmd.AddCommand(operatorsCmd)
}
