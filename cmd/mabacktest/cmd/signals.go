package cmd

import (
	"fmt"

	"mabacktest/internal/app"
	"mabacktest/internal/loader"
	"mabacktest/internal/util"

	"github.com/spf13/cobra"
)

var signalsCmd = &cobra.Command{
	Use:   "signals",
	Short: "Print crossover signals without the performance report",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.NewCrossoverHandler(shortWindow, longWindow)
		if err != nil {
			return err
		}

		bars, err := loader.LoadBarsFromFile(barFile)
		if err != nil {
			return fmt.Errorf("failed to load bars: %w", err)
		}

		util.Pprint(handler.GenerateSignals(bars))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(signalsCmd)
}
