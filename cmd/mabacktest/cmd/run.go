package cmd

import (
	"fmt"

	"mabacktest/internal/app"
	"mabacktest/internal/loader"
	"mabacktest/internal/logger"
	"mabacktest/internal/util"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the crossover backtest and print the full report",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New()
		runID := uuid.New()

		handler, err := app.NewCrossoverHandler(shortWindow, longWindow)
		if err != nil {
			return err
		}

		bars, err := loader.LoadBarsFromFile(barFile)
		if err != nil {
			return fmt.Errorf("failed to load bars: %w", err)
		}
		log.Infow("loaded bars",
			"runId", runID,
			"file", barFile,
			"bars", len(bars),
			"shortWindow", handler.ShortWindow,
			"longWindow", handler.LongWindow,
		)

		if len(bars) < handler.LongWindow {
			return fmt.Errorf("insufficient data: need at least %d bars, got %d", handler.LongWindow, len(bars))
		}

		result := handler.Run(bars)
		log.Infow("backtest complete",
			"runId", runID,
			"signals", len(result.Signals),
			"trades", result.Performance.TotalTrades,
		)

		util.Pprint(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
