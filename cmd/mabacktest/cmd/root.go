// Package cmd - mabacktest CLI commands
package cmd

import (
	"fmt"

	"mabacktest/internal/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	barFile     string
	shortWindow int
	longWindow  int

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mabacktest",
	Short: "Moving-average crossover backtester",
	Long: `Backtests a two-moving-average crossover rule over a CSV of
price bars and reports the signals it would have fired along with
round-trip trade performance.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("short-window") {
			shortWindow = cfg.Strategy.ShortWindow
		}
		if !cmd.Flags().Changed("long-window") {
			longWindow = cfg.Strategy.LongWindow
		}
		if barFile == "" {
			barFile = cfg.Data.BarFile
		}
		if barFile == "" {
			return fmt.Errorf("no bar file given - set --data or data.bar_file in config")
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "mabacktest.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&barFile, "data", "", "CSV file of price bars (datetime,open,high,low,close,volume)")
	rootCmd.PersistentFlags().IntVar(&shortWindow, "short-window", 0, "short moving average window")
	rootCmd.PersistentFlags().IntVar(&longWindow, "long-window", 0, "long moving average window")
}
