package calculator

import (
	"fmt"

	"mabacktest/internal/domain"

	"github.com/montanaflynn/stats"
)

type TradeStatsResult struct {
	MeanProfit   float64 `json:"meanProfit"`
	ProfitStdev  float64 `json:"profitStdev"`
	ProfitFactor float64 `json:"profitFactor"`
	LargestWin   float64 `json:"largestWin"`
	LargestLoss  float64 `json:"largestLoss"`
}

// CalculateTradeStats computes distribution statistics over per-trade
// profits, beside the headline summary. Needs at least two completed
// trades for a sample stdev.
func CalculateTradeStats(signals []domain.Signal) (*TradeStatsResult, error) {
	profits := TradeProfits(signals)
	if len(profits) < 2 {
		return nil, fmt.Errorf("cannot calculate trade stats on < 2 completed trades, got %d", len(profits))
	}

	mean, err := stats.Mean(profits)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate mean profit: %w", err)
	}

	stdev, err := stats.StandardDeviationSample(profits)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate profit stdev: %w", err)
	}

	grossProfit := 0.0
	grossLoss := 0.0
	largestWin := 0.0
	largestLoss := 0.0
	for _, profit := range profits {
		if profit > 0 {
			grossProfit += profit
			if profit > largestWin {
				largestWin = profit
			}
		} else if profit < 0 {
			grossLoss += -profit
			if profit < largestLoss {
				largestLoss = profit
			}
		}
	}

	// gross loss of zero makes the ratio meaningless; report 0 rather
	// than +Inf so the value stays JSON-encodable
	profitFactor := 0.0
	if grossLoss > 0 {
		profitFactor = grossProfit / grossLoss
	}

	return &TradeStatsResult{
		MeanProfit:   mean,
		ProfitStdev:  stdev,
		ProfitFactor: profitFactor,
		LargestWin:   largestWin,
		LargestLoss:  largestLoss,
	}, nil
}
