package calculator

import (
	"math"

	"mabacktest/internal/domain"
)

// EvaluatePerformance pairs buy signals with the next sell into
// round-trip trades and aggregates them. Fewer than two signals is a
// normal boundary case and returns the zeroed summary.
//
// The signal engine never emits two consecutive buys or an unmatched
// sell, but this function is callable with externally supplied streams,
// so both branches are handled: a second buy overwrites the open one,
// a sell with nothing open is ignored.
func EvaluatePerformance(signals []domain.Signal) domain.PerformanceSummary {
	if len(signals) < 2 {
		return domain.PerformanceSummary{}
	}

	profits := TradeProfits(signals)

	totalTrades := len(profits)
	winningTrades := 0
	losingTrades := 0
	totalReturn := 0.0
	for _, profit := range profits {
		if profit > 0 {
			winningTrades++
		} else if profit < 0 {
			losingTrades++
		}
		totalReturn += profit
	}

	winRate := 0.0
	if totalTrades > 0 {
		winRate = float64(winningTrades) / float64(totalTrades) * 100
	}

	return domain.PerformanceSummary{
		TotalTrades:   totalTrades,
		WinningTrades: winningTrades,
		LosingTrades:  losingTrades,
		WinRate:       roundTwoPlaces(winRate),
		TotalReturn:   roundTwoPlaces(totalReturn),
	}
}

// TradeProfits walks the signal stream and returns the per-trade profit
// of each completed round trip, in order.
func TradeProfits(signals []domain.Signal) []float64 {
	profits := []float64{}
	var openBuyPrice *float64

	for _, signal := range signals {
		switch signal.Kind {
		case domain.SignalKind_Buy:
			price := signal.Price
			openBuyPrice = &price
		case domain.SignalKind_Sell:
			if openBuyPrice == nil {
				continue
			}
			profits = append(profits, signal.Price-*openBuyPrice)
			openBuyPrice = nil
		}
	}

	return profits
}

func roundTwoPlaces(x float64) float64 {
	return math.Round(x*100) / 100
}
