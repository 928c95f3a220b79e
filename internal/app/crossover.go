package app

import (
	"fmt"

	"mabacktest/internal/calculator"
	"mabacktest/internal/domain"
)

const (
	DefaultShortWindow = 10
	DefaultLongWindow  = 20
)

// CrossoverHandler generates signals from a two-moving-average
// crossover rule: buy when the short average crosses above the long
// one, sell when it crosses back below. It holds no state between
// calls - position tracking lives inside each GenerateSignals pass,
// so handlers with different windows can run concurrently over
// separate inputs.
type CrossoverHandler struct {
	ShortWindow int
	LongWindow  int
}

func NewCrossoverHandler(shortWindow, longWindow int) (*CrossoverHandler, error) {
	if shortWindow < 1 || longWindow < 1 {
		return nil, fmt.Errorf("windows must be positive, got short=%d long=%d", shortWindow, longWindow)
	}
	if shortWindow >= longWindow {
		return nil, fmt.Errorf("short window (%d) must be smaller than long window (%d)", shortWindow, longWindow)
	}
	return &CrossoverHandler{
		ShortWindow: shortWindow,
		LongWindow:  longWindow,
	}, nil
}

// GenerateSignals runs one pass over bars, which must already be
// sorted ascending by date. Fewer bars than the long window is a
// normal boundary case and yields an empty slice, not an error -
// callers that want a hard failure decide that themselves.
func (h CrossoverHandler) GenerateSignals(bars []domain.PriceBar) []domain.Signal {
	if len(bars) < h.LongWindow {
		return []domain.Signal{}
	}

	closes := make([]float64, len(bars))
	for i, bar := range bars {
		closes[i] = bar.ClosePrice()
	}

	shortMA := calculator.MovingAverage(closes, h.ShortWindow)
	longMA := calculator.MovingAverage(closes, h.LongWindow)

	signals := []domain.Signal{}
	position := domain.Position_Flat

	// the first LongWindow bars are skipped outright, even when a
	// smaller short window defines both averages earlier - the rule
	// starts at a fixed offset, not at first definedness
	for i := h.LongWindow; i < len(bars); i++ {
		prevShort, prevLong := shortMA[i-1], longMA[i-1]
		currShort, currLong := shortMA[i], longMA[i]
		if prevShort == nil || prevLong == nil || currShort == nil || currLong == nil {
			continue
		}

		// comparisons are exact - an epsilon would move which bar gets
		// flagged as the crossing point
		if *prevShort <= *prevLong && *currShort > *currLong && position != domain.Position_Long {
			signals = append(signals, domain.Signal{
				Date:    bars[i].Date,
				Kind:    domain.SignalKind_Buy,
				Price:   closes[i],
				ShortMA: *currShort,
				LongMA:  *currLong,
			})
			position = domain.Position_Long
		} else if *prevShort >= *prevLong && *currShort < *currLong && position == domain.Position_Long {
			signals = append(signals, domain.Signal{
				Date:    bars[i].Date,
				Kind:    domain.SignalKind_Sell,
				Price:   closes[i],
				ShortMA: *currShort,
				LongMA:  *currLong,
			})
			position = domain.Position_Flat
		}
	}

	return signals
}

// BacktestResult is the full report for one evaluation: the signal
// stream plus the aggregate performance, and trade distribution stats
// when enough round trips completed.
type BacktestResult struct {
	Signals     []domain.Signal              `json:"signals"`
	Performance domain.PerformanceSummary    `json:"performance"`
	TradeStats  *calculator.TradeStatsResult `json:"tradeStats,omitempty"`
}

// Run generates signals and evaluates them in one shot.
func (h CrossoverHandler) Run(bars []domain.PriceBar) BacktestResult {
	signals := h.GenerateSignals(bars)
	result := BacktestResult{
		Signals:     signals,
		Performance: calculator.EvaluatePerformance(signals),
	}

	// stats need >= 2 completed trades; short histories just omit them
	if tradeStats, err := calculator.CalculateTradeStats(signals); err == nil {
		result.TradeStats = tradeStats
	}

	return result
}
