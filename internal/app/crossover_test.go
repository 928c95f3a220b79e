package app

import (
	"testing"

	"mabacktest/internal/domain"
	"mabacktest/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// barsFromCloses builds daily bars starting 2024-01-01 with the given
// closes. Open/high/low are synthesized around the close - only the
// close feeds the averages.
func barsFromCloses(closes []float64) []domain.PriceBar {
	bars := make([]domain.PriceBar, len(closes))
	for i, closePrice := range closes {
		c := decimal.NewFromFloat(closePrice)
		bars[i] = domain.PriceBar{
			Date:   util.NewDate(2024, 1, 1).AddDate(0, 0, i),
			Open:   c,
			High:   c.Add(decimal.NewFromInt(1)),
			Low:    c.Sub(decimal.NewFromInt(1)),
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func Test_GenerateSignals(t *testing.T) {
	t.Run("one full round trip", func(t *testing.T) {
		handler := CrossoverHandler{ShortWindow: 2, LongWindow: 3}
		out := handler.GenerateSignals(barsFromCloses(
			[]float64{10, 9, 8, 7, 10, 14, 13, 9, 8},
		))

		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.Signal{
					{
						Date:    util.NewDate(2024, 1, 5),
						Kind:    domain.SignalKind_Buy,
						Price:   10,
						ShortMA: 8.5,
						LongMA:  25.0 / 3,
					},
					{
						Date:    util.NewDate(2024, 1, 8),
						Kind:    domain.SignalKind_Sell,
						Price:   9,
						ShortMA: 11,
						LongMA:  12,
					},
				},
				out,
			),
		)
	})

	t.Run("fewer bars than long window yields empty, not error", func(t *testing.T) {
		bars := barsFromCloses([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})

		for _, shortWindow := range []int{2, 7, 15} {
			handler := CrossoverHandler{ShortWindow: shortWindow, LongWindow: 10}
			require.Empty(t, handler.GenerateSignals(bars))
		}
	})

	t.Run("uptrend off a flat base buys and never sells", func(t *testing.T) {
		closes := []float64{100, 100, 100, 100, 100, 100}
		for i := 1; i <= 10; i++ {
			closes = append(closes, 100+float64(i))
		}

		handler := CrossoverHandler{ShortWindow: 3, LongWindow: 5}
		out := handler.GenerateSignals(barsFromCloses(closes))

		require.NotEmpty(t, out)
		require.Equal(t, domain.SignalKind_Buy, out[0].Kind)
		for _, signal := range out {
			require.NotEqual(t, domain.SignalKind_Sell, signal.Kind)
		}
	})

	t.Run("decline after the uptrend closes the position", func(t *testing.T) {
		closes := []float64{100, 100, 100, 100, 100, 100}
		for i := 1; i <= 10; i++ {
			closes = append(closes, 100+float64(i))
		}
		for i := 1; i <= 10; i++ {
			closes = append(closes, 110-float64(2*i))
		}

		handler := CrossoverHandler{ShortWindow: 3, LongWindow: 5}
		out := handler.GenerateSignals(barsFromCloses(closes))

		require.Len(t, out, 2)
		require.Equal(t, domain.SignalKind_Buy, out[0].Kind)
		require.Equal(t, domain.SignalKind_Sell, out[1].Kind)
		require.True(t, out[0].Date.Before(out[1].Date))
	})

	t.Run("signals strictly alternate starting with a buy", func(t *testing.T) {
		// deterministic zigzag - plenty of crossings in both directions
		closes := []float64{}
		for cycle := 0; cycle < 6; cycle++ {
			for i := 0; i < 8; i++ {
				closes = append(closes, 100+float64(i*3))
			}
			for i := 0; i < 8; i++ {
				closes = append(closes, 121-float64(i*3))
			}
		}

		handler := CrossoverHandler{ShortWindow: 3, LongWindow: 7}
		out := handler.GenerateSignals(barsFromCloses(closes))

		require.NotEmpty(t, out)
		expected := domain.SignalKind_Buy
		for _, signal := range out {
			require.Equal(t, expected, signal.Kind)
			if expected == domain.SignalKind_Buy {
				expected = domain.SignalKind_Sell
			} else {
				expected = domain.SignalKind_Buy
			}
		}
	})

	t.Run("pure uptrend from the first bar never fires", func(t *testing.T) {
		// the short average sits above the long one from the first
		// checked index, so no crossing is ever observed
		closes := []float64{}
		for i := 0; i < 30; i++ {
			closes = append(closes, 100+float64(i))
		}

		handler := CrossoverHandler{ShortWindow: 3, LongWindow: 5}
		require.Empty(t, handler.GenerateSignals(barsFromCloses(closes)))
	})

	t.Run("exactly long window bars yields empty", func(t *testing.T) {
		handler := CrossoverHandler{ShortWindow: 2, LongWindow: 5}
		out := handler.GenerateSignals(barsFromCloses([]float64{5, 4, 3, 4, 5}))

		// one checkable index short of a crossing pair
		require.Empty(t, out)
	})
}

func Test_NewCrossoverHandler(t *testing.T) {
	t.Run("valid windows", func(t *testing.T) {
		handler, err := NewCrossoverHandler(10, 20)
		require.NoError(t, err)
		require.Equal(t, 10, handler.ShortWindow)
		require.Equal(t, 20, handler.LongWindow)
	})

	t.Run("rejects non-positive windows", func(t *testing.T) {
		_, err := NewCrossoverHandler(0, 20)
		require.Error(t, err)
		_, err = NewCrossoverHandler(10, -1)
		require.Error(t, err)
	})

	t.Run("rejects short >= long", func(t *testing.T) {
		_, err := NewCrossoverHandler(20, 20)
		require.Error(t, err)
		_, err = NewCrossoverHandler(21, 20)
		require.Error(t, err)
	})
}

func Test_Run(t *testing.T) {
	t.Run("report combines signals and performance", func(t *testing.T) {
		handler := CrossoverHandler{ShortWindow: 2, LongWindow: 3}
		out := handler.Run(barsFromCloses(
			[]float64{10, 9, 8, 7, 10, 14, 13, 9, 8},
		))

		require.Len(t, out.Signals, 2)
		require.Equal(t, 1, out.Performance.TotalTrades)
		require.Equal(t, 1, out.Performance.LosingTrades)
		require.Equal(t, -1.0, out.Performance.TotalReturn)
		// a single round trip is not enough for distribution stats
		require.Nil(t, out.TradeStats)
	})

	t.Run("insufficient history zeroes everything", func(t *testing.T) {
		handler := CrossoverHandler{ShortWindow: 2, LongWindow: 30}
		out := handler.Run(barsFromCloses([]float64{1, 2, 3}))

		require.Empty(t, out.Signals)
		require.Equal(t, domain.PerformanceSummary{}, out.Performance)
		require.Nil(t, out.TradeStats)
	})
}
