package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceBar is one OHLCV observation. Bars handed to the strategy are
// assumed sorted ascending by date - the loader enforces this, the
// engine does not re-sort.
type PriceBar struct {
	Date   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume int64
}

// ClosePrice is the float the indicator math runs on. The decimal is
// only authoritative at the ingestion boundary.
func (b PriceBar) ClosePrice() float64 {
	return b.Close.InexactFloat64()
}
