package loader

import (
	"fmt"
	"io"
	"os"
	"time"

	"mabacktest/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// barRow mirrors the spreadsheet export format the original dataset
// ships in: datetime,open,high,low,close,volume.
type barRow struct {
	Datetime string  `csv:"datetime"`
	Open     float64 `csv:"open"`
	High     float64 `csv:"high"`
	Low      float64 `csv:"low"`
	Close    float64 `csv:"close"`
	Volume   int64   `csv:"volume"`
}

const datetimeLayout = "2006-01-02T15:04:05"

// LoadBarsFromFile reads and validates OHLCV bars from a CSV file,
// returning them in the file's order after checking it is ascending
// by datetime.
func LoadBarsFromFile(path string) ([]domain.PriceBar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bar file: %w", err)
	}
	defer f.Close()

	return LoadBars(f)
}

func LoadBars(r io.Reader) ([]domain.PriceBar, error) {
	rows := []barRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse bar csv: %w", err)
	}

	bars := make([]domain.PriceBar, 0, len(rows))
	for i, row := range rows {
		bar, err := rowToBar(row)
		if err != nil {
			return nil, fmt.Errorf("invalid bar on row %d: %w", i+1, err)
		}
		if len(bars) > 0 && bar.Date.Before(bars[len(bars)-1].Date) {
			return nil, fmt.Errorf("invalid bar on row %d: datetime %v is before previous row", i+1, bar.Date)
		}
		bars = append(bars, bar)
	}

	return bars, nil
}

func rowToBar(row barRow) (domain.PriceBar, error) {
	date, err := parseDatetime(row.Datetime)
	if err != nil {
		return domain.PriceBar{}, err
	}

	for _, p := range []struct {
		name  string
		value float64
	}{
		{"open", row.Open},
		{"high", row.High},
		{"low", row.Low},
		{"close", row.Close},
	} {
		if p.value <= 0 {
			return domain.PriceBar{}, fmt.Errorf("%s must be positive, got %f", p.name, p.value)
		}
	}
	if row.High < row.Low {
		return domain.PriceBar{}, fmt.Errorf("high (%f) must be >= low (%f)", row.High, row.Low)
	}
	if row.Volume <= 0 {
		return domain.PriceBar{}, fmt.Errorf("volume must be positive, got %d", row.Volume)
	}

	return domain.PriceBar{
		Date:   date,
		Open:   decimal.NewFromFloat(row.Open),
		High:   decimal.NewFromFloat(row.High),
		Low:    decimal.NewFromFloat(row.Low),
		Close:  decimal.NewFromFloat(row.Close),
		Volume: row.Volume,
	}, nil
}

func parseDatetime(s string) (time.Time, error) {
	// spreadsheet exports are inconsistent about including the time
	// component, so accept both
	for _, layout := range []string{datetimeLayout, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable datetime %q", s)
}
