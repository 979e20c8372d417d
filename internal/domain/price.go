package domain

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type AssetPrice struct {
	Symbol string
	Price  float64
	Date   time.Time
}

// PriceMatrix holds a chronologically ascending sequence of trading
// days, each with a symbol -> price map. A symbol absent on a day
// means "no quote that day", not zero. The date order is fixed at
// construction and never changed afterwards.
type PriceMatrix struct {
	dates  []time.Time
	prices map[time.Time]map[string]decimal.Decimal
}

// NewPriceMatrix builds a matrix from raw price rows. Rows with
// non-finite or non-positive prices are dropped, which downstream
// reads as "no quote that day".
func NewPriceMatrix(rows []AssetPrice) *PriceMatrix {
	prices := map[time.Time]map[string]decimal.Decimal{}
	for _, row := range rows {
		if math.IsNaN(row.Price) || math.IsInf(row.Price, 0) || row.Price <= 0 {
			continue
		}
		date := row.Date.UTC().Truncate(24 * time.Hour)
		if _, ok := prices[date]; !ok {
			prices[date] = map[string]decimal.Decimal{}
		}
		prices[date][row.Symbol] = decimal.NewFromFloat(row.Price)
	}

	dates := make([]time.Time, 0, len(prices))
	for date := range prices {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	return &PriceMatrix{dates: dates, prices: prices}
}

// NewPriceMatrixFromDays builds a matrix from pre-grouped days. The
// days must already be strictly ascending; anything else is a
// malformed input and fails fast.
func NewPriceMatrixFromDays(dates []time.Time, prices map[time.Time]map[string]decimal.Decimal) (*PriceMatrix, error) {
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			return nil, fmt.Errorf("price matrix dates must be strictly ascending: %v >= %v", dates[i-1], dates[i])
		}
	}
	for _, date := range dates {
		if _, ok := prices[date]; !ok {
			return nil, fmt.Errorf("price matrix missing day %v", date)
		}
	}
	return &PriceMatrix{dates: dates, prices: prices}, nil
}

func (m PriceMatrix) Dates() []time.Time {
	out := make([]time.Time, len(m.dates))
	copy(out, m.dates)
	return out
}

func (m PriceMatrix) NumDays() int {
	return len(m.dates)
}

// Price returns the quote for symbol on date. The second return is
// false when the symbol has no quote that day.
func (m PriceMatrix) Price(symbol string, date time.Time) (decimal.Decimal, bool) {
	day, ok := m.prices[date]
	if !ok {
		return decimal.Zero, false
	}
	price, ok := day[symbol]
	return price, ok
}

// PricesOn returns the full symbol -> price map for one day.
func (m PriceMatrix) PricesOn(date time.Time) map[string]decimal.Decimal {
	return m.prices[date]
}

// Symbols returns every symbol quoted on at least one day, sorted.
func (m PriceMatrix) Symbols() []string {
	seen := map[string]bool{}
	symbols := []string{}
	for _, day := range m.prices {
		for symbol := range day {
			if !seen[symbol] {
				seen[symbol] = true
				symbols = append(symbols, symbol)
			}
		}
	}
	sort.Strings(symbols)
	return symbols
}
