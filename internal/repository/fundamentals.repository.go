package repository

import (
	"fmt"
	"os"

	"agentlab/internal/domain"

	"github.com/gocarina/gocsv"
)

type FundamentalsRepository interface {
	Load() (map[string]domain.Fundamentals, error)
}

// pointer fields so an empty cell reads as "metric unavailable"
type fundamentalsCsvRow struct {
	Symbol           string   `csv:"symbol"`
	Sector           string   `csv:"sector"`
	PE               *float64 `csv:"pe"`
	ROE              *float64 `csv:"roe"`
	ROIC             *float64 `csv:"roic"`
	DebtToEquity     *float64 `csv:"debtToEquity"`
	FreeCashflow     *float64 `csv:"freeCashflow"`
	RevenueStability *float64 `csv:"revenueStability"`
	EPSGrowth        *float64 `csv:"epsGrowth"`
	MarketCap        *float64 `csv:"marketCap"`
}

type csvFundamentalsRepositoryHandler struct {
	Path string
}

func NewCsvFundamentalsRepository(path string) FundamentalsRepository {
	return csvFundamentalsRepositoryHandler{Path: path}
}

func (h csvFundamentalsRepositoryHandler) Load() (map[string]domain.Fundamentals, error) {
	f, err := os.Open(h.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fundamentals file: %w", err)
	}
	defer f.Close()

	csvRows := []*fundamentalsCsvRow{}
	if err := gocsv.UnmarshalFile(f, &csvRows); err != nil {
		return nil, fmt.Errorf("failed to parse fundamentals file %s: %w", h.Path, err)
	}

	out := map[string]domain.Fundamentals{}
	for _, row := range csvRows {
		out[row.Symbol] = domain.Fundamentals{
			Symbol:           row.Symbol,
			Sector:           row.Sector,
			PE:               row.PE,
			ROE:              row.ROE,
			ROIC:             row.ROIC,
			DebtToEquity:     row.DebtToEquity,
			FreeCashflow:     row.FreeCashflow,
			RevenueStability: row.RevenueStability,
			EPSGrowth:        row.EPSGrowth,
			MarketCap:        row.MarketCap,
		}
	}

	return out, nil
}
