package repository

import (
	"fmt"
	"os"
	"time"

	"agentlab/internal/domain"

	"github.com/gocarina/gocsv"
)

type RealTradeRepository interface {
	Load() ([]domain.RealTrade, error)
}

type realTradeCsvRow struct {
	Date       string `csv:"date"`
	Symbol     string `csv:"symbol"`
	RealAction string `csv:"realAction"`
}

type csvRealTradeRepositoryHandler struct {
	Path string
}

func NewCsvRealTradeRepository(path string) RealTradeRepository {
	return csvRealTradeRepositoryHandler{Path: path}
}

func (h csvRealTradeRepositoryHandler) Load() ([]domain.RealTrade, error) {
	f, err := os.Open(h.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trades file: %w", err)
	}
	defer f.Close()

	csvRows := []*realTradeCsvRow{}
	if err := gocsv.UnmarshalFile(f, &csvRows); err != nil {
		return nil, fmt.Errorf("failed to parse trades file %s: %w", h.Path, err)
	}

	trades := make([]domain.RealTrade, 0, len(csvRows))
	for _, row := range csvRows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, fmt.Errorf("bad date %q in %s: %w", row.Date, h.Path, err)
		}
		action, err := domain.NewAction(row.RealAction)
		if err != nil {
			return nil, fmt.Errorf("bad action in %s: %w", h.Path, err)
		}
		trades = append(trades, domain.RealTrade{
			Date:       date,
			Symbol:     row.Symbol,
			RealAction: action,
		})
	}
	return trades, nil
}
