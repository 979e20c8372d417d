package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"agentlab/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

type EquityCurveRepository interface {
	Save(name string, records []domain.EquityRecord) (string, error)
	Load(name string) ([]domain.EquityRecord, error)
}

type equityCsvRow struct {
	Date       string  `csv:"date"`
	Symbol     string  `csv:"symbol"`
	Action     string  `csv:"action"`
	Score      float64 `csv:"score"`
	Confidence float64 `csv:"confidence"`
	Equity     string  `csv:"equity"`
}

type csvEquityCurveRepositoryHandler struct {
	Dir string
}

// NewCsvEquityCurveRepository persists equity curves as
// <dir>/<name>_equity_curve.csv.
func NewCsvEquityCurveRepository(dir string) EquityCurveRepository {
	return csvEquityCurveRepositoryHandler{Dir: dir}
}

func (h csvEquityCurveRepositoryHandler) path(name string) string {
	return filepath.Join(h.Dir, fmt.Sprintf("%s_equity_curve.csv", name))
}

func (h csvEquityCurveRepositoryHandler) Save(name string, records []domain.EquityRecord) (string, error) {
	if err := os.MkdirAll(h.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results dir: %w", err)
	}

	csvRows := make([]*equityCsvRow, 0, len(records))
	for _, record := range records {
		csvRows = append(csvRows, &equityCsvRow{
			Date:       record.Date.Format(time.DateOnly),
			Symbol:     record.Symbol,
			Action:     string(record.Action),
			Score:      record.Score,
			Confidence: record.Confidence,
			Equity:     record.Equity.String(),
		})
	}

	path := h.path(name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&csvRows, f); err != nil {
		return "", fmt.Errorf("failed to write equity curve: %w", err)
	}
	return path, nil
}

func (h csvEquityCurveRepositoryHandler) Load(name string) ([]domain.EquityRecord, error) {
	path := h.path(name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	csvRows := []*equityCsvRow{}
	if err := gocsv.UnmarshalFile(f, &csvRows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	records := make([]domain.EquityRecord, 0, len(csvRows))
	for _, row := range csvRows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, fmt.Errorf("bad date %q in %s: %w", row.Date, path, err)
		}
		equity, err := decimal.NewFromString(row.Equity)
		if err != nil {
			return nil, fmt.Errorf("bad equity %q in %s: %w", row.Equity, path, err)
		}
		records = append(records, domain.EquityRecord{
			Date:       date,
			Symbol:     row.Symbol,
			Action:     domain.Action(row.Action),
			Score:      row.Score,
			Confidence: row.Confidence,
			Equity:     equity,
		})
	}
	return records, nil
}
