package repository

import (
	"fmt"
	"os"
	"time"

	"agentlab/internal/domain"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
)

type PriceRepository interface {
	Load() (*domain.PriceMatrix, error)
	Add(rows []domain.AssetPrice) error
}

type priceCsvRow struct {
	Date   string  `csv:"date"`
	Symbol string  `csv:"symbol"`
	Price  float64 `csv:"price"`
}

type csvPriceRepositoryHandler struct {
	Path string
}

// NewCsvPriceRepository reads and writes long-format price CSVs
// (date,symbol,price), the shape the ingest job produces.
func NewCsvPriceRepository(path string) PriceRepository {
	return csvPriceRepositoryHandler{Path: path}
}

func (h csvPriceRepositoryHandler) Load() (*domain.PriceMatrix, error) {
	f, err := os.Open(h.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open price file: %w", err)
	}
	defer f.Close()

	csvRows := []*priceCsvRow{}
	if err := gocsv.UnmarshalFile(f, &csvRows); err != nil {
		return nil, fmt.Errorf("failed to parse price file %s: %w", h.Path, err)
	}

	rows := make([]domain.AssetPrice, 0, len(csvRows))
	for _, row := range csvRows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			zap.S().Warnw("skipping price row with bad date",
				"date", row.Date,
				"symbol", row.Symbol,
			)
			continue
		}
		rows = append(rows, domain.AssetPrice{
			Symbol: row.Symbol,
			Price:  row.Price,
			Date:   date,
		})
	}

	return domain.NewPriceMatrix(rows), nil
}

// Add appends rows to the price file, writing the header only when
// the file is new.
func (h csvPriceRepositoryHandler) Add(rows []domain.AssetPrice) error {
	csvRows := make([]*priceCsvRow, 0, len(rows))
	for _, row := range rows {
		csvRows = append(csvRows, &priceCsvRow{
			Date:   row.Date.Format(time.DateOnly),
			Symbol: row.Symbol,
			Price:  row.Price,
		})
	}

	_, statErr := os.Stat(h.Path)
	f, err := os.OpenFile(h.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open price file for writing: %w", err)
	}
	defer f.Close()

	if os.IsNotExist(statErr) {
		err = gocsv.MarshalFile(&csvRows, f)
	} else {
		err = gocsv.MarshalWithoutHeaders(&csvRows, f)
	}
	if err != nil {
		return fmt.Errorf("failed to write price rows: %w", err)
	}
	return nil
}
