package internal

import (
	"fmt"
	"time"

	"agentlab/internal/domain"
	"agentlab/internal/repository"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"go.uber.org/zap"
)

// IngestPrices pulls daily adjusted closes for one symbol and appends
// them to the price repository. This runs strictly before any
// backtest; the simulation loop itself never fetches.
func IngestPrices(
	symbol string,
	start, end time.Time,
	priceRepository repository.PriceRepository,
) error {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	rows := []domain.AssetPrice{}
	for iter.Next() {
		rows = append(rows, domain.AssetPrice{
			Symbol: symbol,
			Date:   time.Unix(int64(iter.Bar().Timestamp), 0).UTC(),
			Price:  iter.Bar().AdjClose.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	if err := priceRepository.Add(rows); err != nil {
		return fmt.Errorf("failed to store prices for %s: %w", symbol, err)
	}

	return nil
}

// IngestUniversePrices ingests every symbol in the universe,
// continuing past per-symbol failures.
func IngestUniversePrices(
	symbols []string,
	start, end time.Time,
	priceRepository repository.PriceRepository,
) error {
	if len(symbols) == 0 {
		return fmt.Errorf("no symbols to ingest")
	}

	errors := []error{}
	for _, symbol := range symbols {
		if err := IngestPrices(symbol, start, end, priceRepository); err != nil {
			errors = append(errors, fmt.Errorf("failed to ingest historical prices for %s: %w", symbol, err))
			zap.S().Warnw("price ingest failed", "symbol", symbol, "error", err)
		} else {
			zap.S().Infow("ingested prices", "symbol", symbol)
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed to ingest %d/%d symbols. first err: %w", len(errors), len(symbols), errors[0])
	}
	return nil
}
