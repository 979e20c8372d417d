package calculator

import (
	"fmt"
	"math"
	"time"

	"agentlab/internal/domain"

	"github.com/montanaflynn/stats"
)

type CalculateMetricsResult struct {
	AnnualizedStdev  float64 `json:"annualizedStdev"`
	AnnualizedReturn float64 `json:"annualizedReturn"`
	SharpeRatio      float64 `json:"sharpeRatio"`
}

// CalculateMetrics summarizes an equity curve. It accepts either
// granularity - per-symbol curves repeat the day's equity, so records
// collapse to one closing value per day first. Records are assumed to
// arrive in the engine's ascending date order.
func CalculateMetrics(records []domain.EquityRecord) (*CalculateMetricsResult, error) {
	dates, equities := collapseByDay(records)
	if len(equities) < 2 {
		return nil, fmt.Errorf("cannot calculate metrics on < 2 equity days")
	}

	returns := make([]float64, 0, len(equities)-1)
	for i := 1; i < len(equities); i++ {
		prev := equities[i-1]
		if prev == 0 {
			return nil, fmt.Errorf("cannot calculate return from zero equity on %v", dates[i-1])
		}
		returns = append(returns, (equities[i]-prev)/prev)
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate stdev: %w", err)
	}

	annualizedStdev := stdev * math.Sqrt(252)

	startValue := equities[0]
	endValue := equities[len(equities)-1]
	numHours := dates[len(dates)-1].Sub(dates[0]).Hours()
	numYears := numHours / (365 * 24)
	if numYears == 0 {
		return nil, fmt.Errorf("cannot annualize a zero-length date range")
	}
	annualizedReturn := math.Pow(endValue/startValue, 1/numYears) - 1

	sharpeRatio := 0.0
	if annualizedStdev > 0 {
		sharpeRatio = annualizedReturn / annualizedStdev
	}

	return &CalculateMetricsResult{
		AnnualizedStdev:  annualizedStdev,
		AnnualizedReturn: annualizedReturn,
		SharpeRatio:      sharpeRatio,
	}, nil
}

func collapseByDay(records []domain.EquityRecord) ([]time.Time, []float64) {
	dates := []time.Time{}
	equities := []float64{}
	for _, record := range records {
		equity := record.Equity.InexactFloat64()
		if len(dates) > 0 && dates[len(dates)-1].Equal(record.Date) {
			equities[len(equities)-1] = equity
			continue
		}
		dates = append(dates, record.Date)
		equities = append(equities, equity)
	}
	return dates, equities
}
