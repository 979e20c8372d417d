package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EquityGranularity string

const (
	// GranularityDaily emits one record per simulated day.
	GranularityDaily EquityGranularity = "daily"
	// GranularityPerSymbol emits one record per (day, decided symbol),
	// each carrying the decision that was in force.
	GranularityPerSymbol EquityGranularity = "perSymbol"
)

// EquityRecord is one point on the equity curve. Symbol and the
// decision fields are only set for per-symbol granularity.
type EquityRecord struct {
	Date       time.Time       `json:"date"`
	Equity     decimal.Decimal `json:"equity"`
	Symbol     string          `json:"symbol,omitempty"`
	Action     Action          `json:"action,omitempty"`
	Score      float64         `json:"score,omitempty"`
	Confidence float64         `json:"confidence,omitempty"`
}
