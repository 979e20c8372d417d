package domain

// Fundamentals is one symbol's snapshot of the metrics the style
// agents score on. Pointer fields distinguish "metric unavailable"
// from a genuine zero; missing metrics reduce an agent's conviction
// instead of failing the scoring pass.
type Fundamentals struct {
	Symbol           string
	Sector           string
	PE               *float64
	ROE              *float64
	ROIC             *float64
	DebtToEquity     *float64
	FreeCashflow     *float64
	RevenueStability *float64
	EPSGrowth        *float64
	MarketCap        *float64
}
