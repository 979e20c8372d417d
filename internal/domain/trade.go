package domain

import "time"

// RealTrade is one historical trade (e.g. from a 13F filing) used as
// ground truth when evaluating agent accuracy.
type RealTrade struct {
	Date       time.Time
	Symbol     string
	RealAction Action
}
