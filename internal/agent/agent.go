package agent

import (
	"time"

	"agentlab/internal/domain"
)

// DecideInput carries everything an agent may score on. Fundamentals
// are pre-fetched and injected by the caller; agents never reach out
// to data providers themselves.
type DecideInput struct {
	AsOf         time.Time
	Fundamentals *domain.Fundamentals
}

// Agent turns one symbol's data into a Decision. Implementations must
// be pure so that decision maps can be rebuilt deterministically for
// every backtest day.
type Agent interface {
	Name() string
	Decide(symbol string, in DecideInput) domain.Decision
}

// DecideUniverse runs one agent across a universe of symbols.
func DecideUniverse(a Agent, symbols []string, asOf time.Time, fundamentals map[string]domain.Fundamentals) map[string]domain.Decision {
	decisions := map[string]domain.Decision{}
	for _, symbol := range symbols {
		in := DecideInput{AsOf: asOf}
		if row, ok := fundamentals[symbol]; ok {
			in.Fundamentals = &row
		}
		decisions[symbol] = a.Decide(symbol, in)
	}
	return decisions
}
