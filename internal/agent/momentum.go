package agent

import (
	"fmt"

	"agentlab/internal/domain"

	"github.com/montanaflynn/stats"
)

// MomentumAgent trades a fast/slow moving-average crossover computed
// from the injected price matrix. It needs no fundamentals, so it can
// run inside a backtest on price data alone.
type MomentumAgent struct {
	prices       *domain.PriceMatrix
	lookbackFast int
	lookbackSlow int
}

func NewMomentumAgent(prices *domain.PriceMatrix, lookbackFast, lookbackSlow int) *MomentumAgent {
	return &MomentumAgent{
		prices:       prices,
		lookbackFast: lookbackFast,
		lookbackSlow: lookbackSlow,
	}
}

func (a MomentumAgent) Name() string {
	return "momentum"
}

func (a MomentumAgent) Decide(symbol string, in DecideInput) domain.Decision {
	closes := a.closesThrough(symbol, in)
	if len(closes) < a.lookbackSlow {
		return domain.Decision{
			Symbol:        symbol,
			Action:        domain.ActionHold,
			Confidence:    0.5,
			Score:         0,
			Rationale:     fmt.Sprintf("insufficient history: %d/%d closes", len(closes), a.lookbackSlow),
			SourceAgentID: a.Name(),
		}
	}

	maFast, _ := stats.Mean(closes[len(closes)-a.lookbackFast:])
	maSlow, _ := stats.Mean(closes[len(closes)-a.lookbackSlow:])

	action, confidence, score, rationale := domain.ActionHold, 0.5, 0.0, "MA equal"
	if maFast > maSlow {
		action, confidence, score, rationale = domain.ActionBuy, 0.65, 1, "MA fast>slow"
	} else if maFast < maSlow {
		action, confidence, score, rationale = domain.ActionSell, 0.65, -1, "MA fast<slow"
	}

	return domain.Decision{
		Symbol:        symbol,
		Action:        action,
		Confidence:    confidence,
		Score:         score,
		Rationale:     rationale,
		SourceAgentID: a.Name(),
	}
}

// closesThrough collects the symbol's quotes up to and including the
// as-of day, oldest first. Days without a quote are skipped.
func (a MomentumAgent) closesThrough(symbol string, in DecideInput) []float64 {
	closes := []float64{}
	for _, date := range a.prices.Dates() {
		if date.After(in.AsOf) {
			break
		}
		if price, ok := a.prices.Price(symbol, date); ok {
			closes = append(closes, price.InexactFloat64())
		}
	}
	return closes
}
