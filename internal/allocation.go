package internal

import (
	"fmt"
	"math"
	"sort"

	"agentlab/internal/domain"

	"github.com/shopspring/decimal"
)

// Figure out how much money each BUY candidate should get on a given
// day, from the day's decisions and the current portfolio value.

type CalculateTargetAllocationsInput struct {
	Decisions        map[string]domain.Decision
	PriceMap         map[string]decimal.Decimal
	PortfolioValue   decimal.Decimal
	MaxAllocFraction float64
}

// CalculateTargetAllocations converts one day's decisions into target
// dollar values per symbol. Candidates are BUY decisions with a quote
// that day. Raw weight is max(0, confidence*score), normalized across
// candidates; if every raw weight is zero the candidates are weighted
// equally. Each target is capped at MaxAllocFraction of portfolio
// value and the excess is forfeited, not redistributed - the policy
// stays stateless and single-pass.
//
// Symbols missing from the output are "target zero" to the simulator.
func CalculateTargetAllocations(in CalculateTargetAllocationsInput) (map[string]decimal.Decimal, error) {
	if in.MaxAllocFraction <= 0 || in.MaxAllocFraction > 1 {
		return nil, fmt.Errorf("max alloc fraction must be in (0, 1], got %f", in.MaxAllocFraction)
	}
	if !in.PortfolioValue.IsPositive() {
		return map[string]decimal.Decimal{}, nil
	}

	candidates := []string{}
	for symbol, decision := range in.Decisions {
		if decision.Action != domain.ActionBuy {
			continue
		}
		if _, ok := in.PriceMap[symbol]; !ok {
			continue
		}
		candidates = append(candidates, symbol)
	}
	sort.Strings(candidates)

	if len(candidates) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	rawWeights := make([]float64, len(candidates))
	total := 0.0
	for i, symbol := range candidates {
		decision := in.Decisions[symbol]
		raw := decision.Confidence * decision.Score
		if math.IsNaN(raw) || math.IsInf(raw, 0) {
			return nil, fmt.Errorf("invalid weight %f for %s", raw, symbol)
		}
		if raw < 0 {
			raw = 0
		}
		rawWeights[i] = raw
		total += raw
	}

	// all candidates scored non-positive - fall back to equal weight
	if total == 0 {
		for i := range rawWeights {
			rawWeights[i] = 1
		}
		total = float64(len(rawWeights))
	}

	maxDollars := in.PortfolioValue.Mul(decimal.NewFromFloat(in.MaxAllocFraction))

	targets := map[string]decimal.Decimal{}
	for i, symbol := range candidates {
		weight := rawWeights[i] / total
		dollars := in.PortfolioValue.Mul(decimal.NewFromFloat(weight)).Round(3)
		if dollars.GreaterThan(maxDollars) {
			dollars = maxDollars
		}
		if dollars.IsPositive() {
			targets[symbol] = dollars
		}
	}

	return targets, nil
}
