package agent

import (
	"fmt"
	"strings"

	"agentlab/internal/domain"
)

// Criteria is one investing style expressed as data: metric
// thresholds with per-check weights, plus score bands mapping the
// total onto an action and conviction. New styles are new Criteria
// values, not new types.
type Criteria struct {
	PEMax    float64
	PEWeight float64

	// PEG is P/E over EPS growth in percent, computed from the same
	// row; it only scores when both inputs are present and growth is
	// positive.
	PEGMax    float64
	PEGWeight float64

	EPSGrowthMin    float64
	EPSGrowthWeight float64

	ROEMin    float64
	ROEWeight float64

	ROICMin    float64
	ROICWeight float64

	DebtToEquityMax float64
	DebtWeight      float64

	RequirePositiveFCF bool
	FCFWeight          float64

	RevenueStabilityMax float64
	RevenueWeight       float64

	TargetSectors []string
	SectorWeight  float64

	// Bands are evaluated top-down; the first band whose MinScore the
	// total meets wins. The last band should have MinScore 0.
	Bands []DecisionBand
}

type DecisionBand struct {
	MinScore   float64
	Action     domain.Action
	Confidence float64
}

// StyleAgent scores fundamentals against a Criteria. Missing metrics
// simply earn no points; an entirely missing fundamentals row yields
// a low-conviction HOLD.
type StyleAgent struct {
	name     string
	criteria Criteria
}

func NewStyleAgent(name string, criteria Criteria) *StyleAgent {
	return &StyleAgent{name: name, criteria: criteria}
}

func (a StyleAgent) Name() string {
	return a.name
}

func (a StyleAgent) Decide(symbol string, in DecideInput) domain.Decision {
	row := in.Fundamentals
	if row == nil {
		return domain.Decision{
			Symbol:        symbol,
			Action:        domain.ActionHold,
			Confidence:    0.3,
			Score:         0,
			Rationale:     "no data",
			SourceAgentID: a.name,
		}
	}

	score := 0.0
	rationale := []string{}
	c := a.criteria

	score += scoreMetric(&rationale, "P/E", row.PE, c.PEWeight,
		func(v float64) bool { return v < c.PEMax }, "P/E OK", "P/E high")
	if c.PEGWeight > 0 {
		score += scoreMetric(&rationale, "PEG", computePEG(row.PE, row.EPSGrowth), c.PEGWeight,
			func(v float64) bool { return v < c.PEGMax }, "PEG fair", "PEG rich")
	}
	if c.EPSGrowthWeight > 0 {
		score += scoreMetric(&rationale, "EPS growth", row.EPSGrowth, c.EPSGrowthWeight,
			func(v float64) bool { return v >= c.EPSGrowthMin }, "Growth solid", "Growth modest")
	}
	score += scoreMetric(&rationale, "ROE", row.ROE, c.ROEWeight,
		func(v float64) bool { return v > c.ROEMin }, "ROE strong", "ROE weak")
	score += scoreMetric(&rationale, "ROIC", row.ROIC, c.ROICWeight,
		func(v float64) bool { return v > c.ROICMin }, "ROIC strong", "ROIC weak")
	score += scoreMetric(&rationale, "Debt/Equity", row.DebtToEquity, c.DebtWeight,
		func(v float64) bool { return v < c.DebtToEquityMax }, "Debt OK", "Debt high")
	if c.RequirePositiveFCF {
		score += scoreMetric(&rationale, "Free cashflow", row.FreeCashflow, c.FCFWeight,
			func(v float64) bool { return v > 0 }, "FCF positive", "No FCF")
	}
	if c.RevenueWeight > 0 {
		score += scoreMetric(&rationale, "Revenue stability", row.RevenueStability, c.RevenueWeight,
			func(v float64) bool { return v < c.RevenueStabilityMax }, "Revenue stable", "Revenue volatile")
	}
	if c.SectorWeight > 0 {
		inTarget := false
		for _, sector := range c.TargetSectors {
			if sector == row.Sector {
				inTarget = true
				break
			}
		}
		if inTarget {
			score += c.SectorWeight
			rationale = append(rationale, fmt.Sprintf("Sector %s target", row.Sector))
		} else {
			rationale = append(rationale, fmt.Sprintf("Sector %s off-target", row.Sector))
		}
	}

	action, confidence := domain.ActionSell, 0.2
	for _, band := range c.Bands {
		if score >= band.MinScore {
			action, confidence = band.Action, band.Confidence
			break
		}
	}

	return domain.Decision{
		Symbol:        symbol,
		Action:        action,
		Confidence:    confidence,
		Score:         score,
		Rationale:     strings.Join(rationale, " | "),
		SourceAgentID: a.name,
	}
}

// computePEG divides P/E by growth in percent. Growth given as a
// decimal (0.20) is treated as 20%. Nil or non-positive growth means
// the ratio is unavailable.
func computePEG(pe, growth *float64) *float64 {
	if pe == nil || growth == nil {
		return nil
	}
	growthPercent := *growth
	if growthPercent <= 1.0 {
		growthPercent *= 100
	}
	if growthPercent <= 0 {
		return nil
	}
	peg := *pe / growthPercent
	return &peg
}

func scoreMetric(rationale *[]string, name string, value *float64, weight float64, passes func(float64) bool, msgOk, msgBad string) float64 {
	if weight == 0 {
		return 0
	}
	if value == nil {
		*rationale = append(*rationale, name+" missing")
		return 0
	}
	if passes(*value) {
		*rationale = append(*rationale, fmt.Sprintf("%s (%.2f)", msgOk, *value))
		return weight
	}
	*rationale = append(*rationale, fmt.Sprintf("%s (%.2f)", msgBad, *value))
	return 0
}

// NewBuffettAgent prefers cheap, consistently profitable, lightly
// leveraged businesses and sizes conviction conservatively.
func NewBuffettAgent() *StyleAgent {
	return NewStyleAgent("buffett", Criteria{
		PEMax:    20,
		PEWeight: 1,

		ROEMin:    0.12,
		ROEWeight: 1,

		ROICMin:    0.10,
		ROICWeight: 1,

		DebtToEquityMax: 1.0,
		DebtWeight:      1,

		RevenueStabilityMax: 0.5,
		RevenueWeight:       1,

		Bands: []DecisionBand{
			{MinScore: 4, Action: domain.ActionBuy, Confidence: 0.75},
			{MinScore: 3, Action: domain.ActionBuy, Confidence: 0.65},
			{MinScore: 2, Action: domain.ActionHold, Confidence: 0.45},
			{MinScore: 0, Action: domain.ActionSell, Confidence: 0.2},
		},
	})
}

// NewLynchAgent hunts growth at a reasonable price: PEG under 1.5,
// solid EPS growth, a conservative balance sheet and positive free
// cashflow.
func NewLynchAgent() *StyleAgent {
	return NewStyleAgent("lynch", Criteria{
		PEGMax:    1.5,
		PEGWeight: 3,

		EPSGrowthMin:    0.05,
		EPSGrowthWeight: 3,

		DebtToEquityMax: 0.8,
		DebtWeight:      2,

		RequirePositiveFCF: true,
		FCFWeight:          2,

		Bands: []DecisionBand{
			{MinScore: 10, Action: domain.ActionBuy, Confidence: 0.95},
			{MinScore: 8, Action: domain.ActionBuy, Confidence: 0.78},
			{MinScore: 5, Action: domain.ActionHold, Confidence: 0.55},
			{MinScore: 0, Action: domain.ActionSell, Confidence: 0.25},
		},
	})
}

// NewAckmanAgent tolerates richer valuations in exchange for high
// returns on equity and positive free cashflow, with a sector tilt.
func NewAckmanAgent() *StyleAgent {
	return NewStyleAgent("ackman", Criteria{
		PEMax:    30,
		PEWeight: 2,

		ROEMin:    0.20,
		ROEWeight: 2,

		DebtToEquityMax: 1.5,
		DebtWeight:      1,

		RequirePositiveFCF: true,
		FCFWeight:          2,

		TargetSectors: []string{"Consumer Cyclical", "Technology", "Healthcare", "Industrials"},
		SectorWeight:  1,

		Bands: []DecisionBand{
			{MinScore: 7, Action: domain.ActionBuy, Confidence: 0.95},
			{MinScore: 5, Action: domain.ActionBuy, Confidence: 0.75},
			{MinScore: 3, Action: domain.ActionHold, Confidence: 0.5},
			{MinScore: 0, Action: domain.ActionSell, Confidence: 0.2},
		},
	})
}
