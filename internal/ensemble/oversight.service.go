package ensemble

import (
	"fmt"
	"math"
	"strings"

	"agentlab/internal/domain"
)

// OversightService folds several agents' decisions for the same
// symbol into one consensus decision via weighted voting. It is
// stateless and batch-oriented - no dependency on date ordering.
type OversightService interface {
	Combine(allDecisions map[string][]domain.Decision) map[string]domain.Decision
}

type oversightServiceHandler struct {
	agentWeights  map[string]float64
	buyThreshold  float64
	sellThreshold float64
}

// NewOversightService configures the combiner. Agents missing from
// agentWeights vote with weight 1.0. buyThreshold is positive,
// sellThreshold negative; aggregates between the two map to HOLD.
func NewOversightService(agentWeights map[string]float64, buyThreshold, sellThreshold float64) OversightService {
	if agentWeights == nil {
		agentWeights = map[string]float64{}
	}
	return oversightServiceHandler{
		agentWeights:  agentWeights,
		buyThreshold:  buyThreshold,
		sellThreshold: sellThreshold,
	}
}

func (h oversightServiceHandler) Combine(allDecisions map[string][]domain.Decision) map[string]domain.Decision {
	final := map[string]domain.Decision{}
	for symbol, decisions := range allDecisions {
		final[symbol] = h.combineSymbol(symbol, decisions)
	}
	return final
}

func (h oversightServiceHandler) combineSymbol(symbol string, decisions []domain.Decision) domain.Decision {
	aggregate := 0.0
	notes := make([]string, 0, len(decisions))
	for _, decision := range decisions {
		weight, ok := h.agentWeights[decision.SourceAgentID]
		if !ok {
			weight = 1.0
		}
		aggregate += weight * decision.Action.VoteSign() * decision.Confidence
		notes = append(notes, fmt.Sprintf("%s:%s(%.2f)", decision.SourceAgentID, decision.Action, decision.Confidence))
	}

	action := domain.ActionHold
	if aggregate > h.buyThreshold {
		action = domain.ActionBuy
	} else if aggregate < h.sellThreshold {
		action = domain.ActionSell
	}

	return domain.Decision{
		Symbol:        symbol,
		Action:        action,
		Confidence:    math.Min(1, math.Abs(aggregate)),
		Score:         aggregate,
		Rationale:     strings.Join(notes, "; "),
		SourceAgentID: AgentID,
	}
}

// AgentID is the source id stamped on consensus decisions.
const AgentID = "oversight"
