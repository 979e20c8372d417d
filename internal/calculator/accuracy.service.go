package calculator

import (
	"time"

	"agentlab/internal/agent"
	"agentlab/internal/domain"
)

type AccuracyRow struct {
	Date        time.Time     `json:"date"`
	Symbol      string        `json:"symbol"`
	RealAction  domain.Action `json:"realAction"`
	AgentAction domain.Action `json:"agentAction"`
	Correct     bool          `json:"correct"`
	Score       float64       `json:"score"`
	Confidence  float64       `json:"confidence"`
}

type AccuracyResult struct {
	AgentID  string        `json:"agentId"`
	Rows     []AccuracyRow `json:"rows"`
	Total    int           `json:"total"`
	Accuracy float64       `json:"accuracy"`
	// Confusion counts real action -> agent action.
	Confusion map[domain.Action]map[domain.Action]int `json:"confusion"`
}

// EvaluateAccuracy replays historical trades through an agent and
// counts how often the agent's call matches what really happened.
func EvaluateAccuracy(a agent.Agent, trades []domain.RealTrade, fundamentals map[string]domain.Fundamentals) *AccuracyResult {
	result := &AccuracyResult{
		AgentID: a.Name(),
		Rows:    []AccuracyRow{},
		Confusion: map[domain.Action]map[domain.Action]int{
			domain.ActionBuy:  {},
			domain.ActionSell: {},
			domain.ActionHold: {},
		},
	}

	hits := 0
	for _, trade := range trades {
		in := agent.DecideInput{AsOf: trade.Date}
		if row, ok := fundamentals[trade.Symbol]; ok {
			in.Fundamentals = &row
		}
		decision := a.Decide(trade.Symbol, in)

		correct := decision.Action == trade.RealAction
		if correct {
			hits++
		}
		if _, ok := result.Confusion[trade.RealAction]; !ok {
			result.Confusion[trade.RealAction] = map[domain.Action]int{}
		}
		result.Confusion[trade.RealAction][decision.Action]++
		result.Rows = append(result.Rows, AccuracyRow{
			Date:        trade.Date,
			Symbol:      trade.Symbol,
			RealAction:  trade.RealAction,
			AgentAction: decision.Action,
			Correct:     correct,
			Score:       decision.Score,
			Confidence:  decision.Confidence,
		})
	}

	result.Total = len(trades)
	if result.Total > 0 {
		result.Accuracy = float64(hits) / float64(result.Total)
	}
	return result
}
