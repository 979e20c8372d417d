package domain

import "fmt"

type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

func NewAction(s string) (Action, error) {
	switch Action(s) {
	case ActionBuy, ActionSell, ActionHold:
		return Action(s), nil
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// VoteSign maps the action onto the ensemble voting axis:
// BUY +1, SELL -1, HOLD 0.
func (a Action) VoteSign() float64 {
	switch a {
	case ActionBuy:
		return 1
	case ActionSell:
		return -1
	}
	return 0
}

// Decision is a single agent's recommendation for a symbol. It is
// produced once by an agent and never mutated downstream.
type Decision struct {
	Symbol     string  `json:"symbol"`
	Action     Action  `json:"action"`
	Confidence float64 `json:"confidence"`
	Score      float64 `json:"score"`
	Rationale  string  `json:"rationale"`
	// SourceAgentID identifies the producing agent. The oversight
	// combiner uses it to look up per-agent vote weights.
	SourceAgentID string `json:"sourceAgentId"`
}
