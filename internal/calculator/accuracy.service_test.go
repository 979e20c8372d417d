package calculator

import (
	"testing"

	"agentlab/internal/agent"
	"agentlab/internal/domain"
	"agentlab/internal/util"

	"github.com/stretchr/testify/require"
)

func TestEvaluateAccuracy(t *testing.T) {
	buffett := agent.NewBuffettAgent()

	strong := domain.Fundamentals{
		Symbol:           "AAPL",
		PE:               util.FloatPointer(15),
		ROE:              util.FloatPointer(0.25),
		ROIC:             util.FloatPointer(0.18),
		DebtToEquity:     util.FloatPointer(0.4),
		RevenueStability: util.FloatPointer(0.1),
	}
	weak := domain.Fundamentals{
		Symbol:           "WISH",
		PE:               util.FloatPointer(90),
		ROE:              util.FloatPointer(-0.3),
		ROIC:             util.FloatPointer(-0.1),
		DebtToEquity:     util.FloatPointer(3),
		RevenueStability: util.FloatPointer(2),
	}
	fundamentals := map[string]domain.Fundamentals{"AAPL": strong, "WISH": weak}

	trades := []domain.RealTrade{
		{Date: util.NewDate(2024, 1, 2), Symbol: "AAPL", RealAction: domain.ActionBuy},
		{Date: util.NewDate(2024, 1, 3), Symbol: "AAPL", RealAction: domain.ActionSell},
		{Date: util.NewDate(2024, 1, 4), Symbol: "WISH", RealAction: domain.ActionSell},
		{Date: util.NewDate(2024, 1, 5), Symbol: "MISSING", RealAction: domain.ActionHold},
	}

	result := EvaluateAccuracy(buffett, trades, fundamentals)

	require.Equal(t, "buffett", result.AgentID)
	require.Equal(t, 4, result.Total)
	// buffett says BUY on strong, SELL on weak, HOLD without data:
	// hits on trades 1, 3 and 4
	require.InDelta(t, 0.75, result.Accuracy, 1e-9)

	require.Len(t, result.Rows, 4)
	require.True(t, result.Rows[0].Correct)
	require.False(t, result.Rows[1].Correct)
	require.Equal(t, domain.ActionBuy, result.Rows[1].AgentAction)
	require.True(t, result.Rows[3].Correct)

	require.Equal(t, 1, result.Confusion[domain.ActionBuy][domain.ActionBuy])
	require.Equal(t, 1, result.Confusion[domain.ActionSell][domain.ActionBuy])
	require.Equal(t, 1, result.Confusion[domain.ActionSell][domain.ActionSell])
	require.Equal(t, 1, result.Confusion[domain.ActionHold][domain.ActionHold])
}

func TestEvaluateAccuracy_NoTrades(t *testing.T) {
	result := EvaluateAccuracy(agent.NewBuffettAgent(), nil, nil)

	require.Zero(t, result.Total)
	require.Zero(t, result.Accuracy)
	require.Empty(t, result.Rows)
}
