package agent

import (
	"testing"

	"agentlab/internal/domain"
	"agentlab/internal/util"

	"github.com/stretchr/testify/require"
)

func momentumMatrix(t *testing.T, closes []float64) *domain.PriceMatrix {
	t.Helper()
	rows := make([]domain.AssetPrice, 0, len(closes))
	start := util.NewDate(2024, 1, 1)
	for i, price := range closes {
		rows = append(rows, domain.AssetPrice{
			Symbol: "AAPL",
			Price:  price,
			Date:   start.AddDate(0, 0, i),
		})
	}
	return domain.NewPriceMatrix(rows)
}

func TestMomentumAgent(t *testing.T) {
	asOf := util.NewDate(2024, 12, 31)

	t.Run("uptrend buys", func(t *testing.T) {
		// steadily rising closes keep the fast average above the slow
		closes := make([]float64, 10)
		for i := range closes {
			closes[i] = 100 + float64(i)
		}
		agent := NewMomentumAgent(momentumMatrix(t, closes), 3, 10)

		decision := agent.Decide("AAPL", DecideInput{AsOf: asOf})
		require.Equal(t, domain.ActionBuy, decision.Action)
		require.Equal(t, 0.65, decision.Confidence)
		require.Equal(t, 1.0, decision.Score)
		require.Equal(t, "momentum", decision.SourceAgentID)
	})

	t.Run("downtrend sells", func(t *testing.T) {
		closes := make([]float64, 10)
		for i := range closes {
			closes[i] = 100 - float64(i)
		}
		agent := NewMomentumAgent(momentumMatrix(t, closes), 3, 10)

		decision := agent.Decide("AAPL", DecideInput{AsOf: asOf})
		require.Equal(t, domain.ActionSell, decision.Action)
		require.Equal(t, -1.0, decision.Score)
	})

	t.Run("flat series holds", func(t *testing.T) {
		closes := []float64{100, 100, 100, 100, 100}
		agent := NewMomentumAgent(momentumMatrix(t, closes), 2, 5)

		decision := agent.Decide("AAPL", DecideInput{AsOf: asOf})
		require.Equal(t, domain.ActionHold, decision.Action)
		require.Zero(t, decision.Score)
	})

	t.Run("insufficient history holds", func(t *testing.T) {
		agent := NewMomentumAgent(momentumMatrix(t, []float64{100, 101}), 3, 10)

		decision := agent.Decide("AAPL", DecideInput{AsOf: asOf})
		require.Equal(t, domain.ActionHold, decision.Action)
		require.Equal(t, 0.5, decision.Confidence)
		require.Contains(t, decision.Rationale, "insufficient history")
	})

	t.Run("only closes up to the as-of day count", func(t *testing.T) {
		// trend flips downward after day 5; an as-of inside the rising
		// stretch must not see the later closes
		closes := []float64{100, 101, 102, 103, 104, 90, 80, 70}
		agent := NewMomentumAgent(momentumMatrix(t, closes), 2, 5)

		decision := agent.Decide("AAPL", DecideInput{
			AsOf: util.NewDate(2024, 1, 5),
		})
		require.Equal(t, domain.ActionBuy, decision.Action)
	})

	t.Run("unknown symbol holds", func(t *testing.T) {
		agent := NewMomentumAgent(momentumMatrix(t, []float64{100, 101, 102}), 2, 3)

		decision := agent.Decide("TSLA", DecideInput{AsOf: asOf})
		require.Equal(t, domain.ActionHold, decision.Action)
	})
}

func TestMomentumAgentSkipsGappedQuotes(t *testing.T) {
	rows := []domain.AssetPrice{}
	start := util.NewDate(2024, 1, 1)
	for i := 0; i < 6; i++ {
		rows = append(rows, domain.AssetPrice{Symbol: "AAPL", Price: 100 + float64(i), Date: start.AddDate(0, 0, i)})
	}
	// a day where only another symbol trades must not break the series
	rows = append(rows, domain.AssetPrice{Symbol: "MSFT", Price: 50, Date: start.AddDate(0, 0, 6)})
	rows = append(rows, domain.AssetPrice{Symbol: "AAPL", Price: 107, Date: start.AddDate(0, 0, 7)})

	agent := NewMomentumAgent(domain.NewPriceMatrix(rows), 2, 7)
	decision := agent.Decide("AAPL", DecideInput{AsOf: util.NewDate(2024, 12, 31)})

	require.Equal(t, domain.ActionBuy, decision.Action)
}
