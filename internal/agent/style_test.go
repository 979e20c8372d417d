package agent

import (
	"testing"

	"agentlab/internal/domain"
	"agentlab/internal/util"

	"github.com/stretchr/testify/require"
)

func TestBuffettAgent(t *testing.T) {
	buffett := NewBuffettAgent()

	t.Run("all checks pass", func(t *testing.T) {
		decision := buffett.Decide("AAPL", DecideInput{
			Fundamentals: &domain.Fundamentals{
				Symbol:           "AAPL",
				PE:               util.FloatPointer(15),
				ROE:              util.FloatPointer(0.25),
				ROIC:             util.FloatPointer(0.18),
				DebtToEquity:     util.FloatPointer(0.4),
				RevenueStability: util.FloatPointer(0.1),
			},
		})

		require.Equal(t, domain.ActionBuy, decision.Action)
		require.Equal(t, 0.75, decision.Confidence)
		require.Equal(t, 5.0, decision.Score)
		require.Equal(t, "buffett", decision.SourceAgentID)
		require.Contains(t, decision.Rationale, "P/E OK")
	})

	t.Run("middling score holds", func(t *testing.T) {
		decision := buffett.Decide("GE", DecideInput{
			Fundamentals: &domain.Fundamentals{
				Symbol:           "GE",
				PE:               util.FloatPointer(35),
				ROE:              util.FloatPointer(0.15),
				ROIC:             util.FloatPointer(0.05),
				DebtToEquity:     util.FloatPointer(0.8),
				RevenueStability: util.FloatPointer(0.9),
			},
		})

		require.Equal(t, domain.ActionHold, decision.Action)
		require.Equal(t, 2.0, decision.Score)
	})

	t.Run("failing everything sells", func(t *testing.T) {
		decision := buffett.Decide("WISH", DecideInput{
			Fundamentals: &domain.Fundamentals{
				Symbol:           "WISH",
				PE:               util.FloatPointer(90),
				ROE:              util.FloatPointer(-0.3),
				ROIC:             util.FloatPointer(-0.1),
				DebtToEquity:     util.FloatPointer(3),
				RevenueStability: util.FloatPointer(2),
			},
		})

		require.Equal(t, domain.ActionSell, decision.Action)
		require.Equal(t, 0.2, decision.Confidence)
		require.Zero(t, decision.Score)
	})

	t.Run("missing metrics earn no points", func(t *testing.T) {
		decision := buffett.Decide("PLTR", DecideInput{
			Fundamentals: &domain.Fundamentals{
				Symbol: "PLTR",
				PE:     util.FloatPointer(15),
				ROE:    util.FloatPointer(0.25),
				ROIC:   util.FloatPointer(0.18),
			},
		})

		require.Equal(t, 3.0, decision.Score)
		require.Equal(t, domain.ActionBuy, decision.Action)
		require.Equal(t, 0.65, decision.Confidence)
		require.Contains(t, decision.Rationale, "Debt/Equity missing")
	})

	t.Run("nil fundamentals yields low-conviction hold", func(t *testing.T) {
		decision := buffett.Decide("XYZ", DecideInput{})

		require.Equal(t, domain.ActionHold, decision.Action)
		require.Equal(t, 0.3, decision.Confidence)
		require.Equal(t, "no data", decision.Rationale)
	})
}

func TestAckmanAgent(t *testing.T) {
	ackman := NewAckmanAgent()

	t.Run("full marks with sector tilt", func(t *testing.T) {
		decision := ackman.Decide("CMG", DecideInput{
			Fundamentals: &domain.Fundamentals{
				Symbol:       "CMG",
				Sector:       "Consumer Cyclical",
				PE:           util.FloatPointer(25),
				ROE:          util.FloatPointer(0.35),
				DebtToEquity: util.FloatPointer(0.9),
				FreeCashflow: util.FloatPointer(1.2e9),
			},
		})

		// 2 + 2 + 1 + 2 + 1 sector
		require.Equal(t, 8.0, decision.Score)
		require.Equal(t, domain.ActionBuy, decision.Action)
		require.Equal(t, 0.95, decision.Confidence)
		require.Equal(t, "ackman", decision.SourceAgentID)
	})

	t.Run("off-sector costs the tilt point", func(t *testing.T) {
		decision := ackman.Decide("XOM", DecideInput{
			Fundamentals: &domain.Fundamentals{
				Symbol:       "XOM",
				Sector:       "Energy",
				PE:           util.FloatPointer(25),
				ROE:          util.FloatPointer(0.35),
				DebtToEquity: util.FloatPointer(0.9),
				FreeCashflow: util.FloatPointer(1.2e9),
			},
		})

		require.Equal(t, 7.0, decision.Score)
		require.Contains(t, decision.Rationale, "Sector Energy off-target")
	})

	t.Run("negative free cashflow drags score", func(t *testing.T) {
		decision := ackman.Decide("RIVN", DecideInput{
			Fundamentals: &domain.Fundamentals{
				Symbol:       "RIVN",
				Sector:       "Consumer Cyclical",
				PE:           util.FloatPointer(25),
				ROE:          util.FloatPointer(0.35),
				DebtToEquity: util.FloatPointer(0.9),
				FreeCashflow: util.FloatPointer(-4e9),
			},
		})

		require.Equal(t, 6.0, decision.Score)
		require.Equal(t, domain.ActionBuy, decision.Action)
		require.Equal(t, 0.75, decision.Confidence)
		require.Contains(t, decision.Rationale, "No FCF")
	})
}

func TestLynchAgent(t *testing.T) {
	lynch := NewLynchAgent()

	t.Run("cheap grower gets full marks", func(t *testing.T) {
		decision := lynch.Decide("GARP", DecideInput{
			Fundamentals: &domain.Fundamentals{
				Symbol:       "GARP",
				PE:           util.FloatPointer(18),
				EPSGrowth:    util.FloatPointer(0.25), // PEG = 18/25 = 0.72
				DebtToEquity: util.FloatPointer(0.3),
				FreeCashflow: util.FloatPointer(2e9),
			},
		})

		// 3 + 3 + 2 + 2
		require.Equal(t, 10.0, decision.Score)
		require.Equal(t, domain.ActionBuy, decision.Action)
		require.Equal(t, 0.95, decision.Confidence)
		require.Equal(t, "lynch", decision.SourceAgentID)
		require.Contains(t, decision.Rationale, "PEG fair")
	})

	t.Run("rich PEG drops the buy", func(t *testing.T) {
		decision := lynch.Decide("HYPE", DecideInput{
			Fundamentals: &domain.Fundamentals{
				Symbol:       "HYPE",
				PE:           util.FloatPointer(80),
				EPSGrowth:    util.FloatPointer(0.10), // PEG = 8
				DebtToEquity: util.FloatPointer(0.3),
				FreeCashflow: util.FloatPointer(2e9),
			},
		})

		// growth passes (0.10 >= 0.05) but PEG fails: 3 + 2 + 2
		require.Equal(t, 7.0, decision.Score)
		require.Equal(t, domain.ActionHold, decision.Action)
		require.Contains(t, decision.Rationale, "PEG rich")
	})

	t.Run("negative growth means no PEG", func(t *testing.T) {
		decision := lynch.Decide("SHRINK", DecideInput{
			Fundamentals: &domain.Fundamentals{
				Symbol:       "SHRINK",
				PE:           util.FloatPointer(10),
				EPSGrowth:    util.FloatPointer(-0.2),
				DebtToEquity: util.FloatPointer(2),
				FreeCashflow: util.FloatPointer(-1e9),
			},
		})

		require.Zero(t, decision.Score)
		require.Equal(t, domain.ActionSell, decision.Action)
		require.Contains(t, decision.Rationale, "PEG missing")
	})
}

func TestComputePEG(t *testing.T) {
	peg := computePEG(util.FloatPointer(20), util.FloatPointer(0.20))
	require.NotNil(t, peg)
	require.InDelta(t, 1.0, *peg, 1e-9)

	// growth already in percent
	peg = computePEG(util.FloatPointer(20), util.FloatPointer(20))
	require.NotNil(t, peg)
	require.InDelta(t, 1.0, *peg, 1e-9)

	require.Nil(t, computePEG(nil, util.FloatPointer(0.2)))
	require.Nil(t, computePEG(util.FloatPointer(20), nil))
	require.Nil(t, computePEG(util.FloatPointer(20), util.FloatPointer(-0.1)))
}

func TestDecideUniverse(t *testing.T) {
	buffett := NewBuffettAgent()
	fundamentals := map[string]domain.Fundamentals{
		"AAPL": {
			Symbol:           "AAPL",
			PE:               util.FloatPointer(15),
			ROE:              util.FloatPointer(0.25),
			ROIC:             util.FloatPointer(0.18),
			DebtToEquity:     util.FloatPointer(0.4),
			RevenueStability: util.FloatPointer(0.1),
		},
	}

	decisions := DecideUniverse(buffett, []string{"AAPL", "UNKNOWN"}, util.NewDate(2024, 1, 2), fundamentals)

	require.Len(t, decisions, 2)
	require.Equal(t, domain.ActionBuy, decisions["AAPL"].Action)
	// no fundamentals row falls back to the no-data hold
	require.Equal(t, domain.ActionHold, decisions["UNKNOWN"].Action)
	require.Equal(t, "no data", decisions["UNKNOWN"].Rationale)
}
