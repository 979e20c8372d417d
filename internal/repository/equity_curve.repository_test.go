package repository

import (
	"path/filepath"
	"testing"

	"agentlab/internal/domain"
	"agentlab/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCsvEquityCurveRepository(t *testing.T) {
	t.Run("save then load round trip", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewCsvEquityCurveRepository(dir)

		records := []domain.EquityRecord{
			{
				Date:       util.NewDate(2024, 1, 2),
				Equity:     decimal.NewFromFloat(99985),
				Symbol:     "AAPL",
				Action:     domain.ActionBuy,
				Score:      1,
				Confidence: 0.8,
			},
			{
				Date:   util.NewDate(2024, 1, 3),
				Equity: decimal.RequireFromString("100985.125"),
			},
		}

		path, err := repo.Save("buffett", records)
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "buffett_equity_curve.csv"), path)

		loaded, err := repo.Load("buffett")
		require.NoError(t, err)
		require.Len(t, loaded, 2)
		require.Equal(t, records[0].Date, loaded[0].Date)
		require.Equal(t, domain.ActionBuy, loaded[0].Action)
		require.Equal(t, 0.8, loaded[0].Confidence)
		// decimal survives the string round trip exactly
		require.True(t, loaded[0].Equity.Equal(records[0].Equity))
		require.True(t, loaded[1].Equity.Equal(records[1].Equity))
	})

	t.Run("save creates the results dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "results")
		repo := NewCsvEquityCurveRepository(dir)

		_, err := repo.Save("momentum", []domain.EquityRecord{
			{Date: util.NewDate(2024, 1, 2), Equity: decimal.NewFromInt(100_000)},
		})
		require.NoError(t, err)

		loaded, err := repo.Load("momentum")
		require.NoError(t, err)
		require.Len(t, loaded, 1)
	})

	t.Run("load of unknown run errors", func(t *testing.T) {
		repo := NewCsvEquityCurveRepository(t.TempDir())
		_, err := repo.Load("nope")
		require.Error(t, err)
	})
}
