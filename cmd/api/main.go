package main

import (
	"log"

	"agentlab/api"
	"agentlab/internal"
	"agentlab/internal/app"
	"agentlab/internal/ensemble"
	"agentlab/internal/repository"
)

func main() {
	config, err := internal.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	handler := api.ApiHandler{
		Config:          *config,
		BacktestService: app.NewBacktestService(),
		OversightService: ensemble.NewOversightService(
			config.Oversight.AgentWeights,
			config.Oversight.BuyThreshold,
			config.Oversight.SellThreshold,
		),
		PriceRepository:        repository.NewCsvPriceRepository(config.PricesFile),
		FundamentalsRepository: repository.NewCsvFundamentalsRepository(config.FundamentalsFile),
		EquityCurveRepository:  repository.NewCsvEquityCurveRepository(config.ResultsDir),
	}

	if err := handler.StartApi(config.ApiPort); err != nil {
		log.Fatal(err)
	}
}
