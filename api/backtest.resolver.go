package api

import (
	"context"
	"time"

	"agentlab/internal/agent"
	"agentlab/internal/app"
	"agentlab/internal/calculator"
	"agentlab/internal/domain"
	"agentlab/internal/logger"

	"github.com/gin-gonic/gin"
)

type backtestRequest struct {
	Agent            string  `json:"agent"`
	InitialCash      float64 `json:"initialCash"`
	CostBps          float64 `json:"costBps"`
	SlippagePct      float64 `json:"slippagePct"`
	MaxAllocFraction float64 `json:"maxAllocFraction"`
	// perSymbol emits one record per (day, symbol); anything else
	// means one record per day
	Granularity string `json:"granularity"`
}

type backtestResponse struct {
	RunID   string                             `json:"runId"`
	Records []domain.EquityRecord              `json:"records"`
	Metrics *calculator.CalculateMetricsResult `json:"metrics,omitempty"`
	Profile *domain.PerformanceProfile         `json:"profile"`
}

func (m ApiHandler) backtest(c *gin.Context) {
	var requestBody backtestRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Agent == "" {
		requestBody.Agent = "buffett"
	}

	profile := domain.NewPerformanceProfile()

	prices, err := m.PriceRepository.Load()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	profile.Add("loadPrices")

	fundamentals, err := m.FundamentalsRepository.Load()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	profile.Add("loadFundamentals")

	a, err := m.buildAgent(requestBody.Agent, prices)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	in := app.BacktestInput{
		Prices:           prices,
		InitialCash:      requestBody.InitialCash,
		CostBps:          requestBody.CostBps,
		SlippagePct:      requestBody.SlippagePct,
		MaxAllocFraction: requestBody.MaxAllocFraction,
		Granularity:      domain.GranularityDaily,
		DailyDecider: func(date time.Time) map[string]domain.Decision {
			return agent.DecideUniverse(a, prices.Symbols(), date, fundamentals)
		},
	}
	if requestBody.Granularity == string(domain.GranularityPerSymbol) {
		in.Granularity = domain.GranularityPerSymbol
	}
	if in.InitialCash == 0 {
		in.InitialCash = m.Config.InitialCash
	}
	if in.CostBps == 0 {
		in.CostBps = m.Config.CostBps
	}
	if in.SlippagePct == 0 {
		in.SlippagePct = m.Config.SlippagePct
	}
	if in.MaxAllocFraction == 0 {
		in.MaxAllocFraction = m.Config.MaxAllocFraction
	}

	log, _ := c.Get(logger.ContextKey)
	ctx := context.Background()
	if log != nil {
		ctx = context.WithValue(ctx, logger.ContextKey, log)
	}

	result, err := m.BacktestService.Run(ctx, in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	profile.Add("runBacktest")

	response := backtestResponse{
		RunID:   result.RunID.String(),
		Records: result.Records,
	}

	// metrics need at least two days; a short run just omits them
	if metrics, err := calculator.CalculateMetrics(result.Records); err == nil {
		response.Metrics = metrics
	}
	profile.Add("calculateMetrics")
	profile.End()
	response.Profile = profile

	c.JSON(200, response)
}
