package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"agentlab/internal"
	"agentlab/internal/domain"
	"agentlab/internal/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// trades smaller than this are floating noise, not intent
var tradeEpsilon = decimal.NewFromFloat(1e-6)

// DailyDecider produces the decision map for one trading day. It must
// be pure and already resolved - no fetching inside the date loop.
type DailyDecider func(date time.Time) map[string]domain.Decision

type BacktestInput struct {
	Prices       *domain.PriceMatrix
	DailyDecider DailyDecider
	InitialCash  float64
	CostBps      float64
	SlippagePct  float64
	// MaxAllocFraction caps any single position at this fraction of
	// portfolio value. Zero means the default 0.10.
	MaxAllocFraction float64
	Granularity      domain.EquityGranularity
}

type BacktestResponse struct {
	RunID        uuid.UUID
	Records      []domain.EquityRecord
	EndPortfolio domain.Portfolio
}

type BacktestService interface {
	Run(ctx context.Context, in BacktestInput) (*BacktestResponse, error)
	NewSimulation(in BacktestInput) (*Simulation, error)
}

type backtestServiceHandler struct{}

func NewBacktestService() BacktestService {
	return backtestServiceHandler{}
}

// Run walks the price matrix date by date, trading toward the capped
// allocation targets each day. Data gaps (missing quotes, symbols
// without prices) are skipped in-loop; only a malformed configuration
// errors out.
func (h backtestServiceHandler) Run(ctx context.Context, in BacktestInput) (*BacktestResponse, error) {
	if in.DailyDecider == nil {
		return nil, fmt.Errorf("cannot run backtest without a daily decider")
	}
	sim, err := h.NewSimulation(in)
	if err != nil {
		return nil, err
	}

	runID := uuid.New()
	log := logger.FromContext(ctx)
	log.Infow("starting backtest run",
		"runId", runID.String(),
		"days", in.Prices.NumDays(),
	)

	for _, date := range in.Prices.Dates() {
		if _, err := sim.Step(date, in.DailyDecider(date)); err != nil {
			return nil, fmt.Errorf("failed to simulate %s: %w", date.Format(time.DateOnly), err)
		}
	}

	response := &BacktestResponse{
		RunID:        runID,
		Records:      sim.Records(),
		EndPortfolio: *sim.Portfolio(),
	}
	log.Infow("backtest run complete",
		"runId", runID.String(),
		"records", len(response.Records),
	)
	return response, nil
}

// Simulation is one run's mutable state. It is single-writer: the
// caller drives Step strictly forward in time, one day at a time, and
// state (cash, positions) carries across days.
type Simulation struct {
	prices           *domain.PriceMatrix
	costRate         decimal.Decimal
	slippageRate     decimal.Decimal
	maxAllocFraction float64
	granularity      domain.EquityGranularity

	portfolio *domain.Portfolio
	records   []domain.EquityRecord
	lastDate  *time.Time
}

// NewSimulation validates the configuration and sets up the initial
// all-cash state. DailyDecider is ignored here; Step takes the day's
// decisions directly so callers can drive the loop incrementally.
func (h backtestServiceHandler) NewSimulation(in BacktestInput) (*Simulation, error) {
	if in.Prices == nil {
		return nil, fmt.Errorf("cannot simulate without a price matrix")
	}
	if in.InitialCash <= 0 {
		return nil, fmt.Errorf("initial cash must be positive, got %f", in.InitialCash)
	}
	if in.CostBps < 0 {
		return nil, fmt.Errorf("cost bps must be >= 0, got %f", in.CostBps)
	}
	if in.SlippagePct < 0 {
		return nil, fmt.Errorf("slippage pct must be >= 0, got %f", in.SlippagePct)
	}
	maxAllocFraction := in.MaxAllocFraction
	if maxAllocFraction == 0 {
		maxAllocFraction = 0.10
	}
	if maxAllocFraction < 0 || maxAllocFraction > 1 {
		return nil, fmt.Errorf("max alloc fraction must be in (0, 1], got %f", maxAllocFraction)
	}
	granularity := in.Granularity
	if granularity == "" {
		granularity = domain.GranularityDaily
	}

	return &Simulation{
		prices:           in.Prices,
		costRate:         decimal.NewFromFloat(in.CostBps / 1e4),
		slippageRate:     decimal.NewFromFloat(in.SlippagePct),
		maxAllocFraction: maxAllocFraction,
		granularity:      granularity,
		portfolio:        domain.NewPortfolio(decimal.NewFromFloat(in.InitialCash)),
		records:          []domain.EquityRecord{},
	}, nil
}

func (s *Simulation) Portfolio() *domain.Portfolio {
	return s.portfolio
}

func (s *Simulation) Records() []domain.EquityRecord {
	return s.records
}

// Step trades one day and appends that day's equity record(s). Days
// must be fed in strictly ascending order.
func (s *Simulation) Step(date time.Time, decisions map[string]domain.Decision) ([]domain.EquityRecord, error) {
	if s.lastDate != nil && !date.After(*s.lastDate) {
		return nil, fmt.Errorf("dates must advance strictly: got %s after %s",
			date.Format(time.DateOnly), s.lastDate.Format(time.DateOnly))
	}
	priceMap := s.prices.PricesOn(date)
	if priceMap == nil {
		return nil, fmt.Errorf("price matrix has no day %s", date.Format(time.DateOnly))
	}
	s.lastDate = &date

	portfolioValue := s.portfolio.TotalValue(priceMap)

	targets, err := internal.CalculateTargetAllocations(internal.CalculateTargetAllocationsInput{
		Decisions:        decisions,
		PriceMap:         priceMap,
		PortfolioValue:   portfolioValue,
		MaxAllocFraction: s.maxAllocFraction,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to calculate target allocations: %w", err)
	}

	// every decided symbol trades toward its target: BUY candidates
	// toward their capped dollars, SELL (and BUYs that missed the
	// candidate set) toward zero. HOLD keeps the current position
	// untouched. Sorted so the cash sequencing below is reproducible.
	symbols := make([]string, 0, len(decisions))
	for symbol := range decisions {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	for _, symbol := range symbols {
		price, ok := priceMap[symbol]
		if !ok {
			continue
		}
		if decisions[symbol].Action == domain.ActionHold {
			continue
		}

		targetShares := decimal.Zero
		if dollars, ok := targets[symbol]; ok {
			targetShares = dollars.Div(price)
		}

		held := s.portfolio.Quantity(symbol)
		trade := targetShares.Sub(held)
		if trade.Abs().LessThan(tradeEpsilon) {
			continue
		}

		if trade.IsPositive() {
			s.buy(symbol, trade, price)
		} else {
			s.sell(symbol, trade.Abs(), price)
		}
	}

	dayRecords := s.appendRecords(date, decisions, s.portfolio.TotalValue(priceMap))
	return dayRecords, nil
}

// buy deducts price*(1+cost+slippage) per share. When the full trade
// is unaffordable it is scaled down to whatever cash covers.
func (s *Simulation) buy(symbol string, shares, price decimal.Decimal) {
	frictionMultiplier := decimal.NewFromInt(1).Add(s.costRate).Add(s.slippageRate)
	cost := shares.Mul(price).Mul(frictionMultiplier)
	if cost.GreaterThan(s.portfolio.Cash) {
		shares = s.portfolio.Cash.Div(price.Mul(frictionMultiplier))
		cost = shares.Mul(price).Mul(frictionMultiplier)
		// division rounding can overshoot by a hair
		if cost.GreaterThan(s.portfolio.Cash) {
			cost = s.portfolio.Cash
		}
	}
	s.portfolio.Cash = s.portfolio.Cash.Sub(cost)
	s.portfolio.SetQuantity(symbol, s.portfolio.Quantity(symbol).Add(shares))
}

// sell credits gross proceeds minus (cost+slippage) fees. Targets are
// never negative so quantities bottom out at exactly zero.
func (s *Simulation) sell(symbol string, shares, price decimal.Decimal) {
	gross := shares.Mul(price)
	fees := gross.Mul(s.costRate.Add(s.slippageRate))
	s.portfolio.Cash = s.portfolio.Cash.Add(gross.Sub(fees))
	s.portfolio.SetQuantity(symbol, s.portfolio.Quantity(symbol).Sub(shares))
}

func (s *Simulation) appendRecords(date time.Time, decisions map[string]domain.Decision, equity decimal.Decimal) []domain.EquityRecord {
	dayRecords := []domain.EquityRecord{}
	if s.granularity == domain.GranularityPerSymbol {
		symbols := make([]string, 0, len(decisions))
		for symbol := range decisions {
			symbols = append(symbols, symbol)
		}
		sort.Strings(symbols)
		for _, symbol := range symbols {
			decision := decisions[symbol]
			dayRecords = append(dayRecords, domain.EquityRecord{
				Date:       date,
				Equity:     equity,
				Symbol:     symbol,
				Action:     decision.Action,
				Score:      decision.Score,
				Confidence: decision.Confidence,
			})
		}
	} else {
		dayRecords = append(dayRecords, domain.EquityRecord{
			Date:   date,
			Equity: equity,
		})
	}

	s.records = append(s.records, dayRecords...)
	return dayRecords
}
