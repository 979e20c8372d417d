package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"agentlab/internal"
	"agentlab/internal/agent"
	"agentlab/internal/app"
	"agentlab/internal/calculator"
	"agentlab/internal/domain"
	"agentlab/internal/ensemble"
	"agentlab/internal/logger"
	"agentlab/internal/repository"
	"agentlab/internal/util"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lab",
	Short: "Backtest and evaluate trading agents",
}

func main() {
	rootCmd.AddCommand(backtestCmd())
	rootCmd.AddCommand(ingestCmd())
	rootCmd.AddCommand(evaluateCmd())
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func backtestCmd() *cobra.Command {
	var agentIDs []string
	var granularity string

	cmd := &cobra.Command{
		Use:   "backtest",
		Short: "Run backtests and write equity curves to the results dir",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := internal.LoadConfig()
			if err != nil {
				return err
			}
			return runBacktests(config, agentIDs, granularity)
		},
	}
	cmd.Flags().StringSliceVar(&agentIDs, "agents", []string{"buffett", "ackman", "lynch", "momentum", "oversight"}, "agents to backtest")
	cmd.Flags().StringVar(&granularity, "granularity", string(domain.GranularityPerSymbol), "equity curve granularity: daily or perSymbol")
	return cmd
}

// runBacktests runs each agent's backtest in parallel - runs share no
// state, only the immutable inputs.
func runBacktests(config *internal.Config, agentIDs []string, granularity string) error {
	prices, err := repository.NewCsvPriceRepository(config.PricesFile).Load()
	if err != nil {
		return err
	}
	fundamentals, err := repository.NewCsvFundamentalsRepository(config.FundamentalsFile).Load()
	if err != nil {
		return err
	}
	equityCurveRepository := repository.NewCsvEquityCurveRepository(config.ResultsDir)
	backtestService := app.NewBacktestService()

	ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())
	log := logger.FromContext(ctx)

	var wg sync.WaitGroup
	errs := make(chan error, len(agentIDs))
	for _, agentID := range agentIDs {
		wg.Add(1)
		go func(agentID string) {
			defer wg.Done()

			decider, err := buildDecider(config, agentID, prices, fundamentals)
			if err != nil {
				errs <- err
				return
			}

			result, err := backtestService.Run(ctx, app.BacktestInput{
				Prices:           prices,
				DailyDecider:     decider,
				InitialCash:      config.InitialCash,
				CostBps:          config.CostBps,
				SlippagePct:      config.SlippagePct,
				MaxAllocFraction: config.MaxAllocFraction,
				Granularity:      domain.EquityGranularity(granularity),
			})
			if err != nil {
				errs <- fmt.Errorf("backtest for %s failed: %w", agentID, err)
				return
			}

			path, err := equityCurveRepository.Save(agentID, result.Records)
			if err != nil {
				errs <- err
				return
			}
			log.Infow("saved equity curve", "agent", agentID, "path", path)

			if metrics, err := calculator.CalculateMetrics(result.Records); err == nil {
				log.Infow("backtest metrics",
					"agent", agentID,
					"annualizedReturn", metrics.AnnualizedReturn,
					"annualizedStdev", metrics.AnnualizedStdev,
					"sharpe", metrics.SharpeRatio,
				)
			}
		}(agentID)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		return err
	}
	return nil
}

// buildDecider wires an agent id into the engine's per-day decision
// callback. "oversight" runs every style agent plus momentum and
// combines their votes.
func buildDecider(config *internal.Config, agentID string, prices *domain.PriceMatrix, fundamentals map[string]domain.Fundamentals) (app.DailyDecider, error) {
	symbols := prices.Symbols()

	if agentID == ensemble.AgentID {
		agents := []agent.Agent{
			agent.NewBuffettAgent(),
			agent.NewAckmanAgent(),
			agent.NewLynchAgent(),
			agent.NewMomentumAgent(prices, 50, 200),
		}
		oversight := ensemble.NewOversightService(
			config.Oversight.AgentWeights,
			config.Oversight.BuyThreshold,
			config.Oversight.SellThreshold,
		)
		return func(date time.Time) map[string]domain.Decision {
			allDecisions := map[string][]domain.Decision{}
			for _, a := range agents {
				for symbol, decision := range agent.DecideUniverse(a, symbols, date, fundamentals) {
					allDecisions[symbol] = append(allDecisions[symbol], decision)
				}
			}
			return oversight.Combine(allDecisions)
		}, nil
	}

	a, err := newAgent(agentID, prices)
	if err != nil {
		return nil, err
	}
	return func(date time.Time) map[string]domain.Decision {
		return agent.DecideUniverse(a, symbols, date, fundamentals)
	}, nil
}

func newAgent(agentID string, prices *domain.PriceMatrix) (agent.Agent, error) {
	switch agentID {
	case "buffett":
		return agent.NewBuffettAgent(), nil
	case "ackman":
		return agent.NewAckmanAgent(), nil
	case "lynch":
		return agent.NewLynchAgent(), nil
	case "momentum":
		if prices == nil {
			return nil, fmt.Errorf("momentum agent requires price history")
		}
		return agent.NewMomentumAgent(prices, 50, 200), nil
	}
	return nil, fmt.Errorf("unknown agent %q", agentID)
}

func ingestCmd() *cobra.Command {
	var symbols string
	var start, end string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Fetch daily adjusted closes into the price csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := internal.LoadConfig()
			if err != nil {
				return err
			}
			startDate, err := util.ParseDate(start)
			if err != nil {
				return fmt.Errorf("bad --start: %w", err)
			}
			endDate := time.Now().UTC()
			if end != "" {
				endDate, err = util.ParseDate(end)
				if err != nil {
					return fmt.Errorf("bad --end: %w", err)
				}
			}
			return internal.IngestUniversePrices(
				strings.Split(symbols, ","),
				startDate,
				endDate,
				repository.NewCsvPriceRepository(config.PricesFile),
			)
		},
	}
	cmd.Flags().StringVar(&symbols, "symbols", "", "comma-separated symbols to ingest")
	cmd.Flags().StringVar(&start, "start", "2018-01-01", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD), default today")
	cmd.MarkFlagRequired("symbols")
	return cmd
}

func evaluateCmd() *cobra.Command {
	var agentID string
	var tradesFile string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score an agent's decisions against real historical trades",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := internal.LoadConfig()
			if err != nil {
				return err
			}
			trades, err := repository.NewCsvRealTradeRepository(tradesFile).Load()
			if err != nil {
				return err
			}
			fundamentals, err := repository.NewCsvFundamentalsRepository(config.FundamentalsFile).Load()
			if err != nil {
				return err
			}
			a, err := newAgent(agentID, nil)
			if err != nil {
				return err
			}

			result := calculator.EvaluateAccuracy(a, trades, fundamentals)
			internal.Pprint(result)
			return nil
		},
	}
	cmd.Flags().StringVar(&agentID, "agent", "buffett", "agent to evaluate")
	cmd.Flags().StringVar(&tradesFile, "trades", "data/real_trades.csv", "csv of real trades (date,symbol,realAction)")
	return cmd
}
