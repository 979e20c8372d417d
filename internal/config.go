package internal

import (
	"encoding/json"
	"fmt"
	"os"
)

type Config struct {
	InitialCash      float64 `json:"initialCash"`
	CostBps          float64 `json:"costBps"`
	SlippagePct      float64 `json:"slippagePct"`
	MaxAllocFraction float64 `json:"maxAllocFraction"`

	Oversight OversightConfig `json:"oversight"`

	PricesFile       string `json:"pricesFile"`
	FundamentalsFile string `json:"fundamentalsFile"`
	ResultsDir       string `json:"resultsDir"`
	ApiPort          int    `json:"apiPort"`
}

type OversightConfig struct {
	BuyThreshold  float64            `json:"buyThreshold"`
	SellThreshold float64            `json:"sellThreshold"`
	AgentWeights  map[string]float64 `json:"agentWeights"`
}

func DefaultConfig() Config {
	return Config{
		InitialCash:      100_000,
		CostBps:          5,
		SlippagePct:      0.001,
		MaxAllocFraction: 0.10,
		Oversight: OversightConfig{
			BuyThreshold:  0.2,
			SellThreshold: -0.2,
			AgentWeights:  map[string]float64{},
		},
		PricesFile:       "data/prices.csv",
		FundamentalsFile: "data/fundamentals.csv",
		ResultsDir:       "results",
		ApiPort:          3010,
	}
}

// LoadConfig reads the config file for the current environment and
// fills anything unset with defaults. A missing file just means
// all-defaults; an unreadable or malformed file is fatal.
func LoadConfig() (*Config, error) {
	configFile := "config.json"
	if env := os.Getenv("AGENTLAB_ENV"); env == "dev" {
		configFile = "config-dev.json"
	} else if env == "test" {
		configFile = "config-test.json"
	}

	config := DefaultConfig()

	f, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return &config, nil
	} else if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", configFile, err)
	}

	if err := json.Unmarshal(f, &config); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", configFile, err)
	}
	if config.Oversight.AgentWeights == nil {
		config.Oversight.AgentWeights = map[string]float64{}
	}

	return &config, nil
}
