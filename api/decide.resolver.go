package api

import (
	"fmt"
	"time"

	"agentlab/internal/agent"
	"agentlab/internal/domain"

	"github.com/gin-gonic/gin"
)

type decideRequest struct {
	Universe []string `json:"universe"`
	// Agents defaults to every configured style agent.
	Agents           []string `json:"agents"`
	IncludeOversight *bool    `json:"includeOversight"`
}

type decideResponse struct {
	Decisions map[string]map[string]domain.Decision `json:"decisions"`
	Consensus map[string]domain.Decision            `json:"consensus,omitempty"`
}

func (m ApiHandler) decide(c *gin.Context) {
	var requestBody decideRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if len(requestBody.Universe) == 0 {
		returnErrorJsonCode(fmt.Errorf("universe must not be empty"), c, 400)
		return
	}

	agentIDs := requestBody.Agents
	if len(agentIDs) == 0 {
		agentIDs = []string{"buffett", "ackman", "lynch"}
	}

	fundamentals, err := m.FundamentalsRepository.Load()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	// momentum only works with price history loaded; tolerate a
	// missing price file for pure-fundamentals requests
	var prices *domain.PriceMatrix
	for _, id := range agentIDs {
		if id == "momentum" {
			prices, err = m.PriceRepository.Load()
			if err != nil {
				returnErrorJson(err, c)
				return
			}
			break
		}
	}

	asOf := time.Now().UTC().Truncate(24 * time.Hour)
	if prices != nil && prices.NumDays() > 0 {
		dates := prices.Dates()
		asOf = dates[len(dates)-1]
	}

	response := decideResponse{
		Decisions: map[string]map[string]domain.Decision{},
	}
	allDecisions := map[string][]domain.Decision{}
	for _, id := range agentIDs {
		a, err := m.buildAgent(id, prices)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		decisions := agent.DecideUniverse(a, requestBody.Universe, asOf, fundamentals)
		response.Decisions[a.Name()] = decisions
		for symbol, decision := range decisions {
			allDecisions[symbol] = append(allDecisions[symbol], decision)
		}
	}

	if requestBody.IncludeOversight == nil || *requestBody.IncludeOversight {
		response.Consensus = m.OversightService.Combine(allDecisions)
	}

	c.JSON(200, response)
}
