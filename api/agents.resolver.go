package api

import (
	"github.com/gin-gonic/gin"
)

type getAgentsResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (m ApiHandler) listAgents(c *gin.Context) {
	c.JSON(200, []getAgentsResponse{
		{ID: "buffett", Name: "Buffett Agent", Description: "Long-term value investing."},
		{ID: "ackman", Name: "Ackman Agent", Description: "Activist and trend-aware investing."},
		{ID: "lynch", Name: "Lynch Agent", Description: "Growth at a reasonable price."},
		{ID: "momentum", Name: "Momentum Agent", Description: "Fast/slow moving-average crossover."},
		{ID: "oversight", Name: "Oversight Agent", Description: "Weighted-vote ensemble of the other agents."},
	})
}
