package api

import (
	"fmt"
	"time"

	"agentlab/internal"
	"agentlab/internal/agent"
	"agentlab/internal/app"
	"agentlab/internal/domain"
	"agentlab/internal/ensemble"
	"agentlab/internal/logger"
	"agentlab/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Config                 internal.Config
	BacktestService        app.BacktestService
	OversightService       ensemble.OversightService
	PriceRepository        repository.PriceRepository
	FundamentalsRepository repository.FundamentalsRepository
	EquityCurveRepository  repository.EquityCurveRepository
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to agentlab"})
	})
	router.GET("/agents", m.listAgents)
	router.POST("/decide", m.decide)
	router.POST("/backtest", m.backtest)

	return router.Run(fmt.Sprintf(":%d", port))
}

// logRequestMiddleware stamps each request with an id and a
// request-scoped logger, and times the handler.
func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := uuid.New()
	log := logger.New().With(
		"requestId", requestID.String(),
		"path", c.Request.URL.Path,
	)
	c.Set(logger.ContextKey, log)

	start := time.Now()
	c.Next()
	log.Infow("handled request",
		"status", c.Writer.Status(),
		"elapsedMs", time.Since(start).Milliseconds(),
	)
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// buildAgent resolves an agent id to a configured agent. Momentum
// needs the price matrix for its moving averages, so callers pass
// whatever matrix the request is operating on.
func (m ApiHandler) buildAgent(id string, prices *domain.PriceMatrix) (agent.Agent, error) {
	switch id {
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
	return nil, fmt.Errorf("unknown agent %q", id)
}
