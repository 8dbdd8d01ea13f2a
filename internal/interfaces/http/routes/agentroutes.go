package routes

import (
	"github.com/gin-gonic/gin"

	agenthandlers "deskline/internal/interfaces/http/handlers/agent"
)

type AgentRouteConfig struct {
	AgentHandler *agenthandlers.Handler
}

func SetupAgentRoutes(engine *gin.Engine, config *AgentRouteConfig) {
	engine.GET("/agents", config.AgentHandler.ListAgents)
}
