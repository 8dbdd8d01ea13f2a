package agent

import (
	"github.com/gin-gonic/gin"

	"deskline/internal/application/ticket/usecases"
	"deskline/internal/shared/utils"
)

type Handler struct {
	listAgentsUC usecases.ListAgentsExecutor
}

func NewHandler(listAgentsUC usecases.ListAgentsExecutor) *Handler {
	return &Handler{
		listAgentsUC: listAgentsUC,
	}
}

// ListAgents handles GET /agents
func (h *Handler) ListAgents(c *gin.Context) {
	result, err := h.listAgentsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.Agents)
}
