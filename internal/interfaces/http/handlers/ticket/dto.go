package ticket

import (
	"github.com/gin-gonic/gin"

	"deskline/internal/application/ticket/usecases"
	"deskline/internal/shared/utils"
)

type ListTicketsRequest struct {
	Status   string
	AgentID  string
	Priority string
	Q        string
	Page     int
	Limit    int
}

func parseListTicketsRequest(c *gin.Context) ListTicketsRequest {
	pagination := utils.ParsePagination(c)

	return ListTicketsRequest{
		Status:   c.Query("status"),
		AgentID:  c.Query("agentId"),
		Priority: c.Query("priority"),
		Q:        c.Query("q"),
		Page:     pagination.Page,
		Limit:    pagination.Limit,
	}
}

func (r ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:   r.Status,
		AgentID:  r.AgentID,
		Priority: r.Priority,
		Q:        r.Q,
		Page:     r.Page,
		Limit:    r.Limit,
	}
}

// ChangeStatusRequest is the PATCH /tickets/:id body. Both fields are
// validated in the use case so the error text stays in one place.
type ChangeStatusRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}
