package ticket

import (
	"github.com/gin-gonic/gin"

	"deskline/internal/application/ticket/usecases"
	"deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
	"deskline/internal/shared/utils"
)

type Handler struct {
	listTicketsUC  usecases.ListTicketsExecutor
	getTicketUC    usecases.GetTicketExecutor
	getLogUC       usecases.GetTicketLogExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	logger         logger.Interface
}

func NewHandler(
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	getLogUC usecases.GetTicketLogExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
) *Handler {
	return &Handler{
		listTicketsUC:  listTicketsUC,
		getTicketUC:    getTicketUC,
		getLogUC:       getLogUC,
		changeStatusUC: changeStatusUC,
		logger:         logger.NewLogger(),
	}
}

// ListTickets handles GET /tickets
func (h *Handler) ListTickets(c *gin.Context) {
	req := parseListTicketsRequest(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.TotalItems, result.Page, req.Limit)
}

// GetTicket handles GET /tickets/:id
func (h *Handler) GetTicket(c *gin.Context) {
	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetTicketLog handles GET /tickets-log?ticketId=
func (h *Handler) GetTicketLog(c *gin.Context) {
	result, err := h.getLogUC.Execute(c.Request.Context(), usecases.GetTicketLogQuery{
		TicketID: c.Query("ticketId"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.Entries)
}

// ChangeStatus handles PATCH /tickets/:id
func (h *Handler) ChangeStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID: c.Param("id"),
		Status:   req.Status,
		Comment:  req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
