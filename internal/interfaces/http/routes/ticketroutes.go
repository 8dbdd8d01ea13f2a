package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "deskline/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.Handler
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	{
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.ChangeStatus)
	}

	// The log lives on its own top-level path with the ticket passed as a
	// query parameter, matching the front end's contract.
	engine.GET("/tickets-log", config.TicketHandler.GetTicketLog)
}
