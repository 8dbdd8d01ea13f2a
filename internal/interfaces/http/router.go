package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogusecases "deskline/internal/application/catalog/usecases"
	ticketusecases "deskline/internal/application/ticket/usecases"
	"deskline/internal/infrastructure/repository"
	agenthandlers "deskline/internal/interfaces/http/handlers/agent"
	cataloghandlers "deskline/internal/interfaces/http/handlers/catalog"
	tickethandlers "deskline/internal/interfaces/http/handlers/ticket"
	"deskline/internal/interfaces/http/middleware"
	"deskline/internal/interfaces/http/routes"
	"deskline/internal/shared/config"
	"deskline/internal/shared/logger"
)

type Router struct {
	cfg    *config.ServerConfig
	db     *gorm.DB
	logger logger.Interface
}

func NewRouter(cfg *config.ServerConfig, db *gorm.DB, log logger.Interface) *Router {
	return &Router{
		cfg:    cfg,
		db:     db,
		logger: log,
	}
}

// Setup builds the gin engine with the full middleware chain and every
// route wired to its use case.
func (r *Router) Setup() *gin.Engine {
	if r.cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(r.logger),
		middleware.CORS(r.cfg.AllowedOrigins),
		middleware.ArtificialLatency(time.Duration(r.cfg.LatencyMS)*time.Millisecond),
	)

	ticketRepo := repository.NewTicketRepository(r.db)
	logRepo := repository.NewTicketLogRepository(r.db)
	agentRepo := repository.NewAgentRepository(r.db)
	itemRepo := repository.NewItemRepository(r.db)

	ticketHandler := tickethandlers.NewHandler(
		ticketusecases.NewListTicketsUseCase(ticketRepo, r.logger),
		ticketusecases.NewGetTicketUseCase(ticketRepo, r.logger),
		ticketusecases.NewGetTicketLogUseCase(logRepo, r.logger),
		ticketusecases.NewChangeStatusUseCase(ticketRepo, logRepo, r.logger),
	)
	agentHandler := agenthandlers.NewHandler(
		ticketusecases.NewListAgentsUseCase(agentRepo, r.logger),
	)
	catalogHandler := cataloghandlers.NewHandler(
		catalogusecases.NewListItemsUseCase(itemRepo, r.logger),
	)

	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{TicketHandler: ticketHandler})
	routes.SetupAgentRoutes(engine, &routes.AgentRouteConfig{AgentHandler: agentHandler})
	routes.SetupCatalogRoutes(engine, &routes.CatalogRouteConfig{CatalogHandler: catalogHandler})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return engine
}
