package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"event-marketplace/internal/handler/api"
	"event-marketplace/internal/handler/middleware"
	"event-marketplace/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Booking   *api.BookingHandler
	Agreement *api.AgreementHandler
	Template  *api.TemplateHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	bookingHandler *api.BookingHandler,
	agreementHandler *api.AgreementHandler,
	templateHandler *api.TemplateHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, Handlers{Booking: bookingHandler, Agreement: agreementHandler, Template: templateHandler}, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/statistics", Handler: h.Booking.Statistics},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.Update},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/:id/messages", Handler: h.Booking.SendMessage},
				{Method: http.MethodGet, Path: "/:id/messages", Handler: h.Booking.ListMessages},
				{Method: http.MethodGet, Path: "/:id/timeline", Handler: h.Booking.Timeline},
				{Method: http.MethodPost, Path: "/:id/agreement", Handler: h.Agreement.Generate},
				{Method: http.MethodGet, Path: "/:id/agreement", Handler: h.Agreement.GetByBooking},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/events/:id/bookings", Handler: h.Booking.ListByEvent},
			{Method: http.MethodGet, Path: "/vendor/bookings", Handler: h.Booking.ListByVendor},
			{Method: http.MethodGet, Path: "/agreement-templates", Handler: h.Template.List},
		})

		agreements := apiGroup.Group("/agreements")
		{
			addRoutes(agreements, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Agreement.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Agreement.Update},
				{Method: http.MethodPost, Path: "/:id/sign", Handler: h.Agreement.Sign},
				{Method: http.MethodPatch, Path: "/:id/deliverables/:itemId", Handler: h.Agreement.UpdateDeliverable},
				{Method: http.MethodPatch, Path: "/:id/milestones/:itemId", Handler: h.Agreement.UpdateMilestone},
				{Method: http.MethodGet, Path: "/:id/progress", Handler: h.Agreement.Progress},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
