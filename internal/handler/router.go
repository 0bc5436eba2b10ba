package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotelhub/internal/domain/user"
	"hotelhub/internal/handler/api"
	"hotelhub/internal/handler/middleware"
	"hotelhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Room    *api.RoomHandler
	Booking *api.BookingHandler
	Invoice *api.InvoiceHandler
	Stats   *api.StatsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		adminOnly := authMiddleware.RequireRoles(user.RoleAdmin)
		anyOperator := authMiddleware.RequireRoles(user.RoleAdmin, user.RoleStaff)

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.ListRooms},
			})

			roomAdmin := rooms.Group("")
			roomAdmin.Use(authMiddleware.RequireAuth())
			addRoutes(roomAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Room.CreateRoom, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Room.UpdateRoom, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.DeleteRoom, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/check", Handler: h.Booking.CheckAvailability},
			})

			bookingOps := bookings.Group("")
			bookingOps.Use(authMiddleware.RequireAuth())
			addRoutes(bookingOps, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking, Mw: []gin.HandlerFunc{anyOperator}},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodGet, Path: "/export/excel", Handler: h.Booking.ExportBookings, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking, Mw: []gin.HandlerFunc{anyOperator}},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Booking.UpdateStatus, Mw: []gin.HandlerFunc{anyOperator}},
			})
		}

		invoices := apiGroup.Group("/invoices")
		invoices.Use(authMiddleware.RequireAuth())
		{
			addRoutes(invoices, []route{
				{Method: http.MethodGet, Path: "/:id/invoice", Handler: h.Invoice.DownloadInvoice, Mw: []gin.HandlerFunc{anyOperator}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/stats", Handler: h.Stats.Dashboard, Mw: []gin.HandlerFunc{anyOperator}},
			})
		}
	}

	engine.GET("/stats", h.Stats.SystemCounts)
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
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
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

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
