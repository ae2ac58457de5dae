package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"logipark/internal/domain/user"
	"logipark/internal/handler/api"
	"logipark/internal/handler/middleware"
	"logipark/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Parking     *api.ParkingHandler
	Occupancy   *api.OccupancyHandler
	Fleet       *api.FleetHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
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

	carrier := authMiddleware.RequireRoles(user.RoleTransportadora, user.RoleAdmin)
	operator := authMiddleware.RequireRoles(user.RoleEstacionamento, user.RoleAdmin)
	operatorOnly := authMiddleware.RequireRoles(user.RoleEstacionamento)
	adminOnly := authMiddleware.RequireRoles(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: []gin.HandlerFunc{carrier}},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Reservation.Update},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
			})
		}

		lots := apiGroup.Group("/parking-lots")
		lots.Use(authMiddleware.RequireAuth())
		{
			addRoutes(lots, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Parking.GetLot},
				{Method: http.MethodGet, Path: "/:id/spaces", Handler: h.Parking.ListSpaces},
				{Method: http.MethodPost, Path: "/:id/spaces", Handler: h.Parking.AddSpace, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPut, Path: "/:id/spaces", Handler: h.Parking.RegenerateSpaces, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPost, Path: "/:id/reconcile", Handler: h.Parking.Reconcile, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		spaces := apiGroup.Group("/parking-spaces")
		spaces.Use(authMiddleware.RequireAuth())
		{
			addRoutes(spaces, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Parking.RemoveSpace, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPost, Path: "/:id/occupy", Handler: h.Occupancy.Occupy, Mw: []gin.HandlerFunc{operatorOnly}},
				{Method: http.MethodPost, Path: "/:id/free", Handler: h.Occupancy.Free, Mw: []gin.HandlerFunc{operatorOnly}},
			})
		}

		fleet := apiGroup.Group("")
		fleet.Use(authMiddleware.RequireAuth())
		{
			addRoutes(fleet, []route{
				{Method: http.MethodPost, Path: "/vehicles", Handler: h.Fleet.RegisterVehicle, Mw: []gin.HandlerFunc{carrier}},
				{Method: http.MethodPost, Path: "/drivers", Handler: h.Fleet.RegisterDriver, Mw: []gin.HandlerFunc{carrier}},
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
