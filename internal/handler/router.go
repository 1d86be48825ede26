package handler

import (
	"net/http"

	"frontdesk/internal/domain/user"
	"frontdesk/internal/handler/api"
	"frontdesk/internal/handler/middleware"
	"frontdesk/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// MetricsExporter is mounted on the configured metrics path.
type MetricsExporter interface {
	middleware.HTTPRecorder
	Handler() http.Handler
}

type RouterParams struct {
	fx.In

	Engine      *gin.Engine
	Config      config.Config
	Logger      *middleware.Logger
	Metrics     MetricsExporter
	Auth        *middleware.AuthMiddleware
	AuthH       *api.AuthHandler
	Hotels      *api.HotelHandler
	Rooms       *api.RoomHandler
	Clients     *api.ClientHandler
	Reservation *api.ReservationHandler
	Public      *api.PublicHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	if p.Config.Metrics.Enabled {
		p.Engine.Use(middleware.Metrics(p.Metrics))
	}
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	p.Engine.GET("/health", healthCheck)

	if p.Config.Metrics.Enabled {
		p.Engine.GET(p.Config.Metrics.Path, gin.WrapH(p.Metrics.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		p.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operator := p.Auth.RequireRoleAtLeast(user.RoleOperator)
	admin := p.Auth.RequireRoleAtLeast(user.RoleAdmin)
	writer := []gin.HandlerFunc{operator}
	owner := []gin.HandlerFunc{admin}

	apiGroup := p.Engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthH.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.AuthH.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(p.Auth.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthH.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthH.Me},
			})
		}

		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: p.Hotels.Signup},
			})

			current := hotels.Group("/current")
			current.Use(p.Auth.RequireAuth())
			addRoutes(current, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Hotels.Current},
				{Method: http.MethodGet, Path: "/members", Handler: p.Hotels.Members},
				{Method: http.MethodPost, Path: "/members", Handler: p.Hotels.AddMember, Mw: owner},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(p.Auth.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Rooms.List},
				{Method: http.MethodPost, Path: "", Handler: p.Rooms.Create, Mw: writer},
				{Method: http.MethodGet, Path: "/availability", Handler: p.Rooms.Availability},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Rooms.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: p.Rooms.Update, Mw: writer},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Rooms.Delete, Mw: owner},
			})
		}

		clients := apiGroup.Group("/clients")
		clients.Use(p.Auth.RequireAuth())
		{
			addRoutes(clients, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Clients.Search},
				{Method: http.MethodPost, Path: "", Handler: p.Clients.Create, Mw: writer},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Clients.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: p.Clients.Update, Mw: writer},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Clients.Delete, Mw: owner},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(p.Auth.RequireAuth())
		{
			r := p.Reservation
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: r.List},
				{Method: http.MethodPost, Path: "", Handler: r.Create, Mw: writer},
				{Method: http.MethodGet, Path: "/calendar", Handler: r.Calendar},
				{Method: http.MethodGet, Path: "/export", Handler: r.Export},
				{Method: http.MethodGet, Path: "/feed", Handler: r.Feed},
				{Method: http.MethodPost, Path: "/bulk-delete", Handler: r.BulkDelete, Mw: owner},
				{Method: http.MethodGet, Path: "/:id", Handler: r.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: r.Update, Mw: writer},
				{Method: http.MethodDelete, Path: "/:id", Handler: r.Delete, Mw: owner},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: r.ChangeStatus, Mw: writer},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: r.Cancel, Mw: writer},
				{Method: http.MethodGet, Path: "/:id/payments", Handler: r.Payments},
				{Method: http.MethodPost, Path: "/:id/payments", Handler: r.RecordPayment, Mw: writer},
				{Method: http.MethodGet, Path: "/:id/deliveries", Handler: r.Deliveries},
				{Method: http.MethodPost, Path: "/:id/deliveries", Handler: r.RecordDeliveries, Mw: writer},
				{Method: http.MethodPost, Path: "/:id/deliveries/receive", Handler: r.RecordReception, Mw: writer},
				{Method: http.MethodGet, Path: "/:id/guests", Handler: r.Guests},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: r.CheckIn, Mw: writer},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: r.CheckOut, Mw: writer},
			})
		}

		public := apiGroup.Group("/public/hotels/:hotelId/reservations")
		{
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: p.Public.GetReservation},
				{Method: http.MethodPost, Path: "/:id/precheckin", Handler: p.Public.PreCheckIn},
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
			h = chainHandlers(append(append([]gin.HandlerFunc(nil), r.Mw...), r.Handler)...)
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
