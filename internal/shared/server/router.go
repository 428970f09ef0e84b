package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"icebreaker-backend/internal/contacts"
	"icebreaker-backend/internal/extract"
	"icebreaker-backend/internal/icebreakers"
	"icebreaker-backend/internal/services/health"
	"icebreaker-backend/internal/shared/config"
	"icebreaker-backend/internal/shared/metrics"
	"icebreaker-backend/internal/shared/server/middleware"
	"icebreaker-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config             config.Config
	IcebreakersHandler *icebreakers.Handler
	ContactsHandler    *contacts.Handler
	ImportHandler      *extract.Handler
	Health             *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: suggestGroup,
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 10, Burst: 30},
				"SUGGEST": {Rate: 3, Burst: 10},
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status(c.Request.Context()))
	})
	if deps.IcebreakersHandler != nil {
		deps.IcebreakersHandler.RegisterRoutes(api)
	}
	if deps.ContactsHandler != nil {
		deps.ContactsHandler.RegisterRoutes(api)
	}
	if deps.ImportHandler != nil {
		deps.ImportHandler.RegisterRoutes(api)
	}

	return r
}

func suggestGroup(c *gin.Context) string {
	switch c.FullPath() {
	case "/api/v1/icebreakers/suggest", "/api/v1/icebreakers/targeted":
		return "SUGGEST"
	}
	return "DEFAULT"
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
