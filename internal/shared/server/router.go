package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photoapp-backend/internal/shared/config"
	"photoapp-backend/internal/shared/metrics"
	"photoapp-backend/internal/shared/server/middleware"
	"photoapp-backend/internal/shared/server/respond"
)

// RouteRegistrar is implemented by feature handlers that attach their own
// routes to the router.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config        config.Config
	UsersHandler  RouteRegistrar
	AssetsHandler RouteRegistrar
	BucketHandler RouteRegistrar
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
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	// Route paths match the original photoapp wire contract, so feature
	// routes live at the root rather than under a version prefix.
	root := r.Group("")
	for _, h := range []RouteRegistrar{deps.UsersHandler, deps.AssetsHandler, deps.BucketHandler} {
		if h != nil {
			h.RegisterRoutes(root)
		}
	}

	return r
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
