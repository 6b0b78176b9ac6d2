package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/forgeapk/apk-builder-backend/internal/api/http"
	"github.com/forgeapk/apk-builder-backend/internal/api/http/middleware"
	buildshttp "github.com/forgeapk/apk-builder-backend/internal/builds/http"
	"github.com/forgeapk/apk-builder-backend/internal/builds/service"
	"github.com/forgeapk/apk-builder-backend/internal/catalog"
	"github.com/forgeapk/apk-builder-backend/internal/gradle"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	Catalog      *catalog.Catalog
	Orchestrator *service.Orchestrator
	Prober       *gradle.Prober
	BuildRate    float64
	BuildBurst   int
}

func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	// the frontend is served from anywhere, mirror that on the API
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Prober)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestID())

	buildsHandler := buildshttp.New(dep.Orchestrator, dep.Catalog)
	buildsHandler.Register(api, middleware.BuildRateLimit(dep.BuildRate, dep.BuildBurst))

	return r
}
