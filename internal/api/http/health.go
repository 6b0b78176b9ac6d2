package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forgeapk/apk-builder-backend/internal/gradle"
)

type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Service   string           `json:"service"`
	Version   string           `json:"version"`
	Toolchain gradle.EnvStatus `json:"toolchain"`
}

type HealthHandler struct {
	serviceName string
	version     string
	prober      *gradle.Prober
}

func NewHealthHandler(serviceName, version string, prober *gradle.Prober) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		prober:      prober,
	}
}

// HealthCheck reports service liveness plus the cached build-environment
// probe. A missing toolchain does not make the service unhealthy; demo
// builds still work without one.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Toolchain: h.prober.Last(),
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
