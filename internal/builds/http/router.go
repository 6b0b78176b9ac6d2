package http

import "github.com/gin-gonic/gin"

// Register attaches the build endpoints to the given router group.
// buildLimit, when non-nil, throttles build creation only; polling and
// downloads stay unthrottled.
func (h *Handler) Register(rg *gin.RouterGroup, buildLimit gin.HandlerFunc) {
	if buildLimit != nil {
		rg.POST("/build", buildLimit, h.create)
	} else {
		rg.POST("/build", h.create)
	}
	rg.GET("/project/:id", h.status)
	rg.GET("/download/:id", h.download)
	rg.GET("/projects", h.list)
	rg.POST("/analyze", h.analyze)
	rg.GET("/templates", h.templates)
}
