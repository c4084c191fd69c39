package http

import (
	"github.com/gin-gonic/gin"

	"project-monitor/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// runs with the caller's identity and session scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Identity(), mw.Session())

	rg.POST("/uploads", mw.UploadRateLimit(), h.Upload)
	rg.POST("/imports/google-sheets", mw.UploadRateLimit(), h.ImportGoogleSheet)

	rg.GET("/sheets", h.Sheets)
	rg.PUT("/sheets", h.SelectSheet)
	rg.DELETE("/session", h.Close)

	rg.GET("/overview", h.Overview)
	rg.GET("/filters", h.Filters)
	rg.GET("/scurve", h.SCurve)
	rg.GET("/zones", h.Zones)
	rg.GET("/late", h.Late)
	rg.GET("/priority", h.Priority)
	rg.GET("/gantt", h.Gantt)
	rg.GET("/contracts", h.Contracts)

	rg.GET("/exports/:kind", h.Export)
}
