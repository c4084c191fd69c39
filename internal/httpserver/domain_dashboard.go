package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dashboardHTTP "project-monitor/internal/dashboard/delivery/http"
	dashboardUC "project-monitor/internal/dashboard/usecase"
	"project-monitor/internal/middleware"
)

// setupDashboardDomain wires the session store, use case and handler, and
// registers /api/v1/dashboard.
func (srv HTTPServer) setupDashboardDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Use case options
	var opts []dashboardUC.Option
	if srv.sheetSource != nil {
		opts = append(opts, dashboardUC.WithSheetSource(srv.sheetSource))
		srv.l.Infof(ctx, "Google Sheets import enabled")
	}
	if srv.classifier != nil {
		opts = append(opts, dashboardUC.WithClassifier(srv.classifier))
	}

	// 2. UseCase
	uc := dashboardUC.New(srv.sessions, srv.l, srv.dates, dashboardUC.Config{
		MaxUploadBytes:     srv.uploadCfg.MaxBytes,
		DefaultSheet:       srv.uploadCfg.DefaultSheet,
		SkipRows:           srv.uploadCfg.SkipRows,
		UpcomingWindowDays: srv.scheduleCfg.UpcomingWindowDays,
		CurveStepDays:      srv.scheduleCfg.CurveStepDays,
	}, opts...)

	// 3. HTTP Handler
	h := dashboardHTTP.New(srv.l, uc, mw, srv.uploadCfg.MaxBytes)

	// 4. Routes
	dashboardHTTP.RegisterRoutes(api.Group("/dashboard"), h, mw)

	srv.l.Infof(ctx, "Dashboard domain registered")
	return nil
}
