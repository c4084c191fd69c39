package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"project-monitor/config"
	_ "project-monitor/docs" // Swagger docs
	"project-monitor/internal/httpserver"
	"project-monitor/internal/zone"
	"project-monitor/pkg/datemath"
	"project-monitor/pkg/gsheets"
	"project-monitor/pkg/log"
)

// @title       Project Monitor API
// @description Session-scoped project schedule dashboard: upload a CSV/XLSX table or import a Google Sheet, then query progress, S-curve, zones and exports.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Project Monitor...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	timezone := cfg.Schedule.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dateMathParser, err := datemath.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Zone keyword table (optional)
	var classifier zone.Classifier
	if cfg.Zone.KeywordFile != "" {
		rules, rErr := zone.LoadKeywordFile(cfg.Zone.KeywordFile)
		if rErr == nil {
			classifier, rErr = zone.NewKeywordClassifier(rules)
		}
		if rErr != nil {
			logger.Errorf(ctx, "Failed to load zone keywords from %s: %v", cfg.Zone.KeywordFile, rErr)
			return
		}
		logger.Infof(ctx, "Zone keywords loaded from %s", cfg.Zone.KeywordFile)
	}

	// 5. Google Sheets client (optional)
	var sheetSource *gsheets.Client
	if cfg.GoogleSheets.CredentialsPath != "" {
		sheetSource, err = gsheets.NewClientFromCredentialsFile(ctx, cfg.GoogleSheets.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Sheets not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gsheets-auth/main.go` to generate token.json")
			sheetSource = nil
		} else {
			logger.Info(ctx, "✅ Google Sheets initialized")
		}
	}

	srvCfg := httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Session:     cfg.Session,
		Upload:      cfg.Upload,
		Schedule:    cfg.Schedule,
		Auth:        cfg.Auth,
		Dates:       dateMathParser,
		Classifier:  classifier,
	}
	if sheetSource != nil {
		srvCfg.SheetSource = sheetSource
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
