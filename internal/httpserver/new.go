package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"project-monitor/config"
	"project-monitor/internal/dashboard/repository"
	"project-monitor/internal/dashboard/repository/memory"
	"project-monitor/internal/dashboard/usecase"
	"project-monitor/internal/zone"
	"project-monitor/pkg/datemath"
	"project-monitor/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Dashboard domain
	sessionCfg  config.SessionConfig
	uploadCfg   config.UploadConfig
	scheduleCfg config.ScheduleConfig
	authCfg     config.AuthConfig
	dates       *datemath.Parser
	sessions    repository.Repository
	sheetSource usecase.SheetSource
	classifier  zone.Classifier
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Dashboard domain
	Session  config.SessionConfig
	Upload   config.UploadConfig
	Schedule config.ScheduleConfig
	Auth     config.AuthConfig
	Dates    *datemath.Parser

	// Optional: Google Sheets imports and a custom zone keyword table.
	SheetSource usecase.SheetSource
	Classifier  zone.Classifier
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		sessionCfg:  cfg.Session,
		uploadCfg:   cfg.Upload,
		scheduleCfg: cfg.Schedule,
		authCfg:     cfg.Auth,
		dates:       cfg.Dates,
		sheetSource: cfg.SheetSource,
		classifier:  cfg.Classifier,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.sessions = memory.New(cfg.Session.TTL, cfg.Session.CleanupInterval, logger)

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	if srv.sessionCfg.TTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	return nil
}
