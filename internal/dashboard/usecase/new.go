package usecase

import (
	"context"
	"time"

	"project-monitor/internal/dashboard/repository"
	"project-monitor/internal/schema"
	"project-monitor/internal/zone"
	"project-monitor/pkg/datemath"
	"project-monitor/pkg/gsheets"
	"project-monitor/pkg/log"
	"project-monitor/pkg/sheet"
)

// SheetSource reads remote spreadsheets. *gsheets.Client satisfies it.
type SheetSource interface {
	SheetNames(ctx context.Context, spreadsheetID string) ([]string, error)
	ReadTable(ctx context.Context, req gsheets.ReadTableRequest) (sheet.Table, error)
}

// Config holds the use case tunables.
type Config struct {
	MaxUploadBytes     int64
	DefaultSheet       string
	SkipRows           int
	UpcomingWindowDays int
	CurveStepDays      int
}

// implUseCase is the private implementation of dashboard.UseCase.
type implUseCase struct {
	repo       repository.Repository
	l          log.Logger
	dates      *datemath.Parser
	loader     *schema.Loader
	classifier zone.Classifier
	source     SheetSource
	cfg        Config
	now        func() time.Time
}

// Option configures optional collaborators.
type Option func(*implUseCase)

// WithSheetSource enables Google Sheets imports.
func WithSheetSource(src SheetSource) Option {
	return func(uc *implUseCase) { uc.source = src }
}

// WithClassifier replaces the built-in zone keyword table.
func WithClassifier(c zone.Classifier) Option {
	return func(uc *implUseCase) {
		if c != nil {
			uc.classifier = c
		}
	}
}

// WithClock overrides wall-clock "today".
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

// New creates a new dashboard UseCase implementation.
func New(repo repository.Repository, l log.Logger, dates *datemath.Parser, cfg Config, opts ...Option) *implUseCase {
	if cfg.CurveStepDays <= 0 {
		cfg.CurveStepDays = 7
	}
	uc := &implUseCase{
		repo:       repo,
		l:          l,
		dates:      dates,
		loader:     schema.NewLoader(dates),
		classifier: zone.NewDefaultClassifier(),
		cfg:        cfg,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
