package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"project-monitor/internal/dashboard"
	"project-monitor/internal/dashboard/repository/memory"
	"project-monitor/internal/dashboard/usecase"
	"project-monitor/internal/model"
	"project-monitor/internal/schema"
	"project-monitor/internal/zone"
	"project-monitor/pkg/datemath"
	"project-monitor/pkg/log"
)

// cliScope is the single session the CLI loads into.
var cliScope = model.Scope{SessionID: "cli"}

type loadFlags struct {
	sheet     string
	skipRows  int
	asOf      string
	project   string
	column    string
	value     string
	zonesFile string
	timezone  string
	verbose   bool
}

func (f loadFlags) query() dashboard.QueryInput {
	return dashboard.QueryInput{
		Filter: schema.Filter{Project: f.project, Column: f.column, Value: f.value},
		AsOf:   f.asOf,
	}
}

func (f loadFlags) validate() error {
	if (f.column == "") != (f.value == "") {
		return fmt.Errorf("--column and --value must be given together")
	}
	if f.skipRows < 0 {
		return fmt.Errorf("--skip-rows must not be negative")
	}
	return nil
}

// pipeline is a loaded file ready for queries.
type pipeline struct {
	uc   dashboard.UseCase
	load dashboard.LoadOutput
}

func newLogger(verbose bool) log.Logger {
	if !verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true})
}

// openPipeline reads path and loads it through the dashboard use case.
func openPipeline(ctx context.Context, f loadFlags, path string) (*pipeline, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	l := newLogger(f.verbose)
	dates, err := datemath.NewParser(f.timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid --timezone: %w", err)
	}

	var opts []usecase.Option
	if f.zonesFile != "" {
		rules, err := zone.LoadKeywordFile(f.zonesFile)
		if err != nil {
			return nil, err
		}
		cls, err := zone.NewKeywordClassifier(rules)
		if err != nil {
			return nil, err
		}
		opts = append(opts, usecase.WithClassifier(cls))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	uc := usecase.New(memory.New(time.Hour, 0, l), l, dates, usecase.Config{
		MaxUploadBytes:     int64(len(data)) + 1,
		UpcomingWindowDays: 7,
		CurveStepDays:      7,
	}, opts...)

	skip := f.skipRows
	out, err := uc.Upload(ctx, cliScope, dashboard.UploadInput{
		FileName: filepath.Base(path),
		Data:     data,
		Sheet:    f.sheet,
		SkipRows: &skip,
	})
	if err != nil {
		return nil, err
	}
	return &pipeline{uc: uc, load: out}, nil
}
