package service

import (
	"context"
	"fmt"
	"price-compare/config"
	"price-compare/pkg/logger"

	"github.com/robfig/cron/v3"
)

// IngestScheduler reloads the catalog file on a cron schedule.
type IngestScheduler interface {
	Start(ctx context.Context) error
	Stop()
}

type ingestScheduler struct {
	cfg           *config.Config
	log           *logger.Logger
	cron          *cron.Cron
	ingestService IngestService
}

func NewIngestScheduler(cfg *config.Config, log *logger.Logger, ingestService IngestService) IngestScheduler {
	return &ingestScheduler{
		cfg:           cfg,
		log:           log,
		cron:          cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor))),
		ingestService: ingestService,
	}
}

func (s *ingestScheduler) Start(ctx context.Context) error {
	if s.cfg.Ingest.Schedule == "" || s.cfg.Ingest.CSVPath == "" {
		s.log.Info("Catalog ingest schedule disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.Ingest.Schedule, func() {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.ingestService.IngestFile(ctx, s.cfg.Ingest.CSVPath); err != nil {
			s.log.ErrorContext(ctx, "Scheduled catalog ingest failed", logger.ErrorField(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to parse ingest schedule %q: %w", s.cfg.Ingest.Schedule, err)
	}

	s.cron.Start()
	s.log.Info("Catalog ingest scheduler started", logger.StringField("schedule", s.cfg.Ingest.Schedule))
	return nil
}

func (s *ingestScheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("Catalog ingest scheduler stopped")
}
