package service

import (
	"price-compare/config"
	"price-compare/internal/repository"
	"price-compare/pkg/cache"
	"price-compare/pkg/logger"
)

type Service struct {
	ComparisonService ComparisonService
	CatalogService    CatalogService
	SimilarityService SimilarityService
	IngestService     IngestService
	IngestScheduler   IngestScheduler
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) *Service {
	ingestService := NewIngestService(cfg, log, repo.ProductRepo, repo.UnitOfWork)
	return &Service{
		ComparisonService: NewComparisonService(cfg, log, repo.ProductRepo, repo.SystemParamRepo, repo.TextGenerator),
		CatalogService:    NewCatalogService(cfg, log, repo.ProductRepo),
		SimilarityService: NewSimilarityService(cfg, log, inmemoryCache, repo.SimilarityRepo, repo.ProductRepo),
		IngestService:     ingestService,
		IngestScheduler:   NewIngestScheduler(cfg, log, ingestService),
	}
}
