package repository

import (
	"context"
	"price-compare/config"
	"price-compare/pkg/cache"
	"price-compare/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	ProductRepo     ProductRepository
	SystemParamRepo SystemParamRepository
	TextGenerator   TextGenerator
	SimilarityRepo  SimilaritySearcher
	UnitOfWork      UnitOfWork
}

func NewRepository(ctx context.Context, cfg *config.Config, db *gorm.DB, inmemoryCache cache.Cache, log *logger.Logger) (*Repository, error) {
	textGenerator, err := NewTextGenerator(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		ProductRepo:     NewProductRepository(db),
		SystemParamRepo: NewSystemParamRepository(cfg, inmemoryCache, db),
		TextGenerator:   textGenerator,
		SimilarityRepo:  NewSimilaritySearcher(cfg.Similarity, log),
		UnitOfWork:      NewUnitOfWork(db),
	}, nil
}
