package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"price-compare/config"
	"price-compare/internal/model"
	"price-compare/pkg/cache"
	"price-compare/pkg/common"

	"gorm.io/gorm"
)

type SystemParamRepository interface {
	Get(ctx context.Context, name string, destValue interface{}) error
	GetNarrativeModel(ctx context.Context) (string, error)
}

type systemParamRepository struct {
	cfg           *config.Config
	inmemoryCache cache.Cache
	db            *gorm.DB
}

func NewSystemParamRepository(cfg *config.Config, inmemoryCache cache.Cache, db *gorm.DB) SystemParamRepository {
	return &systemParamRepository{cfg: cfg, inmemoryCache: inmemoryCache, db: db}
}

func (s *systemParamRepository) Get(ctx context.Context, name string, destValue interface{}) error {
	var param model.SystemParameter

	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&param).Error; err != nil {
		return err
	}
	return json.Unmarshal(param.Value, destValue)
}

// GetNarrativeModel returns gorm.ErrRecordNotFound when no override is configured.
func (s *systemParamRepository) GetNarrativeModel(ctx context.Context) (string, error) {
	key := fmt.Sprintf(common.KEY_SYSTEM_PARAM, model.SysParamNarrativeModel)
	if val, found := cache.GetFromCache[string](s.inmemoryCache, key); found {
		return val, nil
	}

	var modelName string
	if err := s.Get(ctx, model.SysParamNarrativeModel, &modelName); err != nil {
		return "", err
	}
	s.inmemoryCache.Set(key, modelName, s.cfg.Cache.SysParamExpDuration)
	return modelName, nil
}
