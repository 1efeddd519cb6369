package service

import (
	"context"
	"errors"
	"fmt"
	"price-compare/config"
	"price-compare/internal/comparison"
	"price-compare/internal/dto"
	"price-compare/internal/repository"
	"price-compare/pkg/logger"

	"gorm.io/gorm"
)

const (
	MsgProductNotFound = "선택한 상품을 찾을 수 없습니다."
	MsgComparisonError = "비교 분석 중 오류가 발생했습니다: "
)

var ErrProductNotFound = errors.New("product not found")

type ComparisonService interface {
	Compare(ctx context.Context, pcode1, pcode2 int64) (*dto.ComparisonResult, error)
	CompareProducts(ctx context.Context, pcode1, pcode2 int64) string
}

type comparisonService struct {
	cfg             *config.Config
	log             *logger.Logger
	productRepo     repository.ProductRepository
	systemParamRepo repository.SystemParamRepository
	textGenerator   repository.TextGenerator
}

func NewComparisonService(
	cfg *config.Config,
	log *logger.Logger,
	productRepo repository.ProductRepository,
	systemParamRepo repository.SystemParamRepository,
	textGenerator repository.TextGenerator,
) ComparisonService {
	return &comparisonService{
		cfg:             cfg,
		log:             log,
		productRepo:     productRepo,
		systemParamRepo: systemParamRepo,
		textGenerator:   textGenerator,
	}
}

// Compare builds the structured comparison of two products and asks the text generator to
// narrate it. When generation fails the computed record is still returned with the error.
func (s *comparisonService) Compare(ctx context.Context, pcode1, pcode2 int64) (*dto.ComparisonResult, error) {
	result := &dto.ComparisonResult{Pcode1: pcode1, Pcode2: pcode2}

	productA, err := s.productRepo.FindByPcode(ctx, pcode1)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to find product", logger.Int64Field("pcode", pcode1), logger.ErrorField(err))
		return result, fmt.Errorf("failed to find product %d: %w", pcode1, err)
	}
	productB, err := s.productRepo.FindByPcode(ctx, pcode2)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to find product", logger.Int64Field("pcode", pcode2), logger.ErrorField(err))
		return result, fmt.Errorf("failed to find product %d: %w", pcode2, err)
	}
	if productA == nil || productB == nil {
		return result, ErrProductNotFound
	}

	record := comparison.BuildComparison(
		comparison.NewProductSnapshot(ctx, s.log, *productA),
		comparison.NewProductSnapshot(ctx, s.log, *productB),
	)
	result.Record = &record

	req, err := comparison.NewGenerationRequest(s.narrativeModel(ctx), record)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to build generation request", logger.ErrorField(err))
		return result, fmt.Errorf("failed to build generation request: %w", err)
	}

	narrative, err := s.textGenerator.Generate(ctx, req)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to generate comparison narrative",
			logger.Int64Field("pcode1", pcode1),
			logger.Int64Field("pcode2", pcode2),
			logger.ErrorField(err),
		)
		return result, fmt.Errorf("failed to generate comparison narrative: %w", err)
	}

	result.Analysis = comparison.SanitizeNarrative(narrative)
	s.log.InfoContext(ctx, "Comparison completed",
		logger.Int64Field("pcode1", pcode1),
		logger.Int64Field("pcode2", pcode2),
		logger.StringField("recommended", record.Recommendation.Product),
	)
	return result, nil
}

// CompareProducts renders Compare as the single user-facing message.
func (s *comparisonService) CompareProducts(ctx context.Context, pcode1, pcode2 int64) string {
	result, err := s.Compare(ctx, pcode1, pcode2)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return MsgProductNotFound
		}
		return MsgComparisonError + err.Error()
	}
	return result.Analysis
}

func (s *comparisonService) narrativeModel(ctx context.Context) string {
	modelName, err := s.systemParamRepo.GetNarrativeModel(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.WarnContext(ctx, "Failed to read narrative model parameter, using configured model", logger.ErrorField(err))
		}
		return s.cfg.LLM.Model
	}
	if modelName == "" {
		return s.cfg.LLM.Model
	}
	return modelName
}
