package service

import (
	"context"
	"errors"
	"fmt"
	"price-compare/config"
	"price-compare/internal/dto"
	"price-compare/internal/model"
	"price-compare/internal/repository"
	"price-compare/pkg/cache"
	"price-compare/pkg/common"
	"price-compare/pkg/logger"
	"price-compare/pkg/utils"
	"strconv"
	"strings"
)

type SimilarityService interface {
	FindSimilarImages(ctx context.Context, productID string, top int) *dto.SimilarImagesResult
}

type similarityService struct {
	cfg           *config.Config
	log           *logger.Logger
	inmemoryCache cache.Cache
	searcher      repository.SimilaritySearcher
	productRepo   repository.ProductRepository
}

func NewSimilarityService(
	cfg *config.Config,
	log *logger.Logger,
	inmemoryCache cache.Cache,
	searcher repository.SimilaritySearcher,
	productRepo repository.ProductRepository,
) SimilarityService {
	return &similarityService{
		cfg:           cfg,
		log:           log,
		inmemoryCache: inmemoryCache,
		searcher:      searcher,
		productRepo:   productRepo,
	}
}

// FindSimilarImages never returns an error; failures are reported in the result body.
func (s *similarityService) FindSimilarImages(ctx context.Context, productID string, top int) *dto.SimilarImagesResult {
	if top <= 0 {
		top = s.cfg.Similarity.DefaultTop
	}

	key := fmt.Sprintf(common.KEY_SIMILAR_IMAGES, productID, top)
	if cached, found := cache.GetFromCache[*dto.SimilarImagesResult](s.inmemoryCache, key); found {
		return cached
	}

	output, err := s.searcher.SearchSimilar(ctx, productID, top)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidScriptOutput) {
			s.log.WarnContext(ctx, "Invalid similarity script output", logger.StringField("product_id", productID), logger.ErrorField(err))
			return dto.NewSimilarImagesFailure(dto.ErrMsgScriptOutput)
		}
		return dto.NewSimilarImagesFailure(err.Error())
	}

	if !output.Success {
		msg := output.Error
		if msg == "" {
			msg = dto.ErrMsgUnknownScript
		}
		return dto.NewSimilarImagesFailure(msg)
	}

	images := s.enrich(ctx, output.SimilarImages)
	result := &dto.SimilarImagesResult{
		Success:        true,
		QueryProductID: output.QueryProductID,
		SimilarImages:  images,
		TotalResults:   len(images),
	}
	if result.QueryProductID == "" {
		result.QueryProductID = productID
	}

	s.inmemoryCache.Set(key, result, s.cfg.Similarity.CacheExpiration)
	return result
}

// enrich drops self matches and attaches catalog data to hits whose id resolves to a product.
func (s *similarityService) enrich(ctx context.Context, matches []dto.SimilarImageMatch) []dto.SimilarImage {
	images := make([]dto.SimilarImage, 0, len(matches))
	pcodes := make([]int64, 0, len(matches))
	for _, m := range matches {
		if m.Similarity >= dto.SelfMatchThreshold {
			continue
		}
		images = append(images, dto.SimilarImage{
			ProductID:  m.ProductID,
			ImageName:  m.ImageName,
			Similarity: m.Similarity,
		})
		if pcode, ok := pcodeFromImageID(m.ProductID); ok {
			pcodes = append(pcodes, pcode)
		}
	}

	products, err := s.productRepo.FindByPcodes(ctx, pcodes)
	if err != nil {
		s.log.WarnContext(ctx, "Failed to load products for similar images", logger.ErrorField(err))
		return images
	}

	byPcode := make(map[int64]model.Product, len(products))
	for _, p := range products {
		byPcode[p.Pcode] = p
	}
	for i := range images {
		pcode, ok := pcodeFromImageID(images[i].ProductID)
		if !ok {
			continue
		}
		if p, found := byPcode[pcode]; found {
			images[i].ProductName = p.ProductName
			images[i].PriceMin = utils.ToPointer(p.PriceMin)
			images[i].PriceMax = utils.ToPointer(p.PriceMax)
		}
	}
	return images
}

func pcodeFromImageID(id string) (int64, bool) {
	pcode, err := strconv.ParseInt(strings.TrimSuffix(id, ".jpg"), 10, 64)
	if err != nil {
		return 0, false
	}
	return pcode, true
}
