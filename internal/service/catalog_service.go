package service

import (
	"context"
	"fmt"
	"io"
	"price-compare/config"
	"price-compare/internal/dto"
	"price-compare/internal/model"
	"price-compare/internal/repository"
	"price-compare/pkg/common"
	"price-compare/pkg/logger"
	"strings"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "products"

var exportHeader = []interface{}{"pcode", "product_name", "price_min", "price_max", "url", "image"}

type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	Search(ctx context.Context, query string) (*dto.SearchResult, error)
	ExportXLSX(ctx context.Context, w io.Writer) error
}

type catalogService struct {
	cfg         *config.Config
	log         *logger.Logger
	productRepo repository.ProductRepository
}

func NewCatalogService(cfg *config.Config, log *logger.Logger, productRepo repository.ProductRepository) CatalogService {
	return &catalogService{
		cfg:         cfg,
		log:         log,
		productRepo: productRepo,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to list products", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Search matches any whitespace separated keyword against product name and detail.
func (s *catalogService) Search(ctx context.Context, query string) (*dto.SearchResult, error) {
	products, err := s.productRepo.Search(ctx, model.SearchProductParam{
		Keywords: strings.Fields(query),
		Limit:    common.MAX_SEARCH_RESULTS,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to search products", logger.StringField("query", query), logger.ErrorField(err))
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	items := toProductItems(products)
	return &dto.SearchResult{
		Query:      query,
		TotalFound: len(items),
		Products:   items,
	}, nil
}

// ExportXLSX writes every product as one row of a single-sheet workbook.
func (s *catalogService) ExportXLSX(ctx context.Context, w io.Writer) error {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to list products for export", logger.ErrorField(err))
		return fmt.Errorf("failed to list products: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.log.WarnContext(ctx, "Failed to close workbook", logger.ErrorField(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, p := range products {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{p.Pcode, p.ProductName, p.PriceMin, p.PriceMax, p.URL, p.Image}
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	s.log.InfoContext(ctx, "Catalog exported", logger.IntField("products", len(products)))
	return nil
}

func toProductItems(products []model.Product) []dto.ProductItem {
	items := make([]dto.ProductItem, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ProductItem{
			Pcode:       p.Pcode,
			ProductName: p.ProductName,
			PriceMin:    p.PriceMin,
			PriceMax:    p.PriceMax,
			URL:         p.URL,
			Image:       p.Image,
		})
	}
	return items
}
