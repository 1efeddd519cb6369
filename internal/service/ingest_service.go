package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"price-compare/config"
	"price-compare/internal/dto"
	"price-compare/internal/model"
	"price-compare/internal/repository"
	"price-compare/pkg/logger"
	"price-compare/pkg/utils"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

const minCSVFields = 7

type IngestService interface {
	IngestFile(ctx context.Context, path string) (*dto.IngestResult, error)
	Ingest(ctx context.Context, r io.Reader) (*dto.IngestResult, error)
}

type ingestService struct {
	cfg         *config.Config
	log         *logger.Logger
	productRepo repository.ProductRepository
	unitOfWork  repository.UnitOfWork
}

func NewIngestService(
	cfg *config.Config,
	log *logger.Logger,
	productRepo repository.ProductRepository,
	unitOfWork repository.UnitOfWork,
) IngestService {
	return &ingestService{
		cfg:         cfg,
		log:         log,
		productRepo: productRepo,
		unitOfWork:  unitOfWork,
	}
}

func (s *ingestService) IngestFile(ctx context.Context, path string) (*dto.IngestResult, error) {
	f, err := os.Open(path)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to open catalog file", logger.StringField("path", path), logger.ErrorField(err))
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return s.Ingest(ctx, f)
}

// Ingest loads catalog rows and upserts them in batches, each batch in its own transaction.
func (s *ingestService) Ingest(ctx context.Context, r io.Reader) (*dto.IngestResult, error) {
	products, result, err := ParseCatalogCSV(ctx, s.log, r)
	if err != nil {
		return nil, err
	}

	var upserted atomic.Int64
	g, gCtx := errgroup.WithContext(ctx)
	if s.cfg.Ingest.MaxConcurrency > 0 {
		g.SetLimit(s.cfg.Ingest.MaxConcurrency)
	}

	for _, batch := range utils.Chunk(products, s.cfg.Ingest.BatchSize) {
		g.Go(func() error {
			err := s.unitOfWork.Run(gCtx, func(opts ...utils.DBOption) error {
				_, err := s.productRepo.Upsert(gCtx, batch, opts...)
				return err
			})
			if err != nil {
				return fmt.Errorf("failed to upsert products: %w", err)
			}
			upserted.Add(int64(len(batch)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "Failed to ingest catalog", logger.ErrorField(err))
		result.Upserted = int(upserted.Load())
		return result, err
	}

	result.Upserted = int(upserted.Load())
	s.log.InfoContext(ctx, "Catalog ingested",
		logger.IntField("rows", result.Rows),
		logger.IntField("skipped", result.Skipped),
		logger.IntField("upserted", result.Upserted),
	)
	return result, nil
}

// ParseCatalogCSV reads the catalog export. The header row is skipped, rows with fewer than
// seven fields or an invalid pcode are skipped, and a repeated pcode keeps its last row.
func ParseCatalogCSV(ctx context.Context, log *logger.Logger, r io.Reader) ([]model.Product, *dto.IngestResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	result := &dto.IngestResult{}
	index := make(map[int64]int)
	var products []model.Product

	header := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				log.WarnContext(ctx, "Skipping malformed catalog row", logger.ErrorField(err))
				result.Rows++
				result.Skipped++
				continue
			}
			return nil, nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		if header {
			header = false
			continue
		}

		result.Rows++
		product, err := parseCatalogRecord(record)
		if err != nil {
			log.WarnContext(ctx, "Skipping catalog row", logger.IntField("row", result.Rows), logger.ErrorField(err))
			result.Skipped++
			continue
		}

		if i, exists := index[product.Pcode]; exists {
			products[i] = product
			continue
		}
		index[product.Pcode] = len(products)
		products = append(products, product)
	}

	return products, result, nil
}

func parseCatalogRecord(fields []string) (model.Product, error) {
	if len(fields) < minCSVFields {
		return model.Product{}, fmt.Errorf("expected at least %d fields, got %d", minCSVFields, len(fields))
	}

	pcode, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return model.Product{}, fmt.Errorf("invalid pcode %q: %w", fields[0], err)
	}

	product := model.Product{
		Pcode:        pcode,
		ProductName:  utils.CleanToValidUTF8(strings.TrimSpace(fields[1])),
		URL:          strings.TrimSpace(fields[2]),
		Image:        strings.TrimSpace(fields[3]),
		PriceMin:     utils.ParseDigits(fields[4]),
		PriceMax:     utils.ParseDigits(fields[5]),
		PriceBalance: strings.TrimSpace(fields[6]),
	}
	if len(fields) > minCSVFields {
		product.DetailJSON = utils.ToPointer(strings.TrimSpace(fields[7]))
	}
	return product, nil
}
