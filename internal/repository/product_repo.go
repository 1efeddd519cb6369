package repository

import (
	"context"
	"errors"
	"price-compare/internal/model"
	"price-compare/pkg/common"
	"price-compare/pkg/utils"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	FindByPcode(ctx context.Context, pcode int64) (*model.Product, error)
	FindByPcodes(ctx context.Context, pcodes []int64) ([]model.Product, error)
	Search(ctx context.Context, param model.SearchProductParam) ([]model.Product, error)
	List(ctx context.Context, opts ...utils.DBOption) ([]model.Product, error)
	Upsert(ctx context.Context, products []model.Product, opts ...utils.DBOption) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// searchableText matches the lower-cased product name and detail payload.
const searchableText = "LOWER(CONCAT(COALESCE(product_name, ''), ' ', COALESCE(detail_json, ''))) LIKE ?"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(keyword string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
}

// FindByPcode returns nil without error when the product does not exist.
func (r *productRepository) FindByPcode(ctx context.Context, pcode int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).Where("pcode = ?", pcode).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByPcodes(ctx context.Context, pcodes []int64) ([]model.Product, error) {
	var products []model.Product
	if len(pcodes) == 0 {
		return products, nil
	}
	if err := r.db.WithContext(ctx).Where("pcode IN ?", pcodes).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Search returns products whose name or detail contains any of the keywords, case-insensitively.
func (r *productRepository) Search(ctx context.Context, param model.SearchProductParam) ([]model.Product, error) {
	var products []model.Product

	limit := param.Limit
	if limit <= 0 || limit > common.MAX_SEARCH_RESULTS {
		limit = common.MAX_SEARCH_RESULTS
	}

	db := r.db.WithContext(ctx).Model(&model.Product{})
	if len(param.Keywords) > 0 {
		cond := r.db.Where(searchableText, likePattern(param.Keywords[0]))
		for _, keyword := range param.Keywords[1:] {
			cond = cond.Or(searchableText, likePattern(keyword))
		}
		db = db.Where(cond)
	}

	if err := db.Order("pcode").Limit(limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) List(ctx context.Context, opts ...utils.DBOption) ([]model.Product, error) {
	var products []model.Product
	if err := utils.ApplyOptions(r.db.WithContext(ctx), opts...).Order("pcode").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Upsert replaces whole records keyed by pcode.
func (r *productRepository) Upsert(ctx context.Context, products []model.Product, opts ...utils.DBOption) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}
	result := utils.ApplyOptions(r.db.WithContext(ctx), opts...).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pcode"}},
			UpdateAll: true,
		}).
		Create(&products)
	return result.RowsAffected, result.Error
}
