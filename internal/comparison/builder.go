package comparison

import (
	"context"
	"price-compare/internal/dto"
	"price-compare/internal/model"
	"price-compare/pkg/logger"
	"strings"
)

// MarketplaceSuffix is appended to every scraped product title by the source marketplace.
const MarketplaceSuffix = " : 다나와 가격비교"

// ProductSnapshot is the subset of a product the comparison works on.
type ProductSnapshot struct {
	Name     string
	MinPrice int
	MaxPrice int
	Trend    PriceTrend
}

func NewProductSnapshot(ctx context.Context, log *logger.Logger, p model.Product) ProductSnapshot {
	return ProductSnapshot{
		Name:     p.ProductName,
		MinPrice: p.PriceMin,
		MaxPrice: p.PriceMax,
		Trend:    ParsePriceTrend(ctx, log, p.PriceBalance),
	}
}

// DisplayName strips the marketplace suffix for presentation.
func DisplayName(name string) string {
	return strings.ReplaceAll(name, MarketplaceSuffix, "")
}

// BuildComparison computes every verdict of the comparison. It does no I/O and the
// output depends on nothing but a and b.
func BuildComparison(a, b ProductSnapshot) dto.ComparisonRecord {
	deltaA := a.Trend.ThreeMonth.Delta
	deltaB := b.Trend.ThreeMonth.Delta

	return dto.ComparisonRecord{
		ProductA: summarize(a),
		ProductB: summarize(b),
		Price:    ComparePrice(a.MinPrice, b.MinPrice),
		Trend: dto.TrendAnalysis{
			ProductA:   dto.TrendSummary{Delta3Month: deltaA, Direction: TrendDirection(deltaA)},
			ProductB:   dto.TrendSummary{Delta3Month: deltaB, Direction: TrendDirection(deltaB)},
			MoreStable: MoreStable(deltaA, deltaB),
		},
		Recommendation: Recommend(a, b),
	}
}

func summarize(p ProductSnapshot) dto.ProductSummary {
	return dto.ProductSummary{
		Name:     DisplayName(p.Name),
		MinPrice: p.MinPrice,
		MaxPrice: p.MaxPrice,
	}
}

// ComparePrice reports which minimum price is lower and by how much.
func ComparePrice(minA, minB int) dto.PriceComparison {
	diff := minA - minB
	switch {
	case diff < 0:
		return dto.PriceComparison{Cheaper: dto.LabelProductA, Difference: abs(diff)}
	case diff > 0:
		return dto.PriceComparison{Cheaper: dto.LabelProductB, Difference: abs(diff)}
	default:
		return dto.PriceComparison{Cheaper: dto.VerdictEqual, Difference: 0}
	}
}

func TrendDirection(delta int) string {
	switch {
	case delta > 0:
		return dto.TrendRose
	case delta < 0:
		return dto.TrendFell
	default:
		return dto.TrendUnchanged
	}
}

// MoreStable picks the product whose 3-month price moved less in absolute terms.
func MoreStable(deltaA, deltaB int) string {
	switch {
	case abs(deltaA) < abs(deltaB):
		return dto.LabelProductA
	case abs(deltaA) > abs(deltaB):
		return dto.LabelProductB
	default:
		return dto.VerdictSimilar
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
