package comparison

import (
	"context"
	"testing"

	"price-compare/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestParsePriceTrend(t *testing.T) {
	log := logger.NewNop()
	tests := []struct {
		name    string
		payload string
		want    PriceTrend
	}{
		{
			name:    "empty payload",
			payload: "",
			want:    PriceTrend{},
		},
		{
			name:    "blank payload",
			payload: "   ",
			want:    PriceTrend{},
		},
		{
			name:    "both windows",
			payload: `{"1":[{"date":"09.01","price":10500},{"date":"09.30","price":10000}],"3":[{"date":"07.01","price":10500},{"date":"08.01","price":11000},{"date":"09.30","price":10000}]}`,
			want: PriceTrend{
				OneMonth:   WindowTrend{FirstPrice: 10500, LastPrice: 10000, Delta: -500},
				ThreeMonth: WindowTrend{FirstPrice: 10500, LastPrice: 10000, Delta: -500},
			},
		},
		{
			name:    "only three month window",
			payload: `{"3":[{"date":0,"price":12000},{"date":1,"price":12300}]}`,
			want: PriceTrend{
				ThreeMonth: WindowTrend{FirstPrice: 12000, LastPrice: 12300, Delta: 300},
			},
		},
		{
			name:    "empty window list",
			payload: `{"1":[],"3":[{"price":9000},{"price":9900}]}`,
			want: PriceTrend{
				ThreeMonth: WindowTrend{FirstPrice: 9000, LastPrice: 9900, Delta: 900},
			},
		},
		{
			name:    "single sample has zero delta",
			payload: `{"3":[{"price":7000}]}`,
			want: PriceTrend{
				ThreeMonth: WindowTrend{FirstPrice: 7000, LastPrice: 7000, Delta: 0},
			},
		},
		{
			name:    "float prices truncate toward zero",
			payload: `{"3":[{"price":1000.9},{"price":1500.2}]}`,
			want: PriceTrend{
				ThreeMonth: WindowTrend{FirstPrice: 1000, LastPrice: 1500, Delta: 500},
			},
		},
		{
			name:    "malformed json",
			payload: `{"3":[{"price":1000},`,
			want:    PriceTrend{},
		},
		{
			name:    "non numeric price",
			payload: `{"1":[{"price":1000},{"price":1200}],"3":[{"price":"abc"}]}`,
			want:    PriceTrend{},
		},
		{
			name:    "missing price field",
			payload: `{"3":[{"date":"07.01"},{"price":1200}]}`,
			want:    PriceTrend{},
		},
		{
			name:    "not an object",
			payload: `[1,2,3]`,
			want:    PriceTrend{},
		},
		{
			name:    "unrelated windows are ignored",
			payload: `{"6":[{"price":1},{"price":100}]}`,
			want:    PriceTrend{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePriceTrend(context.Background(), log, tt.payload)
			assert.Equal(t, tt.want, got)
		})
	}
}
