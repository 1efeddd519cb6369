package service

import (
	"context"
	"errors"
	"price-compare/internal/dto"
	"price-compare/internal/model"
	"price-compare/pkg/logger"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comparisonProducts() (model.Product, model.Product) {
	a := model.Product{
		Pcode:        1001,
		ProductName:  "접이식 유모차 : 다나와 가격비교",
		PriceMin:     100000,
		PriceMax:     120000,
		PriceBalance: `{"1":[{"date":"a","price":101000},{"date":"b","price":100000}],"3":[{"date":"a","price":105000},{"date":"b","price":100000}]}`,
	}
	b := model.Product{
		Pcode:        2002,
		ProductName:  "휴대용 유모차 : 다나와 가격비교",
		PriceMin:     102000,
		PriceMax:     110000,
		PriceBalance: `{"1":[{"date":"a","price":101000},{"date":"b","price":102000}],"3":[{"date":"a","price":101000},{"date":"b","price":102000}]}`,
	}
	return a, b
}

func TestComparisonService_Compare(t *testing.T) {
	a, b := comparisonProducts()

	t.Run("narrative is sanitized and record attached", func(t *testing.T) {
		gen := &fakeTextGenerator{reply: "상품A 가격이 下落했습니다ラ"}
		svc := NewComparisonService(testConfig(), logger.NewNop(), newFakeProductRepo(a, b), &fakeSystemParamRepo{err: errNoParam}, gen)

		result, err := svc.Compare(context.Background(), a.Pcode, b.Pcode)
		require.NoError(t, err)
		require.NotNil(t, result.Record)

		assert.Equal(t, "상품A 가격이 내렸음했습니다", result.Analysis)
		assert.Equal(t, "접이식 유모차", result.Record.ProductA.Name)
		assert.Equal(t, dto.LabelProductA, result.Record.Price.Cheaper)
		assert.Equal(t, 2000, result.Record.Price.Difference)
		assert.Equal(t, dto.LabelProductA, result.Record.Recommendation.Product)
		assert.Equal(t, 1, gen.calls)
		assert.Equal(t, "llama2", gen.lastReq.Model)
		assert.False(t, gen.lastReq.Stream)
		require.Len(t, gen.lastReq.Messages, 1)
		assert.Contains(t, gen.lastReq.Messages[0].Content, `"상품A"`)
	})

	t.Run("system parameter overrides model", func(t *testing.T) {
		gen := &fakeTextGenerator{reply: "ok"}
		svc := NewComparisonService(testConfig(), logger.NewNop(), newFakeProductRepo(a, b), &fakeSystemParamRepo{model: "gemma3"}, gen)

		_, err := svc.Compare(context.Background(), a.Pcode, b.Pcode)
		require.NoError(t, err)
		assert.Equal(t, "gemma3", gen.lastReq.Model)
	})

	t.Run("missing product skips generation", func(t *testing.T) {
		gen := &fakeTextGenerator{reply: "unused"}
		svc := NewComparisonService(testConfig(), logger.NewNop(), newFakeProductRepo(a), &fakeSystemParamRepo{err: errNoParam}, gen)

		result, err := svc.Compare(context.Background(), a.Pcode, 9999)
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Nil(t, result.Record)
		assert.Equal(t, 0, gen.calls)
	})

	t.Run("generation failure keeps record", func(t *testing.T) {
		gen := &fakeTextGenerator{err: errors.New("connection refused")}
		svc := NewComparisonService(testConfig(), logger.NewNop(), newFakeProductRepo(a, b), &fakeSystemParamRepo{err: errNoParam}, gen)

		result, err := svc.Compare(context.Background(), a.Pcode, b.Pcode)
		require.Error(t, err)
		assert.NotNil(t, result.Record)
		assert.Empty(t, result.Analysis)
	})
}

func TestComparisonService_CompareProducts(t *testing.T) {
	a, b := comparisonProducts()

	tests := []struct {
		name     string
		repo     *fakeProductRepo
		gen      *fakeTextGenerator
		pcode2   int64
		expected func(t *testing.T, got string)
	}{
		{
			name:   "not found",
			repo:   newFakeProductRepo(a, b),
			gen:    &fakeTextGenerator{},
			pcode2: 404,
			expected: func(t *testing.T, got string) {
				assert.Equal(t, MsgProductNotFound, got)
			},
		},
		{
			name:   "generation error",
			repo:   newFakeProductRepo(a, b),
			gen:    &fakeTextGenerator{err: errors.New("timeout")},
			pcode2: b.Pcode,
			expected: func(t *testing.T, got string) {
				assert.True(t, strings.HasPrefix(got, MsgComparisonError))
				assert.Contains(t, got, "timeout")
			},
		},
		{
			name:   "lookup error",
			repo:   &fakeProductRepo{findErr: errors.New("db down")},
			gen:    &fakeTextGenerator{},
			pcode2: b.Pcode,
			expected: func(t *testing.T, got string) {
				assert.True(t, strings.HasPrefix(got, MsgComparisonError))
				assert.Contains(t, got, "db down")
			},
		},
		{
			name:   "success",
			repo:   newFakeProductRepo(a, b),
			gen:    &fakeTextGenerator{reply: "종합 추천: 상품A"},
			pcode2: b.Pcode,
			expected: func(t *testing.T, got string) {
				assert.Equal(t, "종합 추천: 상품A", got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewComparisonService(testConfig(), logger.NewNop(), tt.repo, &fakeSystemParamRepo{err: errNoParam}, tt.gen)
			tt.expected(t, svc.CompareProducts(context.Background(), a.Pcode, tt.pcode2))
		})
	}
}
