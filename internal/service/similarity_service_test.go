package service

import (
	"context"
	"errors"
	"fmt"
	"price-compare/internal/dto"
	"price-compare/internal/model"
	"price-compare/internal/repository"
	"price-compare/pkg/cache"
	"price-compare/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimilarityService(searcher *fakeSearcher, repo *fakeProductRepo) SimilarityService {
	return NewSimilarityService(testConfig(), logger.NewNop(), cache.NewCache(time.Minute, time.Minute), searcher, repo)
}

func TestSimilarityService_FindSimilarImages(t *testing.T) {
	repo := newFakeProductRepo(model.Product{Pcode: 555, ProductName: "리안 스핀", PriceMin: 300000, PriceMax: 350000})

	searcher := &fakeSearcher{output: &dto.SimilarityScriptOutput{
		Success:        true,
		QueryProductID: "111",
		SimilarImages: []dto.SimilarImageMatch{
			{ProductID: "111.jpg", ImageName: "111.jpg", Similarity: 0.9995},
			{ProductID: "555.jpg", ImageName: "555.jpg", Similarity: 0.91},
			{ProductID: "777", ImageName: "777.jpg", Similarity: 0.85},
			{ProductID: "abc", ImageName: "abc.jpg", Similarity: 0.8},
		},
	}}
	svc := newTestSimilarityService(searcher, repo)

	result := svc.FindSimilarImages(context.Background(), "111", 5)
	require.True(t, result.Success)
	assert.Equal(t, "111", result.QueryProductID)
	assert.Equal(t, 3, result.TotalResults)
	require.Len(t, result.SimilarImages, 3)

	enriched := result.SimilarImages[0]
	assert.Equal(t, "555.jpg", enriched.ProductID)
	assert.Equal(t, "리안 스핀", enriched.ProductName)
	require.NotNil(t, enriched.PriceMin)
	assert.Equal(t, 300000, *enriched.PriceMin)
	assert.Equal(t, 350000, *enriched.PriceMax)

	assert.Empty(t, result.SimilarImages[1].ProductName)
	assert.Nil(t, result.SimilarImages[1].PriceMin)
	assert.Nil(t, result.SimilarImages[2].PriceMin)

	again := svc.FindSimilarImages(context.Background(), "111", 5)
	assert.Same(t, result, again)
	assert.Equal(t, 1, searcher.calls)
}

func TestSimilarityService_Failures(t *testing.T) {
	tests := []struct {
		name     string
		searcher *fakeSearcher
		wantErr  string
	}{
		{
			name:     "invalid output",
			searcher: &fakeSearcher{err: fmt.Errorf("%w: eof", repository.ErrInvalidScriptOutput)},
			wantErr:  dto.ErrMsgScriptOutput,
		},
		{
			name:     "process failure",
			searcher: &fakeSearcher{err: errors.New("similarity script failed: exit status 1")},
			wantErr:  "similarity script failed: exit status 1",
		},
		{
			name:     "script reported error",
			searcher: &fakeSearcher{output: &dto.SimilarityScriptOutput{Success: false, Error: "image not indexed"}},
			wantErr:  "image not indexed",
		},
		{
			name:     "script failed without message",
			searcher: &fakeSearcher{output: &dto.SimilarityScriptOutput{Success: false}},
			wantErr:  dto.ErrMsgUnknownScript,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestSimilarityService(tt.searcher, newFakeProductRepo())
			result := svc.FindSimilarImages(context.Background(), "1", 0)
			assert.False(t, result.Success)
			assert.Equal(t, tt.wantErr, result.Error)

			svc.FindSimilarImages(context.Background(), "1", 0)
			assert.Equal(t, 2, tt.searcher.calls)
		})
	}
}
