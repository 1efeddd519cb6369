package service

import (
	"context"
	"price-compare/config"
	"price-compare/internal/dto"
	"price-compare/internal/model"
	"price-compare/pkg/utils"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[int64]model.Product
	findErr  error
	searched []model.SearchProductParam
	batches  [][]model.Product
}

func newFakeProductRepo(products ...model.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[int64]model.Product)}
	for _, p := range products {
		repo.products[p.Pcode] = p
	}
	return repo
}

func (f *fakeProductRepo) FindByPcode(_ context.Context, pcode int64) (*model.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	p, ok := f.products[pcode]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProductRepo) FindByPcodes(_ context.Context, pcodes []int64) ([]model.Product, error) {
	var out []model.Product
	for _, pcode := range pcodes {
		if p, ok := f.products[pcode]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Search(_ context.Context, param model.SearchProductParam) ([]model.Product, error) {
	f.searched = append(f.searched, param)
	products, _ := f.List(context.Background())
	if len(products) > param.Limit {
		products = products[:param.Limit]
	}
	return products, nil
}

func (f *fakeProductRepo) List(_ context.Context, _ ...utils.DBOption) ([]model.Product, error) {
	out := make([]model.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pcode < out[j].Pcode })
	return out, nil
}

func (f *fakeProductRepo) Upsert(_ context.Context, products []model.Product, _ ...utils.DBOption) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, products)
	for _, p := range products {
		f.products[p.Pcode] = p
	}
	return int64(len(products)), nil
}

type fakeSystemParamRepo struct {
	model string
	err   error
}

func (f *fakeSystemParamRepo) Get(_ context.Context, _ string, _ interface{}) error {
	return f.err
}

func (f *fakeSystemParamRepo) GetNarrativeModel(_ context.Context) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.model, nil
}

type fakeTextGenerator struct {
	reply   string
	err     error
	calls   int
	lastReq dto.GenerationRequest
}

func (f *fakeTextGenerator) Generate(_ context.Context, req dto.GenerationRequest) (string, error) {
	f.calls++
	f.lastReq = req
	return f.reply, f.err
}

type fakeSearcher struct {
	output *dto.SimilarityScriptOutput
	err    error
	calls  int
}

func (f *fakeSearcher) SearchSimilar(_ context.Context, _ string, _ int) (*dto.SimilarityScriptOutput, error) {
	f.calls++
	return f.output, f.err
}

type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Run(_ context.Context, fn func(opts ...utils.DBOption) error) error {
	return fn()
}

func testConfig() *config.Config {
	return &config.Config{
		LLM: config.LLM{Model: "llama2"},
		Similarity: config.Similarity{
			DefaultTop:      10,
			CacheExpiration: time.Minute,
		},
		Ingest: config.Ingest{BatchSize: 2, MaxConcurrency: 2},
		Cache:  config.Cache{SysParamExpDuration: time.Minute},
	}
}

var errNoParam = gorm.ErrRecordNotFound
