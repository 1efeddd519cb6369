package service

import (
	"context"
	"price-compare/pkg/logger"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogCSV = `pcode,product_name,url,image,price_min,price_max,price_balance,detail_json
1001,리안 스핀,https://prod.danawa.com/1001,1001.jpg,"300,000원",350000,"{""1"":[{""d"":1,""price"":300000}]}","{""무게"":""7kg""}"
1002,"싸이벡스, 멜리오",https://prod.danawa.com/1002,1002.jpg,,가격없음,{}
short,row
abc,잘못된코드,u,i,1,2,{}
1001,리안 스핀 2세대,https://prod.danawa.com/1001,1001.jpg,280000,330000,{}
1003,조이,u,1003.jpg,1,2,{}
`

func TestParseCatalogCSV(t *testing.T) {
	products, result, err := ParseCatalogCSV(context.Background(), logger.NewNop(), strings.NewReader(catalogCSV))
	require.NoError(t, err)

	assert.Equal(t, 6, result.Rows)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, products, 3)

	first := products[0]
	assert.Equal(t, int64(1001), first.Pcode)
	assert.Equal(t, "리안 스핀 2세대", first.ProductName)
	assert.Equal(t, 280000, first.PriceMin)
	assert.Equal(t, "{}", first.PriceBalance)

	second := products[1]
	assert.Equal(t, "싸이벡스, 멜리오", second.ProductName)
	assert.Equal(t, 0, second.PriceMin)
	assert.Equal(t, 0, second.PriceMax)
	assert.Nil(t, second.DetailJSON)

	assert.Equal(t, int64(1003), products[2].Pcode)
}

func TestParseCatalogCSV_QuotedFields(t *testing.T) {
	input := "header\n1001,a,u,i,\"300,000원\",350000,\"{\"\"1\"\":[]}\",\"{\"\"k\"\":1}\"\n"
	products, _, err := ParseCatalogCSV(context.Background(), logger.NewNop(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, products, 1)

	assert.Equal(t, 300000, products[0].PriceMin)
	assert.Equal(t, `{"1":[]}`, products[0].PriceBalance)
	require.NotNil(t, products[0].DetailJSON)
	assert.Equal(t, `{"k":1}`, *products[0].DetailJSON)
}

func TestIngestService_Ingest(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewIngestService(testConfig(), logger.NewNop(), repo, fakeUnitOfWork{})

	result, err := svc.Ingest(context.Background(), strings.NewReader(catalogCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Upserted)
	assert.Len(t, repo.batches, 2)
	assert.Len(t, repo.products, 3)
	assert.Equal(t, "리안 스핀 2세대", repo.products[1001].ProductName)
}

func TestIngestService_IngestFileMissing(t *testing.T) {
	svc := NewIngestService(testConfig(), logger.NewNop(), newFakeProductRepo(), fakeUnitOfWork{})
	_, err := svc.IngestFile(context.Background(), "does-not-exist.csv")
	assert.Error(t, err)
}

func TestIngestScheduler_Start(t *testing.T) {
	cfg := testConfig()
	svc := NewIngestService(cfg, logger.NewNop(), newFakeProductRepo(), fakeUnitOfWork{})

	disabled := NewIngestScheduler(cfg, logger.NewNop(), svc)
	assert.NoError(t, disabled.Start(context.Background()))

	cfg.Ingest.CSVPath = "catalog.csv"
	cfg.Ingest.Schedule = "not a cron"
	invalid := NewIngestScheduler(cfg, logger.NewNop(), svc)
	assert.Error(t, invalid.Start(context.Background()))

	cfg.Ingest.Schedule = "@daily"
	valid := NewIngestScheduler(cfg, logger.NewNop(), svc)
	require.NoError(t, valid.Start(context.Background()))
	valid.Stop()
}
