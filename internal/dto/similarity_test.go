package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarImagesResult_MarshalJSON(t *testing.T) {
	empty, err := json.Marshal(&SimilarImagesResult{Success: true, QueryProductID: "1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"queryProductId":"1","similarImages":[],"totalResults":0}`, string(empty))

	price := 15000
	found, err := json.Marshal(SimilarImagesResult{
		Success:        true,
		QueryProductID: "1",
		SimilarImages:  []SimilarImage{{ProductID: "2.jpg", ImageName: "2.jpg", Similarity: 0.8, ProductName: "B", PriceMin: &price}},
		TotalResults:   1,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"queryProductId":"1","similarImages":[`+
		`{"productId":"2.jpg","imageName":"2.jpg","similarity":0.8,"productName":"B","priceMin":15000}],"totalResults":1}`, string(found))

	failure, err := json.Marshal(NewSimilarImagesFailure(ErrMsgScriptOutput))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"Python 스크립트 출력 오류"}`, string(failure))
}
