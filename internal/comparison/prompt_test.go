package comparison

import (
	"encoding/json"
	"strings"
	"testing"

	"price-compare/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRecord_KeyOrderAndLabels(t *testing.T) {
	record := BuildComparison(snapshot("A & B", 10000, 12000, -500), snapshot("C", 12000, 15000, 300))

	got, err := MarshalRecord(record)
	require.NoError(t, err)

	order := []string{`"상품A"`, `"상품B"`, `"가격비교"`, `"가격추이분석"`, `"종합추천"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(got, key)
		require.NotEqual(t, -1, idx, key)
		assert.Greater(t, idx, last, key)
		last = idx
	}

	assert.Contains(t, got, `"이름": "A & B"`)
	assert.Contains(t, got, `"가격차이": 2000`)
	assert.Contains(t, got, `"3개월변동금액": -500`)
	assert.NotContains(t, got, "ScoreA")
	assert.False(t, strings.HasSuffix(got, "\n"))

	var decoded dto.ComparisonRecord
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, record.Price, decoded.Price)
}

func TestNewGenerationRequest(t *testing.T) {
	record := BuildComparison(snapshot("A", 10000, 12000, -500), snapshot("B", 12000, 15000, 300))

	req, err := NewGenerationRequest("llama2", record)
	require.NoError(t, err)

	assert.Equal(t, "llama2", req.Model)
	assert.False(t, req.Stream)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, dto.RoleUser, req.Messages[0].Role)

	prompt := req.Messages[0].Content
	jsonData, err := MarshalRecord(record)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "아래 JSON 데이터를"))
	assert.Contains(t, prompt, "[절대 규칙]")
	assert.Contains(t, prompt, "[JSON 데이터]\n"+jsonData+"\n")
	assert.Contains(t, prompt, "## 가격 비교")
	assert.Contains(t, prompt, "## 가격 추이 분석")
	assert.Contains(t, prompt, "## 종합 추천")
	assert.Contains(t, prompt, "영어 원문은 출력하지 마세요.")
	assert.Less(t, strings.Index(prompt, "[절대 규칙]"), strings.Index(prompt, "[JSON 데이터]"))
	assert.Less(t, strings.Index(prompt, "[JSON 데이터]"), strings.Index(prompt, "[출력 형식]"))
}
