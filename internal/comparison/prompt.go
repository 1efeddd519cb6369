package comparison

import (
	"bytes"
	"encoding/json"
	"fmt"
	"price-compare/internal/dto"
	"strings"
)

// MarshalRecord renders the record as indented JSON without HTML escaping, so product
// names reach the model unchanged.
func MarshalRecord(record dto.ComparisonRecord) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return "", fmt.Errorf("failed to marshal comparison record: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// BuildNarrativePrompt wraps the structured data in the rewrite-only instructions.
func BuildNarrativePrompt(jsonData string) string {
	var sb strings.Builder

	sb.WriteString("아래 JSON 데이터를 자연스러운 한국어 문장으로 바꿔주세요.\n\n")

	sb.WriteString(`[절대 규칙]
1. JSON에 있는 숫자와 판단 결과를 절대 변경하지 마세요
2. 새로운 정보를 추가하지 마세요
3. 한글, 숫자, 쉼표, 마침표만 사용하세요
4. 한자 사용 금지 (예: 上昇, 下落, 比較 금지)
5. 영어 사용 금지
6. 일본어 사용 금지
`)

	sb.WriteString("\n[JSON 데이터]\n")
	sb.WriteString(jsonData)
	sb.WriteString("\n")

	sb.WriteString(`
[출력 형식]
## 가격 비교
(상품A와 상품B의 가격을 비교하는 문장)

## 가격 추이 분석
(3개월간 가격 변동을 설명하는 문장)

## 종합 추천
(추천 상품과 이유를 설명하는 문장)

먼저 영어로 작성한 후 한국어로 번역해서 최종 결과만 보여주세요.
영어 원문은 출력하지 마세요.
`)

	return sb.String()
}

// NewGenerationRequest builds the single non-streaming request for the narrative.
func NewGenerationRequest(model string, record dto.ComparisonRecord) (dto.GenerationRequest, error) {
	jsonData, err := MarshalRecord(record)
	if err != nil {
		return dto.GenerationRequest{}, err
	}

	return dto.GenerationRequest{
		Model:  model,
		Stream: false,
		Messages: []dto.ChatMessage{
			{Role: dto.RoleUser, Content: BuildNarrativePrompt(jsonData)},
		},
	}, nil
}
