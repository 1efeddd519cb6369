package telegram

import (
	"fmt"
	"price-compare/internal/dto"
	"strings"
)

const (
	startMessage = `👋 가격 비교 봇에 오신 것을 환영합니다!

🔎 /search <검색어> - 상품 검색
⚖️ /compare <상품코드1> <상품코드2> - 두 상품 비교 분석
🖼 /similar <상품코드> [개수] - 비슷한 이미지의 상품 찾기
🆘 /help - 도움말`

	helpMessage = `❓ 사용 방법

1. /search 유모차 처럼 검색해서 상품코드를 확인하세요.
2. /compare 1001 2002 로 두 상품의 가격과 추이를 비교합니다.
3. /similar 1001 5 로 비슷한 상품 5개를 찾습니다.

비교 분석은 시간이 조금 걸릴 수 있습니다.`

	unknownCommandMessage = "알 수 없는 명령입니다. /help 로 사용 가능한 명령을 확인하세요."
)

func FormatSearchResult(result *dto.SearchResult) string {
	if result == nil || result.TotalFound == 0 {
		return "검색 결과가 없습니다."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔎 '%s' 검색 결과 %d건\n", result.Query, result.TotalFound))
	for _, p := range result.Products {
		sb.WriteString(fmt.Sprintf("\n[%d] %s\n💰 %s ~ %s원\n", p.Pcode, p.ProductName, formatWon(p.PriceMin), formatWon(p.PriceMax)))
	}
	return sb.String()
}

func FormatSimilarImages(result *dto.SimilarImagesResult) string {
	if result == nil {
		return dto.ErrMsgUnknownScript
	}
	if !result.Success {
		return "❌ " + result.Error
	}
	if result.TotalResults == 0 {
		return "비슷한 상품을 찾지 못했습니다."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🖼 %s 와 비슷한 상품 %d건\n", result.QueryProductID, result.TotalResults))
	for _, img := range result.SimilarImages {
		name := img.ProductName
		if name == "" {
			name = img.ImageName
		}
		sb.WriteString(fmt.Sprintf("\n%s (%.1f%%)", name, img.Similarity*100))
		if img.PriceMin != nil && img.PriceMax != nil {
			sb.WriteString(fmt.Sprintf("\n💰 %s ~ %s원", formatWon(*img.PriceMin), formatWon(*img.PriceMax)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatWon groups digits by thousands: 1290000 -> "1,290,000".
func formatWon(v int) string {
	s := fmt.Sprintf("%d", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
