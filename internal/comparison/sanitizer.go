package comparison

import "strings"

// hanToHangul maps Han words the model tends to leak back to their Hangul spelling.
var hanToHangul = strings.NewReplacer(
	"上昇", "올랐음",
	"下落", "내렸음",
	"比較", "비교",
	"推薦", "추천",
	"價格", "가격",
	"商品", "상품",
	"分析", "분석",
	"綜合", "종합",
	"安定", "안정",
)

func isKana(r rune) bool {
	return (r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) // Katakana
}

// SanitizeNarrative drops Japanese kana and rewrites known Han words to Hangul.
// Kana go first so that removing them cannot join a new Han word after the rewrite,
// which keeps the function idempotent.
func SanitizeNarrative(text string) string {
	if text == "" {
		return ""
	}
	text = strings.Map(func(r rune) rune {
		if isKana(r) {
			return -1
		}
		return r
	}, text)
	return hanToHangul.Replace(text)
}
