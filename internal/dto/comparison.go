package dto

// Fixed labels of the structured comparison payload. They are the vocabulary the
// narrative model is told to reuse verbatim, so they stay in Korean.
const (
	LabelProductA = "상품A"
	LabelProductB = "상품B"

	VerdictEqual     = "동일"
	VerdictSimilar   = "비슷함"
	VerdictBothAlike = "둘다비슷함"

	TrendRose      = "올랐음"
	TrendFell      = "내렸음"
	TrendUnchanged = "변동없음"

	ReasonCheaper    = "가격이 더 저렴함"
	ReasonStable     = "가격이 안정적임"
	ReasonDownTrend  = "가격이 내리는 추세임"
	ReasonPreference = "조건이 비슷하므로 개인 취향에 따라 선택"
)

// ComparisonRecord is the fully computed comparison handed to the narrative model.
// Field order is the serialization order.
type ComparisonRecord struct {
	ProductA       ProductSummary  `json:"상품A"`
	ProductB       ProductSummary  `json:"상품B"`
	Price          PriceComparison `json:"가격비교"`
	Trend          TrendAnalysis   `json:"가격추이분석"`
	Recommendation Recommendation  `json:"종합추천"`
}

type ProductSummary struct {
	Name     string `json:"이름"`
	MinPrice int    `json:"최저가"`
	MaxPrice int    `json:"최고가"`
}

type PriceComparison struct {
	Cheaper    string `json:"더저렴한상품"`
	Difference int    `json:"가격차이"`
}

type TrendAnalysis struct {
	ProductA   TrendSummary `json:"상품A추이"`
	ProductB   TrendSummary `json:"상품B추이"`
	MoreStable string       `json:"더안정적인상품"`
}

type TrendSummary struct {
	Delta3Month int    `json:"3개월변동금액"`
	Direction   string `json:"추세"`
}

// Recommendation carries the winner and its reasons. Scores are kept off the wire.
type Recommendation struct {
	Product string   `json:"추천상품"`
	Reasons []string `json:"추천이유"`
	ScoreA  int      `json:"-"`
	ScoreB  int      `json:"-"`
}

// ComparisonResult is what the comparison service hands back to delivery layers.
type ComparisonResult struct {
	Pcode1   int64             `json:"pcode1"`
	Pcode2   int64             `json:"pcode2"`
	Record   *ComparisonRecord `json:"comparison,omitempty"`
	Analysis string            `json:"analysis"`
}
