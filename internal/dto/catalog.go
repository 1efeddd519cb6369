package dto

type CompareRequest struct {
	Pcode1 int64 `json:"pcode1" validate:"required"`
	Pcode2 int64 `json:"pcode2" validate:"required"`
}

type CompareResponse struct {
	Pcode1   int64  `json:"pcode1"`
	Pcode2   int64  `json:"pcode2"`
	Analysis string `json:"analysis"`
}

type SearchRequest struct {
	Query string `query:"query" validate:"required"`
}

type SimilarImagesRequest struct {
	Pcode string `query:"pcode" validate:"required"`
	Top   int    `query:"top" validate:"omitempty,min=1,max=100"`
}

type ProductItem struct {
	Pcode       int64  `json:"pcode"`
	ProductName string `json:"productName"`
	PriceMin    int    `json:"priceMin"`
	PriceMax    int    `json:"priceMax"`
	URL         string `json:"url"`
	Image       string `json:"image"`
}

type SearchResult struct {
	Query      string        `json:"query"`
	TotalFound int           `json:"totalFound"`
	Products   []ProductItem `json:"products"`
}

type IngestResult struct {
	Rows     int `json:"rows"`
	Skipped  int `json:"skipped"`
	Upserted int `json:"upserted"`
}
