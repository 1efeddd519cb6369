package dto

import "encoding/json"

// SelfMatchThreshold marks a hit as the query image itself.
const SelfMatchThreshold = 0.999

const (
	ErrMsgScriptOutput  = "Python 스크립트 출력 오류"
	ErrMsgUnknownScript = "Unknown error"
)

// SimilarityScriptOutput is the JSON document the similarity script prints on stdout.
type SimilarityScriptOutput struct {
	Success        bool                `json:"success"`
	QueryProductID string              `json:"query_product_id,omitempty"`
	SimilarImages  []SimilarImageMatch `json:"similar_images"`
	Error          string              `json:"error,omitempty"`
}

type SimilarImageMatch struct {
	ProductID  string  `json:"product_id"`
	ImageName  string  `json:"image_name"`
	Similarity float64 `json:"similarity"`
}

type SimilarImage struct {
	ProductID   string  `json:"productId"`
	ImageName   string  `json:"imageName"`
	Similarity  float64 `json:"similarity"`
	ProductName string  `json:"productName,omitempty"`
	PriceMin    *int    `json:"priceMin,omitempty"`
	PriceMax    *int    `json:"priceMax,omitempty"`
}

type SimilarImagesResult struct {
	Success        bool           `json:"success"`
	QueryProductID string         `json:"queryProductId,omitempty"`
	SimilarImages  []SimilarImage `json:"similarImages"`
	TotalResults   int            `json:"totalResults"`
	Error          string         `json:"error,omitempty"`
}

func NewSimilarImagesFailure(msg string) *SimilarImagesResult {
	return &SimilarImagesResult{Success: false, Error: msg}
}

// MarshalJSON writes only success and error for failures; successes always carry the list.
func (r SimilarImagesResult) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}{Success: false, Error: r.Error})
	}

	type result SimilarImagesResult
	if r.SimilarImages == nil {
		r.SimilarImages = []SimilarImage{}
	}
	return json.Marshal(result(r))
}
