package model

import (
	"time"
)

// Product is a catalog entry keyed by the marketplace product code (pcode).
// PriceBalance holds the raw per-window price history payload exactly as ingested.
type Product struct {
	Pcode        int64     `gorm:"column:pcode;primaryKey;autoIncrement:false" json:"pcode"`
	ProductName  string    `gorm:"column:product_name;type:varchar(500)" json:"productName"`
	URL          string    `gorm:"column:url;type:varchar(500)" json:"url"`
	Image        string    `gorm:"column:image;type:varchar(255)" json:"image"`
	PriceMin     int       `gorm:"column:price_min" json:"priceMin"`
	PriceMax     int       `gorm:"column:price_max" json:"priceMax"`
	PriceBalance string    `gorm:"column:price_balance;type:text" json:"priceBalance"`
	DetailJSON   *string   `gorm:"column:detail_json;type:text" json:"detailJson"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

type SearchProductParam struct {
	Keywords []string
	Limit    int
}
