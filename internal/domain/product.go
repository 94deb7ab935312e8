package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Inventory    int             `json:"inventory"`
	CollectionID int64           `json:"collection_id"`
	LastUpdate   time.Time       `json:"last_update"`
	Promotions   []Promotion     `json:"promotions,omitempty"`
	Images       []ProductImage  `json:"images,omitempty"`
}

// ProductSummary is the reduced shape embedded in cart and order lines.
type ProductSummary struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type ProductImage struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"-"`
	Image     string `json:"image"`
}

type Promotion struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
}

func (p Product) Summary() ProductSummary {
	return ProductSummary{ID: p.ID, Title: p.Title, UnitPrice: p.UnitPrice}
}
