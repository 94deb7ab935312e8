package httpserver

import (
	"time"

	"storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// taxRate mirrors the display-only tax factor; the taxed price is
// derived at serialization time and never stored.
var taxRate = decimal.RequireFromString("1.1")

type productResponse struct {
	ID           int64                 `json:"id"`
	Title        string                `json:"title"`
	Slug         string                `json:"slug"`
	Description  string                `json:"description,omitempty"`
	Price        decimal.Decimal       `json:"price"`
	PriceWithTax decimal.Decimal       `json:"price_with_tax"`
	Collection   int64                 `json:"collection"`
	Inventory    int                   `json:"inventory"`
	Images       []domain.ProductImage `json:"images"`
	Promotions   []domain.Promotion    `json:"promotions,omitempty"`
}

func toProductResponse(p domain.Product) productResponse {
	images := p.Images
	if images == nil {
		images = []domain.ProductImage{}
	}
	return productResponse{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Description:  p.Description,
		Price:        p.UnitPrice,
		PriceWithTax: p.UnitPrice.Mul(taxRate).Round(2),
		Collection:   p.CollectionID,
		Inventory:    p.Inventory,
		Images:       images,
		Promotions:   p.Promotions,
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

type cartItemResponse struct {
	ID         int64                 `json:"id"`
	Product    domain.ProductSummary `json:"product"`
	Quantity   int                   `json:"quantity"`
	TotalPrice decimal.Decimal       `json:"total_price"`
}

type cartResponse struct {
	ID         string             `json:"id"`
	CreatedAt  time.Time          `json:"created_at"`
	Items      []cartItemResponse `json:"items"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

func toCartItemResponse(item domain.CartItem) cartItemResponse {
	return cartItemResponse{
		ID:         item.ID,
		Product:    item.Product,
		Quantity:   item.Quantity,
		TotalPrice: item.TotalPrice(),
	}
}

func toCartResponse(cart domain.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, toCartItemResponse(item))
	}
	return cartResponse{
		ID:         cart.ID,
		CreatedAt:  cart.CreatedAt,
		Items:      items,
		TotalPrice: cart.TotalPrice(),
	}
}

type customerResponse struct {
	ID         int64  `json:"id"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birth_date,omitempty"`
	Membership string `json:"membership"`
}

func toCustomerResponse(c domain.Customer) customerResponse {
	out := customerResponse{
		ID:         c.ID,
		Phone:      c.Phone,
		Membership: string(c.Membership),
	}
	if c.BirthDate != nil {
		out.BirthDate = c.BirthDate.Format("2006-01-02")
	}
	return out
}

type orderItemResponse struct {
	ID        int64                 `json:"id"`
	Product   domain.ProductSummary `json:"product"`
	Quantity  int                   `json:"quantity"`
	UnitPrice decimal.Decimal       `json:"unit_price"`
}

type orderResponse struct {
	ID            int64               `json:"id"`
	Customer      int64               `json:"customer"`
	PaymentStatus string              `json:"payment_status"`
	PlacedAt      time.Time           `json:"placed_at"`
	Items         []orderItemResponse `json:"items"`
}

func toOrderResponse(order domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ID:        item.ID,
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return orderResponse{
		ID:            order.ID,
		Customer:      order.CustomerID,
		PaymentStatus: string(order.PaymentStatus),
		PlacedAt:      order.PlacedAt,
		Items:         items,
	}
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}
	return out
}
