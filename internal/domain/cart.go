package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is an anonymous staging area addressed by an unguessable UUID.
type Cart struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Items     []CartItem `json:"items"`
}

type CartItem struct {
	ID       int64          `json:"id"`
	CartID   string         `json:"-"`
	Product  ProductSummary `json:"product"`
	Quantity int            `json:"quantity"`
}

// TotalPrice sums unit_price * quantity over all items. Derived at read
// time, never stored.
func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

func (i CartItem) TotalPrice() decimal.Decimal {
	return i.Product.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
