package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentComplete PaymentStatus = "complete"
	PaymentFailed   PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentComplete, PaymentFailed:
		return true
	}
	return false
}

// Order is immutable once placed, except for payment_status.
type Order struct {
	ID            int64         `json:"id"`
	CustomerID    int64         `json:"customer"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PlacedAt      time.Time     `json:"placed_at"`
	Items         []OrderItem   `json:"items"`
}

// OrderItem carries the unit price copied from the product at placement
// time; later product price changes never alter it.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"-"`
	Product   ProductSummary  `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
