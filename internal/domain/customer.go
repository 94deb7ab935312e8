package domain

import "time"

type Membership string

const (
	MembershipBronze Membership = "B"
	MembershipSilver Membership = "S"
	MembershipGold   Membership = "G"
)

// Customer is the storefront profile tied one-to-one to a user identity.
// It is created lazily on the first authenticated access.
type Customer struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"-"`
	Phone      string     `json:"phone"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	Membership Membership `json:"membership"`
}
