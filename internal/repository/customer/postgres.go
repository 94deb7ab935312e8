package customer

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetOrCreate(ctx context.Context, userID int64) (*domain.Customer, error) {
	const q = `
WITH ins AS (
	INSERT INTO customers (user_id)
	VALUES ($1)
	ON CONFLICT (user_id) DO NOTHING
	RETURNING id, user_id, phone, birth_date, membership
)
SELECT id, user_id, phone, birth_date, membership FROM ins
UNION ALL
SELECT id, user_id, phone, birth_date, membership FROM customers WHERE user_id = $1
LIMIT 1
`
	var c domain.Customer
	var membership string
	err := r.pool.QueryRow(ctx, q, userID).Scan(&c.ID, &c.UserID, &c.Phone, &c.BirthDate, &membership)
	if err != nil {
		return nil, err
	}
	c.Membership = domain.Membership(membership)
	return &c, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	const q = `
SELECT id, user_id, phone, birth_date, membership
FROM customers
WHERE id = $1
`
	var c domain.Customer
	var membership string
	err := r.pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.UserID, &c.Phone, &c.BirthDate, &membership)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	c.Membership = domain.Membership(membership)
	return &c, nil
}

func (r *postgresRepo) Update(ctx context.Context, userID int64, in UpdateCustomerInput) (*domain.Customer, error) {
	const q = `
UPDATE customers
SET phone = $1,
    birth_date = $2,
    membership = $3
WHERE user_id = $4
RETURNING id, user_id, phone, birth_date, membership
`
	var c domain.Customer
	var membership string
	err := r.pool.QueryRow(ctx, q, in.Phone, in.BirthDate, string(in.Membership), userID).Scan(
		&c.ID, &c.UserID, &c.Phone, &c.BirthDate, &membership,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	c.Membership = domain.Membership(membership)
	return &c, nil
}
