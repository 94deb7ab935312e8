package cart

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context) (*domain.Cart, error) {
	const q = `
INSERT INTO carts (id)
VALUES ($1)
RETURNING id::text, created_at
`
	var cart domain.Cart
	if err := r.pool.QueryRow(ctx, q, uuid.NewString()).Scan(&cart.ID, &cart.CreatedAt); err != nil {
		return nil, err
	}
	cart.Items = []domain.CartItem{}
	return &cart, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Cart, error) {
	const q = `
SELECT id::text, created_at
FROM carts
WHERE id = $1
`
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, q, id).Scan(&cart.ID, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `
SELECT ci.id, ci.cart_id::text, ci.product_id, p.title, p.unit_price, ci.quantity
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1
ORDER BY ci.id ASC
`
	rows, err := r.pool.Query(ctx, itemsQuery, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart.Items = []domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.Product.ID,
			&item.Product.Title,
			&item.Product.UnitPrice,
			&item.Quantity,
		); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) UpsertItem(ctx context.Context, cartID string, productID int64, quantity int) (*domain.CartItem, error) {
	const q = `
INSERT INTO cart_items (cart_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity
RETURNING id
`
	var itemID int64
	if err := r.pool.QueryRow(ctx, q, cartID, productID, quantity).Scan(&itemID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrIntegrity
		}
		return nil, err
	}
	return r.GetItem(ctx, cartID, itemID)
}

func (r *postgresRepo) GetItem(ctx context.Context, cartID string, itemID int64) (*domain.CartItem, error) {
	const q = `
SELECT ci.id, ci.cart_id::text, ci.product_id, p.title, p.unit_price, ci.quantity
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1 AND ci.id = $2
`
	var item domain.CartItem
	err := r.pool.QueryRow(ctx, q, cartID, itemID).Scan(
		&item.ID,
		&item.CartID,
		&item.Product.ID,
		&item.Product.Title,
		&item.Product.UnitPrice,
		&item.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) UpdateItemQuantity(ctx context.Context, cartID string, itemID int64, quantity int) (*domain.CartItem, error) {
	cmd, err := r.pool.Exec(ctx, `
UPDATE cart_items
SET quantity = $1
WHERE cart_id = $2 AND id = $3
`, quantity, cartID, itemID)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetItem(ctx, cartID, itemID)
}

func (r *postgresRepo) DeleteItem(ctx context.Context, cartID string, itemID int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1 AND id = $2`, cartID, itemID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
