package order

import (
	"context"
	"errors"

	"storefront/internal/domain"
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

// getOrCreateCustomerSQL resolves the customer row for a user id,
// inserting one with defaults on first access. The UNION arm covers the
// conflict case where the insert returns nothing.
const getOrCreateCustomerSQL = `
WITH ins AS (
	INSERT INTO customers (user_id)
	VALUES ($1)
	ON CONFLICT (user_id) DO NOTHING
	RETURNING id
)
SELECT id FROM ins
UNION ALL
SELECT id FROM customers WHERE user_id = $1
LIMIT 1
`

func (r *postgresRepo) PlaceFromCart(ctx context.Context, cartID string, userID int64) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock the cart row so concurrent placements of the same cart
	// serialize; the loser then observes the cart gone.
	var locked string
	err = tx.QueryRow(ctx, `SELECT id::text FROM carts WHERE id = $1 FOR UPDATE`, cartID).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var customerID int64
	if err := tx.QueryRow(ctx, getOrCreateCustomerSQL, userID).Scan(&customerID); err != nil {
		return nil, err
	}

	// Consistent read of cart lines with each product's price at this
	// instant; these values are what gets frozen onto the order items.
	rows, err := tx.Query(ctx, `
SELECT ci.product_id, p.title, ci.quantity, p.unit_price
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1
ORDER BY ci.id ASC
`, cartID)
	if err != nil {
		return nil, err
	}

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.Product.ID, &item.Product.Title, &item.Quantity, &item.UnitPrice); err != nil {
			rows.Close()
			return nil, err
		}
		item.Product.UnitPrice = item.UnitPrice
		items = append(items, item)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	var order domain.Order
	err = tx.QueryRow(ctx, `
INSERT INTO orders (customer_id)
VALUES ($1)
RETURNING id, customer_id, payment_status, placed_at
`, customerID).Scan(&order.ID, &order.CustomerID, &order.PaymentStatus, &order.PlacedAt)
	if err != nil {
		return nil, translateErr(err)
	}

	batch := &pgx.Batch{}
	for i := range items {
		items[i].OrderID = order.ID
		batch.Queue(`
INSERT INTO order_items (order_id, product_id, quantity, unit_price)
VALUES ($1, $2, $3, $4)
RETURNING id
`, order.ID, items[i].Product.ID, items[i].Quantity, items[i].UnitPrice)
	}
	br := tx.SendBatch(ctx, batch)
	for i := range items {
		if err := br.QueryRow().Scan(&items[i].ID); err != nil {
			br.Close()
			return nil, translateErr(err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, translateErr(err)
	}

	// Cart items follow via ON DELETE CASCADE.
	if _, err := tx.Exec(ctx, `DELETE FROM carts WHERE id = $1`, cartID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	order.Items = items
	return &order, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const q = `
SELECT id, customer_id, payment_status, placed_at
FROM orders
WHERE id = $1
`
	var order domain.Order
	err := r.pool.QueryRow(ctx, q, id).Scan(&order.ID, &order.CustomerID, &order.PaymentStatus, &order.PlacedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	items, err := r.fetchItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	return r.list(ctx, `
SELECT id, customer_id, payment_status, placed_at
FROM orders
WHERE customer_id = $1
ORDER BY placed_at DESC
`, customerID)
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	return r.list(ctx, `
SELECT id, customer_id, payment_status, placed_at
FROM orders
ORDER BY placed_at DESC
`)
}

func (r *postgresRepo) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Order, error) {
	const q = `
UPDATE orders
SET payment_status = $1
WHERE id = $2
RETURNING id, customer_id, payment_status, placed_at
`
	var order domain.Order
	err := r.pool.QueryRow(ctx, q, string(status), id).Scan(&order.ID, &order.CustomerID, &order.PaymentStatus, &order.PlacedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	items, err := r.fetchItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *postgresRepo) list(ctx context.Context, q string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.PaymentStatus, &order.PlacedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.fetchItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *postgresRepo) fetchItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	const q = `
SELECT oi.id, oi.order_id, oi.product_id, p.title, p.unit_price, oi.quantity, oi.unit_price
FROM order_items oi
JOIN products p ON p.id = oi.product_id
WHERE oi.order_id = $1
ORDER BY oi.id ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.Product.ID,
			&item.Product.Title,
			&item.Product.UnitPrice,
			&item.Quantity,
			&item.UnitPrice,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func translateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return domain.ErrIntegrity
	}
	return err
}
