package product

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

const productColumns = `id, title, slug, COALESCE(description, ''), unit_price, inventory, collection_id, last_update`

func (r *postgresRepo) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO products (title, slug, description, unit_price, inventory, collection_id)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)
RETURNING ` + productColumns
	var p domain.Product
	err = tx.QueryRow(ctx, q, in.Title, in.Slug, in.Description, in.UnitPrice, in.Inventory, in.CollectionID).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.UnitPrice, &p.Inventory, &p.CollectionID, &p.LastUpdate,
	)
	if err != nil {
		return nil, translateErr(err)
	}

	if err := replacePromotions(ctx, tx, p.ID, in.PromotionIDs); err != nil {
		return nil, translateErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, p.ID)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.UnitPrice, &p.Inventory, &p.CollectionID, &p.LastUpdate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	images, err := r.ListImages(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Images = images

	promos, err := r.listPromotions(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Promotions = promos

	return &p, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, `
SELECT `+productColumns+`
FROM products
ORDER BY id ASC
`)
}

func (r *postgresRepo) ListByCollection(ctx context.Context, collectionID int64) ([]domain.Product, error) {
	return r.list(ctx, `
SELECT `+productColumns+`
FROM products
WHERE collection_id = $1
ORDER BY id ASC
`, collectionID)
}

func (r *postgresRepo) list(ctx context.Context, q string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Description, &p.UnitPrice, &p.Inventory, &p.CollectionID, &p.LastUpdate,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range products {
		images, err := r.ListImages(ctx, products[i].ID)
		if err != nil {
			return nil, err
		}
		products[i].Images = images
	}
	return products, nil
}

func (r *postgresRepo) Update(ctx context.Context, id int64, in CreateProductInput) (*domain.Product, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
UPDATE products
SET title = $1,
    slug = $2,
    description = NULLIF($3, ''),
    unit_price = $4,
    inventory = $5,
    collection_id = $6,
    last_update = now()
WHERE id = $7
RETURNING id
`
	var updatedID int64
	err = tx.QueryRow(ctx, q, in.Title, in.Slug, in.Description, in.UnitPrice, in.Inventory, in.CollectionID, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, translateErr(err)
	}

	if err := replacePromotions(ctx, tx, id, in.PromotionIDs); err != nil {
		return nil, translateErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrProtected
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) AddImage(ctx context.Context, productID int64, image string) (*domain.ProductImage, error) {
	const q = `
INSERT INTO product_images (product_id, image)
VALUES ($1, $2)
RETURNING id, product_id, image
`
	var img domain.ProductImage
	if err := r.pool.QueryRow(ctx, q, productID, image).Scan(&img.ID, &img.ProductID, &img.Image); err != nil {
		return nil, translateErr(err)
	}
	return &img, nil
}

func (r *postgresRepo) ListImages(ctx context.Context, productID int64) ([]domain.ProductImage, error) {
	const q = `
SELECT id, product_id, image
FROM product_images
WHERE product_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.ProductImage
	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.Image); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *postgresRepo) listPromotions(ctx context.Context, productID int64) ([]domain.Promotion, error) {
	const q = `
SELECT p.id, p.description, p.discount
FROM promotions p
JOIN product_promotions pp ON pp.promotion_id = p.id
WHERE pp.product_id = $1
ORDER BY p.id ASC
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promos []domain.Promotion
	for rows.Next() {
		var promo domain.Promotion
		if err := rows.Scan(&promo.ID, &promo.Description, &promo.Discount); err != nil {
			return nil, err
		}
		promos = append(promos, promo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return promos, nil
}

func replacePromotions(ctx context.Context, tx pgx.Tx, productID int64, promotionIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM product_promotions WHERE product_id = $1`, productID); err != nil {
		return err
	}
	for _, promoID := range promotionIDs {
		if _, err := tx.Exec(ctx, `
INSERT INTO product_promotions (product_id, promotion_id)
VALUES ($1, $2)
`, productID, promoID); err != nil {
			return err
		}
	}
	return nil
}

func translateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return domain.ErrIntegrity
		case "23505":
			return domain.ErrAlreadyExists
		}
	}
	return err
}
