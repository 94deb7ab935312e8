package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Title      string
	Slug       string
	Desc       string
	Price      string
	Inventory  int
	Collection string
}

// Apply inserts a small demo catalog for manual testing. It is
// idempotent: collections are looked up by title and products upsert on
// slug.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	collections := []string{"Apparel", "Kitchen", "Outdoors"}
	ids := make(map[string]int64, len(collections))
	for _, title := range collections {
		id, err := ensureCollection(ctx, pool, title)
		if err != nil {
			return fmt.Errorf("ensure collection %s: %w", title, err)
		}
		ids[title] = id
	}

	products := []productSeed{
		{
			Title:      "Demo T-Shirt",
			Slug:       "demo-t-shirt",
			Desc:       "Soft cotton tee",
			Price:      "19.99",
			Inventory:  120,
			Collection: "Apparel",
		},
		{
			Title:      "Demo Hoodie",
			Slug:       "demo-hoodie",
			Desc:       "Fleece-lined hoodie",
			Price:      "44.50",
			Inventory:  60,
			Collection: "Apparel",
		},
		{
			Title:      "Demo Mug",
			Slug:       "demo-mug",
			Desc:       "Ceramic mug",
			Price:      "12.99",
			Inventory:  300,
			Collection: "Kitchen",
		},
		{
			Title:      "Demo Water Bottle",
			Slug:       "demo-water-bottle",
			Desc:       "Insulated steel bottle",
			Price:      "24.00",
			Inventory:  85,
			Collection: "Outdoors",
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, ids[p.Collection], p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Slug, err)
		}
	}

	return nil
}

func ensureCollection(ctx context.Context, pool *pgxpool.Pool, title string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx, `SELECT id FROM collections WHERE title = $1`, title).Scan(&id)
	if err == nil {
		return id, nil
	}
	err = pool.QueryRow(ctx, `INSERT INTO collections (title) VALUES ($1) RETURNING id`, title).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, collectionID int64, p productSeed) error {
	const q = `
INSERT INTO products (title, slug, description, unit_price, inventory, collection_id)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (slug) DO UPDATE
SET title = EXCLUDED.title,
    description = EXCLUDED.description,
    unit_price = EXCLUDED.unit_price,
    inventory = EXCLUDED.inventory,
    collection_id = EXCLUDED.collection_id,
    last_update = now()
`
	_, err := pool.Exec(ctx, q, p.Title, p.Slug, p.Desc, p.Price, p.Inventory, collectionID)
	return err
}
