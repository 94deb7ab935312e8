package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// CSVImporter reads catalog CSV exports and upserts products. Expected
// columns: title, slug, description, unit_price, inventory, collection.
// Unknown collections are created on the fly.
type CSVImporter struct {
	reader *csv.Reader
	pool   *pgxpool.Pool

	collections map[string]int64
}

func NewCSVImporter(r io.Reader, pool *pgxpool.Pool) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	return &CSVImporter{
		reader:      csvr,
		pool:        pool,
		collections: make(map[string]int64),
	}
}

type csvRow struct {
	Title      string
	Slug       string
	Desc       string
	Price      decimal.Decimal
	Inventory  int
	Collection string
}

// Run parses CSV rows and upserts products keyed by slug.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if row == nil {
			continue
		}

		if err := i.save(ctx, row); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	collectionID, err := i.ensureCollection(ctx, row.Collection)
	if err != nil {
		return fmt.Errorf("ensure collection %q: %w", row.Collection, err)
	}

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
	_, err = i.pool.Exec(ctx, q, row.Title, row.Slug, row.Desc, row.Price, row.Inventory, collectionID)
	if err != nil {
		return fmt.Errorf("upsert product %q: %w", row.Slug, err)
	}
	return nil
}

func (i *CSVImporter) ensureCollection(ctx context.Context, title string) (int64, error) {
	if id, ok := i.collections[title]; ok {
		return id, nil
	}
	var id int64
	err := i.pool.QueryRow(ctx, `SELECT id FROM collections WHERE title = $1`, title).Scan(&id)
	if err != nil {
		err = i.pool.QueryRow(ctx, `INSERT INTO collections (title) VALUES ($1) RETURNING id`, title).Scan(&id)
		if err != nil {
			return 0, err
		}
	}
	i.collections[title] = id
	return id, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	title := pick(record, index, "title")
	slug := pick(record, index, "slug")
	if title == "" && slug == "" {
		return nil, nil
	}
	if title == "" || slug == "" {
		return nil, fmt.Errorf("row missing title or slug: %v", record)
	}
	collection := pick(record, index, "collection")
	if collection == "" {
		return nil, fmt.Errorf("row %q missing collection", slug)
	}

	price, err := decimal.NewFromString(pick(record, index, "unit_price"))
	if err != nil {
		return nil, fmt.Errorf("row %q: bad unit_price: %w", slug, err)
	}
	if price.LessThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("row %q: unit_price below 1", slug)
	}

	inventory := 0
	if raw := pick(record, index, "inventory"); raw != "" {
		inventory, err = strconv.Atoi(raw)
		if err != nil || inventory < 0 {
			return nil, fmt.Errorf("row %q: bad inventory %q", slug, raw)
		}
	}

	return &csvRow{
		Title:      title,
		Slug:       slug,
		Desc:       pick(record, index, "description"),
		Price:      price,
		Inventory:  inventory,
		Collection: collection,
	}, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
