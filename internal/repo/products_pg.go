package repo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pxshao1010-gif/independent-station/internal/errs"
	"github.com/pxshao1010-gif/independent-station/internal/models"
)

// ProductsPG stores each catalog entry as a jsonb document, keeping the
// bilingual payload shape identical to the file backend.
type ProductsPG struct {
	DB *pgxpool.Pool
}

func (r *ProductsPG) All(ctx context.Context) ([]models.Product, error) {
	rows, err := r.DB.Query(ctx, `select doc from products order by id`)
	if err != nil {
		return nil, errs.Internal(err, "query products")
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, errs.Internal(err, "scan product")
		}
		var p models.Product
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, errs.Internal(err, "decode product")
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Internal(err, "query products")
	}
	return products, nil
}

func (r *ProductsPG) FindByID(ctx context.Context, id string) (models.Product, error) {
	var doc []byte
	err := r.DB.QueryRow(ctx, `select doc from products where id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Product{}, errs.NotFound("Not found")
	}
	if err != nil {
		return models.Product{}, errs.Internal(err, "query product")
	}
	var p models.Product
	if err := json.Unmarshal(doc, &p); err != nil {
		return models.Product{}, errs.Internal(err, "decode product")
	}
	return p, nil
}

// Import upserts the seed catalog, used at startup so a fresh database
// serves the same products as the file backend.
func (r *ProductsPG) Import(ctx context.Context, products []models.Product) error {
	for _, p := range products {
		doc, err := json.Marshal(p)
		if err != nil {
			return errs.Internal(err, "encode product")
		}
		if _, err := r.DB.Exec(ctx, `
			insert into products (id, doc) values ($1, $2)
			on conflict (id) do update set doc = excluded.doc
		`, p.ID, doc); err != nil {
			return errs.Internal(err, "upsert product")
		}
	}
	return nil
}
