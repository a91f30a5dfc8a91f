package repo

import (
	"context"

	"github.com/pxshao1010-gif/independent-station/internal/errs"
	"github.com/pxshao1010-gif/independent-station/internal/models"
	"github.com/pxshao1010-gif/independent-station/internal/store"
)

// ProductsJSON reads the catalog from the JSON record store. The catalog
// is read-only in this service, so no mutex is needed.
type ProductsJSON struct {
	S store.Store
}

func (r *ProductsJSON) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.S.Load(ctx, store.CollectionProducts, &products); err != nil {
		return nil, errs.Internal(err, "load products")
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (r *ProductsJSON) FindByID(ctx context.Context, id string) (models.Product, error) {
	products, err := r.All(ctx)
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, errs.NotFound("Not found")
}
