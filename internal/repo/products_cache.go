package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pxshao1010-gif/independent-station/internal/models"
	"github.com/pxshao1010-gif/independent-station/pkg/cache"
)

const productsKey = "products:all"

// ProductsCached is a read-through cache over a Products repo. A broken
// or cold cache falls back to the inner repo; cache writes are
// best-effort.
type ProductsCached struct {
	Inner Products
	Redis *cache.Redis
	TTL   time.Duration
}

func (r *ProductsCached) All(ctx context.Context) ([]models.Product, error) {
	if b, err := r.Redis.GetBytes(ctx, productsKey); err == nil {
		var products []models.Product
		if err := json.Unmarshal(b, &products); err == nil {
			return products, nil
		}
	}

	products, err := r.Inner.All(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(products); err == nil {
		_ = r.Redis.SetBytes(ctx, productsKey, b, r.TTL)
	}
	return products, nil
}

func (r *ProductsCached) FindByID(ctx context.Context, id string) (models.Product, error) {
	return r.Inner.FindByID(ctx, id)
}
