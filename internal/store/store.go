package store

import "context"

// Collection names of the three persisted record sets.
const (
	CollectionUsers    = "users"
	CollectionProducts = "products"
	CollectionOrders   = "orders"
)

// Store is the whole-collection JSON record store the repositories sit
// on: Load reads an entire collection into out, Save rewrites it in full.
// There is no partial update and no cross-process atomicity; the last
// writer wins. A missing collection loads as empty.
type Store interface {
	Load(ctx context.Context, collection string, out any) error
	Save(ctx context.Context, collection string, v any) error
}
