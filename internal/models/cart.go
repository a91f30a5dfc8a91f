package models

import "fmt"

// LineItem is one cart entry. ID is the composite product+variant key
// ("<productId>-<sku>"); title and price are snapshotted when the item is
// first added and never re-resolved.
type LineItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId,omitempty"`
	Title     string  `json:"title,omitempty"`
	Price     float64 `json:"price"`
	SKU       string  `json:"sku,omitempty"`
	Qty       int     `json:"qty"`
	Image     string  `json:"image,omitempty"`
	// ProductIDs carries the constituent products of a package item.
	ProductIDs []string `json:"productIds,omitempty"`
}

// MergeAdd applies the add-to-cart policy: an existing composite id gets
// its quantity bumped and keeps the first-seen price/title; a new id is
// appended with quantity 1.
func MergeAdd(cart []LineItem, item LineItem) []LineItem {
	for i := range cart {
		if cart[i].ID == item.ID {
			next := CloneItems(cart)
			next[i].Qty++
			return next
		}
	}
	item.Qty = 1
	return append(CloneItems(cart), item)
}

// SetQuantity sets the quantity for the given composite id; zero or
// negative removes the line entirely.
func SetQuantity(cart []LineItem, id string, qty int) []LineItem {
	next := make([]LineItem, 0, len(cart))
	for _, it := range cart {
		if it.ID == id {
			if qty <= 0 {
				continue
			}
			it.Qty = qty
		}
		next = append(next, cloneItem(it))
	}
	return next
}

// CloneItems deep-copies a cart so order snapshots cannot alias the live
// cart slice.
func CloneItems(cart []LineItem) []LineItem {
	if cart == nil {
		return nil
	}
	out := make([]LineItem, len(cart))
	for i, it := range cart {
		out[i] = cloneItem(it)
	}
	return out
}

func cloneItem(it LineItem) LineItem {
	if it.ProductIDs != nil {
		ids := make([]string, len(it.ProductIDs))
		copy(ids, it.ProductIDs)
		it.ProductIDs = ids
	}
	return it
}

// ValidateItems checks that every line is well formed: non-empty composite
// id, non-negative price and quantity, no duplicate ids.
func ValidateItems(items []LineItem) error {
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("item %d: missing id", i)
		}
		if it.Price < 0 {
			return fmt.Errorf("item %q: negative price", it.ID)
		}
		if it.Qty < 0 {
			return fmt.Errorf("item %q: negative qty", it.ID)
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("item %q: duplicate id", it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}
