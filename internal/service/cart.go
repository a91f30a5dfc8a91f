package service

import (
	"context"

	"github.com/pxshao1010-gif/independent-station/internal/errs"
	"github.com/pxshao1010-gif/independent-station/internal/models"
	"github.com/pxshao1010-gif/independent-station/internal/repo"
)

// Cart manages the server-persisted cart of authenticated users. The
// client computes merges locally (models.MergeAdd / models.SetQuantity)
// and syncs the full result here; Replace is a full overwrite, not a
// merge.
type Cart struct {
	Users repo.Users
}

func (s *Cart) Get(ctx context.Context, userID string) ([]models.LineItem, error) {
	u, err := s.Users.FindByID(ctx, userID)
	if errs.IsNotFound(err) {
		return []models.LineItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	if u.Cart == nil {
		return []models.LineItem{}, nil
	}
	return u.Cart, nil
}

func (s *Cart) Replace(ctx context.Context, userID string, items []models.LineItem) error {
	if items == nil {
		return errs.Validation("cart must be an array")
	}
	if err := models.ValidateItems(items); err != nil {
		return errs.Validation(err.Error())
	}
	return s.Users.ReplaceCart(ctx, userID, items)
}
