package repo

import (
	"context"
	"sync"

	"github.com/pxshao1010-gif/independent-station/internal/errs"
	"github.com/pxshao1010-gif/independent-station/internal/models"
	"github.com/pxshao1010-gif/independent-station/internal/store"
)

// UsersJSON keeps users in the JSON record store. Every mutation is a
// whole-collection read-modify-write; the mutex serializes those cycles
// within this process.
type UsersJSON struct {
	S  store.Store
	mu sync.Mutex
}

func (r *UsersJSON) load(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.S.Load(ctx, store.CollectionUsers, &users); err != nil {
		return nil, errs.Internal(err, "load users")
	}
	return users, nil
}

func (r *UsersJSON) FindByID(ctx context.Context, id string) (models.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, errs.NotFound("User not found")
}

func (r *UsersJSON) FindByEmail(ctx context.Context, email string) (models.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, errs.NotFound("User not found")
}

func (r *UsersJSON) Create(ctx context.Context, u models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range users {
		if existing.Email == u.Email {
			return errs.Conflict("Email already registered")
		}
	}
	users = append(users, u)
	if err := r.S.Save(ctx, store.CollectionUsers, users); err != nil {
		return errs.Internal(err, "save users")
	}
	return nil
}

func (r *UsersJSON) ReplaceCart(ctx context.Context, userID string, items []models.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == userID {
			users[i].Cart = models.CloneItems(items)
			if err := r.S.Save(ctx, store.CollectionUsers, users); err != nil {
				return errs.Internal(err, "save users")
			}
			return nil
		}
	}
	return errs.NotFound("User not found")
}
