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

type UsersPG struct {
	DB *pgxpool.Pool
}

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	var cart []byte
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &cart, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, errs.NotFound("User not found")
	}
	if err != nil {
		return models.User{}, errs.Internal(err, "query user")
	}
	if err := json.Unmarshal(cart, &u.Cart); err != nil {
		return models.User{}, errs.Internal(err, "decode cart")
	}
	return u, nil
}

func (r *UsersPG) FindByID(ctx context.Context, id string) (models.User, error) {
	return scanUser(r.DB.QueryRow(ctx, `
		select id, email, name, password_hash, cart, created_at
		from users where id = $1
	`, id))
}

func (r *UsersPG) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return scanUser(r.DB.QueryRow(ctx, `
		select id, email, name, password_hash, cart, created_at
		from users where email = $1
	`, email))
}

func (r *UsersPG) Create(ctx context.Context, u models.User) error {
	if u.Cart == nil {
		u.Cart = []models.LineItem{}
	}
	cart, err := json.Marshal(u.Cart)
	if err != nil {
		return errs.Internal(err, "encode cart")
	}
	tag, err := r.DB.Exec(ctx, `
		insert into users (id, email, name, password_hash, cart, created_at)
		values ($1, $2, $3, $4, $5, $6)
		on conflict (email) do nothing
	`, u.ID, u.Email, u.Name, u.PasswordHash, cart, u.CreatedAt)
	if err != nil {
		return errs.Internal(err, "insert user")
	}
	if tag.RowsAffected() == 0 {
		return errs.Conflict("Email already registered")
	}
	return nil
}

func (r *UsersPG) ReplaceCart(ctx context.Context, userID string, items []models.LineItem) error {
	if items == nil {
		items = []models.LineItem{}
	}
	cart, err := json.Marshal(items)
	if err != nil {
		return errs.Internal(err, "encode cart")
	}
	tag, err := r.DB.Exec(ctx, `update users set cart = $2 where id = $1`, userID, cart)
	if err != nil {
		return errs.Internal(err, "update cart")
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound("User not found")
	}
	return nil
}
