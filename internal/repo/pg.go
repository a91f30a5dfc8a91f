package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
create table if not exists users (
	id            text primary key,
	email         text not null unique,
	name          text not null default '',
	password_hash text not null,
	cart          jsonb not null default '[]',
	created_at    timestamptz not null
);

create table if not exists products (
	id  text primary key,
	doc jsonb not null
);

create table if not exists orders (
	id         text primary key,
	user_id    text,
	cart       jsonb not null,
	customer   jsonb not null,
	status     text not null,
	created_at timestamptz not null,
	paid_at    timestamptz
);

create index if not exists orders_user_id_idx on orders (user_id);
`

// Bootstrap applies the idempotent schema. Ran once at startup when the
// postgres backend is selected.
func Bootstrap(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, schema)
	return err
}
