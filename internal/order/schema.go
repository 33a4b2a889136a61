package order

import (
	"context"

	"pyronix-studio/pkg"

	"github.com/jmoiron/sqlx"
)

const schema = `
create table if not exists orders (
	order_id             uuid primary key,
	reference            text not null,
	order_status         text not null,
	email                text not null,
	platform             text not null,
	platform_other       text not null default '',
	handle               text not null,
	title                text not null,
	styles               jsonb not null default '[]',
	styles_other         text not null default '',
	voice                jsonb not null default '{}',
	vocal_language_style text not null default 'native',
	mood                 text not null,
	mood_other           text not null default '',
	tempo                text not null,
	energy               int not null,
	subject              text not null,
	ai_summary           text,
	created_at           timestamptz not null
);

create index if not exists orders_created_at_idx on orders (created_at desc);
`

// EnsureSchema creates the orders table on startup when it does not exist.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return &pkg.ErrDBProcedure{
			Cause: "failed to ensure orders schema",
			Err:   err,
		}
	}
	return nil
}
