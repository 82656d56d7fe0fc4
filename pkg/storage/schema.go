package storage

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-scribe/article"
)

// Models lists every bun model the store persists, in creation order.
func Models() []any {
	return []any{
		(*article.Author)(nil),
		(*article.Article)(nil),
		(*article.GenerationJob)(nil),
	}
}

// CreateTables ensures the schema exists. It is idempotent and intended for
// embedded SQLite deployments and tests; production Postgres schemas are
// expected to be managed by the host application's migrations.
func CreateTables(ctx context.Context, db *bun.DB) error {
	for _, model := range Models() {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table %T: %w", model, err)
		}
	}
	return nil
}
