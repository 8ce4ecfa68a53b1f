package sequencepg

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PostgresProvider implements sequence.Provider on a counters table. The
// increment is a single upsert statement, so it stays atomic across
// concurrent connections and server instances.
type PostgresProvider struct {
	db *sqlx.DB
}

func NewPostgresProvider(db *sqlx.DB) *PostgresProvider {
	return &PostgresProvider{db: db}
}

// Next returns the next value of the named counter, creating it at 1 on
// first use.
func (p *PostgresProvider) Next(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO counters (name, value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value
	`

	var value int64
	if err := p.db.GetContext(ctx, &value, query, name); err != nil {
		return 0, fmt.Errorf("failed to advance counter %q: %w", name, err)
	}
	return value, nil
}
