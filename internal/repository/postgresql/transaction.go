package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/staffsight/hr-analytics-go/internal/pkg/database"
)

// GetQuerier returns either transaction or pool
// Used in repositories to support both transactional and non-transactional operations
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
