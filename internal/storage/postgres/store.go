package postgres

import (
	"remote-jobs-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewStore wires every repository to the pool. Closing the store closes the pool.
func NewStore(pool *pgxpool.Pool) *storage.Store {
	return storage.NewStore(
		NewJobRepo(pool),
		NewCompanyRepo(pool),
		NewProfileRepo(pool),
		NewApplicationRepo(pool),
		pool.Close,
	)
}
