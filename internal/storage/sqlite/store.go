package sqlite

import (
	"database/sql"

	"remote-jobs-api/internal/storage"
)

// NewStore wires every repository to db. Closing the store closes db.
func NewStore(db *sql.DB) *storage.Store {
	return storage.NewStore(
		NewJobRepo(db),
		NewCompanyRepo(db),
		NewProfileRepo(db),
		NewApplicationRepo(db),
		func() { _ = db.Close() },
	)
}
