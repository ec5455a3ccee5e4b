package seeder

import (
	"context"

	"crewmatch/internal/database"
)

// Seeder inserts reference rows. Run must be idempotent and reports how many rows
// it created.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) (int, error)
}
