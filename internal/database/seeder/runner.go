package seeder

import (
	"context"
	"errors"
	"fmt"

	"crewmatch/internal/database"

	"go.uber.org/zap"
)

var errNilDB = errors.New("seeder: nil db")

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

// Run executes the seeders in order and stops at the first failure. The result
// maps seeder name to rows created.
func (r Runner) Run(ctx context.Context, db database.DB) (map[string]int, error) {
	if db == nil {
		return nil, errNilDB
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	created := make(map[string]int, len(r.Seeders))
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		n, err := s.Run(ctx, db)
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		created[s.Name()] = n
		logger.Info("seeded", zap.String("seeder", s.Name()), zap.Int("created", n))
	}
	return created, nil
}
