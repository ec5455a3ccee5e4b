package repository

import (
	"context"
	"strings"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/job"

	"github.com/google/uuid"
)

type CategoryRepository interface {
	GetOrCreateCategory(ctx context.Context, c job.Category) (job.Category, bool, error)
}

type PostgresCategoryRepository struct {
	db database.DB
}

func NewPostgresCategoryRepository(db database.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

// GetOrCreateCategory returns the stored category and whether this call created it.
func (r *PostgresCategoryRepository) GetOrCreateCategory(ctx context.Context, c job.Category) (job.Category, bool, error) {
	name := strings.TrimSpace(c.Name)

	n, err := r.db.Exec(ctx,
		`INSERT INTO job_categories (id, name, description, icon)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name) DO NOTHING`,
		uuid.New(), name, c.Description, c.Icon,
	)
	if err != nil {
		return job.Category{}, false, err
	}

	row := r.db.QueryRow(ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(icon, '')
		 FROM job_categories
		 WHERE name = $1`,
		name,
	)
	var out job.Category
	if err := row.Scan(&out.ID, &out.Name, &out.Description, &out.Icon); err != nil {
		return job.Category{}, false, err
	}
	return out, n > 0, nil
}
