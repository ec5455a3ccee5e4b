package repository

import (
	"context"
	"errors"
	"time"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/job"
	"crewmatch/internal/domain/skill"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows FindJobs. Zero fields do not filter.
type JobFilter struct {
	Statuses      []job.Status
	EventDateFrom *time.Time
	EventDateTo   *time.Time
	CategoryID    *uuid.UUID
	PosterID      *uuid.UUID
	UrgentOnly    bool
}

type JobRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	FindJobs(ctx context.Context, f JobFilter) ([]job.Job, error)
	CountJobs(ctx context.Context, f JobFilter) (int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `j.id, j.title, COALESCE(j.description, ''), COALESCE(j.location, ''),
	j.category_id, COALESCE(c.name, ''), j.poster_id, j.status, j.event_date,
	COALESCE(j.is_urgent, false), j.created_at`

const jobFrom = ` FROM jobs j LEFT JOIN job_categories c ON c.id = j.category_id`

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var category uuid.NullUUID
	var status string
	if err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Location,
		&category, &j.CategoryName, &j.PosterID, &status, &j.EventDate,
		&j.IsUrgent, &j.CreatedAt,
	); err != nil {
		return job.Job{}, err
	}
	if category.Valid {
		j.CategoryID = category.UUID
	}
	j.Status = job.Status(status)
	return j, nil
}

func (f JobFilter) where() *where {
	w := &where{}
	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			statuses = append(statuses, string(s))
		}
		w.add("j.status = ANY($%d::text[])", statuses)
	}
	if f.EventDateFrom != nil {
		w.add("j.event_date >= $%d", job.DateOnly(*f.EventDateFrom))
	}
	if f.EventDateTo != nil {
		w.add("j.event_date <= $%d", job.DateOnly(*f.EventDateTo))
	}
	w.addUUID("j.category_id = $%d", f.CategoryID)
	w.addUUID("j.poster_id = $%d", f.PosterID)
	if f.UrgentOnly {
		w.add("j.is_urgent = $%d", true)
	}
	return w
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+jobFrom+` WHERE j.id = $1`, id))
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}

	skills, err := r.requiredSkills(ctx, []uuid.UUID{j.ID})
	if err != nil {
		return job.Job{}, err
	}
	j.RequiredSkills = skills[j.ID]
	return j, nil
}

// FindJobs returns matching jobs newest first, each with its required skills.
func (r *PostgresJobRepository) FindJobs(ctx context.Context, f JobFilter) ([]job.Job, error) {
	w := f.where()
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+jobFrom+w.clause()+` ORDER BY j.created_at DESC`, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
		ids = append(ids, j.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skills, err := r.requiredSkills(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].RequiredSkills = skills[out[i].ID]
	}
	return out, nil
}

func (r *PostgresJobRepository) CountJobs(ctx context.Context, f JobFilter) (int, error) {
	w := f.where()
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs j`+w.clause(), w.args...)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresJobRepository) requiredSkills(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID][]skill.Skill, error) {
	out := make(map[uuid.UUID][]skill.Skill, len(jobIDs))
	if len(jobIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT jrs.job_id, s.id, s.name, COALESCE(s.description, ''), COALESCE(s.category, '')
		 FROM job_required_skills jrs
		 JOIN skills s ON s.id = jrs.skill_id
		 WHERE jrs.job_id = ANY($1::uuid[])
		 ORDER BY s.name ASC`,
		uuidStrings(jobIDs),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var jobID uuid.UUID
		var s skill.Skill
		if err := rows.Scan(&jobID, &s.ID, &s.Name, &s.Description, &s.Category); err != nil {
			return nil, err
		}
		out[jobID] = append(out[jobID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
