package repository

import (
	"context"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/job"

	"github.com/google/uuid"
)

// ApplicationFilter narrows FindApplications. PosterID matches applications to
// jobs posted by that user.
type ApplicationFilter struct {
	VolunteerID *uuid.UUID
	JobID       *uuid.UUID
	PosterID    *uuid.UUID
	Status      *job.ApplicationStatus
}

type ApplicationRepository interface {
	FindApplications(ctx context.Context, f ApplicationFilter) ([]job.Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// FindApplications returns matching applications with the job snapshot joined in,
// oldest first.
func (r *PostgresApplicationRepository) FindApplications(ctx context.Context, f ApplicationFilter) ([]job.Application, error) {
	w := &where{}
	w.addUUID("a.volunteer_id = $%d", f.VolunteerID)
	w.addUUID("a.job_id = $%d", f.JobID)
	w.addUUID("j.poster_id = $%d", f.PosterID)
	if f.Status != nil {
		w.add("a.status = $%d", string(*f.Status))
	}

	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.volunteer_id, a.status, COALESCE(a.relevant_experience, ''), a.applied_at,
		        j.title, COALESCE(j.description, ''), COALESCE(j.location, ''), j.poster_id, j.status,
		        j.event_date, COALESCE(j.is_urgent, false), j.created_at
		 FROM job_applications a
		 JOIN jobs j ON j.id = a.job_id`+w.clause()+`
		 ORDER BY a.applied_at ASC`,
		w.args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Application, 0)
	for rows.Next() {
		var a job.Application
		var status, jobStatus string
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.VolunteerID, &status, &a.RelevantExperience, &a.AppliedAt,
			&a.Job.Title, &a.Job.Description, &a.Job.Location, &a.Job.PosterID, &jobStatus,
			&a.Job.EventDate, &a.Job.IsUrgent, &a.Job.CreatedAt,
		); err != nil {
			return nil, err
		}
		a.Status = job.ApplicationStatus(status)
		a.Job.ID = a.JobID
		a.Job.Status = job.Status(jobStatus)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
