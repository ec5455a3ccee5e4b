package repository

import (
	"context"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/review"

	"github.com/google/uuid"
)

// ReviewFilter narrows FindReviews. Limit <= 0 returns every match.
type ReviewFilter struct {
	RevieweeID *uuid.UUID
	ReviewerID *uuid.UUID
	JobID      *uuid.UUID
	Rating     *int
	Featured   *bool
	Limit      int
}

type ReviewRepository interface {
	FindReviews(ctx context.Context, f ReviewFilter) ([]review.Review, error)
	CountReviews(ctx context.Context, f ReviewFilter) (int, error)
}

type PostgresReviewRepository struct {
	db database.DB
}

func NewPostgresReviewRepository(db database.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

func (f ReviewFilter) where() *where {
	w := &where{}
	w.addUUID("r.reviewee_id = $%d", f.RevieweeID)
	w.addUUID("r.reviewer_id = $%d", f.ReviewerID)
	w.addUUID("r.job_id = $%d", f.JobID)
	if f.Rating != nil {
		w.add("r.rating = $%d", *f.Rating)
	}
	if f.Featured != nil {
		w.add("r.is_featured = $%d", *f.Featured)
	}
	return w
}

// FindReviews returns matching reviews newest first.
func (r *PostgresReviewRepository) FindReviews(ctx context.Context, f ReviewFilter) ([]review.Review, error) {
	w := f.where()
	q := `SELECT r.id, r.job_id, r.reviewer_id, r.reviewee_id, r.review_type, r.rating,
	             COALESCE(r.title, ''), COALESCE(r.comment, ''),
	             r.punctuality, r.quality_of_work, r.communication, r.professionalism,
	             r.job_accuracy, r.payment_timeliness, r.work_environment, r.skill_level, r.reliability,
	             COALESCE(r.would_recommend, false), COALESCE(r.would_work_again, false),
	             COALESCE(r.is_featured, false), r.created_at
	      FROM job_reviews r` + w.clause() + `
	      ORDER BY r.created_at DESC`
	if f.Limit > 0 {
		q += ` LIMIT ` + w.next(f.Limit)
	}

	rows, err := r.db.Query(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]review.Review, 0)
	for rows.Next() {
		var rv review.Review
		var typ string
		if err := rows.Scan(
			&rv.ID, &rv.JobID, &rv.ReviewerID, &rv.RevieweeID, &typ, &rv.Rating,
			&rv.Title, &rv.Comment,
			&rv.Punctuality, &rv.Quality, &rv.Communication, &rv.Professionalism,
			&rv.JobAccuracy, &rv.PaymentTimeliness, &rv.WorkEnvironment, &rv.SkillLevel, &rv.Reliability,
			&rv.WouldRecommend, &rv.WouldWorkAgain,
			&rv.IsFeatured, &rv.CreatedAt,
		); err != nil {
			return nil, err
		}
		rv.Type = review.Type(typ)
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresReviewRepository) CountReviews(ctx context.Context, f ReviewFilter) (int, error) {
	w := f.where()
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM job_reviews r`+w.clause(), w.args...)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}
