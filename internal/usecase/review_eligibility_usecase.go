package usecase

import (
	"context"
	"errors"

	"crewmatch/internal/domain/eligibility"
	"crewmatch/internal/domain/job"
	"crewmatch/internal/repository"

	"github.com/google/uuid"
)

type ReviewEligibilityUsecase interface {
	CanReview(ctx context.Context, actorID, targetID, jobID uuid.UUID) (eligibility.Decision, error)
}

type ReviewEligibility struct {
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	reviews      repository.ReviewRepository
}

func NewReviewEligibilityUsecase(jobs repository.JobRepository, applications repository.ApplicationRepository, reviews repository.ReviewRepository) *ReviewEligibility {
	return &ReviewEligibility{jobs: jobs, applications: applications, reviews: reviews}
}

// CanReview loads the job, its accepted applications and any existing review by
// actor of target on it, then runs the eligibility gate. A denial is a Decision,
// not an error.
func (u *ReviewEligibility) CanReview(ctx context.Context, actorID, targetID, jobID uuid.UUID) (eligibility.Decision, error) {
	if actorID == uuid.Nil {
		return eligibility.Decision{}, ErrUnauthorized
	}
	if targetID == uuid.Nil || jobID == uuid.Nil {
		return eligibility.Decision{}, ErrInvalidInput
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return eligibility.Decision{}, ErrJobNotFound
		}
		return eligibility.Decision{}, storageError("get job", err)
	}

	accepted := job.ApplicationAccepted
	apps, err := u.applications.FindApplications(ctx, repository.ApplicationFilter{
		JobID:  &jobID,
		Status: &accepted,
	})
	if err != nil {
		return eligibility.Decision{}, storageError("find applications", err)
	}

	reviews, err := u.reviews.FindReviews(ctx, repository.ReviewFilter{
		JobID:      &jobID,
		ReviewerID: &actorID,
		RevieweeID: &targetID,
	})
	if err != nil {
		return eligibility.Decision{}, storageError("find reviews", err)
	}

	return eligibility.Check(actorID, targetID, j, apps, reviews), nil
}
