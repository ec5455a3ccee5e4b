package usecase

import (
	"context"
	"errors"
	"time"

	"crewmatch/internal/config"
	"crewmatch/internal/domain/job"
	"crewmatch/internal/domain/recommend"
	"crewmatch/internal/domain/user"
	"crewmatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxRecommendLimit = 50
	upcomingWindow    = 7 * 24 * time.Hour
)

type RecommendationParams struct {
	Limit int
}

type HomeFeed struct {
	Jobs []job.Job
	// Personalized is false when the feed is the category-diverse fallback.
	Personalized  bool
	UrgentCount   int
	ThisWeekCount int
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, userID uuid.UUID, params RecommendationParams) ([]job.Job, error)
	Home(ctx context.Context, userID *uuid.UUID) (HomeFeed, error)
}

type Recommendation struct {
	users     user.Repository
	jobs      repository.JobRepository
	inference SkillInferenceUsecase
	cfg       config.EngineConfig
	now       func() time.Time
	logger    *zap.Logger
}

func NewRecommendationUsecase(
	users user.Repository,
	jobs repository.JobRepository,
	inference SkillInferenceUsecase,
	cfg config.EngineConfig,
	logger *zap.Logger,
) *Recommendation {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommendation{
		users:     users,
		jobs:      jobs,
		inference: inference,
		cfg:       cfg,
		now:       time.Now,
		logger:    logger,
	}
}

func (u *Recommendation) today() time.Time {
	return job.DateOnly(u.now().UTC())
}

func (u *Recommendation) openCandidates(ctx context.Context, today time.Time) ([]job.Job, error) {
	jobs, err := u.jobs.FindJobs(ctx, repository.JobFilter{
		Statuses:      []job.Status{job.StatusPublished},
		EventDateFrom: &today,
	})
	if err != nil {
		return nil, storageError("find jobs", err)
	}
	return jobs, nil
}

func (u *Recommendation) loadUser(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, storageError("get user", err)
	}
	return usr, nil
}

// Recommend ranks open jobs for the user. It does not infer skills; a user with
// an empty skill set gets open jobs narrowed by location only.
func (u *Recommendation) Recommend(ctx context.Context, userID uuid.UUID, params RecommendationParams) ([]job.Job, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	limit := params.Limit
	if limit < 0 {
		return nil, ErrInvalidInput
	}
	if limit == 0 {
		limit = u.cfg.RecommendLimit
	}
	if limit > maxRecommendLimit {
		limit = maxRecommendLimit
	}

	usr, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := u.today()
	candidates, err := u.openCandidates(ctx, today)
	if err != nil {
		return nil, err
	}
	return recommend.Rank(usr, candidates, recommend.Params{Limit: limit, Today: today}), nil
}

// Home builds the landing feed. Anonymous callers get the category-diverse
// selection. A signed-in user without skills has inference run first and falls
// back to the diverse selection if that still finds nothing.
func (u *Recommendation) Home(ctx context.Context, userID *uuid.UUID) (HomeFeed, error) {
	today := u.today()
	candidates, err := u.openCandidates(ctx, today)
	if err != nil {
		return HomeFeed{}, err
	}

	feed := HomeFeed{}
	personalized := false

	if userID != nil && *userID != uuid.Nil {
		usr, err := u.loadUser(ctx, *userID)
		if err != nil {
			return HomeFeed{}, err
		}
		if !usr.HasSkills() && u.inference != nil {
			res, err := u.inference.InferSkillsFor(ctx, usr)
			if err != nil {
				return HomeFeed{}, err
			}
			usr.Skills = res.Skills
		}
		if usr.HasSkills() {
			feed.Jobs = recommend.Rank(usr, candidates, recommend.Params{Limit: u.cfg.HomeLimit, Today: today})
			personalized = true
		}
	}

	if !personalized {
		feed.Jobs = recommend.Diverse(candidates, recommend.DiverseParams{
			Limit:         u.cfg.HomeLimit,
			PerCategory:   u.cfg.DiversePerCategory,
			MaxCategories: u.cfg.DiverseMaxCategories,
			Today:         today,
		})
	}
	feed.Personalized = personalized

	feed.UrgentCount, err = u.jobs.CountJobs(ctx, repository.JobFilter{
		Statuses:      []job.Status{job.StatusPublished},
		EventDateFrom: &today,
		UrgentOnly:    true,
	})
	if err != nil {
		return HomeFeed{}, storageError("count urgent jobs", err)
	}

	weekEnd := today.Add(upcomingWindow)
	feed.ThisWeekCount, err = u.jobs.CountJobs(ctx, repository.JobFilter{
		Statuses:      []job.Status{job.StatusPublished},
		EventDateFrom: &today,
		EventDateTo:   &weekEnd,
	})
	if err != nil {
		return HomeFeed{}, storageError("count upcoming jobs", err)
	}

	u.logger.Debug("home feed built",
		zap.Bool("personalized", personalized),
		zap.Int("jobs", len(feed.Jobs)),
	)
	return feed, nil
}
