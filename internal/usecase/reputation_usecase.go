package usecase

import (
	"context"
	"errors"
	"time"

	"crewmatch/internal/domain/reputation"
	"crewmatch/internal/domain/review"
	"crewmatch/internal/domain/user"
	"crewmatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	recentReviewsLimit   = 5
	featuredReviewsLimit = 3
)

// JSONCache is the subset of the Redis cache the reputation usecase needs.
type JSONCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type ReputationSummary struct {
	UserID     uuid.UUID
	Score      int
	Tier       reputation.Tier
	Components reputation.Components

	// AverageRating is rounded to one decimal. HasReviews separates "no reviews"
	// from a genuine zero average.
	AverageRating      float64
	HasReviews         bool
	TotalReviews       int
	ReviewsGiven       int
	Distribution       map[int]int
	PositivePercentage float64

	RecentReviews   []review.Review
	FeaturedReviews []review.Review
}

type ReputationUsecase interface {
	Summary(ctx context.Context, userID uuid.UUID) (ReputationSummary, error)
	Invalidate(ctx context.Context, userID uuid.UUID) error
	InvalidateAll(ctx context.Context) error
}

type Reputation struct {
	users   user.Repository
	reviews repository.ReviewRepository
	cache   JSONCache
	ttl     time.Duration
	logger  *zap.Logger
}

// NewReputationUsecase builds the scoring usecase. cache may be nil, which
// disables caching.
func NewReputationUsecase(users user.Repository, reviews repository.ReviewRepository, cache JSONCache, ttl time.Duration, logger *zap.Logger) *Reputation {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reputation{users: users, reviews: reviews, cache: cache, ttl: ttl, logger: logger}
}

const reputationCachePrefix = "reputation:"

func reputationCacheKey(userID uuid.UUID) string {
	return reputationCachePrefix + userID.String()
}

func (u *Reputation) Summary(ctx context.Context, userID uuid.UUID) (ReputationSummary, error) {
	if userID == uuid.Nil {
		return ReputationSummary{}, ErrInvalidInput
	}

	key := reputationCacheKey(userID)
	if u.cache != nil && u.ttl > 0 {
		var cached ReputationSummary
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.logger.Warn("reputation cache read failed", zap.String("key", key), zap.Error(err))
		}
		if hit {
			return cached, nil
		}
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ReputationSummary{}, ErrUserNotFound
		}
		return ReputationSummary{}, storageError("get user", err)
	}

	received, err := u.reviews.FindReviews(ctx, repository.ReviewFilter{RevieweeID: &userID})
	if err != nil {
		return ReputationSummary{}, storageError("find reviews", err)
	}

	given, err := u.reviews.CountReviews(ctx, repository.ReviewFilter{ReviewerID: &userID})
	if err != nil {
		return ReputationSummary{}, storageError("count reviews", err)
	}

	out := buildSummary(usr, u.usableReviews(usr, received), given)

	if u.cache != nil && u.ttl > 0 {
		if err := u.cache.SetJSON(ctx, key, out, u.ttl); err != nil {
			u.logger.Warn("reputation cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return out, nil
}

func (u *Reputation) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if u.cache == nil {
		return nil
	}
	return u.cache.Delete(ctx, reputationCacheKey(userID))
}

// InvalidateAll drops every cached summary, e.g. after reviews were imported in bulk.
func (u *Reputation) InvalidateAll(ctx context.Context) error {
	if u.cache == nil {
		return nil
	}
	return u.cache.DeleteByPattern(ctx, reputationCachePrefix+"*")
}

// usableReviews drops rows whose ratings fall outside 1..5 so they can neither
// inflate the score nor count toward the total. A missing type is derived from
// the reviewee's role.
func (u *Reputation) usableReviews(reviewee user.User, received []review.Review) []review.Review {
	out := make([]review.Review, 0, len(received))
	for _, r := range received {
		if err := review.Validate(r); err != nil {
			u.logger.Warn("skipping invalid review",
				zap.String("review_id", r.ID.String()),
				zap.String("reviewee_id", reviewee.ID.String()),
				zap.Error(err),
			)
			continue
		}
		if r.Type == "" {
			r.Type = review.TypeFor(reviewee.Role)
		}
		out = append(out, r)
	}
	return out
}

// buildSummary assumes received is ordered newest first.
func buildSummary(usr user.User, received []review.Review, given int) ReputationSummary {
	ratings := review.Ratings(received)
	score := reputation.Score(usr, ratings)
	stats := reputation.ComputeStats(ratings)

	out := ReputationSummary{
		UserID:             usr.ID,
		Score:              score,
		Tier:               reputation.TierFor(score),
		Components:         reputation.Breakdown(usr, ratings),
		AverageRating:      stats.AverageRating,
		HasReviews:         stats.HasReviews,
		TotalReviews:       stats.TotalReviews,
		ReviewsGiven:       given,
		Distribution:       stats.Distribution,
		PositivePercentage: stats.PositivePercentage,
		RecentReviews:      make([]review.Review, 0, recentReviewsLimit),
		FeaturedReviews:    make([]review.Review, 0, featuredReviewsLimit),
	}

	for _, r := range received {
		if len(out.RecentReviews) < recentReviewsLimit {
			out.RecentReviews = append(out.RecentReviews, r)
		}
		if r.IsFeatured && len(out.FeaturedReviews) < featuredReviewsLimit {
			out.FeaturedReviews = append(out.FeaturedReviews, r)
		}
	}
	return out
}
