package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"crewmatch/internal/domain/reputation"
	"crewmatch/internal/domain/review"
	"crewmatch/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func reviewsFor(reviewee uuid.UUID, ratings ...int) []review.Review {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	out := make([]review.Review, 0, len(ratings))
	for i, r := range ratings {
		out = append(out, review.Review{
			ID:         uuid.New(),
			JobID:      uuid.New(),
			ReviewerID: uuid.New(),
			RevieweeID: reviewee,
			Rating:     r,
			CreatedAt:  base.Add(-time.Duration(i) * time.Hour),
		})
	}
	return out
}

func verifiedCrewLead(id uuid.UUID) user.User {
	return user.User{
		ID:             id,
		Role:           user.RoleVolunteer,
		FirstName:      "Asha",
		LastName:       "Rao",
		Bio:            "Event crew lead",
		Location:       "Mumbai",
		PhoneNumber:    "+919999999999",
		ProfilePicture: "profile_pics/asha.png",
		IsVerified:     true,
		JobsCompleted:  10,
	}
}

func TestReputation_Summary(t *testing.T) {
	id := uuid.New()
	received := reviewsFor(id, 5, 5, 4)
	received[1].IsFeatured = true
	given := reviewsFor(uuid.New(), 3)
	given[0].ReviewerID = id

	uc := NewReputationUsecase(
		&fakeUsers{users: map[uuid.UUID]user.User{id: verifiedCrewLead(id)}},
		&fakeReviews{reviews: append(received, given...)},
		nil, 0, nil,
	)

	s, err := uc.Summary(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, 83, s.Score)
	assert.Equal(t, reputation.LevelExcellent, s.Tier.Level)
	assert.Equal(t, 4.7, s.AverageRating)
	assert.True(t, s.HasReviews)
	assert.Equal(t, 3, s.TotalReviews)
	assert.Equal(t, 1, s.ReviewsGiven)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 1, 5: 2}, s.Distribution)
	assert.Equal(t, 100.0, s.PositivePercentage)
	assert.Len(t, s.RecentReviews, 3)
	require.Len(t, s.FeaturedReviews, 1)
	assert.Equal(t, received[1].ID, s.FeaturedReviews[0].ID)
}

func TestReputation_SkipsOutOfRangeReviews(t *testing.T) {
	id := uuid.New()
	received := reviewsFor(id, 5, 9, 5, 4, 0)
	bad := 7
	received[3].Punctuality = &bad

	uc := NewReputationUsecase(
		&fakeUsers{users: map[uuid.UUID]user.User{id: verifiedCrewLead(id)}},
		&fakeReviews{reviews: received},
		nil, 0, nil,
	)

	s, err := uc.Summary(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, 2, s.TotalReviews)
	assert.Equal(t, 5.0, s.AverageRating)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 2}, s.Distribution)
	assert.LessOrEqual(t, s.Components.Rating, 50.0)
	require.Len(t, s.RecentReviews, 2)
	for _, r := range s.RecentReviews {
		assert.NotEqual(t, received[1].ID, r.ID)
		assert.NotEqual(t, received[3].ID, r.ID)
	}
}

func TestReputation_FillsMissingReviewType(t *testing.T) {
	id := uuid.New()
	received := reviewsFor(id, 4)
	poster := user.User{ID: id, Role: user.RoleAdmin}

	uc := NewReputationUsecase(
		&fakeUsers{users: map[uuid.UUID]user.User{id: poster}},
		&fakeReviews{reviews: received},
		nil, 0, nil,
	)

	s, err := uc.Summary(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, s.RecentReviews, 1)
	assert.Equal(t, review.TypePosterReview, s.RecentReviews[0].Type)
}

func TestReputation_SummaryNoReviews(t *testing.T) {
	id := uuid.New()
	uc := NewReputationUsecase(
		&fakeUsers{users: map[uuid.UUID]user.User{id: {ID: id}}},
		&fakeReviews{},
		nil, 0, nil,
	)

	s, err := uc.Summary(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, reputation.LevelNew, s.Tier.Level)
	assert.False(t, s.HasReviews)
	assert.Equal(t, 0.0, s.PositivePercentage)
	assert.Empty(t, s.RecentReviews)
	assert.Empty(t, s.FeaturedReviews)
}

func TestReputation_RecentAndFeaturedLimits(t *testing.T) {
	id := uuid.New()
	received := reviewsFor(id, 5, 5, 5, 5, 5, 5, 5)
	for i := range received {
		received[i].IsFeatured = true
	}
	uc := NewReputationUsecase(
		&fakeUsers{users: map[uuid.UUID]user.User{id: {ID: id}}},
		&fakeReviews{reviews: received},
		nil, 0, nil,
	)

	s, err := uc.Summary(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, s.RecentReviews, recentReviewsLimit)
	assert.Equal(t, received[0].ID, s.RecentReviews[0].ID)
	assert.Len(t, s.FeaturedReviews, featuredReviewsLimit)
	assert.Equal(t, 7, s.TotalReviews)
}

func TestReputation_CachesSummary(t *testing.T) {
	id := uuid.New()
	cache := &mockCache{}
	key := reputationCacheKey(id)
	cache.On("GetJSON", mock.Anything, key, mock.Anything).Return(false, nil).Once()
	cache.On("SetJSON", mock.Anything, key, mock.AnythingOfType("usecase.ReputationSummary"), time.Minute).Return(nil).Once()

	uc := NewReputationUsecase(
		&fakeUsers{users: map[uuid.UUID]user.User{id: {ID: id}}},
		&fakeReviews{},
		cache, time.Minute, nil,
	)

	_, err := uc.Summary(context.Background(), id)
	require.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestReputation_CacheHitSkipsStore(t *testing.T) {
	id := uuid.New()
	cache := &mockCache{}
	cache.On("GetJSON", mock.Anything, reputationCacheKey(id), mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*ReputationSummary)
			out.UserID = id
			out.Score = 42
		}).
		Return(true, nil).Once()

	uc := NewReputationUsecase(&fakeUsers{err: errors.New("must not be called")}, &fakeReviews{}, cache, time.Minute, nil)

	s, err := uc.Summary(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 42, s.Score)
	cache.AssertExpectations(t)
}

func TestReputation_CacheFailureDoesNotFail(t *testing.T) {
	id := uuid.New()
	cache := &mockCache{}
	cache.On("GetJSON", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("redis down"))
	cache.On("SetJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	uc := NewReputationUsecase(
		&fakeUsers{users: map[uuid.UUID]user.User{id: {ID: id}}},
		&fakeReviews{},
		cache, time.Minute, nil,
	)

	_, err := uc.Summary(context.Background(), id)
	assert.NoError(t, err)
}

func TestReputation_Errors(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	_, err := NewReputationUsecase(&fakeUsers{}, &fakeReviews{}, nil, 0, nil).Summary(ctx, uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewReputationUsecase(&fakeUsers{}, &fakeReviews{}, nil, 0, nil).Summary(ctx, id)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = NewReputationUsecase(
		&fakeUsers{users: map[uuid.UUID]user.User{id: {ID: id}}},
		&fakeReviews{err: errors.New("down")},
		nil, 0, nil,
	).Summary(ctx, id)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestReputation_Invalidate(t *testing.T) {
	id := uuid.New()
	cache := &mockCache{}
	cache.On("Delete", mock.Anything, []string{reputationCacheKey(id)}).Return(nil).Once()

	uc := NewReputationUsecase(&fakeUsers{}, &fakeReviews{}, cache, time.Minute, nil)
	require.NoError(t, uc.Invalidate(context.Background(), id))
	cache.AssertExpectations(t)

	assert.NoError(t, NewReputationUsecase(&fakeUsers{}, &fakeReviews{}, nil, 0, nil).Invalidate(context.Background(), id))
}

func TestReputation_InvalidateAll(t *testing.T) {
	cache := &mockCache{}
	cache.On("DeleteByPattern", mock.Anything, "reputation:*").Return(nil).Once()

	uc := NewReputationUsecase(&fakeUsers{}, &fakeReviews{}, cache, time.Minute, nil)
	require.NoError(t, uc.InvalidateAll(context.Background()))
	cache.AssertExpectations(t)

	assert.NoError(t, NewReputationUsecase(&fakeUsers{}, &fakeReviews{}, nil, 0, nil).InvalidateAll(context.Background()))
}
