package dto

import (
	"strconv"
	"time"

	"crewmatch/internal/domain/eligibility"
	"crewmatch/internal/domain/review"
	"crewmatch/internal/usecase"

	"github.com/google/uuid"
)

type TierResponse struct {
	Level string `json:"level"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type ReviewResponse struct {
	ID                    uuid.UUID `json:"id"`
	JobID                 uuid.UUID `json:"job_id"`
	ReviewerID            uuid.UUID `json:"reviewer_id"`
	Type                  string    `json:"review_type"`
	Rating                int       `json:"rating"`
	AverageDetailedRating float64   `json:"average_detailed_rating"`
	Title                 string    `json:"title,omitempty"`
	Comment               string    `json:"comment,omitempty"`
	WouldRecommend        bool      `json:"would_recommend"`
	CreatedAt             time.Time `json:"created_at"`
}

type ReputationResponse struct {
	UserID             uuid.UUID        `json:"user_id"`
	Score              int              `json:"score"`
	Tier               TierResponse     `json:"tier"`
	AverageRating      *float64         `json:"average_rating"`
	TotalReviews       int              `json:"total_reviews"`
	ReviewsGiven       int              `json:"reviews_given"`
	Distribution       map[string]int   `json:"rating_distribution"`
	PositivePercentage float64          `json:"positive_percentage"`
	RecentReviews      []ReviewResponse `json:"recent_reviews"`
	FeaturedReviews    []ReviewResponse `json:"featured_reviews"`
}

type EligibilityResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func NewReviewResponses(reviews []review.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewResponse{
			ID:                    r.ID,
			JobID:                 r.JobID,
			ReviewerID:            r.ReviewerID,
			Type:                  string(r.Type),
			Rating:                r.Rating,
			AverageDetailedRating: r.AverageDetailedRating(),
			Title:                 r.Title,
			Comment:               r.Comment,
			WouldRecommend:        r.WouldRecommend,
			CreatedAt:             r.CreatedAt,
		})
	}
	return out
}

// NewReputationResponse renders a missing average as null rather than 0.
func NewReputationResponse(s usecase.ReputationSummary) ReputationResponse {
	var avg *float64
	if s.HasReviews {
		v := s.AverageRating
		avg = &v
	}

	dist := make(map[string]int, len(s.Distribution))
	for k, v := range s.Distribution {
		dist[strconv.Itoa(k)] = v
	}

	return ReputationResponse{
		UserID:             s.UserID,
		Score:              s.Score,
		Tier:               TierResponse{Level: string(s.Tier.Level), Color: s.Tier.Color, Icon: s.Tier.Icon},
		AverageRating:      avg,
		TotalReviews:       s.TotalReviews,
		ReviewsGiven:       s.ReviewsGiven,
		Distribution:       dist,
		PositivePercentage: s.PositivePercentage,
		RecentReviews:      NewReviewResponses(s.RecentReviews),
		FeaturedReviews:    NewReviewResponses(s.FeaturedReviews),
	}
}

func NewEligibilityResponse(d eligibility.Decision) EligibilityResponse {
	return EligibilityResponse{Allowed: d.Allowed, Reason: d.Reason.String(), Message: d.Message()}
}
