package review

import (
	"time"

	"crewmatch/internal/domain/user"

	"github.com/google/uuid"
)

type Type string

const (
	TypeVolunteerReview Type = "volunteer_review"
	TypePosterReview    Type = "poster_review"
)

type Review struct {
	ID         uuid.UUID
	JobID      uuid.UUID
	ReviewerID uuid.UUID
	RevieweeID uuid.UUID
	Type       Type

	Rating  int `validate:"required,min=1,max=5"`
	Title   string
	Comment string

	Punctuality       *int `validate:"omitempty,min=1,max=5"`
	Quality           *int `validate:"omitempty,min=1,max=5"`
	Communication     *int `validate:"omitempty,min=1,max=5"`
	Professionalism   *int `validate:"omitempty,min=1,max=5"`
	JobAccuracy       *int `validate:"omitempty,min=1,max=5"`
	PaymentTimeliness *int `validate:"omitempty,min=1,max=5"`
	WorkEnvironment   *int `validate:"omitempty,min=1,max=5"`
	SkillLevel        *int `validate:"omitempty,min=1,max=5"`
	Reliability       *int `validate:"omitempty,min=1,max=5"`

	WouldRecommend bool
	WouldWorkAgain bool
	IsFeatured     bool
	CreatedAt      time.Time
}

func (r Review) DetailedRatings() []*int {
	return []*int{
		r.Punctuality, r.Quality, r.Communication, r.Professionalism,
		r.JobAccuracy, r.PaymentTimeliness, r.WorkEnvironment, r.SkillLevel, r.Reliability,
	}
}

// AverageDetailedRating averages the sub-ratings that were given and falls back to
// the overall rating when none were.
func (r Review) AverageDetailedRating() float64 {
	sum, n := 0, 0
	for _, v := range r.DetailedRatings() {
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return float64(r.Rating)
	}
	return float64(sum) / float64(n)
}

// TypeFor derives the review type from the reviewee's role.
func TypeFor(reviewee user.Role) Type {
	if reviewee == user.RoleVolunteer {
		return TypeVolunteerReview
	}
	return TypePosterReview
}

// Ratings extracts the overall rating of every review.
func Ratings(reviews []Review) []int {
	out := make([]int, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, r.Rating)
	}
	return out
}
