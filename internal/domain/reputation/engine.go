package reputation

import (
	"math"

	"crewmatch/internal/domain/user"
)

const (
	maxRatingPoints       = 50.0
	volumePerReview       = 2.0
	maxVolumePoints       = 20.0
	verificationPoints    = 15.0
	maxProfilePoints      = 10.0
	profileFieldCount     = 6
	activityPerJob        = 0.5
	maxActivityPoints     = 5.0
	maxScore              = 100
	positiveRatingMinimum = 4
)

type Level string

const (
	LevelNew       Level = "New"
	LevelFair      Level = "Fair"
	LevelGood      Level = "Good"
	LevelExcellent Level = "Excellent"
	LevelElite     Level = "Elite"
)

// Tier is a reputation level plus opaque presentation tokens.
type Tier struct {
	Level Level
	Color string
	Icon  string
}

type Components struct {
	Rating       float64
	Volume       float64
	Verification float64
	Profile      float64
	Activity     float64
}

func (c Components) Total() float64 {
	return c.Rating + c.Volume + c.Verification + c.Profile + c.Activity
}

// Breakdown computes the five score components for u from the overall ratings u
// received.
func Breakdown(u user.User, ratings []int) Components {
	avg, _ := MeanRating(ratings)

	completed := u.CompletedProfileFields()
	if completed > profileFieldCount {
		completed = profileFieldCount
	}

	jobs := u.JobsCompleted
	if jobs < 0 {
		jobs = 0
	}

	c := Components{
		Rating:   (avg / 5) * maxRatingPoints,
		Volume:   math.Min(float64(len(ratings))*volumePerReview, maxVolumePoints),
		Profile:  float64(completed) / profileFieldCount * maxProfilePoints,
		Activity: math.Min(float64(jobs)*activityPerJob, maxActivityPoints),
	}
	if u.IsVerified {
		c.Verification = verificationPoints
	}
	return c
}

// Score is the rounded component total clamped to [0, 100].
func Score(u user.User, ratings []int) int {
	score := int(math.Round(Breakdown(u, ratings).Total()))
	if score < 0 {
		score = 0
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

func TierFor(score int) Tier {
	switch {
	case score >= 90:
		return Tier{Level: LevelElite, Color: "warning", Icon: "fas fa-crown"}
	case score >= 75:
		return Tier{Level: LevelExcellent, Color: "success", Icon: "fas fa-star"}
	case score >= 60:
		return Tier{Level: LevelGood, Color: "info", Icon: "fas fa-thumbs-up"}
	case score >= 40:
		return Tier{Level: LevelFair, Color: "secondary", Icon: "fas fa-user"}
	default:
		return Tier{Level: LevelNew, Color: "light", Icon: "fas fa-seedling"}
	}
}

// MeanRating returns the arithmetic mean of ratings. ok is false when there are no
// ratings, in which case the mean is 0.
func MeanRating(ratings []int) (mean float64, ok bool) {
	if len(ratings) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings)), true
}
