package reputation

import "math"

type Stats struct {
	TotalReviews       int
	AverageRating      float64
	HasReviews         bool
	Distribution       map[int]int
	PositivePercentage float64
}

// Distribution counts ratings per star value. Keys 1 through 5 are always present;
// out-of-range ratings are ignored.
func Distribution(ratings []int) map[int]int {
	out := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range ratings {
		if _, ok := out[r]; ok {
			out[r]++
		}
	}
	return out
}

// PositivePercentage is the share of ratings >= 4, rounded to one decimal, and 0
// when there are no ratings.
func PositivePercentage(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	positive := 0
	for _, r := range ratings {
		if r >= positiveRatingMinimum {
			positive++
		}
	}
	return round1(float64(positive) / float64(len(ratings)) * 100)
}

func ComputeStats(ratings []int) Stats {
	mean, ok := MeanRating(ratings)
	return Stats{
		TotalReviews:       len(ratings),
		AverageRating:      round1(mean),
		HasReviews:         ok,
		Distribution:       Distribution(ratings),
		PositivePercentage: PositivePercentage(ratings),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
