package review

import (
	"errors"
	"testing"

	"crewmatch/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestAverageDetailedRating(t *testing.T) {
	t.Run("falls back to overall rating", func(t *testing.T) {
		r := Review{Rating: 4}
		assert.Equal(t, 4.0, r.AverageDetailedRating())
	})

	t.Run("averages present sub-ratings only", func(t *testing.T) {
		r := Review{Rating: 5, Punctuality: intp(3), Reliability: intp(4)}
		assert.InDelta(t, 3.5, r.AverageDetailedRating(), 1e-9)
	})
}

func TestTypeFor(t *testing.T) {
	assert.Equal(t, TypeVolunteerReview, TypeFor(user.RoleVolunteer))
	assert.Equal(t, TypePosterReview, TypeFor(user.RoleAdmin))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(Review{Rating: 5, Quality: intp(1)}))

	err := Validate(Review{Rating: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidReview))

	err = Validate(Review{Rating: 3, SkillLevel: intp(6)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SkillLevel")
}
