package eligibility

import (
	"testing"

	"crewmatch/internal/domain/job"
	"crewmatch/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fixture struct {
	poster    uuid.UUID
	volunteer uuid.UUID
	job       job.Job
	apps      []job.Application
}

func newFixture(appStatus job.ApplicationStatus, jobStatus job.Status) fixture {
	poster := uuid.New()
	volunteer := uuid.New()
	j := job.Job{ID: uuid.New(), PosterID: poster, Status: jobStatus}
	return fixture{
		poster:    poster,
		volunteer: volunteer,
		job:       j,
		apps:      []job.Application{{ID: uuid.New(), JobID: j.ID, VolunteerID: volunteer, Status: appStatus}},
	}
}

func TestCheck(t *testing.T) {
	t.Run("poster may review accepted volunteer", func(t *testing.T) {
		f := newFixture(job.ApplicationAccepted, job.StatusCompleted)
		d := Check(f.poster, f.volunteer, f.job, f.apps, nil)
		assert.True(t, d.Allowed)
		assert.Equal(t, ReasonAllowed, d.Reason)
	})

	t.Run("accepted volunteer may review poster", func(t *testing.T) {
		f := newFixture(job.ApplicationAccepted, job.StatusCompleted)
		d := Check(f.volunteer, f.poster, f.job, f.apps, nil)
		assert.True(t, d.Allowed)
	})

	t.Run("pending application did not work together", func(t *testing.T) {
		f := newFixture(job.ApplicationPending, job.StatusCompleted)
		d := Check(f.poster, f.volunteer, f.job, f.apps, nil)
		assert.False(t, d.Allowed)
		assert.Equal(t, ReasonNotCoParticipants, d.Reason)
		assert.Equal(t, "You haven't worked together on this job", d.Message())
	})

	t.Run("two volunteers did not work together", func(t *testing.T) {
		f := newFixture(job.ApplicationAccepted, job.StatusCompleted)
		other := uuid.New()
		f.apps = append(f.apps, job.Application{JobID: f.job.ID, VolunteerID: other, Status: job.ApplicationAccepted})
		d := Check(f.volunteer, other, f.job, f.apps, nil)
		assert.Equal(t, ReasonNotCoParticipants, d.Reason)
	})

	t.Run("self review is rejected", func(t *testing.T) {
		f := newFixture(job.ApplicationAccepted, job.StatusCompleted)
		d := Check(f.poster, f.poster, f.job, f.apps, nil)
		assert.Equal(t, ReasonNotCoParticipants, d.Reason)
	})

	t.Run("job must be completed", func(t *testing.T) {
		f := newFixture(job.ApplicationAccepted, job.StatusInProgress)
		d := Check(f.poster, f.volunteer, f.job, f.apps, nil)
		assert.Equal(t, ReasonJobNotCompleted, d.Reason)
	})

	t.Run("co-participation is checked before completion", func(t *testing.T) {
		f := newFixture(job.ApplicationRejected, job.StatusPublished)
		d := Check(f.poster, f.volunteer, f.job, f.apps, nil)
		assert.Equal(t, ReasonNotCoParticipants, d.Reason)
	})

	t.Run("second review of the same triple is rejected", func(t *testing.T) {
		f := newFixture(job.ApplicationAccepted, job.StatusCompleted)
		existing := []review.Review{{JobID: f.job.ID, ReviewerID: f.poster, RevieweeID: f.volunteer, Rating: 5}}

		d := Check(f.poster, f.volunteer, f.job, f.apps, existing)
		assert.Equal(t, ReasonAlreadyReviewed, d.Reason)

		// The reverse direction is an independent triple.
		d = Check(f.volunteer, f.poster, f.job, f.apps, existing)
		assert.True(t, d.Allowed)
	})
}

func TestReasonCode_String(t *testing.T) {
	assert.Equal(t, "already_reviewed", ReasonAlreadyReviewed.String())
	assert.Equal(t, "unknown", ReasonCode(42).String())
}
