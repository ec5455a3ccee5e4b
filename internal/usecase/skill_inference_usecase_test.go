package usecase

import (
	"context"
	"errors"
	"testing"

	"crewmatch/internal/domain/inference"
	"crewmatch/internal/domain/job"
	"crewmatch/internal/domain/lexicon"
	"crewmatch/internal/domain/skill"
	"crewmatch/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inferenceFixture struct {
	users  *fakeUsers
	apps   *fakeApplications
	jobs   *fakeJobs
	skills *fakeSkills
	uc     *SkillInference
	userID uuid.UUID
}

func newInferenceFixture() *inferenceFixture {
	volunteerID := uuid.New()
	posterID := uuid.New()
	skills := newFakeSkills()

	photoJob := job.Job{ID: uuid.New(), Title: "Photo booth", PosterID: posterID, Status: job.StatusCompleted}
	foodJob := job.Job{ID: uuid.New(), Title: "Food stall", PosterID: posterID, Status: job.StatusPublished}

	f := &inferenceFixture{
		users: &fakeUsers{
			users:  map[uuid.UUID]user.User{volunteerID: {ID: volunteerID, Role: user.RoleVolunteer}},
			skills: skills,
		},
		apps: &fakeApplications{apps: []job.Application{
			{ID: uuid.New(), JobID: photoJob.ID, VolunteerID: volunteerID, Status: job.ApplicationAccepted, Job: photoJob},
			{ID: uuid.New(), JobID: foodJob.ID, VolunteerID: volunteerID, Status: job.ApplicationPending, Job: foodJob},
		}},
		jobs:   &fakeJobs{jobs: []job.Job{photoJob, foodJob}},
		skills: skills,
		userID: volunteerID,
	}
	f.uc = NewSkillInferenceUsecase(f.users, f.apps, f.jobs, f.skills, lexicon.Default(), nil)
	return f
}

func TestSkillInference_DetectsFromAcceptedApplicationsOnly(t *testing.T) {
	f := newInferenceFixture()

	res, err := f.uc.InferSkills(context.Background(), f.userID)
	require.NoError(t, err)

	assert.Equal(t, []string{"photography"}, res.Detected)
	require.Len(t, res.Added, 1)
	assert.Equal(t, "Photography", res.Added[0].Name)
	assert.Equal(t, inference.InferredDescription, res.Added[0].Description)
	assert.Len(t, res.Skills, 1)
}

func TestSkillInference_IncludesPostedJobs(t *testing.T) {
	f := newInferenceFixture()
	posterID := f.jobs.jobs[0].PosterID
	f.users.users[posterID] = user.User{ID: posterID, Role: user.RoleVolunteer}

	res, err := f.uc.InferSkills(context.Background(), posterID)
	require.NoError(t, err)
	assert.Equal(t, []string{"photography", "catering"}, res.Detected)
}

func TestSkillInference_Idempotent(t *testing.T) {
	f := newInferenceFixture()
	ctx := context.Background()

	first, err := f.uc.InferSkills(ctx, f.userID)
	require.NoError(t, err)

	second, err := f.uc.InferSkills(ctx, f.userID)
	require.NoError(t, err)

	assert.Empty(t, second.Added)
	assert.Equal(t, first.Detected, second.Detected)
	assert.ElementsMatch(t, first.Skills, second.Skills)
	assert.Equal(t, 1, f.skills.creates)
}

func TestSkillInference_NeverRemovesSkills(t *testing.T) {
	f := newInferenceFixture()
	manual := skill.Skill{ID: uuid.New(), Name: "Bartending"}
	u := f.users.users[f.userID]
	u.Skills = []skill.Skill{manual}
	f.users.users[f.userID] = u

	res, err := f.uc.InferSkills(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, manual, res.Skills[0])
	assert.Len(t, res.Skills, 2)
}

func TestSkillInference_NoActivity(t *testing.T) {
	f := newInferenceFixture()
	f.apps.apps = nil
	f.jobs.jobs = nil

	res, err := f.uc.InferSkills(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Empty(t, res.Detected)
	assert.Empty(t, res.Added)
	assert.Equal(t, 0, f.skills.creates)
}

func TestSkillInference_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("nil user id", func(t *testing.T) {
		f := newInferenceFixture()
		_, err := f.uc.InferSkills(ctx, uuid.Nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newInferenceFixture()
		_, err := f.uc.InferSkills(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("skill store down", func(t *testing.T) {
		f := newInferenceFixture()
		f.skills.err = errors.New("connection refused")
		_, err := f.uc.InferSkills(ctx, f.userID)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("application store down", func(t *testing.T) {
		f := newInferenceFixture()
		f.apps.err = errors.New("timeout")
		_, err := f.uc.InferSkills(ctx, f.userID)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}
