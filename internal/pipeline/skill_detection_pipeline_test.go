package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"crewmatch/internal/domain/skill"
	"crewmatch/internal/domain/user"
	"crewmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUsers struct {
	users      []user.User
	lastFilter user.VolunteerFilter
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memUsers) ListVolunteers(_ context.Context, f user.VolunteerFilter) ([]user.User, error) {
	m.lastFilter = f
	out := make([]user.User, 0)
	for _, u := range m.users {
		if f.WithoutSkillsOnly && u.HasSkills() {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// scriptedInference adds one skill per user unless the user is listed in fail.
type scriptedInference struct {
	mu   sync.Mutex
	fail map[uuid.UUID]bool
	seen []uuid.UUID
}

func (s *scriptedInference) InferSkills(ctx context.Context, id uuid.UUID) (usecase.SkillInferenceResult, error) {
	return s.InferSkillsFor(ctx, user.User{ID: id})
}

func (s *scriptedInference) InferSkillsFor(_ context.Context, u user.User) (usecase.SkillInferenceResult, error) {
	s.mu.Lock()
	s.seen = append(s.seen, u.ID)
	s.mu.Unlock()

	if s.fail[u.ID] {
		return usecase.SkillInferenceResult{}, usecase.ErrStorageUnavailable
	}
	if u.HasSkills() {
		return usecase.SkillInferenceResult{UserID: u.ID, Skills: u.Skills}, nil
	}
	added := skill.Skill{ID: uuid.New(), Name: "Catering"}
	return usecase.SkillInferenceResult{UserID: u.ID, Added: []skill.Skill{added}, Skills: []skill.Skill{added}}, nil
}

func volunteers(n int) []user.User {
	out := make([]user.User, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, user.User{ID: uuid.New(), Role: user.RoleVolunteer})
	}
	return out
}

func TestSkillDetection_DefaultOnlyUsersWithoutSkills(t *testing.T) {
	users := volunteers(4)
	users[0].Skills = []skill.Skill{{ID: uuid.New(), Name: "Photography"}}
	repo := &memUsers{users: users}
	inf := &scriptedInference{}

	report, err := NewSkillDetectionPipeline(repo, inf, nil).Run(context.Background(), DetectParams{Workers: 2})
	require.NoError(t, err)

	assert.True(t, repo.lastFilter.WithoutSkillsOnly)
	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 3, report.Updated)
	assert.Equal(t, 3, report.SkillsAdded)
	assert.Equal(t, 0, report.Failed)
}

func TestSkillDetection_ForceProcessesEveryone(t *testing.T) {
	users := volunteers(3)
	users[0].Skills = []skill.Skill{{ID: uuid.New(), Name: "Photography"}}
	repo := &memUsers{users: users}

	report, err := NewSkillDetectionPipeline(repo, &scriptedInference{}, nil).Run(context.Background(), DetectParams{Force: true})
	require.NoError(t, err)

	assert.False(t, repo.lastFilter.WithoutSkillsOnly)
	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 2, report.Updated)
}

func TestSkillDetection_SingleUser(t *testing.T) {
	users := volunteers(3)
	inf := &scriptedInference{}
	id := users[1].ID

	report, err := NewSkillDetectionPipeline(&memUsers{users: users}, inf, nil).Run(context.Background(), DetectParams{UserID: &id})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, []uuid.UUID{id}, inf.seen)

	missing := uuid.New()
	_, err = NewSkillDetectionPipeline(&memUsers{users: users}, inf, nil).Run(context.Background(), DetectParams{UserID: &missing})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestSkillDetection_FailuresAreCounted(t *testing.T) {
	users := volunteers(5)
	inf := &scriptedInference{fail: map[uuid.UUID]bool{users[2].ID: true, users[4].ID: true}}

	report, err := NewSkillDetectionPipeline(&memUsers{users: users}, inf, nil).Run(context.Background(), DetectParams{Workers: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 2, report.Failed)
	assert.Len(t, inf.seen, 5)
}

func TestSkillDetection_NoTargets(t *testing.T) {
	_, err := NewSkillDetectionPipeline(&memUsers{}, &scriptedInference{}, nil).RunFor(context.Background(), nil, 1, time.Now())
	assert.True(t, errors.Is(err, ErrNoTarget))
}
