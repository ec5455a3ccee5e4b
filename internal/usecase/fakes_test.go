package usecase

import (
	"context"
	"sync"
	"time"

	"crewmatch/internal/domain/inference"
	"crewmatch/internal/domain/job"
	"crewmatch/internal/domain/review"
	"crewmatch/internal/domain/skill"
	"crewmatch/internal/domain/user"
	"crewmatch/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type fakeUsers struct {
	users  map[uuid.UUID]user.User
	skills *fakeSkills
	err    error
}

func (f *fakeUsers) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	if f.skills != nil {
		stored, _ := f.skills.FindByUserID(ctx, id)
		u.Skills = inference.Merge(u.Skills, stored)
	}
	return u, nil
}

func (f *fakeUsers) ListVolunteers(_ context.Context, vf user.VolunteerFilter) ([]user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]user.User, 0)
	for _, u := range f.users {
		if !u.IsVolunteer() {
			continue
		}
		if vf.WithoutSkillsOnly && u.HasSkills() {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

type fakeApplications struct {
	apps []job.Application
	err  error
}

func (f *fakeApplications) FindApplications(_ context.Context, af repository.ApplicationFilter) ([]job.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]job.Application, 0)
	for _, a := range f.apps {
		if af.VolunteerID != nil && a.VolunteerID != *af.VolunteerID {
			continue
		}
		if af.JobID != nil && a.JobID != *af.JobID {
			continue
		}
		if af.PosterID != nil && a.Job.PosterID != *af.PosterID {
			continue
		}
		if af.Status != nil && a.Status != *af.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fakeJobs struct {
	jobs []job.Job
	err  error
}

func (f *fakeJobs) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if f.err != nil {
		return job.Job{}, f.err
	}
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (f *fakeJobs) match(jf repository.JobFilter, j job.Job) bool {
	if len(jf.Statuses) > 0 {
		ok := false
		for _, s := range jf.Statuses {
			if j.Status == s {
				ok = true
			}
		}
		if !ok {
			return false
		}
	}
	if jf.EventDateFrom != nil && job.DateOnly(j.EventDate).Before(job.DateOnly(*jf.EventDateFrom)) {
		return false
	}
	if jf.EventDateTo != nil && job.DateOnly(j.EventDate).After(job.DateOnly(*jf.EventDateTo)) {
		return false
	}
	if jf.CategoryID != nil && j.CategoryID != *jf.CategoryID {
		return false
	}
	if jf.PosterID != nil && j.PosterID != *jf.PosterID {
		return false
	}
	if jf.UrgentOnly && !j.IsUrgent {
		return false
	}
	return true
}

func (f *fakeJobs) FindJobs(_ context.Context, jf repository.JobFilter) ([]job.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]job.Job, 0)
	for _, j := range f.jobs {
		if f.match(jf, j) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobs) CountJobs(ctx context.Context, jf repository.JobFilter) (int, error) {
	jobs, err := f.FindJobs(ctx, jf)
	return len(jobs), err
}

// fakeSkills keeps skills by name and memberships per user, like the real store.
type fakeSkills struct {
	mu      sync.Mutex
	byName  map[string]skill.Skill
	members map[uuid.UUID][]skill.Skill
	creates int
	err     error
}

func newFakeSkills() *fakeSkills {
	return &fakeSkills{byName: map[string]skill.Skill{}, members: map[uuid.UUID][]skill.Skill{}}
}

func (f *fakeSkills) GetOrCreateSkill(_ context.Context, s skill.Skill) (skill.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return skill.Skill{}, f.err
	}
	if got, ok := f.byName[s.Name]; ok {
		return got, nil
	}
	s.ID = uuid.New()
	f.byName[s.Name] = s
	f.creates++
	return s, nil
}

func (f *fakeSkills) AddSkillToUser(_ context.Context, userID, skillID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	for _, s := range f.members[userID] {
		if s.ID == skillID {
			return false, nil
		}
	}
	for _, s := range f.byName {
		if s.ID == skillID {
			f.members[userID] = append(f.members[userID], s)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSkills) FindByUserID(_ context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]skill.Skill(nil), f.members[userID]...), nil
}

func (f *fakeSkills) FindByUserIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]skill.Skill, error) {
	out := map[uuid.UUID][]skill.Skill{}
	for _, id := range ids {
		s, _ := f.FindByUserID(ctx, id)
		out[id] = s
	}
	return out, nil
}

type fakeReviews struct {
	reviews []review.Review
	err     error
}

func (f *fakeReviews) FindReviews(_ context.Context, rf repository.ReviewFilter) ([]review.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]review.Review, 0)
	for _, r := range f.reviews {
		if rf.RevieweeID != nil && r.RevieweeID != *rf.RevieweeID {
			continue
		}
		if rf.ReviewerID != nil && r.ReviewerID != *rf.ReviewerID {
			continue
		}
		if rf.JobID != nil && r.JobID != *rf.JobID {
			continue
		}
		if rf.Rating != nil && r.Rating != *rf.Rating {
			continue
		}
		if rf.Featured != nil && r.IsFeatured != *rf.Featured {
			continue
		}
		out = append(out, r)
		if rf.Limit > 0 && len(out) == rf.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeReviews) CountReviews(ctx context.Context, rf repository.ReviewFilter) (int, error) {
	rs, err := f.FindReviews(ctx, rf)
	return len(rs), err
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	args := m.Called(ctx, key, out)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *mockCache) DeleteByPattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}
