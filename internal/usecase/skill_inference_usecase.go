package usecase

import (
	"context"
	"errors"

	"crewmatch/internal/domain/inference"
	"crewmatch/internal/domain/job"
	"crewmatch/internal/domain/lexicon"
	"crewmatch/internal/domain/skill"
	"crewmatch/internal/domain/user"
	"crewmatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SkillInferenceResult struct {
	UserID uuid.UUID
	// Detected lists lexicon categories found in the user's activity, in lexicon order.
	Detected []string
	// Added holds the skills that were not yet in the user's set.
	Added []skill.Skill
	// Skills is the user's full skill set after the run.
	Skills []skill.Skill
}

type SkillInferenceUsecase interface {
	InferSkills(ctx context.Context, userID uuid.UUID) (SkillInferenceResult, error)
	InferSkillsFor(ctx context.Context, u user.User) (SkillInferenceResult, error)
}

type SkillInference struct {
	users        user.Repository
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	skills       repository.SkillRepository
	lexicon      *lexicon.Lexicon
	logger       *zap.Logger
}

func NewSkillInferenceUsecase(
	users user.Repository,
	applications repository.ApplicationRepository,
	jobs repository.JobRepository,
	skills repository.SkillRepository,
	lex *lexicon.Lexicon,
	logger *zap.Logger,
) *SkillInference {
	if lex == nil {
		lex = lexicon.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SkillInference{
		users:        users,
		applications: applications,
		jobs:         jobs,
		skills:       skills,
		lexicon:      lex,
		logger:       logger,
	}
}

func (u *SkillInference) InferSkills(ctx context.Context, userID uuid.UUID) (SkillInferenceResult, error) {
	if userID == uuid.Nil {
		return SkillInferenceResult{}, ErrInvalidInput
	}
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return SkillInferenceResult{}, ErrUserNotFound
		}
		return SkillInferenceResult{}, storageError("get user", err)
	}
	return u.InferSkillsFor(ctx, usr)
}

// InferSkillsFor detects skills from usr's accepted applications and posted jobs
// and adds them to usr's skill set. Existing skills are never removed, so running
// it again over unchanged activity adds nothing.
func (u *SkillInference) InferSkillsFor(ctx context.Context, usr user.User) (SkillInferenceResult, error) {
	res := SkillInferenceResult{UserID: usr.ID, Skills: usr.Skills}
	if usr.ID == uuid.Nil {
		return res, ErrInvalidInput
	}

	accepted := job.ApplicationAccepted
	apps, err := u.applications.FindApplications(ctx, repository.ApplicationFilter{
		VolunteerID: &usr.ID,
		Status:      &accepted,
	})
	if err != nil {
		return res, storageError("find applications", err)
	}

	posted, err := u.jobs.FindJobs(ctx, repository.JobFilter{PosterID: &usr.ID})
	if err != nil {
		return res, storageError("find jobs", err)
	}

	corpus := inference.Corpus(inference.Activity{AcceptedApplications: apps, PostedJobs: posted})
	res.Detected = inference.Detect(u.lexicon, corpus)
	if len(res.Detected) == 0 {
		return res, nil
	}

	found := make([]skill.Skill, 0, len(res.Detected))
	for _, category := range res.Detected {
		s, err := u.skills.GetOrCreateSkill(ctx, skill.Skill{
			Name:        inference.SkillName(category),
			Description: inference.InferredDescription,
		})
		if err != nil {
			return res, storageError("get or create skill", err)
		}
		added, err := u.skills.AddSkillToUser(ctx, usr.ID, s.ID)
		if err != nil {
			return res, storageError("add skill to user", err)
		}
		if added {
			res.Added = append(res.Added, s)
		}
		found = append(found, s)
	}

	res.Skills = inference.Merge(usr.Skills, found)

	u.logger.Debug("skills inferred",
		zap.String("user_id", usr.ID.String()),
		zap.Strings("detected", res.Detected),
		zap.Int("added", len(res.Added)),
	)
	return res, nil
}
