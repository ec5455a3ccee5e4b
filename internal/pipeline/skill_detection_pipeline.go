package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"crewmatch/internal/domain/user"
	"crewmatch/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNoTarget = errors.New("pipeline: no target users")

// SkillDetectionPipeline runs skill inference over many users at once.
type SkillDetectionPipeline struct {
	users     user.Repository
	inference usecase.SkillInferenceUsecase
	logger    *zap.Logger
}

func NewSkillDetectionPipeline(users user.Repository, inference usecase.SkillInferenceUsecase, logger *zap.Logger) *SkillDetectionPipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SkillDetectionPipeline{users: users, inference: inference, logger: logger}
}

// DetectParams selects the users to process. UserID wins over Force; with
// neither set only volunteers without any skills are processed.
type DetectParams struct {
	UserID  *uuid.UUID
	Force   bool
	Workers int
}

type DetectReport struct {
	Processed   int
	Updated     int
	SkillsAdded int
	Failed      int
	Duration    time.Duration
}

// Targets resolves the users a run with p would process.
func (p *SkillDetectionPipeline) Targets(ctx context.Context, params DetectParams) ([]user.User, error) {
	if params.UserID != nil {
		u, err := p.users.GetByID(ctx, *params.UserID)
		if err != nil {
			return nil, err
		}
		return []user.User{u}, nil
	}
	return p.users.ListVolunteers(ctx, user.VolunteerFilter{WithoutSkillsOnly: !params.Force})
}

func (p *SkillDetectionPipeline) Run(ctx context.Context, params DetectParams) (DetectReport, error) {
	start := time.Now()

	targets, err := p.Targets(ctx, params)
	if err != nil {
		return DetectReport{}, err
	}
	return p.RunFor(ctx, targets, params.Workers, start)
}

// RunFor processes the given users. A failure for one user is logged and
// counted; it does not stop the run.
func (p *SkillDetectionPipeline) RunFor(ctx context.Context, targets []user.User, workers int, start time.Time) (DetectReport, error) {
	if len(targets) == 0 {
		return DetectReport{}, ErrNoTarget
	}
	if workers <= 0 {
		workers = 5
	}

	var (
		mu     sync.Mutex
		report DetectReport
	)

	pool := NewWorkerPool(workers, workers*2)
	results := pool.Run(ctx)

	go func() {
		for _, u := range targets {
			u := u
			pool.Submit(func(ctx context.Context) Result {
				res, err := p.inference.InferSkillsFor(ctx, u)
				if err != nil {
					p.logger.Error("skill detection failed", zap.String("user_id", u.ID.String()), zap.Error(err))
					return Result{Err: err}
				}

				mu.Lock()
				report.Processed++
				if len(res.Added) > 0 {
					report.Updated++
					report.SkillsAdded += len(res.Added)
				}
				mu.Unlock()

				p.logger.Debug("skill detection done",
					zap.String("user_id", u.ID.String()),
					zap.Int("added", len(res.Added)),
				)
				return Result{}
			})
		}
		pool.Close()
	}()

	for r := range results {
		if r.Err != nil {
			mu.Lock()
			report.Failed++
			mu.Unlock()
		}
	}

	report.Duration = time.Since(start)
	p.logger.Info("skill detection finished",
		zap.Int("processed", report.Processed),
		zap.Int("updated", report.Updated),
		zap.Int("skills_added", report.SkillsAdded),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", report.Duration),
	)
	return report, ctx.Err()
}
