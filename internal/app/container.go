package app

import (
	"context"
	"errors"
	"time"

	"crewmatch/internal/config"
	"crewmatch/internal/database"
	dbpostgres "crewmatch/internal/database/postgres"
	"crewmatch/internal/domain/lexicon"
	"crewmatch/internal/infrastructure/cache"
	"crewmatch/internal/infrastructure/persistence/postgres"
	"crewmatch/internal/pipeline"
	"crewmatch/internal/repository"
	"crewmatch/internal/usecase"

	"go.uber.org/zap"
)

// Container owns the process-wide dependencies shared by the HTTP server and
// the CLI.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis

	Lexicon *lexicon.Lexicon

	Users        *postgres.UserRepository
	Jobs         *repository.PostgresJobRepository
	Applications *repository.PostgresApplicationRepository
	Reviews      *repository.PostgresReviewRepository
	Skills       *repository.PostgresSkillRepository

	SkillInference    *usecase.SkillInference
	ReviewEligibility *usecase.ReviewEligibility
	Reputation        *usecase.Reputation
	Recommendation    *usecase.Recommendation
	SkillDetection    *pipeline.SkillDetectionPipeline
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return Wire(cfg, logger, db, cache.NewRedis(cfg.Redis, logger.Named("cache"))), nil
}

// Wire assembles repositories and usecases over an existing database handle.
func Wire(cfg config.Config, logger *zap.Logger, db database.DB, rc *cache.Redis) *Container {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Container{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Cache:   rc,
		Lexicon: lexicon.Default(),
	}

	logger.Debug("skill lexicon loaded", zap.Int("categories", c.Lexicon.Len()))

	c.Skills = repository.NewPostgresSkillRepository(db)
	c.Users = postgres.NewUserRepository(db, c.Skills)
	c.Jobs = repository.NewPostgresJobRepository(db)
	c.Applications = repository.NewPostgresApplicationRepository(db)
	c.Reviews = repository.NewPostgresReviewRepository(db)

	c.SkillInference = usecase.NewSkillInferenceUsecase(
		c.Users, c.Applications, c.Jobs, c.Skills, c.Lexicon, logger.Named("inference"),
	)
	c.ReviewEligibility = usecase.NewReviewEligibilityUsecase(c.Jobs, c.Applications, c.Reviews)

	var repCache usecase.JSONCache
	if rc != nil {
		repCache = rc
	}
	c.Reputation = usecase.NewReputationUsecase(
		c.Users, c.Reviews, repCache, cfg.Engine.ReputationCacheTTL, logger.Named("reputation"),
	)
	c.Recommendation = usecase.NewRecommendationUsecase(
		c.Users, c.Jobs, c.SkillInference, cfg.Engine, logger.Named("recommendation"),
	)
	c.SkillDetection = pipeline.NewSkillDetectionPipeline(c.Users, c.SkillInference, logger.Named("pipeline"))

	return c
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	return errors.Join(errs...)
}
