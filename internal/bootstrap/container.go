package bootstrap

import (
	"context"
	"time"

	"github.com/void-labs/showcase/internal/config"
	"github.com/void-labs/showcase/internal/infra/blob"
	"github.com/void-labs/showcase/internal/infra/cache"
	"github.com/void-labs/showcase/internal/infra/db"
	"github.com/void-labs/showcase/internal/infra/logger"
	"github.com/void-labs/showcase/internal/infra/queue"
	"github.com/void-labs/showcase/internal/modules/handler"
	"github.com/void-labs/showcase/internal/modules/model"
	"github.com/void-labs/showcase/internal/modules/repo"
	"github.com/void-labs/showcase/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.User{},
				&model.Project{},
				&model.Feedback{},
				&model.Rating{},
				&model.Reaction{},
				&model.Collaboration{},
				&model.Notification{},
				&model.SearchLog{},
				&model.ReportedFeedback{},
				&model.Report{},
			)
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})
	do.Provide(inj, func(i *do.Injector) (*cache.RatingCache, error) {
		return cache.NewRatingCache(
			do.MustInvoke[*redis.Client](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})

	// RabbitMQ
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return amqp.Dial(cfg.RabbitMQ.URL)
	})
	do.Provide(inj, func(i *do.Injector) (*queue.Publisher, error) {
		return queue.NewPublisher(
			do.MustInvoke[*amqp.Connection](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		)
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})
	// presign expire duration
	do.Provide(inj, func(i *do.Injector) (func() time.Duration, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return func() time.Duration {
			if cfg.S3.PresignExpireSec <= 0 {
				return 15 * time.Minute
			}
			return time.Duration(cfg.S3.PresignExpireSec) * time.Second
		}, nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.FeedbackRepo, error) {
		return repo.NewFeedbackRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.RatingRepo, error) {
		return repo.NewRatingRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ReactionRepo, error) {
		return repo.NewReactionRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CollaborationRepo, error) {
		return repo.NewCollaborationRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.NotificationRepo, error) {
		return repo.NewNotificationRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SearchLogRepo, error) {
		return repo.NewSearchLogRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ReportedFeedbackRepo, error) {
		return repo.NewReportedFeedbackRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ReportRepo, error) {
		return repo.NewReportRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		return service.NewUserService(do.MustInvoke[repo.UserRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.RatingRepo](i),
			do.MustInvoke[repo.SearchLogRepo](i),
			do.MustInvoke[*cache.RatingCache](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.FeedbackService, error) {
		return service.NewFeedbackService(
			do.MustInvoke[repo.FeedbackRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[*queue.Publisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.RatingService, error) {
		return service.NewRatingService(
			do.MustInvoke[repo.RatingRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[*cache.RatingCache](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ReactionService, error) {
		return service.NewReactionService(
			do.MustInvoke[repo.ReactionRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CollaborationService, error) {
		return service.NewCollaborationService(
			do.MustInvoke[repo.CollaborationRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[*queue.Publisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.NotificationService, error) {
		return service.NewNotificationService(do.MustInvoke[repo.NotificationRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SearchLogService, error) {
		return service.NewSearchLogService(do.MustInvoke[repo.SearchLogRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ModerationService, error) {
		return service.NewModerationService(
			do.MustInvoke[repo.ReportedFeedbackRepo](i),
			do.MustInvoke[repo.ReportRepo](i),
			do.MustInvoke[repo.FeedbackRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[*queue.Publisher](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.AuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UserHandler, error) {
		return handler.NewUserHandler(do.MustInvoke[service.UserService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(
			do.MustInvoke[service.ProjectService](i),
			do.MustInvoke[service.FeedbackService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.FeedbackHandler, error) {
		return handler.NewFeedbackHandler(do.MustInvoke[service.FeedbackService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.EngagementHandler, error) {
		return handler.NewEngagementHandler(
			do.MustInvoke[service.RatingService](i),
			do.MustInvoke[service.ReactionService](i),
			do.MustInvoke[service.CollaborationService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.NotificationHandler, error) {
		return handler.NewNotificationHandler(
			do.MustInvoke[service.NotificationService](i),
			do.MustInvoke[service.SearchLogService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ModerationHandler, error) {
		return handler.NewModerationHandler(do.MustInvoke[service.ModerationService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UploadHandler, error) {
		expire := do.MustInvoke[func() time.Duration](i)
		return handler.NewUploadHandler(do.MustInvoke[*blob.S3Deps](i), expire()), nil
	})

	return inj
}
