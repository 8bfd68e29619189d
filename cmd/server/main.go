package main

//	@title			Showcase API
//	@version		1.0
//	@description	Project showcase platform: projects, feedback, ratings and moderation.
//	@schemes		http https
//	@BasePath		/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token (e.g., "Bearer eyJ...")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/do"
	"github.com/void-labs/showcase/internal/bootstrap"
	"github.com/void-labs/showcase/internal/config"
	"github.com/void-labs/showcase/internal/infra/queue"
	"github.com/void-labs/showcase/internal/modules/handler"
	"github.com/void-labs/showcase/internal/modules/service"
	"github.com/void-labs/showcase/internal/router"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	db := do.MustInvoke[*gorm.DB](inj)

	// init gin
	gin.SetMode(cfg.App.Env)

	// drain the notification queue into notification rows
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	consumer := queue.NewConsumer(
		do.MustInvoke[*amqp.Connection](inj),
		cfg,
		do.MustInvoke[service.NotificationService](inj),
		log,
	)
	if err := consumer.Start(consumerCtx); err != nil {
		log.Sugar().Fatalw("failed to start notification consumer", "err", err)
	}

	engine := router.NewRouter(router.RouterDeps{
		Config:              cfg,
		DB:                  db,
		Log:                 log,
		AuthHandler:         do.MustInvoke[*handler.AuthHandler](inj),
		UserHandler:         do.MustInvoke[*handler.UserHandler](inj),
		ProjectHandler:      do.MustInvoke[*handler.ProjectHandler](inj),
		FeedbackHandler:     do.MustInvoke[*handler.FeedbackHandler](inj),
		EngagementHandler:   do.MustInvoke[*handler.EngagementHandler](inj),
		NotificationHandler: do.MustInvoke[*handler.NotificationHandler](inj),
		ModerationHandler:   do.MustInvoke[*handler.ModerationHandler](inj),
		UploadHandler:       do.MustInvoke[*handler.UploadHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopConsumer()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
