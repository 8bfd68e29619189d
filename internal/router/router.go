package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/void-labs/showcase/internal/config"
	"github.com/void-labs/showcase/internal/middleware"
	"github.com/void-labs/showcase/internal/modules/handler"
	"github.com/void-labs/showcase/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/void-labs/showcase/docs"
)

type RouterDeps struct {
	Config              *config.Config
	DB                  *gorm.DB
	Log                 *zap.Logger
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	ProjectHandler      *handler.ProjectHandler
	FeedbackHandler     *handler.FeedbackHandler
	EngagementHandler   *handler.EngagementHandler
	NotificationHandler *handler.NotificationHandler
	ModerationHandler   *handler.ModerationHandler
	UploadHandler       *handler.UploadHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for handler package
	handler.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := middleware.RequireAuth(d.Config, d.DB)
	optionalAuth := middleware.OptionalAuth(d.Config, d.DB)
	requireAdmin := middleware.RequireAdmin()

	api := r.Group("/api")
	{
		api.POST("/auth/signup", d.AuthHandler.Signup)
		api.POST("/token", d.AuthHandler.Token)
		api.POST("/token/refresh", d.AuthHandler.TokenRefresh)

		user := api.Group("/users")
		{
			user.GET("", d.UserHandler.ListUsers)
			user.GET("/:user_id", d.UserHandler.GetUser)
			user.PUT("/:user_id", requireAuth, d.UserHandler.UpdateUser)
			user.PATCH("/:user_id", requireAuth, d.UserHandler.UpdateUser)
			user.DELETE("/:user_id", requireAuth, d.UserHandler.DeleteUser)
		}

		project := api.Group("/projects")
		{
			project.GET("", optionalAuth, d.ProjectHandler.ListProjects)
			project.POST("", requireAuth, d.ProjectHandler.CreateProject)
			project.GET("/search", optionalAuth, d.ProjectHandler.SearchProjects)

			project.GET("/:project_id", optionalAuth, d.ProjectHandler.GetProject)
			project.PUT("/:project_id", requireAuth, d.ProjectHandler.UpdateProject)
			project.PATCH("/:project_id", requireAuth, d.ProjectHandler.UpdateProject)
			project.DELETE("/:project_id", requireAuth, d.ProjectHandler.DeleteProject)

			project.POST("/:project_id/rate", requireAuth, d.ProjectHandler.RateProject)
			project.GET("/:project_id/ratings", d.ProjectHandler.ProjectRatings)
			project.GET("/:project_id/feedback", d.ProjectHandler.ProjectFeedback)
			project.POST("/:project_id/feedback", requireAuth, d.ProjectHandler.CreateProjectFeedback)
		}

		// projects owned by the caller
		api.GET("/user/projects", requireAuth, d.ProjectHandler.MyProjects)

		feedback := api.Group("/feedbacks")
		{
			feedback.GET("", d.FeedbackHandler.ListFeedback)
			feedback.POST("", requireAuth, d.FeedbackHandler.CreateFeedback)
			feedback.GET("/:feedback_id", d.FeedbackHandler.GetFeedback)
			feedback.PUT("/:feedback_id", requireAuth, d.FeedbackHandler.UpdateFeedback)
			feedback.PATCH("/:feedback_id", requireAuth, d.FeedbackHandler.UpdateFeedback)
			feedback.DELETE("/:feedback_id", requireAuth, d.FeedbackHandler.DeleteFeedback)
		}

		rating := api.Group("/ratings")
		{
			rating.GET("", d.EngagementHandler.ListRatings)
			rating.POST("", requireAuth, d.EngagementHandler.CreateRating)
			rating.GET("/:rating_id", d.EngagementHandler.GetRating)
			rating.PUT("/:rating_id", requireAuth, d.EngagementHandler.UpdateRating)
			rating.PATCH("/:rating_id", requireAuth, d.EngagementHandler.UpdateRating)
			rating.DELETE("/:rating_id", requireAuth, d.EngagementHandler.DeleteRating)
		}

		reaction := api.Group("/reactions")
		{
			reaction.GET("", d.EngagementHandler.ListReactions)
			reaction.POST("", requireAuth, d.EngagementHandler.CreateReaction)
			reaction.GET("/:reaction_id", d.EngagementHandler.GetReaction)
			reaction.PUT("/:reaction_id", requireAuth, d.EngagementHandler.UpdateReaction)
			reaction.PATCH("/:reaction_id", requireAuth, d.EngagementHandler.UpdateReaction)
			reaction.DELETE("/:reaction_id", requireAuth, d.EngagementHandler.DeleteReaction)
		}

		collaboration := api.Group("/collaborations")
		{
			collaboration.GET("", d.EngagementHandler.ListCollaborations)
			collaboration.POST("", requireAuth, d.EngagementHandler.CreateCollaboration)
			collaboration.GET("/:collaboration_id", d.EngagementHandler.GetCollaboration)
			collaboration.PUT("/:collaboration_id", requireAuth, d.EngagementHandler.UpdateCollaboration)
			collaboration.PATCH("/:collaboration_id", requireAuth, d.EngagementHandler.UpdateCollaboration)
			collaboration.DELETE("/:collaboration_id", requireAuth, d.EngagementHandler.DeleteCollaboration)
		}

		notification := api.Group("/notifications", requireAuth)
		{
			notification.GET("", d.NotificationHandler.ListNotifications)
			notification.POST("", d.NotificationHandler.CreateNotification)
			notification.GET("/:notification_id", d.NotificationHandler.GetNotification)
			notification.PATCH("/:notification_id", d.NotificationHandler.SetNotificationRead)
			notification.DELETE("/:notification_id", d.NotificationHandler.DeleteNotification)
		}

		searchlog := api.Group("/searchlogs", requireAuth)
		{
			searchlog.GET("", d.NotificationHandler.ListSearchLogs)
			searchlog.POST("", d.NotificationHandler.CreateSearchLog)
			searchlog.GET("/:searchlog_id", d.NotificationHandler.GetSearchLog)
			searchlog.DELETE("/:searchlog_id", d.NotificationHandler.DeleteSearchLog)
		}

		reported := api.Group("/reported-feedback")
		{
			reported.GET("", requireAuth, requireAdmin, d.ModerationHandler.ListReportedFeedback)
			reported.POST("", requireAuth, d.ModerationHandler.ReportFeedback)
			reported.GET("/:report_id", requireAuth, requireAdmin, d.ModerationHandler.GetReportedFeedback)
			reported.DELETE("/:report_id", requireAuth, d.ModerationHandler.DeleteReportedFeedback)
			reported.POST("/:report_id/resolve", requireAuth, requireAdmin, d.ModerationHandler.ResolveReportedFeedback)
			reported.POST("/:report_id/delete_feedback", requireAuth, requireAdmin, d.ModerationHandler.DeleteReportedFeedbackFeedback)
		}

		report := api.Group("/reports")
		{
			report.GET("", requireAuth, requireAdmin, d.ModerationHandler.ListReports)
			report.POST("", requireAuth, d.ModerationHandler.CreateReport)
			report.GET("/:report_id", requireAuth, requireAdmin, d.ModerationHandler.GetReport)
			report.PUT("/:report_id", requireAuth, requireAdmin, d.ModerationHandler.UpdateReport)
			report.PATCH("/:report_id", requireAuth, requireAdmin, d.ModerationHandler.UpdateReport)
			report.DELETE("/:report_id", requireAuth, d.ModerationHandler.DeleteReport)
		}

		api.POST("/uploads/presign", requireAuth, d.UploadHandler.Presign)
	}
	return r
}
