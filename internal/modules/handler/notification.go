package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/middleware"
	"github.com/void-labs/showcase/internal/modules/serializer"
	"github.com/void-labs/showcase/internal/modules/service"
	"gorm.io/datatypes"
)

type NotificationHandler struct {
	notifications service.NotificationService
	searchLogs    service.SearchLogService
}

func NewNotificationHandler(notifications service.NotificationService, searchLogs service.SearchLogService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, searchLogs: searchLogs}
}

// ListNotifications godoc
//
//	@Summary		List notifications
//	@Description	Returns only the authenticated user's notifications, newest first.
//	@Tags			notification
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Notification}
//	@Router			/notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	items, err := h.notifications.ListForUser(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

func (h *NotificationHandler) GetNotification(c *gin.Context) {
	id, ok := pathID(c, "notification_id")
	if !ok {
		return
	}
	n, err := h.notifications.Get(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: n})
}

type CreateNotificationReq struct {
	UserID  string                 `json:"user_id" format:"uuid"`
	Message string                 `json:"message" binding:"required"`
	Data    map[string]interface{} `json:"data"`
}

// CreateNotification godoc
//
//	@Summary		Create a notification
//	@Description	Omitting user_id targets the caller; targeting another user needs the admin role.
//	@Tags			notification
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateNotificationReq	true	"Notification payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Notification}
//	@Router			/notifications [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	req := CreateNotificationReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	actor := middleware.CurrentUser(c)
	target := uuid.Nil
	if actor != nil {
		target = actor.ID
	}
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid user_id", err))
			return
		}
		target = parsed
	}

	n, err := h.notifications.Create(c.Request.Context(), actor, target, req.Message, datatypes.JSONMap(req.Data))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: n})
}

type SetReadReq struct {
	IsRead *bool `json:"is_read" binding:"required"`
}

// SetNotificationRead godoc
//
//	@Summary	Mark a notification read or unread
//	@Tags		notification
//	@Accept		json
//	@Produce	json
//	@Param		notification_id	path	string				true	"Notification ID"	format(uuid)
//	@Param		payload			body	handler.SetReadReq	true	"Read flag"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Notification}
//	@Router		/notifications/{notification_id} [patch]
func (h *NotificationHandler) SetNotificationRead(c *gin.Context) {
	id, ok := pathID(c, "notification_id")
	if !ok {
		return
	}
	req := SetReadReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	n, err := h.notifications.SetRead(c.Request.Context(), middleware.CurrentUser(c), id, *req.IsRead)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: n})
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, ok := pathID(c, "notification_id")
	if !ok {
		return
	}
	if err := h.notifications.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// --- search logs ---

// ListSearchLogs godoc
//
//	@Summary	List the caller's search history
//	@Tags		searchlog
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.SearchLog}
//	@Router		/searchlogs [get]
func (h *NotificationHandler) ListSearchLogs(c *gin.Context) {
	items, err := h.searchLogs.ListForUser(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type CreateSearchLogReq struct {
	Query string `json:"query" binding:"required"`
}

func (h *NotificationHandler) CreateSearchLog(c *gin.Context) {
	req := CreateSearchLogReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	sl, err := h.searchLogs.Create(c.Request.Context(), middleware.CurrentUser(c), req.Query)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: sl})
}

func (h *NotificationHandler) GetSearchLog(c *gin.Context) {
	id, ok := pathID(c, "searchlog_id")
	if !ok {
		return
	}
	sl, err := h.searchLogs.Get(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: sl})
}

func (h *NotificationHandler) DeleteSearchLog(c *gin.Context) {
	id, ok := pathID(c, "searchlog_id")
	if !ok {
		return
	}
	if err := h.searchLogs.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
