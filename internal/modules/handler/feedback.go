package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/middleware"
	"github.com/void-labs/showcase/internal/modules/serializer"
	"github.com/void-labs/showcase/internal/modules/service"
)

type FeedbackHandler struct {
	svc service.FeedbackService
}

func NewFeedbackHandler(svc service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

// ListFeedback godoc
//
//	@Summary	List feedback
//	@Tags		feedback
//	@Produce	json
//	@Param		project	query	string	false	"Filter by project ID"	format(uuid)
//	@Success	200	{object}	serializer.Response{data=[]serializer.FeedbackView}
//	@Router		/feedbacks [get]
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	var projectID *uuid.UUID
	if raw := c.Query("project"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid project", err))
			return
		}
		projectID = &parsed
	}

	items, err := h.svc.List(c.Request.Context(), projectID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.BuildFeedbacks(items)})
}

// GetFeedback godoc
//
//	@Summary	Retrieve a feedback
//	@Tags		feedback
//	@Produce	json
//	@Param		feedback_id	path	string	true	"Feedback ID"	format(uuid)
//	@Success	200	{object}	serializer.Response{data=serializer.FeedbackView}
//	@Router		/feedbacks/{feedback_id} [get]
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	id, ok := pathID(c, "feedback_id")
	if !ok {
		return
	}
	f, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.BuildFeedback(f)})
}

type CreateFeedbackReq struct {
	ProjectID string `json:"project_id" binding:"required" format:"uuid"`
	Comment   string `json:"comment" binding:"required"`
}

// CreateFeedback godoc
//
//	@Summary		Create feedback
//	@Description	The author is the authenticated user.
//	@Tags			feedback
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateFeedbackReq	true	"Feedback payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=serializer.FeedbackView}
//	@Router			/feedbacks [post]
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	req := CreateFeedbackReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid project_id", err))
		return
	}

	f, err := h.svc.Create(c.Request.Context(), middleware.CurrentUser(c), projectID, req.Comment)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: serializer.BuildFeedback(f)})
}

type UpdateFeedbackReq struct {
	Comment string `json:"comment" binding:"required"`
}

// UpdateFeedback godoc
//
//	@Summary	Update a feedback comment
//	@Tags		feedback
//	@Accept		json
//	@Produce	json
//	@Param		feedback_id	path	string						true	"Feedback ID"	format(uuid)
//	@Param		payload		body	handler.UpdateFeedbackReq	true	"New comment"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=serializer.FeedbackView}
//	@Router		/feedbacks/{feedback_id} [put]
func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	id, ok := pathID(c, "feedback_id")
	if !ok {
		return
	}
	req := UpdateFeedbackReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	f, err := h.svc.Update(c.Request.Context(), middleware.CurrentUser(c), id, req.Comment)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.BuildFeedback(f)})
}

// DeleteFeedback godoc
//
//	@Summary	Delete a feedback
//	@Tags		feedback
//	@Produce	json
//	@Param		feedback_id	path	string	true	"Feedback ID"	format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/feedbacks/{feedback_id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	id, ok := pathID(c, "feedback_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
