package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/middleware"
	"github.com/void-labs/showcase/internal/modules/serializer"
	"github.com/void-labs/showcase/internal/modules/service"
)

type ModerationHandler struct {
	svc service.ModerationService
}

func NewModerationHandler(svc service.ModerationService) *ModerationHandler {
	return &ModerationHandler{svc: svc}
}

// --- reported feedback ---

// ListReportedFeedback godoc
//
//	@Summary	List reported feedback
//	@Tags		moderation
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.ReportedFeedback}
//	@Router		/reported-feedback [get]
func (h *ModerationHandler) ListReportedFeedback(c *gin.Context) {
	items, err := h.svc.ListReportedFeedback(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

func (h *ModerationHandler) GetReportedFeedback(c *gin.Context) {
	id, ok := pathID(c, "report_id")
	if !ok {
		return
	}
	rf, err := h.svc.GetReportedFeedback(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: rf})
}

type ReportFeedbackReq struct {
	FeedbackID string `json:"feedback_id" binding:"required" format:"uuid"`
	Reason     string `json:"reason" binding:"required"`
}

// ReportFeedback godoc
//
//	@Summary	Report a feedback comment
//	@Tags		moderation
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.ReportFeedbackReq	true	"Report payload"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.Response{data=model.ReportedFeedback}
//	@Router		/reported-feedback [post]
func (h *ModerationHandler) ReportFeedback(c *gin.Context) {
	req := ReportFeedbackReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	feedbackID, err := uuid.Parse(req.FeedbackID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid feedback_id", err))
		return
	}

	rf, err := h.svc.ReportFeedback(c.Request.Context(), middleware.CurrentUser(c), feedbackID, req.Reason)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: rf})
}

// ResolveReportedFeedback godoc
//
//	@Summary		Resolve a report
//	@Description	Admin only. Stamps resolver identity and timestamp exactly once; irreversible.
//	@Tags			moderation
//	@Produce		json
//	@Param			report_id	path	string	true	"Report ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ReportedFeedback}
//	@Router			/reported-feedback/{report_id}/resolve [post]
func (h *ModerationHandler) ResolveReportedFeedback(c *gin.Context) {
	id, ok := pathID(c, "report_id")
	if !ok {
		return
	}
	rf, err := h.svc.Resolve(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: rf})
}

// DeleteReportedFeedbackFeedback godoc
//
//	@Summary		Resolve a report and delete the feedback
//	@Description	Admin only. Marks the report resolved and removes the underlying feedback in one transaction.
//	@Tags			moderation
//	@Produce		json
//	@Param			report_id	path	string	true	"Report ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/reported-feedback/{report_id}/delete_feedback [post]
func (h *ModerationHandler) DeleteReportedFeedbackFeedback(c *gin.Context) {
	id, ok := pathID(c, "report_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteFeedback(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "report resolved, feedback deleted"})
}

func (h *ModerationHandler) DeleteReportedFeedback(c *gin.Context) {
	id, ok := pathID(c, "report_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteReportedFeedback(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// --- project reports ---

// ListReports godoc
//
//	@Summary	List reports
//	@Tags		moderation
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.Report}
//	@Router		/reports [get]
func (h *ModerationHandler) ListReports(c *gin.Context) {
	items, err := h.svc.ListReports(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

func (h *ModerationHandler) GetReport(c *gin.Context) {
	id, ok := pathID(c, "report_id")
	if !ok {
		return
	}
	rp, err := h.svc.GetReport(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: rp})
}

type CreateReportReq struct {
	ProjectID  string `json:"project_id" binding:"required" format:"uuid"`
	FeedbackID string `json:"feedback_id" format:"uuid"`
	Reason     string `json:"reason" binding:"required"`
}

// CreateReport godoc
//
//	@Summary	Report a project
//	@Tags		moderation
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.CreateReportReq	true	"Report payload"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.Response{data=model.Report}
//	@Router		/reports [post]
func (h *ModerationHandler) CreateReport(c *gin.Context) {
	req := CreateReportReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid project_id", err))
		return
	}
	var feedbackID *uuid.UUID
	if req.FeedbackID != "" {
		parsed, err := uuid.Parse(req.FeedbackID)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid feedback_id", err))
			return
		}
		feedbackID = &parsed
	}

	rp, err := h.svc.CreateReport(c.Request.Context(), middleware.CurrentUser(c), projectID, feedbackID, req.Reason)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: rp})
}

type UpdateReportReq struct {
	Status string `json:"status" binding:"required"`
}

func (h *ModerationHandler) UpdateReport(c *gin.Context) {
	id, ok := pathID(c, "report_id")
	if !ok {
		return
	}
	req := UpdateReportReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	rp, err := h.svc.UpdateReportStatus(c.Request.Context(), middleware.CurrentUser(c), id, req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: rp})
}

func (h *ModerationHandler) DeleteReport(c *gin.Context) {
	id, ok := pathID(c, "report_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteReport(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
