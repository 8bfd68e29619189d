package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/void-labs/showcase/internal/middleware"
	"github.com/void-labs/showcase/internal/modules/serializer"
	"github.com/void-labs/showcase/internal/modules/service"
)

type ProjectHandler struct {
	svc      service.ProjectService
	feedback service.FeedbackService
}

func NewProjectHandler(svc service.ProjectService, feedback service.FeedbackService) *ProjectHandler {
	return &ProjectHandler{svc: svc, feedback: feedback}
}

// ListProjects godoc
//
//	@Summary	List all projects
//	@Tags		project
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]serializer.ProjectView}
//	@Router		/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.BuildProjects(items, middleware.CurrentUser(c))})
}

// GetProject godoc
//
//	@Summary	Retrieve a project
//	@Tags		project
//	@Produce	json
//	@Param		project_id	path	string	true	"Project ID"	format(uuid)
//	@Success	200	{object}	serializer.Response{data=serializer.ProjectView}
//	@Router		/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	d, err := h.svc.Get(c.Request.Context(), id, middleware.CurrentUser(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{
		Data: serializer.BuildProjectDetail(d.Project, d.Average, d.Count, d.MyRating),
	})
}

type CreateProjectReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	UploadPath  string `json:"upload_path"`
	VideoURL    string `json:"video_url"`
	Thumbnail   string `json:"thumbnail"`
}

// CreateProject godoc
//
//	@Summary		Create a project
//	@Description	The owner is the authenticated user; a user_id in the body is ignored.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateProjectReq	true	"Project payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Project}
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), middleware.CurrentUser(c), service.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		UploadPath:  req.UploadPath,
		VideoURL:    req.VideoURL,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}

type UpdateProjectReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	UploadPath  *string `json:"upload_path"`
	VideoURL    *string `json:"video_url"`
	Thumbnail   *string `json:"thumbnail"`
}

// UpdateProject godoc
//
//	@Summary		Update a project
//	@Description	Owner or admin only. PUT and PATCH behave identically: absent fields are untouched.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string						true	"Project ID"	format(uuid)
//	@Param			payload		body	handler.UpdateProjectReq	true	"Fields to update"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/projects/{project_id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	req := UpdateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), middleware.CurrentUser(c), id, service.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		UploadPath:  req.UploadPath,
		VideoURL:    req.VideoURL,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// DeleteProject godoc
//
//	@Summary	Delete a project
//	@Tags		project
//	@Produce	json
//	@Param		project_id	path	string	true	"Project ID"	format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// SearchProjects godoc
//
//	@Summary		Search projects
//	@Description	Case-insensitive substring match on title or description. All matches, no ranking.
//	@Tags			project
//	@Produce		json
//	@Param			q	query	string	true	"Search term"
//	@Success		200	{object}	serializer.Response{data=[]serializer.ProjectView}
//	@Router			/projects/search [get]
func (h *ProjectHandler) SearchProjects(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("q is required", nil))
		return
	}
	requester := middleware.CurrentUser(c)
	items, err := h.svc.Search(c.Request.Context(), q, requester)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.BuildProjects(items, requester)})
}

// MyProjects godoc
//
//	@Summary	Projects owned by the caller
//	@Tags		project
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]serializer.ProjectView}
//	@Router		/user/projects [get]
func (h *ProjectHandler) MyProjects(c *gin.Context) {
	user := middleware.CurrentUser(c)
	items, err := h.svc.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.BuildProjects(items, user)})
}

type RateReq struct {
	Rating int `json:"rating" binding:"required"`
}

// RateProject godoc
//
//	@Summary		Rate a project
//	@Description	Upserts the caller's rating, 1-5. A second submission overwrites the first.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string			true	"Project ID"	format(uuid)
//	@Param			payload		body	handler.RateReq	true	"Rating value"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Rating}
//	@Router			/projects/{project_id}/rate [post]
func (h *ProjectHandler) RateProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	req := RateReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("rating must be an integer between 1 and 5", err))
		return
	}

	rt, err := h.svc.Rate(c.Request.Context(), middleware.CurrentUser(c), id, req.Rating)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: rt})
}

// ProjectRatings godoc
//
//	@Summary	List ratings for a project
//	@Tags		project
//	@Produce	json
//	@Param		project_id	path	string	true	"Project ID"	format(uuid)
//	@Success	200	{object}	serializer.Response{data=[]model.Rating}
//	@Router		/projects/{project_id}/ratings [get]
func (h *ProjectHandler) ProjectRatings(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	items, err := h.svc.Ratings(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// ProjectFeedback godoc
//
//	@Summary	List feedback for a project
//	@Tags		project
//	@Produce	json
//	@Param		project_id	path	string	true	"Project ID"	format(uuid)
//	@Success	200	{object}	serializer.Response{data=[]serializer.FeedbackView}
//	@Router		/projects/{project_id}/feedback [get]
func (h *ProjectHandler) ProjectFeedback(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	items, err := h.feedback.List(c.Request.Context(), &id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.BuildFeedbacks(items)})
}

type ProjectFeedbackReq struct {
	Comment string `json:"comment" binding:"required"`
}

// CreateProjectFeedback godoc
//
//	@Summary		Add feedback to a project
//	@Description	User and project are assigned server-side; the body carries only the comment.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string						true	"Project ID"	format(uuid)
//	@Param			payload		body	handler.ProjectFeedbackReq	true	"Comment"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=serializer.FeedbackView}
//	@Router			/projects/{project_id}/feedback [post]
func (h *ProjectHandler) CreateProjectFeedback(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	req := ProjectFeedbackReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	f, err := h.feedback.Create(c.Request.Context(), middleware.CurrentUser(c), id, req.Comment)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: serializer.BuildFeedback(f)})
}
