package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/middleware"
	"github.com/void-labs/showcase/internal/modules/serializer"
	"github.com/void-labs/showcase/internal/modules/service"
)

// EngagementHandler serves the generic /ratings/, /reactions/ and
// /collaborations/ groups.
type EngagementHandler struct {
	ratings        service.RatingService
	reactions      service.ReactionService
	collaborations service.CollaborationService
}

func NewEngagementHandler(ratings service.RatingService, reactions service.ReactionService, collaborations service.CollaborationService) *EngagementHandler {
	return &EngagementHandler{ratings: ratings, reactions: reactions, collaborations: collaborations}
}

func queryProjectID(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("project")
	if raw == "" {
		return nil, true
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid project", err))
		return nil, false
	}
	return &parsed, true
}

// --- ratings ---

// ListRatings godoc
//
//	@Summary	List ratings
//	@Tags		rating
//	@Produce	json
//	@Param		project	query	string	false	"Filter by project ID"	format(uuid)
//	@Success	200	{object}	serializer.Response{data=[]model.Rating}
//	@Router		/ratings [get]
func (h *EngagementHandler) ListRatings(c *gin.Context) {
	projectID, ok := queryProjectID(c)
	if !ok {
		return
	}
	items, err := h.ratings.List(c.Request.Context(), projectID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

func (h *EngagementHandler) GetRating(c *gin.Context) {
	id, ok := pathID(c, "rating_id")
	if !ok {
		return
	}
	rt, err := h.ratings.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: rt})
}

type CreateRatingReq struct {
	ProjectID string `json:"project_id" binding:"required" format:"uuid"`
	Rating    int    `json:"rating" binding:"required"`
}

// CreateRating godoc
//
//	@Summary		Create or replace a rating
//	@Description	Same upsert semantics as the project rate action.
//	@Tags			rating
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateRatingReq	true	"Rating payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Rating}
//	@Router			/ratings [post]
func (h *EngagementHandler) CreateRating(c *gin.Context) {
	req := CreateRatingReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid project_id", err))
		return
	}

	rt, err := h.ratings.Create(c.Request.Context(), middleware.CurrentUser(c), projectID, req.Rating)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: rt})
}

type UpdateRatingReq struct {
	Rating int `json:"rating" binding:"required"`
}

func (h *EngagementHandler) UpdateRating(c *gin.Context) {
	id, ok := pathID(c, "rating_id")
	if !ok {
		return
	}
	req := UpdateRatingReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	rt, err := h.ratings.Update(c.Request.Context(), middleware.CurrentUser(c), id, req.Rating)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: rt})
}

func (h *EngagementHandler) DeleteRating(c *gin.Context) {
	id, ok := pathID(c, "rating_id")
	if !ok {
		return
	}
	if err := h.ratings.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// --- reactions ---

// ListReactions godoc
//
//	@Summary	List reactions
//	@Tags		reaction
//	@Produce	json
//	@Param		project	query	string	false	"Filter by project ID"	format(uuid)
//	@Success	200	{object}	serializer.Response{data=[]model.Reaction}
//	@Router		/reactions [get]
func (h *EngagementHandler) ListReactions(c *gin.Context) {
	projectID, ok := queryProjectID(c)
	if !ok {
		return
	}
	items, err := h.reactions.List(c.Request.Context(), projectID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

func (h *EngagementHandler) GetReaction(c *gin.Context) {
	id, ok := pathID(c, "reaction_id")
	if !ok {
		return
	}
	re, err := h.reactions.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: re})
}

type CreateReactionReq struct {
	ProjectID    string `json:"project_id" binding:"required" format:"uuid"`
	ReactionType string `json:"reaction_type" binding:"required"`
}

// CreateReaction godoc
//
//	@Summary	React to a project
//	@Tags		reaction
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.CreateReactionReq	true	"Reaction payload"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.Response{data=model.Reaction}
//	@Router		/reactions [post]
func (h *EngagementHandler) CreateReaction(c *gin.Context) {
	req := CreateReactionReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid project_id", err))
		return
	}

	re, err := h.reactions.Create(c.Request.Context(), middleware.CurrentUser(c), projectID, req.ReactionType)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: re})
}

type UpdateReactionReq struct {
	ReactionType string `json:"reaction_type" binding:"required"`
}

func (h *EngagementHandler) UpdateReaction(c *gin.Context) {
	id, ok := pathID(c, "reaction_id")
	if !ok {
		return
	}
	req := UpdateReactionReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	re, err := h.reactions.Update(c.Request.Context(), middleware.CurrentUser(c), id, req.ReactionType)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: re})
}

func (h *EngagementHandler) DeleteReaction(c *gin.Context) {
	id, ok := pathID(c, "reaction_id")
	if !ok {
		return
	}
	if err := h.reactions.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// --- collaborations ---

// ListCollaborations godoc
//
//	@Summary	List collaborations
//	@Tags		collaboration
//	@Produce	json
//	@Param		project	query	string	false	"Filter by project ID"	format(uuid)
//	@Success	200	{object}	serializer.Response{data=[]model.Collaboration}
//	@Router		/collaborations [get]
func (h *EngagementHandler) ListCollaborations(c *gin.Context) {
	projectID, ok := queryProjectID(c)
	if !ok {
		return
	}
	items, err := h.collaborations.List(c.Request.Context(), projectID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

func (h *EngagementHandler) GetCollaboration(c *gin.Context) {
	id, ok := pathID(c, "collaboration_id")
	if !ok {
		return
	}
	co, err := h.collaborations.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: co})
}

type CreateCollaborationReq struct {
	ProjectID string `json:"project_id" binding:"required" format:"uuid"`
}

// CreateCollaboration godoc
//
//	@Summary		Request collaboration on a project
//	@Description	Opens a Pending request from the authenticated user.
//	@Tags			collaboration
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateCollaborationReq	true	"Collaboration payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Collaboration}
//	@Router			/collaborations [post]
func (h *EngagementHandler) CreateCollaboration(c *gin.Context) {
	req := CreateCollaborationReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid project_id", err))
		return
	}

	co, err := h.collaborations.Create(c.Request.Context(), middleware.CurrentUser(c), projectID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: co})
}

type UpdateCollaborationReq struct {
	Status string `json:"status" binding:"required"`
}

// UpdateCollaboration godoc
//
//	@Summary		Accept or reject a collaboration
//	@Description	Only the project owner (or an admin) may change the status.
//	@Tags			collaboration
//	@Accept			json
//	@Produce		json
//	@Param			collaboration_id	path	string							true	"Collaboration ID"	format(uuid)
//	@Param			payload				body	handler.UpdateCollaborationReq	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Collaboration}
//	@Router			/collaborations/{collaboration_id} [put]
func (h *EngagementHandler) UpdateCollaboration(c *gin.Context) {
	id, ok := pathID(c, "collaboration_id")
	if !ok {
		return
	}
	req := UpdateCollaborationReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	co, err := h.collaborations.UpdateStatus(c.Request.Context(), middleware.CurrentUser(c), id, req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: co})
}

func (h *EngagementHandler) DeleteCollaboration(c *gin.Context) {
	id, ok := pathID(c, "collaboration_id")
	if !ok {
		return
	}
	if err := h.collaborations.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
