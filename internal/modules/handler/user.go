package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/void-labs/showcase/internal/middleware"
	"github.com/void-labs/showcase/internal/modules/serializer"
	"github.com/void-labs/showcase/internal/modules/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ListUsers godoc
//
//	@Summary	List users
//	@Tags		user
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]serializer.UserView}
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.BuildUsers(users)})
}

// GetUser godoc
//
//	@Summary	Retrieve a user
//	@Tags		user
//	@Produce	json
//	@Param		user_id	path	string	true	"User ID"	format(uuid)
//	@Success	200	{object}	serializer.Response{data=serializer.UserView}
//	@Router		/users/{user_id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.BuildUser(u)})
}

type UpdateUserReq struct {
	Email          *string `json:"email"`
	ProfilePicture *string `json:"profile_picture"`
	Institution    *string `json:"institution"`
}

// UpdateUser godoc
//
//	@Summary	Update a user
//	@Tags		user
//	@Accept		json
//	@Produce	json
//	@Param		user_id	path	string					true	"User ID"	format(uuid)
//	@Param		payload	body	handler.UpdateUserReq	true	"Fields to update"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=serializer.UserView}
//	@Router		/users/{user_id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	req := UpdateUserReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	u, err := h.svc.Update(c.Request.Context(), middleware.CurrentUser(c), id, service.UpdateUserInput{
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
		Institution:    req.Institution,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: serializer.BuildUser(u)})
}

// DeleteUser godoc
//
//	@Summary		Delete a user
//	@Description	Cascades to every row the user owns.
//	@Tags			user
//	@Produce		json
//	@Param			user_id	path	string	true	"User ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/users/{user_id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
