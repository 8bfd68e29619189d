package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/void-labs/showcase/internal/modules/serializer"
	"github.com/void-labs/showcase/internal/modules/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type SignupReq struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Role            string `json:"role"`
	ProfilePicture  string `json:"profile_picture"`
	Institution     string `json:"institution"`
}

// Signup godoc
//
//	@Summary		Register a new user
//	@Description	Creates an account. password and confirm_password must match; role defaults to Presenter.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.SignupReq	true	"Signup payload"
//	@Success		201	{object}	serializer.Response{data=serializer.UserView}
//	@Router			/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	req := SignupReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, err := h.svc.Signup(c.Request.Context(), service.SignupInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
		ProfilePicture:  req.ProfilePicture,
		Institution:     req.Institution,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: serializer.BuildUser(user)})
}

type TokenReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Token godoc
//
//	@Summary		Obtain token pair
//	@Description	Exchanges username and password for an access + refresh token pair.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.TokenReq	true	"Credentials"
//	@Success		200	{object}	serializer.Response{data=tokens.Pair}
//	@Router			/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	req := TokenReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	pair, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: pair})
}

type TokenRefreshReq struct {
	Refresh string `json:"refresh" binding:"required"`
}

// TokenRefresh godoc
//
//	@Summary	Refresh the access token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.TokenRefreshReq	true	"Refresh token"
//	@Success	200	{object}	serializer.Response
//	@Router		/token/refresh [post]
func (h *AuthHandler) TokenRefresh(c *gin.Context) {
	req := TokenRefreshReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	access, err := h.svc.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: gin.H{"access": access}})
}
