package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/modules/serializer"
	"github.com/void-labs/showcase/internal/modules/service"
	"github.com/void-labs/showcase/internal/pkg/tokens"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var log = zap.NewNop()

// SetLogger wires the package logger; the router calls this once at startup.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// respondErr maps service errors onto status codes. Unexpected errors are
// logged server-side and answered with a generic message; the raw detail is
// only embedded outside release mode (see serializer.Err).
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr(""))
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusBadRequest, serializer.ParamErr("already exists", err))
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, tokens.ErrInvalidToken),
		errors.Is(err, tokens.ErrWrongType):
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(err.Error()))
	case errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidReaction),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrAlreadyResolved):
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), nil))
	default:
		log.Sugar().Errorw("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"err", err,
		)
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	}
}

// pathID parses a uuid path parameter, answering 400 itself on failure.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid "+name, err))
		return uuid.Nil, false
	}
	return id, true
}
