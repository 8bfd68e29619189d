package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/void-labs/showcase/internal/config"
	"github.com/void-labs/showcase/internal/modules/model"
	"github.com/void-labs/showcase/internal/modules/serializer"
	"github.com/void-labs/showcase/internal/pkg/tokens"
)

const userKey = "user"

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

func lookupUser(c *gin.Context, cfg *config.Config, db *gorm.DB, raw string) (*model.User, error) {
	claims, err := tokens.Verify(cfg.Auth.JWTSecret, raw, tokens.TypeAccess)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := db.WithContext(c.Request.Context()).Where("id = ?", claims.UserID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// RequireAuth authenticates the request with an access token and puts the
// user in the context. The user is re-read from the database so a deleted
// account or changed role takes effect immediately.
func RequireAuth(cfg *config.Config, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		user, err := lookupUser(c, cfg, db, raw)
		if err != nil {
			if errors.Is(err, tokens.ErrInvalidToken) || errors.Is(err, tokens.ErrWrongType) || errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is present and passes the
// request through anonymously otherwise. Open read endpoints use it so
// my_rating and search logging can see the caller.
func OptionalAuth(cfg *config.Config, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.Next()
			return
		}
		user, err := lookupUser(c, cfg, db, raw)
		if err != nil {
			c.Next()
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin gates privileged moderation actions. Chain after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr("admin privileges required"))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user or nil for anonymous requests.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}
