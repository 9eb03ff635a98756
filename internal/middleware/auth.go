package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/kanban-api/internal/constants"
	apierrors "github.com/mizuki-dev/kanban-api/internal/errors"
	"github.com/mizuki-dev/kanban-api/internal/models"
	"github.com/mizuki-dev/kanban-api/internal/repository"
	"github.com/mizuki-dev/kanban-api/internal/services"
)

// RequireAuth resolves the bearer token from the Authorization header and
// aborts with 401 when it is missing, malformed or invalid. The resolved user
// is stored in the gin context and passed explicitly into service calls by
// the handlers; nothing downstream reads ambient auth state.
func RequireAuth(tokens *services.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := resolveUser(c, tokens, users)
		if user == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// OptionalAuth resolves the bearer token when present. Absent or invalid
// credentials yield an anonymous context, never an error; visibility rules
// downstream decide what an anonymous caller may see.
func OptionalAuth(tokens *services.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := resolveUser(c, tokens, users); user != nil {
			c.Set(constants.ContextKeyUser, user)
		}
		c.Next()
	}
}

// GetCurrentUser retrieves the authenticated user from context. The second
// return is false for anonymous requests.
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil, false
	}
	return user, true
}

func resolveUser(c *gin.Context, tokens *services.TokenService, users repository.UserRepository) *models.User {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return nil
	}

	claims, err := tokens.ParseAccessToken(token)
	if err != nil {
		return nil
	}

	user, err := users.FindByUsername(claims.Username)
	if err != nil || !user.IsActive {
		return nil
	}

	return user
}
