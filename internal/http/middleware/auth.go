package middleware

import (
	"errors"
	"net/http"
	"strings"

	"backoffice/internal/auth"
	"backoffice/internal/domain"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// RequireAuth rejects requests without a valid bearer token and stores the
// caller identity for handlers.
func RequireAuth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abort(c, http.StatusUnauthorized, "authorization required")
			return
		}
		claims, err := tokens.Parse(raw)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "token expired"
			}
			abort(c, http.StatusUnauthorized, msg)
			return
		}
		c.Set(identityKey, domain.RequestContext{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		})
		c.Next()
	}
}

// RequireRoles must run after RequireAuth. Roles compare case-insensitively.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		id, ok := Identity(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "authorization required")
			return
		}
		if _, ok := allowed[strings.ToLower(id.Role)]; !ok {
			abort(c, http.StatusForbidden, "insufficient role")
			return
		}
		c.Next()
	}
}

// Identity returns the caller stored by RequireAuth.
func Identity(c *gin.Context) (domain.RequestContext, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.RequestContext{}, false
	}
	id, ok := v.(domain.RequestContext)
	return id, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, domain.ErrorResponse[any](msg, msg))
}
