package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
	"github.com/dmitrijs2005/gadgetkeeper/internal/logging"
	"github.com/dmitrijs2005/gadgetkeeper/internal/server/auth"
	"github.com/gin-gonic/gin"
)

// identityKey is the gin context key holding the caller's *auth.Identity.
const identityKey = "identity"

// Authorizer checks a raw session credential.
type Authorizer interface {
	Authorize(token string) (*auth.Identity, error)
}

// tokenFromRequest reads the credential from the token cookie, falling back
// to an "Authorization: Bearer" header.
func tokenFromRequest(c *gin.Context) string {
	if v, err := c.Cookie(common.AccessTokenCookieName); err == nil && v != "" {
		return v
	}
	h := c.GetHeader(common.AuthorizationHeaderName)
	if strings.HasPrefix(h, common.BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(h, common.BearerPrefix))
	}
	return ""
}

// requireAdmin admits only requests carrying a valid ADMIN credential and
// stores the identity in the gin context.
func requireAdmin(gate Authorizer, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := gate.Authorize(tokenFromRequest(c))
		if err != nil {
			if errors.Is(err, common.ErrorForbidden) && id != nil {
				logger.Warn(c.Request.Context(), "admin route refused", "user", id.UserID, "role", id.Role)
			}
			code := statusFor(err)
			abortWithError(c, code, publicMessage(err, code))
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

func identityFrom(c *gin.Context) *auth.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*auth.Identity)
	return id
}

// accessLog writes one line per request through the structured logger.
func accessLog(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
		)
	}
}

// recovery turns handler panics into a 500 envelope.
func recovery(logger logging.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, rec any) {
		logger.Error(c.Request.Context(), "panic recovered", "panic", rec, "path", c.Request.URL.Path)
		abortWithError(c, http.StatusInternalServerError, internalErrorMessage)
	})
}
