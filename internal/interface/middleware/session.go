package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/lightbnb-api/internal/domain/apperr"
	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
	"github.com/oksasatya/lightbnb-api/pkg/helpers"
	"github.com/oksasatya/lightbnb-api/pkg/response"
)

type sessionCtxKey struct{}

const sessionGinKey = "session"

// SessionResolver maps a session cookie value to its live session.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (entity.Session, error)
}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s entity.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFrom returns the session attached by LoadSession, if any.
func SessionFrom(ctx context.Context) (entity.Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(entity.Session)
	return s, ok
}

// LoadSession attaches the caller's session to the request when the cookie resolves.
// Requests without a valid session continue anonymously.
func LoadSession(resolver SessionResolver, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}
		sess, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, apperr.ErrNotFound) && logger != nil {
				helpers.RequestLogger(logger, c).WithError(err).Warn("resolve session failed")
			}
			c.Next()
			return
		}
		c.Set(sessionGinKey, sess)
		c.Request = c.Request.WithContext(WithSession(c.Request.Context(), sess))
		c.Next()
	}
}

// RequireSession rejects anonymous requests with 401 {message:"not logged in"}.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionFrom(c.Request.Context()); !ok {
			response.Message(c, http.StatusUnauthorized, "not logged in")
			return
		}
		c.Next()
	}
}
