package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"m2_studio/internal/session"
	"m2_studio/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionKey = "session"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	errAdminOnly    = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin access only", http.StatusForbidden)
	errSessionStore = pkg.NewDomainErrorSimple("STORAGE_ERROR", "Could not load your profile, try again", http.StatusServiceUnavailable)
)

// SessionManager opens and closes per-request sessions.
type SessionManager interface {
	SignIn(ctx context.Context, id session.Identity) (*session.Session, error)
	SignOut(s *session.Session)
}

// Claims issued by the auth provider. The uid is carried in sub or user_id.
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func (c Claims) UID() string {
	if c.Subject != "" {
		return c.Subject
	}
	return c.UserID
}

type Authenticator struct {
	secret   []byte
	sessions SessionManager
}

func NewAuthenticator(secret string, sessions SessionManager) *Authenticator {
	return &Authenticator{secret: []byte(secret), sessions: sessions}
}

// ParseToken verifies an HS256 token and returns the caller identity.
func (a *Authenticator) ParseToken(raw string) (session.Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return session.Identity{}, err
	}
	if claims.UID() == "" {
		return session.Identity{}, session.ErrNoIdentity
	}
	return session.Identity{UID: claims.UID(), Email: claims.Email, DisplayName: claims.Name}, nil
}

// RequireAuth rejects requests without a valid bearer token.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return a.handle(true)
}

// OptionalAuth signs in when a token is present and lets guests through.
// A token that is present but invalid is still rejected.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return a.handle(false)
}

func (a *Authenticator) handle(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			if required {
				c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
				return
			}
			c.Next()
			return
		}

		id, err := a.ParseToken(raw)
		if err != nil {
			log.Printf("[auth][middleware] invalid token path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		s, err := a.sessions.SignIn(c.Request.Context(), id)
		if err != nil {
			log.Printf("[auth][middleware] sign-in failed user_id=%s err=%v", id.UID, err)
			if errors.Is(err, session.ErrNoIdentity) {
				c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
				return
			}
			c.AbortWithStatusJSON(errSessionStore.HTTPStatus, errSessionStore.ToHTTPError())
			return
		}
		defer a.sessions.SignOut(s)

		c.Set(sessionKey, s)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := SessionFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if !s.IsAdmin() {
			c.AbortWithStatusJSON(errAdminOnly.HTTPStatus, errAdminOnly.ToHTTPError())
			return
		}
		c.Next()
	}
}

// SessionFrom returns the session opened for this request, if any.
func SessionFrom(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok && s != nil
}

// WithSession stores s on the context. Used by tests and by handlers that
// authenticate outside the middleware chain.
func WithSession(c *gin.Context, s *session.Session) {
	c.Set(sessionKey, s)
}

// bearerToken reads the Authorization header. Browsers cannot set headers on
// websocket upgrades, so access_token is accepted as a query parameter too.
func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(c.Query("access_token"))
}
