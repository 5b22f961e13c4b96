package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"m2_studio/internal/adapter/http/middleware"
	"m2_studio/internal/domain/entities"
	"m2_studio/internal/session"

	"github.com/gin-gonic/gin"
)

var (
	clientPrincipal = entities.Principal{ID: "u1", Email: "ana@example.com", DisplayName: "Ana", Role: entities.RoleClient}
	adminPrincipal  = entities.Principal{ID: "admin-1", Email: "studio@m2.test", DisplayName: "Mario", Role: entities.RoleAdmin}
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// as opens a session for p the way the auth middleware does.
func as(p entities.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.WithSession(c, &session.Session{UID: p.ID, Email: p.Email, DisplayName: p.DisplayName, Role: p.Role})
		c.Next()
	}
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return v
}
