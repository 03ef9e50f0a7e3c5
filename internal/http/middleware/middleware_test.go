package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"backoffice/internal/auth"
	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newIssuer(t *testing.T) *auth.TokenIssuer {
	t.Helper()
	tokens, err := auth.NewTokenIssuer("middleware-test-key", "backoffice", "backoffice-clients", time.Hour)
	require.NoError(t, err)
	return tokens
}

func serve(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	tokens := newIssuer(t)
	user := models.User{ID: uuid.New(), Username: "alice", Role: models.RoleUser}
	token, err := tokens.Issue(user)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/p", RequireAuth(tokens), func(c *gin.Context) {
		id, ok := Identity(c)
		require.True(t, ok)
		c.String(http.StatusOK, id.UserID+"|"+id.Username+"|"+id.Role)
	})

	rec := serve(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID.String()+"|alice|User", rec.Body.String())

	rec = serve(r, "bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, h := range []string{"", "Basic abc", "Bearer ", token, "Bearer " + token + "x"} {
		rec = serve(r, h)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", h)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	}
}

func TestRequireRoles(t *testing.T) {
	tokens := newIssuer(t)
	admin, err := tokens.Issue(models.User{ID: uuid.New(), Username: "root", Role: models.RoleAdmin})
	require.NoError(t, err)
	user, err := tokens.Issue(models.User{ID: uuid.New(), Username: "alice", Role: models.RoleUser})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/p", RequireAuth(tokens), RequireRoles(models.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, serve(r, "Bearer "+admin).Code)
	assert.Equal(t, http.StatusForbidden, serve(r, "Bearer "+user).Code)

	bare := gin.New()
	bare.GET("/p", RequireRoles(models.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	assert.Equal(t, http.StatusUnauthorized, serve(bare, "").Code)
}

func TestLoggerWritesRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core)))
	r.GET("/p", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set(RequestIDHeader, "rid-1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "rid-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.NotEmpty(t, entries[1].ContextMap()["request_id"])
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:5173"}))
	r.GET("/p", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/p", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
