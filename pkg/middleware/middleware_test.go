package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	return r
}

func TestTraceIDMiddleware(t *testing.T) {
	r := newEngine(TraceIDMiddleware())

	var fromGin, fromCtx string
	r.GET("/ping", func(c *gin.Context) {
		fromGin = c.GetString(TraceIDKey)
		fromCtx = TraceIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	header := w.Header().Get(TraceIDHeader)
	_, err := uuid.Parse(header)
	require.NoError(t, err)
	assert.Equal(t, header, fromGin)
	assert.Equal(t, header, fromCtx)
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantStatus int
		wantOrigin string
	}{
		{name: "wildcard", allowed: []string{"*"}, origin: "https://x.example", method: http.MethodGet, wantStatus: http.StatusOK, wantOrigin: "*"},
		{name: "listed origin", allowed: []string{"https://a.example"}, origin: "https://a.example", method: http.MethodGet, wantStatus: http.StatusOK, wantOrigin: "https://a.example"},
		{name: "unlisted origin", allowed: []string{"https://a.example"}, origin: "https://b.example", method: http.MethodGet, wantStatus: http.StatusOK, wantOrigin: ""},
		{name: "preflight", allowed: []string{"*"}, origin: "https://x.example", method: http.MethodOptions, wantStatus: http.StatusNoContent, wantOrigin: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(CORSMiddleware(tt.allowed))
			r.GET("/api/nearby", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/api/nearby", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := newEngine(TraceIDMiddleware(), RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	for _, path := range []string{"/ok", "/bad"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "/bad", entries[1].ContextMap()["path"])
	assert.NotEmpty(t, entries[1].ContextMap()["trace_id"])
}
