package middleware

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"convai/internal/api/errors"
)

func newRouter(logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.Use(StructuredLogging(logger))
	router.Use(Metrics())
	router.Use(ErrorHandler(logger))
	return router
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	router := newRouter(zap.NewNop())
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/id", nil))
	generated := rec.Header().Get("X-Request-ID")
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestHandleError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	router := newRouter(zap.New(core))
	router.GET("/missing", func(c *gin.Context) {
		HandleError(c, errors.NewNotFoundError("File"))
	})
	router.GET("/broken", func(c *gin.Context) {
		HandleError(c, stderrors.New("disk full"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "not_found", body["kind"])
	assert.Equal(t, "File not found", body["message"])
	assert.Equal(t, rec.Header().Get("X-Request-ID"), body["request_id"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, rec.Body.String(), "disk full")

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Contains(t, entries[1].ContextMap()["error"], "disk full", "the cause is only logged")
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	router := newRouter(zap.New(core))
	router.GET("/panic", func(c *gin.Context) {
		panic(stderrors.New("nil map"))
	})
	router.GET("/panic-value", func(c *gin.Context) {
		panic("something odd")
	})

	for _, path := range []string{"/panic", "/panic-value"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
		assert.Equal(t, "internal", decode(t, rec)["kind"], path)
	}

	assert.Equal(t, 1, logs.FilterMessage("Internal server error").Len())
	assert.Equal(t, 1, logs.FilterMessage("Unknown panic occurred").Len())
}

func TestStructuredLogging_SkipsHealth(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	router := newRouter(zap.New(core))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/health", "/"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/", entries[0].ContextMap()["path"])
}

type form struct {
	Text string `form:"text" binding:"required"`
}

func (f *form) Validate() error {
	if strings.Contains(f.Text, "<") {
		return errors.NewValidationError("Validation failed", map[string]string{"text": "must be plain text"})
	}
	return nil
}

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: "text=hello"},
		{name: "missing", body: "", wantErr: "is required"},
		{name: "domain rule", body: "text=%3Cb%3E", wantErr: "must be plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			var f form
			err := ValidateForm(c, &f)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "hello", f.Text)
				return
			}

			var apiErr *errors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, errors.KindValidation, apiErr.Kind)
			assert.Equal(t, tt.wantErr, apiErr.Details["text"])
		})
	}
}

func TestMetrics(t *testing.T) {
	router := newRouter(zap.NewNop())
	router.GET("/metrics-probe/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("/metrics-probe/:id", http.MethodGet, "418"))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics-probe/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics-probe/2", nil))

	after := testutil.ToFloat64(httpRequests.WithLabelValues("/metrics-probe/:id", http.MethodGet, "418"))
	assert.Equal(t, 2.0, after-before)
}
